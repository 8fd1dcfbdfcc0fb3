package cmd

import (
	"fmt"

	"github.com/rustyeddy/zones/chart"
	"github.com/rustyeddy/zones/journal"
	"github.com/rustyeddy/zones/report"
	"github.com/rustyeddy/zones/sample"
	"github.com/rustyeddy/zones/zones"
	"github.com/spf13/cobra"
)

func runDemo(cmd *cobra.Command, args []string) error {
	s := sample.LinearRange(cfg.Sample.Min, cfg.Sample.Max, cfg.Sample.Points)
	e, ok, err := zones.FindEntry(s.Price, s.Demand, s.Supply)
	if err != nil {
		return err
	}
	log.Debug().Int("points", len(s.Price)).Bool("entry", ok).Str("zone", e.Zone.String()).Msg("entry selected")

	out := cmd.OutOrStdout()
	if err := (report.Report{Entry: &report.EntryResult{Entry: e, OK: ok}}).Write(out); err != nil {
		return err
	}

	if err := renderChart(cfg.Curves.Demand, cfg.Curves.Supply, cfg.Chart.Path); err != nil {
		return err
	}

	a, err := zones.Analyze(cfg.Curves.Demand, cfg.Curves.Supply)
	if err != nil {
		return err
	}
	if err := (report.Report{Curves: &a}).Write(out); err != nil {
		return err
	}

	r := journal.NewRun("demo", fmt.Sprintf("linear(%d)", len(s.Price)))
	r.Points = len(s.Price)
	r.SetEntry(e, ok)
	r.SetCurves(a)
	return record(r)
}

func renderChart(demand, supply []float64, path string) error {
	if !cfg.Chart.Enabled || path == "" {
		return nil
	}

	err := chart.Render(path, demand, supply, chart.Options{
		Title:    cfg.Chart.Title,
		WidthCM:  cfg.Chart.WidthCM,
		HeightCM: cfg.Chart.HeightCM,
	})
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	log.Info().Str("path", path).Msg("chart written")
	return nil
}
