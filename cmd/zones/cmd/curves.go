package cmd

import (
	"github.com/rustyeddy/zones/journal"
	"github.com/rustyeddy/zones/report"
	"github.com/rustyeddy/zones/series"
	"github.com/rustyeddy/zones/zones"
	"github.com/spf13/cobra"
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Compare a demand curve with a supply curve",
	Long: `Report every index where demand is strictly greater than supply, and
any index where the two are exactly equal (equilibrium).

The curves file is a CSV with a demand,supply header. Without --file the
curves from the config are used.

Examples:
  zones curves
  zones curves --file curves.csv --chart curves.svg
  zones curves --no-chart`,
	Args: cobra.NoArgs,
	RunE: runCurves,
}

var (
	curvesFile    string
	curvesChart   string
	curvesNoChart bool
)

func init() {
	rootCmd.AddCommand(curvesCmd)

	curvesCmd.Flags().StringVarP(&curvesFile, "file", "f", "", "demand,supply CSV file")
	curvesCmd.Flags().StringVar(&curvesChart, "chart", "", "chart output path (default from config)")
	curvesCmd.Flags().BoolVar(&curvesNoChart, "no-chart", false, "skip rendering the chart")
}

func runCurves(cmd *cobra.Command, args []string) error {
	c := series.Curves{Demand: cfg.Curves.Demand, Supply: cfg.Curves.Supply}
	source := "config"
	if curvesFile != "" {
		var err error
		if c, err = series.LoadCurvesCSV(curvesFile); err != nil {
			return err
		}
		source = curvesFile
	}

	a, err := zones.Analyze(c.Demand, c.Supply)
	if err != nil {
		return err
	}
	log.Debug().
		Str("source", source).
		Int("opportunities", len(a.Opportunities)).
		Bool("equilibrium", a.HasEquilibrium()).
		Msg("curves analyzed")

	if !curvesNoChart {
		path := cfg.Chart.Path
		if curvesChart != "" {
			path = curvesChart
		}
		if err := renderChart(c.Demand, c.Supply, path); err != nil {
			return err
		}
	}

	if err := (report.Report{Curves: &a}).Write(cmd.OutOrStdout()); err != nil {
		return err
	}

	r := journal.NewRun("curves", source)
	r.Points = len(c.Demand)
	r.SetCurves(a)
	return record(r)
}
