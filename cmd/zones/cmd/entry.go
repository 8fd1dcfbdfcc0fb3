package cmd

import (
	"fmt"

	"github.com/rustyeddy/zones/journal"
	"github.com/rustyeddy/zones/report"
	"github.com/rustyeddy/zones/sample"
	"github.com/rustyeddy/zones/series"
	"github.com/rustyeddy/zones/zones"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Find the trade entry price",
	Long: `Classify each price into the demand and supply zones and print the
entry price, or "none" when no price is in either zone.

The first price in the demand zone wins. The supply zone is only used
when no price is in the demand zone.

The series file is a CSV with a price,demand,supply header. Without
--file the linear sample range from the config is used.

Examples:
  zones entry
  zones entry --points 25
  zones entry --file series.csv --verbose`,
	Args: cobra.NoArgs,
	RunE: runEntry,
}

var (
	entryFile    string
	entryPoints  int
	entryVerbose bool
)

func init() {
	rootCmd.AddCommand(entryCmd)

	entryCmd.Flags().StringVarP(&entryFile, "file", "f", "", "price,demand,supply CSV file")
	entryCmd.Flags().IntVarP(&entryPoints, "points", "n", 0, "number of sample points (default from config)")
	entryCmd.Flags().BoolVarP(&entryVerbose, "verbose", "v", false, "print zone, index and signal")
}

func runEntry(cmd *cobra.Command, args []string) error {
	if entryPoints < 0 {
		return fmt.Errorf("--points must be positive, got %d", entryPoints)
	}

	var (
		s      series.Series
		source string
	)
	if entryFile != "" {
		var err error
		if s, err = series.LoadCSV(entryFile); err != nil {
			return err
		}
		source = entryFile
	} else {
		n := cfg.Sample.Points
		if entryPoints > 0 {
			n = entryPoints
		}
		sc := sample.LinearRange(cfg.Sample.Min, cfg.Sample.Max, n)
		s = series.Series{Price: sc.Price, Demand: sc.Demand, Supply: sc.Supply}
		source = fmt.Sprintf("linear(%d)", n)
	}

	m, err := zones.Classify(s.Price, s.Demand, s.Supply)
	if err != nil {
		return err
	}
	e, ok, err := zones.EntryFromMasks(s.Price, m)
	if err != nil {
		return err
	}

	inDemand, inSupply := m.Count()
	log.Debug().
		Str("source", source).
		Int("points", s.Len()).
		Int("demand_zone", inDemand).
		Int("supply_zone", inSupply).
		Str("zone", e.Zone.String()).
		Msg("entry selected")

	rep := report.Report{Entry: &report.EntryResult{Entry: e, OK: ok}, Verbose: entryVerbose}
	if err := rep.Write(cmd.OutOrStdout()); err != nil {
		return err
	}

	r := journal.NewRun("entry", source)
	r.Points = s.Len()
	r.SetEntry(e, ok)
	return record(r)
}
