package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rustyeddy/zones/journal"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "List runs recorded in the SQLite journal",
	Long: `Show analysis runs recorded with --journal sqlite, newest first.

Examples:
  zones runs
  zones runs --limit 5 --org
  zones runs 01HKZ3Q7J8M2W5X9YB4C6D0EFG`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

var (
	runsLimit int
	runsOrg   bool
)

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().IntVarP(&runsLimit, "limit", "l", 20, "maximum number of runs to list (0 for all)")
	runsCmd.Flags().BoolVar(&runsOrg, "org", false, "print runs as org-mode headings")
}

func runRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(cfg.Journal.DBPath); errors.Is(err, fs.ErrNotExist) {
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", journal.ErrRunNotFound, args[0])
		}
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	ctx := cmd.Context()
	var runs []journal.RunRecord
	if len(args) == 1 {
		r, err := j.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		runs = append(runs, r)
	} else if runs, err = j.ListRuns(ctx, runsLimit); err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	for _, r := range runs {
		if runsOrg {
			s, err := journal.FormatRunOrg(r)
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
			continue
		}

		entry := "none"
		if r.HasEntry {
			entry = fmt.Sprintf("%.6f (%s)", r.EntryPrice, r.Zone)
		}
		fmt.Fprintf(out, "%s  %s  %-6s  %-14s  points=%d  entry=%s  opportunities=%d  equilibria=%d\n",
			r.RunID, r.Time.Format("2006-01-02 15:04:05"), r.Command, r.Source,
			r.Points, entry, len(r.Opportunities), r.Equilibria)
	}
	return nil
}
