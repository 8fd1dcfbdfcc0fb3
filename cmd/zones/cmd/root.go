package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/zones/config"
	"github.com/rustyeddy/zones/internal/util"
	"github.com/rustyeddy/zones/journal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zones",
	Short: "Demand and supply zone analyzer",
	Long: `Zones classifies prices against demand and supply curves and picks a
trade entry price.

Run without a subcommand to analyze the built-in sample data:
  - the entry price for a linear 0..100 price range
  - a chart of the example demand and supply curves
  - the indices where demand exceeds supply, and any equilibrium`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runDemo,
}

var (
	cfgFile     string
	logLevel    string
	journalType string

	cfg *config.Config
	log zerolog.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&journalType, "journal", "", "record runs to a journal: none, csv or sqlite")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if journalType != "" {
		cfg.Journal.Type = journalType
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log = util.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log.Level)
	log.Debug().Str("config", cfgFile).Str("journal", cfg.Journal.Type).Msg("config loaded")
	return nil
}

// record writes r to the configured journal, if any.
func record(r journal.RunRecord) error {
	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	if err := j.RecordRun(r); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	log.Debug().Str("run_id", r.RunID).Str("journal", cfg.Journal.Type).Msg("run recorded")
	return nil
}
