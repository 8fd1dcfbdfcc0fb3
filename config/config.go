package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rustyeddy/zones/zones"
	"gopkg.in/yaml.v3"
)

// Config represents the complete analysis configuration
type Config struct {
	Sample  SampleConfig  `json:"sample" yaml:"sample"`
	Curves  CurvesConfig  `json:"curves" yaml:"curves"`
	Chart   ChartConfig   `json:"chart" yaml:"chart"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// SampleConfig describes the synthetic linear price range
type SampleConfig struct {
	Points int     `json:"points" yaml:"points"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// CurvesConfig holds the demand/supply curves used by the curve analysis
type CurvesConfig struct {
	Demand []float64 `json:"demand" yaml:"demand,flow"`
	Supply []float64 `json:"supply" yaml:"supply,flow"`
}

// ChartConfig controls chart rendering
type ChartConfig struct {
	Enabled  bool    `json:"enabled" yaml:"enabled"`
	Path     string  `json:"path" yaml:"path"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	WidthCM  float64 `json:"width_cm" yaml:"width_cm"`
	HeightCM float64 `json:"height_cm" yaml:"height_cm"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type     string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	RunsFile string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	DBPath   string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Env lists the ZONES_* overrides read by ApplyEnv.
type Env struct {
	LogLevel     string `envconfig:"LOG_LEVEL"`
	ChartPath    string `envconfig:"CHART_PATH"`
	JournalType  string `envconfig:"JOURNAL_TYPE"`
	JournalDB    string `envconfig:"JOURNAL_DB"`
	SamplePoints int    `envconfig:"SAMPLE_POINTS"`
}

// LoadFromFile loads configuration from a file (JSON or YAML). Fields
// missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ApplyEnv loads a .env file when present and overrides c with any
// ZONES_* variables that are set.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	var env Env
	if err := envconfig.Process("zones", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.ChartPath != "" {
		c.Chart.Path = env.ChartPath
	}
	if env.JournalType != "" {
		c.Journal.Type = env.JournalType
	}
	if env.JournalDB != "" {
		c.Journal.DBPath = env.JournalDB
	}
	if env.SamplePoints != 0 {
		c.Sample.Points = env.SamplePoints
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Sample.Points <= 0 {
		return fmt.Errorf("sample.points must be positive")
	}
	if c.Sample.Max < c.Sample.Min {
		return fmt.Errorf("sample.max must not be less than sample.min")
	}
	if err := zones.ValidateCurves(c.Curves.Demand, c.Curves.Supply); err != nil {
		return fmt.Errorf("curves: %w", err)
	}
	if c.Chart.Enabled && c.Chart.Path == "" {
		return fmt.Errorf("chart.path is required when the chart is enabled")
	}
	if c.Chart.WidthCM < 0 || c.Chart.HeightCM < 0 {
		return fmt.Errorf("chart dimensions must not be negative")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.RunsFile == "" {
			return fmt.Errorf("journal runs_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Sample: SampleConfig{
			Points: 100,
			Min:    0,
			Max:    100,
		},
		Curves: CurvesConfig{
			Demand: []float64{100, 90, 80, 70, 60, 50, 40, 30, 20, 10},
			Supply: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		Chart: ChartConfig{
			Enabled:  true,
			Path:     "./zones.png",
			Title:    "Demand and Supply",
			WidthCM:  16,
			HeightCM: 10,
		},
		Journal: JournalConfig{
			Type:     "none",
			RunsFile: "./runs.csv",
			DBPath:   "./zones.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
