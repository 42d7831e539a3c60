package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/capgains/statement"
)

// Config represents the complete calculator configuration
type Config struct {
	Columns ColumnsConfig `json:"columns" yaml:"columns"`
	Loader  LoaderConfig  `json:"loader" yaml:"loader"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// ColumnsConfig names the header keywords used to locate each statement field
type ColumnsConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Value  string `json:"value" yaml:"value"`
	Side   string `json:"side" yaml:"side"`
	Units  string `json:"units" yaml:"units"`
}

// Keywords converts the configured column names for the statement reader.
func (c ColumnsConfig) Keywords() statement.Keywords {
	return statement.Keywords{
		Symbol: c.Symbol,
		Value:  c.Value,
		Side:   c.Side,
		Units:  c.Units,
	}
}

// LoaderConfig controls how statement load failures are handled.
//
// With Strict false a failed load is reported and treated as an empty
// statement, so the run still prints zero gains. With Strict true the
// failure aborts the run.
type LoaderConfig struct {
	Strict bool `json:"strict" yaml:"strict"`
}

// JournalConfig contains journaling parameters. An empty Type disables
// journaling.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "", "csv" or "sqlite"
	DisposalsFile string `json:"disposals_file,omitempty" yaml:"disposals_file,omitempty"`
	SummariesFile string `json:"summaries_file,omitempty" yaml:"summaries_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

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

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Columns.Symbol == "" {
		return fmt.Errorf("columns.symbol is required")
	}
	if c.Columns.Value == "" {
		return fmt.Errorf("columns.value is required")
	}
	if c.Columns.Side == "" {
		return fmt.Errorf("columns.side is required")
	}
	if c.Columns.Units == "" {
		return fmt.Errorf("columns.units is required")
	}
	switch c.Journal.Type {
	case "":
		// journaling disabled
	case "csv":
		if c.Journal.DisposalsFile == "" || c.Journal.SummariesFile == "" {
			return fmt.Errorf("journal disposals_file and summaries_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	kw := statement.DefaultKeywords()
	return &Config{
		Columns: ColumnsConfig{
			Symbol: kw.Symbol,
			Value:  kw.Value,
			Side:   kw.Side,
			Units:  kw.Units,
		},
		Loader: LoaderConfig{
			Strict: false,
		},
		Journal: JournalConfig{
			Type:          "",
			DisposalsFile: "./disposals.csv",
			SummariesFile: "./summaries.csv",
			DBPath:        "./capgains.sqlite",
		},
	}
}
