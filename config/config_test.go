package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "Symbol", cfg.Columns.Symbol)
	assert.Equal(t, "Total Value", cfg.Columns.Value)
	assert.False(t, cfg.Loader.Strict)
	assert.Equal(t, "", cfg.Journal.Type)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing symbol keyword",
			mutate:  func(c *Config) { c.Columns.Symbol = "" },
			wantErr: true,
			errMsg:  "columns.symbol is required",
		},
		{
			name:    "missing units keyword",
			mutate:  func(c *Config) { c.Columns.Units = "" },
			wantErr: true,
			errMsg:  "columns.units is required",
		},
		{
			name:    "unknown journal type",
			mutate:  func(c *Config) { c.Journal.Type = "postgres" },
			wantErr: true,
			errMsg:  "journal.type must be 'csv' or 'sqlite'",
		},
		{
			name: "csv journal without files",
			mutate: func(c *Config) {
				c.Journal.Type = "csv"
				c.Journal.DisposalsFile = ""
			},
			wantErr: true,
			errMsg:  "disposals_file and summaries_file required",
		},
		{
			name: "sqlite journal without db path",
			mutate: func(c *Config) {
				c.Journal.Type = "sqlite"
				c.Journal.DBPath = ""
			},
			wantErr: true,
			errMsg:  "db_path required",
		},
		{
			name:   "sqlite journal with db path",
			mutate: func(c *Config) { c.Journal.Type = "sqlite" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capgains.yaml")

	cfg := Default()
	cfg.Columns.Symbol = "Ticker"
	cfg.Loader.Strict = true
	cfg.Journal.Type = "sqlite"

	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Ticker", loaded.Columns.Symbol)
	assert.True(t, loaded.Loader.Strict)
	assert.Equal(t, "sqlite", loaded.Journal.Type)
}

func TestSaveLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capgains.json")

	cfg := Default()
	cfg.Columns.Units = "Qty"

	require.NoError(t, cfg.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Qty"`)

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Qty", loaded.Columns.Units)
}

func TestLoadInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	cfg := Default()
	cfg.Columns.Side = ""
	// Save skips validation; loading must not.
	require.NoError(t, cfg.SaveToFile(path))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml or json"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
