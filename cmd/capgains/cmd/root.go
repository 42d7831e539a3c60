package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "capgains",
	Short: "Calculate realized capital gains from broker statement CSVs",
	Long: `Capgains computes realized capital gains from a chronological trade
statement using FIFO lot matching.

It provides tools for:
  - Calculating net and total capital gains from a statement CSV
  - Reading gzip, xz and zip compressed statement exports
  - Journaling per-lot disposals to CSV or SQLite
  - Querying past disposal journals
  - Configurable statement column matching

Complete documentation is available at https://github.com/rustyeddy/capgains`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
