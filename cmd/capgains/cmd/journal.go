package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capgains/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query disposal journal data",
	Long: `Query and display disposal records from a SQLite journal.

Subcommands:
  disposal - Get details of a specific disposal by ID
  symbol   - List a symbol's disposals in statement order
  runs     - List recorded calculation runs

Examples:
  capgains journal disposal <disposal-id>
  capgains journal symbol AAA
  capgains journal runs`,
}

var journalDisposalCmd = &cobra.Command{
	Use:   "disposal <disposal-id>",
	Short: "Get details of a specific disposal",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDisposal,
}

var journalSymbolCmd = &cobra.Command{
	Use:   "symbol <SYMBOL>",
	Short: "List a symbol's disposals",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSymbol,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded calculation runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalDisposalCmd)
	journalCmd.AddCommand(journalSymbolCmd)
	journalCmd.AddCommand(journalRunsCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./capgains.sqlite", "path to SQLite journal DB")
}

func runJournalDisposal(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetDisposal(args[0])
	if err != nil {
		return fmt.Errorf("get disposal: %w", err)
	}

	fmt.Println(journal.FormatDisposalsOrg([]journal.DisposalRecord{rec}))
	return nil
}

func runJournalSymbol(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListDisposalsBySymbol(args[0])
	if err != nil {
		return fmt.Errorf("query disposals: %w", err)
	}

	fmt.Println(journal.FormatDisposalsOrg(recs))
	return nil
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListSummaries()
	if err != nil {
		return fmt.Errorf("query summaries: %w", err)
	}

	fmt.Println(journal.FormatSummariesOrg(recs))
	return nil
}
