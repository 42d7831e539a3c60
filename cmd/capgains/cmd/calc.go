package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/capgains/config"
	"github.com/rustyeddy/capgains/gains"
	"github.com/rustyeddy/capgains/internal/id"
	"github.com/rustyeddy/capgains/journal"
	"github.com/rustyeddy/capgains/statement"
)

var calcCmd = &cobra.Command{
	Use:   "calc <statement.csv>",
	Short: "Compute FIFO capital gains from a statement",
	Long: `Calc reads a broker statement CSV and computes realized capital gains
using FIFO lot matching.

The statement needs four columns, located by substring match on their
headings: Symbol, Total Value, Side and Units. Compressed statements
(.gz, .xz, .zip) are decoded transparently.

By default a statement that fails to load is reported and treated as
empty, printing zero gains. Pass --strict to fail instead.

Example:
  capgains calc statement.csv
  capgains calc statement.csv --by-symbol --journal sqlite --db gains.sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

var (
	calcConfigPath string
	calcStrict     bool
	calcBySymbol   bool
	calcJournal    string
	calcDBPath     string
	calcDisposals  string
	calcSummaries  string
)

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
	calcCmd.Flags().BoolVar(&calcStrict, "strict", false, "fail on statement load errors instead of reporting zero gains")
	calcCmd.Flags().BoolVar(&calcBySymbol, "by-symbol", false, "print a per-symbol gains breakdown")

	calcCmd.Flags().StringVarP(&calcJournal, "journal", "j", "", "journal type (csv, sqlite)")
	calcCmd.Flags().StringVarP(&calcDBPath, "db", "d", "", "path to SQLite journal DB")
	calcCmd.Flags().StringVar(&calcDisposals, "disposals", "", "path to disposals CSV journal")
	calcCmd.Flags().StringVar(&calcSummaries, "summaries", "", "path to summaries CSV journal")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if calcConfigPath != "" {
		c, err := config.LoadFromFile(calcConfigPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		cfg = c
	}

	// Flags override the config file.
	if cmd.Flags().Changed("strict") {
		cfg.Loader.Strict = calcStrict
	}
	if calcJournal != "" {
		cfg.Journal.Type = calcJournal
	}
	if calcDBPath != "" {
		cfg.Journal.DBPath = calcDBPath
	}
	if calcDisposals != "" {
		cfg.Journal.DisposalsFile = calcDisposals
	}
	if calcSummaries != "" {
		cfg.Journal.SummariesFile = calcSummaries
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	source := args[0]
	reader := statement.NewReader()
	reader.Keywords = cfg.Columns.Keywords()

	trades, err := reader.Read(source)
	if err != nil {
		if cfg.Loader.Strict {
			return fmt.Errorf("load statement: %w", err)
		}
		// Lenient mode: report the problem and carry on with an empty
		// statement, which prints zero gains below.
		fmt.Fprintln(os.Stderr, err)
		trades = nil
	}

	sum, err := gains.Calculate(trades)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	if cfg.Journal.Type != "" {
		if err := recordRun(cfg, source, len(trades), sum); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
	}

	fmt.Printf("Net Capital Gains: %s\n", sum.Net.StringFixed(2))
	fmt.Printf("Total Capital Gains: %s\n", sum.Total.StringFixed(2))

	if calcBySymbol {
		printBySymbol(sum)
	}
	return nil
}

func recordRun(cfg *config.Config, source string, trades int, sum gains.Summary) error {
	var (
		j   journal.Journal
		err error
	)
	switch cfg.Journal.Type {
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.DisposalsFile, cfg.Journal.SummariesFile)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
	if err != nil {
		return err
	}
	defer j.Close()

	now := time.Now().UTC()
	for _, d := range sum.Disposals {
		rec := journal.DisposalRecord{
			ID:          id.New(),
			Source:      source,
			Symbol:      d.Symbol,
			Units:       d.Units,
			CostPerUnit: d.CostPerUnit,
			SalePerUnit: d.SalePerUnit,
			Gain:        d.Gain,
			Sequence:    d.Sequence,
			RecordedAt:  now,
		}
		if err := j.RecordDisposal(rec); err != nil {
			return err
		}
	}

	return j.RecordSummary(journal.SummaryRecord{
		ID:         id.New(),
		Source:     source,
		Net:        sum.Net,
		Total:      sum.Total,
		Trades:     trades,
		Disposals:  len(sum.Disposals),
		RecordedAt: now,
	})
}

func printBySymbol(sum gains.Summary) {
	type bucket struct {
		net, total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, d := range sum.Disposals {
		b, ok := buckets[d.Symbol]
		if !ok {
			b = &bucket{}
			buckets[d.Symbol] = b
		}
		b.net = b.net.Add(d.Gain)
		if !d.Gain.IsNegative() {
			b.total = b.total.Add(d.Gain)
		}
	}

	symbols := make([]string, 0, len(buckets))
	for s := range buckets {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	fmt.Printf("\n%-10s %12s %12s\n", "Symbol", "Net", "Total")
	for _, s := range symbols {
		b := buckets[s]
		fmt.Printf("%-10s %12s %12s\n", s, b.net.StringFixed(2), b.total.StringFixed(2))
	}
}
