// journal/sqlite.go
package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordDisposal(d DisposalRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO disposals
		(disposal_id, source, symbol, units, cost_per_unit, sale_per_unit, gain, sequence, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Source, d.Symbol, d.Units.String(),
		d.CostPerUnit.StringFixed(2), d.SalePerUnit.StringFixed(2),
		d.Gain.StringFixed(2), d.Sequence, d.RecordedAt,
	)
	return err
}

func (j *SQLite) RecordSummary(s SummaryRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO summaries
		(summary_id, source, net_gains, total_gains, trades, disposals, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Source, s.Net.StringFixed(2), s.Total.StringFixed(2),
		s.Trades, s.Disposals, s.RecordedAt,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
