package journal

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// GetDisposal returns a single disposal record by ID.
func (j *SQLite) GetDisposal(disposalID string) (DisposalRecord, error) {
	row := j.db.QueryRow(`
		SELECT disposal_id, source, symbol, units, cost_per_unit, sale_per_unit, gain, sequence, recorded_at
		FROM disposals
		WHERE disposal_id = ?`, disposalID)

	rec, err := scanDisposal(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return DisposalRecord{}, fmt.Errorf("disposal %q not found", disposalID)
		}
		return DisposalRecord{}, err
	}
	return rec, nil
}

// ListDisposalsBySymbol returns a symbol's disposals in statement order.
func (j *SQLite) ListDisposalsBySymbol(symbol string) ([]DisposalRecord, error) {
	rows, err := j.db.Query(`
		SELECT disposal_id, source, symbol, units, cost_per_unit, sale_per_unit, gain, sequence, recorded_at
		FROM disposals
		WHERE symbol = ?
		ORDER BY sequence ASC, disposal_id ASC`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DisposalRecord
	for rows.Next() {
		rec, err := scanDisposal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSummaries returns every recorded run, oldest first.
func (j *SQLite) ListSummaries() ([]SummaryRecord, error) {
	rows, err := j.db.Query(`
		SELECT summary_id, source, net_gains, total_gains, trades, disposals, recorded_at
		FROM summaries
		ORDER BY recorded_at ASC, summary_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SummaryRecord
	for rows.Next() {
		var (
			rec        SummaryRecord
			net, total string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Source,
			&net,
			&total,
			&rec.Trades,
			&rec.Disposals,
			&rec.RecordedAt,
		); err != nil {
			return nil, err
		}
		if rec.Net, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("summary %s: bad net_gains %q: %w", rec.ID, net, err)
		}
		if rec.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("summary %s: bad total_gains %q: %w", rec.ID, total, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanDisposal(scan func(dest ...any) error) (DisposalRecord, error) {
	var (
		rec                     DisposalRecord
		units, cost, sale, gain string
	)
	err := scan(
		&rec.ID,
		&rec.Source,
		&rec.Symbol,
		&units,
		&cost,
		&sale,
		&gain,
		&rec.Sequence,
		&rec.RecordedAt,
	)
	if err != nil {
		return DisposalRecord{}, err
	}

	if rec.Units, err = decimal.NewFromString(units); err != nil {
		return DisposalRecord{}, fmt.Errorf("disposal %s: bad units %q: %w", rec.ID, units, err)
	}
	if rec.CostPerUnit, err = decimal.NewFromString(cost); err != nil {
		return DisposalRecord{}, fmt.Errorf("disposal %s: bad cost_per_unit %q: %w", rec.ID, cost, err)
	}
	if rec.SalePerUnit, err = decimal.NewFromString(sale); err != nil {
		return DisposalRecord{}, fmt.Errorf("disposal %s: bad sale_per_unit %q: %w", rec.ID, sale, err)
	}
	if rec.Gain, err = decimal.NewFromString(gain); err != nil {
		return DisposalRecord{}, fmt.Errorf("disposal %s: bad gain %q: %w", rec.ID, gain, err)
	}
	return rec, nil
}
