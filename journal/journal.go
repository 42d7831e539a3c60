// journal/journal.go
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisposalRecord is one lot fragment consumed by a sell, as written to a
// journal. Sequence is the selling trade's position in the statement.
type DisposalRecord struct {
	ID          string
	Source      string // statement the trades came from
	Symbol      string
	Units       decimal.Decimal
	CostPerUnit decimal.Decimal
	SalePerUnit decimal.Decimal
	Gain        decimal.Decimal
	Sequence    int
	RecordedAt  time.Time
}

// SummaryRecord is the result line for one calculation run.
type SummaryRecord struct {
	ID         string
	Source     string
	Net        decimal.Decimal
	Total      decimal.Decimal
	Trades     int
	Disposals  int
	RecordedAt time.Time
}

type Journal interface {
	RecordDisposal(DisposalRecord) error
	RecordSummary(SummaryRecord) error
	Close() error
}
