package gains

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side int

const (
	Buy Side = iota + 1
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Trade is a single executed trade, one row of a broker statement.
// It is a value and must not be mutated after construction.
type Trade struct {
	Symbol string
	Units  decimal.Decimal // always positive; direction lives in Side
	Side   Side
	Value  decimal.Decimal // total consideration for the trade, not per-unit price
}

func (t Trade) String() string {
	return fmt.Sprintf("Trade(symbol=%s, units=%s, side=%s, value=%s)",
		t.Symbol, t.Units, t.Side, t.Value)
}
