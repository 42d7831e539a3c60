package gains

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidTrade reports a trade whose numbers cannot produce a per-unit
// price: zero or negative units, negative value, or an unset side.
var ErrInvalidTrade = errors.New("invalid trade")

// places is the rounding applied to every per-unit price and per-lot gain.
// Rounding happens at each step, not just on the final totals, so the
// results match statements produced by brokers that round the same way.
const places = 2

// lot is an unconsumed purchase at a fixed per-unit cost basis.
type lot struct {
	units decimal.Decimal
	cost  decimal.Decimal // per unit, fixed at buy time
}

// Disposal is one lot fragment consumed by a sell.
type Disposal struct {
	Symbol      string
	Units       decimal.Decimal
	CostPerUnit decimal.Decimal
	SalePerUnit decimal.Decimal
	Gain        decimal.Decimal
	Sequence    int // index of the selling trade in the input
}

// Summary is the result of one calculation run.
//
// Net sums every realized gain and loss. Total sums only the non-negative
// per-lot gains; losses still reduce Net but never Total.
type Summary struct {
	Net       decimal.Decimal
	Total     decimal.Decimal
	Disposals []Disposal
}

// Calculate matches sells against buys oldest-first per symbol and returns
// the realized gains. Trades must be in chronological order; the order
// decides which lots each sell consumes.
//
// Selling more units than held for a symbol is not an error: the excess
// units simply realize nothing.
func Calculate(trades []Trade) (Summary, error) {
	holdings := make(map[string][]lot)
	var sum Summary

	for i, t := range trades {
		if err := validate(i, t); err != nil {
			return Summary{}, err
		}

		perUnit := t.Value.Div(t.Units).RoundBank(places)

		if t.Side == Buy {
			holdings[t.Symbol] = append(holdings[t.Symbol], lot{units: t.Units, cost: perUnit})
			continue
		}

		queue := holdings[t.Symbol]
		remaining := t.Units
		for remaining.IsPositive() && len(queue) > 0 {
			oldest := queue[0]
			consumed := decimal.Min(oldest.units, remaining)

			gain := perUnit.Sub(oldest.cost).Mul(consumed).RoundBank(places)
			sum.Net = sum.Net.Add(gain)
			if !gain.IsNegative() {
				sum.Total = sum.Total.Add(gain)
			}
			sum.Disposals = append(sum.Disposals, Disposal{
				Symbol:      t.Symbol,
				Units:       consumed,
				CostPerUnit: oldest.cost,
				SalePerUnit: perUnit,
				Gain:        gain,
				Sequence:    i,
			})

			if consumed.Equal(oldest.units) {
				queue = queue[1:]
			} else {
				queue[0].units = oldest.units.Sub(consumed)
			}
			remaining = remaining.Sub(consumed)
		}
		holdings[t.Symbol] = queue
	}

	sum.Net = sum.Net.RoundBank(places)
	sum.Total = sum.Total.RoundBank(places)
	return sum, nil
}

func validate(i int, t Trade) error {
	if !t.Units.IsPositive() {
		return fmt.Errorf("%w: trade %d (%s): units must be positive, got %s",
			ErrInvalidTrade, i, t.Symbol, t.Units)
	}
	if t.Value.IsNegative() {
		return fmt.Errorf("%w: trade %d (%s): value must not be negative, got %s",
			ErrInvalidTrade, i, t.Symbol, t.Value)
	}
	if t.Side != Buy && t.Side != Sell {
		return fmt.Errorf("%w: trade %d (%s): unknown side %v",
			ErrInvalidTrade, i, t.Symbol, t.Side)
	}
	return nil
}
