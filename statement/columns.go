package statement

import (
	"errors"
	"fmt"
	"strings"
)

// Default header keywords. Brokers decorate their headings ("Stock Symbol",
// "Units Traded"), so matching is by substring rather than exact text.
const (
	KeywordSymbol = "Symbol"
	KeywordValue  = "Total Value"
	KeywordSide   = "Side"
	KeywordUnits  = "Units"
)

// ErrMissingColumn reports a header row with no cell matching a keyword.
var ErrMissingColumn = errors.New("column not found")

// Keywords are the header fragments used to locate each required field.
type Keywords struct {
	Symbol string
	Value  string
	Side   string
	Units  string
}

// DefaultKeywords returns the keywords used by Stake tax statements.
func DefaultKeywords() Keywords {
	return Keywords{
		Symbol: KeywordSymbol,
		Value:  KeywordValue,
		Side:   KeywordSide,
		Units:  KeywordUnits,
	}
}

// Columns holds the resolved index of each required field.
type Columns struct {
	Symbol int
	Value  int
	Side   int
	Units  int
}

// ResolveColumns scans the header row for each keyword. The first cell
// containing the keyword wins and the match is case-sensitive, which keeps
// output compatible with statements already processed this way.
func ResolveColumns(header []string, kw Keywords) (Columns, error) {
	var (
		cols Columns
		err  error
	)
	if cols.Symbol, err = findColumn(kw.Symbol, header); err != nil {
		return Columns{}, err
	}
	if cols.Value, err = findColumn(kw.Value, header); err != nil {
		return Columns{}, err
	}
	if cols.Side, err = findColumn(kw.Side, header); err != nil {
		return Columns{}, err
	}
	if cols.Units, err = findColumn(kw.Units, header); err != nil {
		return Columns{}, err
	}
	return cols, nil
}

func findColumn(keyword string, header []string) (int, error) {
	for i, cell := range header {
		if strings.Contains(cell, keyword) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: heading %q", ErrMissingColumn, keyword)
}

// widest returns the highest column index a row must reach to be usable.
func (c Columns) widest() int {
	return max(c.Symbol, c.Value, c.Side, c.Units)
}
