package statement

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"

	"github.com/rustyeddy/capgains/gains"
)

// ErrUnknownSide reports a side cell matching neither Buy nor Sell.
var ErrUnknownSide = errors.New("failed to parse side")

// Reader parses broker statement CSVs into trades.
type Reader struct {
	Keywords Keywords
}

func NewReader() *Reader {
	return &Reader{Keywords: DefaultKeywords()}
}

// Read loads trades from a statement file. Statements compressed as .gz,
// .xz or .zip are decoded transparently; brokers ship exports all three
// ways.
func (r *Reader) Read(path string) ([]gains.Trade, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return r.readZip(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		return r.ReadFrom(zr)

	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		return r.ReadFrom(xr)
	}

	return r.ReadFrom(f)
}

// readZip extracts the archive to a scratch dir and loads the one CSV
// inside it.
func (r *Reader) readZip(path string) ([]gains.Trade, error) {
	dir, err := os.MkdirTemp("", "capgains-zip-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("unzip %s: %w", path, err)
	}

	var csvs []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			csvs = append(csvs, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(csvs) != 1 {
		return nil, fmt.Errorf("archive %s: want exactly one CSV, found %d", path, len(csvs))
	}

	f, err := os.Open(csvs[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.ReadFrom(f)
}

// ReadFrom parses a statement from src. The first row must be a header
// resolvable against the reader's keywords; every following row becomes one
// trade. Any bad row fails the whole load with its row number attached.
func (r *Reader) ReadFrom(src io.Reader) ([]gains.Trade, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("statement is empty")
	}
	if err != nil {
		return nil, err
	}

	cols, err := ResolveColumns(header, r.Keywords)
	if err != nil {
		return nil, err
	}

	var trades []gains.Trade
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return trades, nil
		}
		if err != nil {
			return nil, err
		}

		t, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		trades = append(trades, t)
	}
}

func parseRow(rec []string, cols Columns) (gains.Trade, error) {
	if w := cols.widest(); len(rec) <= w {
		return gains.Trade{}, fmt.Errorf("short row: %d columns, need at least %d", len(rec), w+1)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(rec[cols.Value]))
	if err != nil {
		return gains.Trade{}, fmt.Errorf("bad total value %q: %w", rec[cols.Value], err)
	}

	units, err := decimal.NewFromString(strings.TrimSpace(rec[cols.Units]))
	if err != nil {
		return gains.Trade{}, fmt.Errorf("bad units %q: %w", rec[cols.Units], err)
	}

	side, err := parseSide(rec[cols.Side])
	if err != nil {
		return gains.Trade{}, err
	}

	return gains.Trade{
		Symbol: strings.TrimSpace(rec[cols.Symbol]),
		Units:  units.Abs(), // statements sign sells; direction lives in Side
		Side:   side,
		Value:  value,
	}, nil
}

func parseSide(cell string) (gains.Side, error) {
	switch {
	case strings.Contains(cell, "Buy"):
		return gains.Buy, nil
	case strings.Contains(cell, "Sell"):
		return gains.Sell, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, cell)
}
