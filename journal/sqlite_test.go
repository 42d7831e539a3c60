package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func testDisposal(id, symbol string, seq int) DisposalRecord {
	return DisposalRecord{
		ID:          id,
		Source:      "statement.csv",
		Symbol:      symbol,
		Units:       decimal.RequireFromString("10"),
		CostPerUnit: decimal.RequireFromString("10.00"),
		SalePerUnit: decimal.RequireFromString("15.00"),
		Gain:        decimal.RequireFromString("50.00"),
		Sequence:    seq,
		RecordedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('disposals','summaries')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["disposals"])
	assert.True(t, found["summaries"])
}

func TestSQLiteDisposalRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := testDisposal("D1", "AAA", 3)
	require.NoError(t, j.RecordDisposal(rec))

	got, err := j.GetDisposal("D1")
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Source, got.Source)
	assert.Equal(t, rec.Symbol, got.Symbol)
	assert.True(t, got.Units.Equal(rec.Units))
	assert.True(t, got.CostPerUnit.Equal(rec.CostPerUnit))
	assert.True(t, got.SalePerUnit.Equal(rec.SalePerUnit))
	assert.True(t, got.Gain.Equal(rec.Gain))
	assert.Equal(t, rec.Sequence, got.Sequence)
	assert.True(t, got.RecordedAt.Equal(rec.RecordedAt))
}

func TestSQLiteGetDisposalNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetDisposal("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListDisposalsBySymbol(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	require.NoError(t, j.RecordDisposal(testDisposal("D2", "AAA", 5)))
	require.NoError(t, j.RecordDisposal(testDisposal("D1", "AAA", 2)))
	require.NoError(t, j.RecordDisposal(testDisposal("D3", "BBB", 3)))

	recs, err := j.ListDisposalsBySymbol("AAA")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Statement order, not insertion order.
	assert.Equal(t, "D1", recs[0].ID)
	assert.Equal(t, "D2", recs[1].ID)
}

func TestSQLiteListSummaries(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	first := SummaryRecord{
		ID:         "S1",
		Source:     "jan.csv",
		Net:        decimal.RequireFromString("50.00"),
		Total:      decimal.RequireFromString("50.00"),
		Trades:     2,
		Disposals:  1,
		RecordedAt: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	second := SummaryRecord{
		ID:         "S2",
		Source:     "feb.csv",
		Net:        decimal.RequireFromString("-10.00"),
		Total:      decimal.RequireFromString("0.00"),
		Trades:     4,
		Disposals:  3,
		RecordedAt: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, j.RecordSummary(second))
	require.NoError(t, j.RecordSummary(first))

	recs, err := j.ListSummaries()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "S1", recs[0].ID)
	assert.True(t, recs[0].Net.Equal(first.Net))
	assert.Equal(t, "S2", recs[1].ID)
	assert.True(t, recs[1].Total.Equal(second.Total))
}
