// journal/schema.go
package journal

// Money columns are TEXT so the decimal strings round-trip exactly.
const Schema = `
CREATE TABLE IF NOT EXISTS disposals (
	disposal_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	symbol TEXT NOT NULL,
	units TEXT NOT NULL,
	cost_per_unit TEXT NOT NULL,
	sale_per_unit TEXT NOT NULL,
	gain TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	recorded_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS summaries (
	summary_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	net_gains TEXT NOT NULL,
	total_gains TEXT NOT NULL,
	trades INTEGER NOT NULL,
	disposals INTEGER NOT NULL,
	recorded_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_disposals_symbol ON disposals(symbol);
CREATE INDEX IF NOT EXISTS idx_summaries_recorded ON summaries(recorded_at);
`
