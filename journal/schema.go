package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	command TEXT NOT NULL,
	source TEXT NOT NULL,
	points INTEGER NOT NULL,
	has_entry INTEGER NOT NULL,
	entry_index INTEGER NOT NULL,
	entry_price REAL NOT NULL,
	zone TEXT NOT NULL,
	signal TEXT NOT NULL,
	opportunities TEXT NOT NULL,
	equilibria INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_time ON runs(time);
`
