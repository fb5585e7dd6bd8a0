package history

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL,
    strategy TEXT NOT NULL,
    exact BOOLEAN NOT NULL DEFAULT 0,
    result_key TEXT,
    result_count INTEGER NOT NULL DEFAULT 0,
    file_count INTEGER NOT NULL,
    table_size INTEGER NOT NULL,
    duration_ns INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_word ON runs(word);
`
