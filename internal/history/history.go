// Package history keeps a SQLite log of pipeline runs.
package history

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"
)

// Run - One stored pipeline run
type Run struct {
	ID          int64         `yaml:"id"`
	Word        string        `yaml:"word"`
	Strategy    string        `yaml:"strategy"`
	Exact       bool          `yaml:"exact"`
	ResultKey   string        `yaml:"result_key"`
	ResultCount int64         `yaml:"result_count"`
	FileCount   int           `yaml:"file_count"`
	TableSize   int64         `yaml:"table_size"`
	Duration    time.Duration `yaml:"duration"`
	CreatedAt   time.Time     `yaml:"created_at"`
}

// DB wraps the history database
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates the history database at path and makes sure the schema exists
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open history database %s", path)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close() // Close error less important than schema error
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	return &DB{DB: sqlDB, path: path}, nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Record stores a run and returns its ID
func (db *DB) Record(run Run) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO runs (word, strategy, exact, result_key, result_count, file_count, table_size, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Word, run.Strategy, run.Exact, run.ResultKey, run.ResultCount, run.FileCount, run.TableSize, run.Duration.Nanoseconds())
	if err != nil {
		return 0, errors.Wrap(err, "failed to record run")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get run ID")
	}

	return id, nil
}

// Recent returns up to limit runs, newest first
func (db *DB) Recent(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, word, strategy, exact, COALESCE(result_key, ''), result_count, file_count, table_size, duration_ns, created_at
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query runs")
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		var durationNS int64
		if err := rows.Scan(&run.ID, &run.Word, &run.Strategy, &run.Exact, &run.ResultKey, &run.ResultCount,
			&run.FileCount, &run.TableSize, &durationNS, &run.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan run")
		}
		run.Duration = time.Duration(durationNS)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate runs")
	}

	return runs, nil
}
