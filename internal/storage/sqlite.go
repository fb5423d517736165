package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/akarpov/votebench/internal/bench"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMP NOT NULL,
	algorithm   TEXT NOT NULL,
	input_type  TEXT NOT NULL,
	seed        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trials (
	run_id       TEXT NOT NULL REFERENCES runs(id),
	input_size   INTEGER NOT NULL,
	avg_time_ms  REAL NOT NULL,
	stddev_ms    REAL NOT NULL,
	comparisons  INTEGER NOT NULL,
	assignments  INTEGER NOT NULL,
	accesses     INTEGER NOT NULL,
	memory_bytes INTEGER NOT NULL,
	result       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trials_run ON trials(run_id);
`

// SQLiteStorage implements Storage on an embedded sqlite database.
type SQLiteStorage struct {
	db *sql.DB
}

var _ Storage = (*SQLiteStorage)(nil)

// Open opens (creating if necessary) the database at path and ensures the
// schema exists.
func Open(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// SaveRun persists the run and its rows in one transaction.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run Run, rows []bench.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, algorithm, input_type, seed) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Algorithm, run.InputType, run.Seed,
	); err != nil {
		return fmt.Errorf("inserting run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trials (run_id, input_size, avg_time_ms, stddev_ms,
			comparisons, assignments, accesses, memory_bytes, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing trial insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			run.ID, row.InputSize, row.AvgTimeMs, row.StdDevMs,
			row.Comparisons, row.Assignments, row.Accesses, row.MemoryBytes, row.Result,
		); err != nil {
			return fmt.Errorf("inserting trial row (size %d): %w", row.InputSize, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, algorithm, input_type, seed
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Algorithm, &r.InputType, &r.Seed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRows returns the rows of one run ordered by input size.
func (s *SQLiteStorage) GetRows(ctx context.Context, runID string) ([]bench.Row, error) {
	var inputType string
	if err := s.db.QueryRowContext(ctx,
		`SELECT input_type FROM runs WHERE id = ?`, runID).Scan(&inputType); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %s not found", runID)
		}
		return nil, fmt.Errorf("looking up run %s: %w", runID, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT input_size, avg_time_ms, stddev_ms, comparisons, assignments,
			accesses, memory_bytes, result
		FROM trials WHERE run_id = ? ORDER BY input_size`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying rows for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []bench.Row
	for rows.Next() {
		r := bench.Row{InputType: inputType}
		if err := rows.Scan(&r.InputSize, &r.AvgTimeMs, &r.StdDevMs,
			&r.Comparisons, &r.Assignments, &r.Accesses, &r.MemoryBytes, &r.Result); err != nil {
			return nil, fmt.Errorf("scanning trial row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
