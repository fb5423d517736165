// Package storage persists benchmark history so runs can be listed and
// re-exported after the fact. The only backend is an embedded sqlite
// database; the interface exists so tests and future backends can swap it.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/votebench/internal/bench"
)

// Run identifies one benchmark suite execution.
type Run struct {
	ID        string
	CreatedAt time.Time
	Algorithm string
	InputType string
	Seed      int64
}

// NewRun builds a Run with a fresh ID and timestamp.
func NewRun(algorithm, inputType string, seed int64) Run {
	return Run{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Algorithm: algorithm,
		InputType: inputType,
		Seed:      seed,
	}
}

// Storage stores and retrieves benchmark runs and their result rows.
type Storage interface {
	// SaveRun persists a run and all of its rows atomically.
	SaveRun(ctx context.Context, run Run, rows []bench.Row) error
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	// GetRows returns a run's rows ordered by input size.
	GetRows(ctx context.Context, runID string) ([]bench.Row, error)
	// Close releases the underlying database.
	Close() error
}
