// Package bench drives repeated, instrumented invocations of the majority
// algorithms over synthetic inputs and aggregates the per-trial metrics into
// report rows. The algorithmic core knows nothing about iteration, CSV, or
// persistence; all of that orchestration lives here.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/akarpov/votebench/internal/generator"
	"github.com/akarpov/votebench/internal/majority"
)

// Algorithm selects which core operation the suite benchmarks.
type Algorithm string

const (
	// AlgoStandard is the two-phase find+verify algorithm.
	AlgoStandard Algorithm = "standard"
	// AlgoOptimized is the early-terminating variant.
	AlgoOptimized Algorithm = "optimized"
	// AlgoPositions is find+verify plus the position-collection pass.
	AlgoPositions Algorithm = "positions"
)

// IsValid reports whether the algorithm name is known.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgoStandard, AlgoOptimized, AlgoPositions:
		return true
	}
	return false
}

// Config holds the parameters of one benchmark suite.
type Config struct {
	// Sizes are the input lengths to benchmark, one row per size.
	Sizes []int
	// WarmupIterations are unmeasured runs before measurement starts.
	WarmupIterations int
	// MeasureIterations are the measured runs aggregated into each row.
	MeasureIterations int
	// Seed drives input generation; identical seeds reproduce identical runs.
	Seed int64
	// Algorithm picks the core operation under test.
	Algorithm Algorithm
	// InputType picks the shape of the generated sequences.
	InputType generator.InputType
	// Parallel fans sizes out across goroutines, each with its own
	// independently generated sequence. Timing rows from a parallel run
	// reflect scheduler contention; operation counts are unaffected.
	Parallel bool
	// ForceGC triggers a collection between measured trials so the heap
	// delta readings start from a settled heap. Slows the suite down
	// considerably.
	ForceGC bool
}

// DefaultConfig returns the standard suite: the classic size ladder, five
// warmup runs, ten measured runs, seed 42.
func DefaultConfig() *Config {
	return &Config{
		Sizes:             []int{100, 1000, 10000, 100000},
		WarmupIterations:  5,
		MeasureIterations: 10,
		Seed:              generator.DefaultSeed,
		Algorithm:         AlgoStandard,
		InputType:         generator.ClearMajority,
	}
}

// Validate checks the configuration for values the runner cannot work with.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("at least one input size is required")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("input sizes must be positive (got %d)", s)
		}
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("warmup iterations cannot be negative (got %d)", c.WarmupIterations)
	}
	if c.MeasureIterations <= 0 {
		return fmt.Errorf("measure iterations must be positive (got %d)", c.MeasureIterations)
	}
	if !c.Algorithm.IsValid() {
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	if !c.InputType.IsValid() {
		return fmt.Errorf("unknown input type %q", c.InputType)
	}
	return nil
}

// Row is one aggregated benchmark result: one input size, averaged over the
// measured iterations.
type Row struct {
	InputSize   int
	InputType   string
	AvgTimeMs   float64
	StdDevMs    float64
	Comparisons int64
	Assignments int64
	Accesses    int64
	MemoryBytes int64
	Result      string
}

// Runner executes a benchmark suite.
type Runner struct {
	cfg *Config

	// OnRow, when set, is called as each size finishes. Calls are
	// serialized; in parallel mode completion order is not size order.
	OnRow func(Row)

	mu sync.Mutex // serializes OnRow
}

// New creates a Runner after validating the configuration.
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Runner{cfg: cfg}, nil
}

// Run executes the suite and returns one row per configured size, in size
// order. The context is checked between trials; a canceled run returns the
// context error and no rows.
func (r *Runner) Run(ctx context.Context) ([]Row, error) {
	rows := make([]Row, len(r.cfg.Sizes))

	if r.cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, size := range r.cfg.Sizes {
			i, size := i, size
			g.Go(func() error {
				row, err := r.runSize(gctx, size)
				if err != nil {
					return err
				}
				rows[i] = row
				r.emit(row)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return rows, nil
	}

	for i, size := range r.cfg.Sizes {
		row, err := r.runSize(ctx, size)
		if err != nil {
			return nil, err
		}
		rows[i] = row
		r.emit(row)
	}
	return rows, nil
}

// runSize benchmarks a single input size: generate once, warm up, then
// aggregate the measured trials.
func (r *Runner) runSize(ctx context.Context, size int) (Row, error) {
	seq, err := generator.Generate(size, r.cfg.InputType, r.cfg.Seed)
	if err != nil {
		return Row{}, fmt.Errorf("generating input for size %d: %w", size, err)
	}

	for i := 0; i < r.cfg.WarmupIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Row{}, err
		}
		if _, _, err := r.invoke(seq); err != nil {
			return Row{}, fmt.Errorf("warmup run failed for size %d: %w", size, err)
		}
	}

	times := make([]float64, 0, r.cfg.MeasureIterations)
	var totalComparisons, totalAssignments, totalAccesses, totalMemory int64
	var result string

	for i := 0; i < r.cfg.MeasureIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Row{}, err
		}
		if r.cfg.ForceGC {
			runtime.GC()
		}

		res, m, err := r.invoke(seq)
		if err != nil {
			return Row{}, fmt.Errorf("measured run failed for size %d: %w", size, err)
		}

		times = append(times, m.ElapsedMillis())
		totalComparisons += m.Comparisons
		totalAssignments += m.Assignments
		totalAccesses += m.Accesses
		totalMemory += m.MemoryDelta
		result = res
	}

	n := int64(r.cfg.MeasureIterations)
	avg := Mean(times)
	return Row{
		InputSize:   size,
		InputType:   r.cfg.InputType.Label(),
		AvgTimeMs:   avg,
		StdDevMs:    StdDev(times, avg),
		Comparisons: totalComparisons / n,
		Assignments: totalAssignments / n,
		Accesses:    totalAccesses / n,
		MemoryBytes: totalMemory / n,
		Result:      result,
	}, nil
}

// invoke runs the configured algorithm once and renders its result.
func (r *Runner) invoke(seq []int) (string, majority.Metrics, error) {
	switch r.cfg.Algorithm {
	case AlgoOptimized:
		res, m, err := majority.FindOptimized(seq)
		return res.String(), m, err
	case AlgoPositions:
		res, m, err := majority.FindWithPositions(seq)
		return res.String(), m, err
	default:
		res, m, err := majority.Find(seq)
		return res.String(), m, err
	}
}

func (r *Runner) emit(row Row) {
	if r.OnRow == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.OnRow(row)
}
