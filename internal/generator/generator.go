// Package generator produces the synthetic integer sequences the benchmark
// suite runs against. Generation is deterministic for a given seed so that
// runs are reproducible and comparable across machines.
package generator

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is the seed used when the caller does not supply one.
const DefaultSeed int64 = 42

// InputType selects the shape of a generated sequence.
type InputType string

const (
	// ClearMajority fills 60% of the sequence with one value.
	ClearMajority InputType = "clear"
	// SlimMajority fills exactly n/2+1 slots with one value, the thinnest
	// possible majority.
	SlimMajority InputType = "slim"
	// NoMajority cycles through ~n/3 distinct values so no value can reach
	// a majority (for sizes past the handful-of-elements range).
	NoMajority InputType = "none"
	// Unanimous repeats a single value.
	Unanimous InputType = "unanimous"
	// Random draws every element uniformly from a small domain.
	Random InputType = "random"
)

// IsValid reports whether the input type is one of the known shapes.
func (t InputType) IsValid() bool {
	switch t {
	case ClearMajority, SlimMajority, NoMajority, Unanimous, Random:
		return true
	}
	return false
}

// Label returns the display name used in CSV output and reports.
func (t InputType) Label() string {
	switch t {
	case ClearMajority:
		return "ClearMajority60%"
	case SlimMajority:
		return "SlimMajority51%"
	case NoMajority:
		return "NoMajority"
	case Unanimous:
		return "Unanimous100%"
	case Random:
		return "Random"
	default:
		return "Unknown"
	}
}

// ParseInputType maps a flag value to an InputType.
func ParseInputType(s string) (InputType, error) {
	t := InputType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown input type %q (want clear, slim, none, unanimous, or random)", s)
	}
	return t, nil
}

// InputTypes lists all input types in menu order.
func InputTypes() []InputType {
	return []InputType{ClearMajority, SlimMajority, NoMajority, Unanimous, Random}
}

// Generate builds a sequence of the given size and shape. The same
// (size, typ, seed) triple always yields the same sequence. Every shape is
// shuffled after construction so element order carries no information.
func Generate(size int, typ InputType, seed int64) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("generator: size must be positive (got %d)", size)
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("generator: unknown input type %q", typ)
	}

	rng := rand.New(rand.NewSource(seed))
	seq := make([]int, size)

	switch typ {
	case ClearMajority:
		majority := int(float64(size) * 0.6)
		for i := 0; i < majority; i++ {
			seq[i] = 1
		}
		for i := majority; i < size; i++ {
			seq[i] = rng.Intn(100) + 2
		}

	case SlimMajority:
		majority := size/2 + 1
		for i := 0; i < majority; i++ {
			seq[i] = 1
		}
		for i := majority; i < size; i++ {
			seq[i] = rng.Intn(100) + 2
		}

	case NoMajority:
		for i := range seq {
			seq[i] = i % (size/3 + 1)
		}

	case Unanimous:
		for i := range seq {
			seq[i] = 42
		}

	case Random:
		for i := range seq {
			seq[i] = rng.Intn(10)
		}
	}

	shuffle(rng, seq)
	return seq, nil
}

// shuffle is an in-place Fisher-Yates shuffle driven by the caller's RNG so
// the result stays deterministic per seed.
func shuffle(rng *rand.Rand, seq []int) {
	for i := len(seq) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
