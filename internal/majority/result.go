package majority

import "fmt"

// Result is the outcome of a majority search. Found distinguishes "no
// majority exists" from a zero-valued element; callers must check it before
// reading Element or Count.
type Result[T comparable] struct {
	Element T
	Count   int
	Found   bool
}

// String renders the result in the benchmark report form.
func (r Result[T]) String() string {
	if !r.Found {
		return "none"
	}
	return fmt.Sprintf("Majority Element: %v (appears %d times)", r.Element, r.Count)
}

// PositionsResult extends Result with every index at which the majority
// element occurs, in ascending order. Invariant: len(Positions) == Count and
// seq[i] == Element for every i in Positions.
type PositionsResult[T comparable] struct {
	Element   T
	Count     int
	Positions []int
	Found     bool
}

// String renders the result in the benchmark report form.
func (r PositionsResult[T]) String() string {
	if !r.Found {
		return "none"
	}
	return fmt.Sprintf("Majority Element: %v (appears %d times)", r.Element, r.Count)
}
