package majority

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		seq     []int
		want    int
		wantHit bool
	}{
		{"single element", []int{42}, 42, true},
		{"two identical", []int{5, 5}, 5, true},
		{"two different", []int{1, 2}, 0, false},
		{"clear majority", []int{3, 3, 4, 2, 4, 4, 2, 4, 4}, 4, true},
		{"majority at beginning", []int{7, 7, 7, 7, 3, 2, 1}, 7, true},
		{"majority at end", []int{1, 2, 3, 5, 5, 5, 5}, 5, true},
		{"no majority", []int{1, 2, 3, 4, 5}, 0, false},
		{"all identical", []int{9, 9, 9, 9, 9}, 9, true},
		{"exactly half is not majority", []int{1, 1, 2, 2}, 0, false},
		{"just over half", []int{1, 1, 1, 2, 2}, 1, true},
		{"negative numbers", []int{-1, -1, -1, 2, 3}, -1, true},
		{"mixed signs", []int{-5, -5, -5, 10, 10}, -5, true},
		{"zero as majority", []int{0, 0, 0, 1, 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := Find(tt.seq)
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if res.Found != tt.wantHit {
				t.Fatalf("Find() found = %v, want %v", res.Found, tt.wantHit)
			}
			if tt.wantHit && res.Element != tt.want {
				t.Errorf("Find() element = %d, want %d", res.Element, tt.want)
			}
		})
	}
}

func TestFindStringElements(t *testing.T) {
	res, _, err := Find([]string{"ok", "ok", "fail", "ok"})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if !res.Found || res.Element != "ok" {
		t.Errorf("Find() = %+v, want ok found", res)
	}
}

func TestFindInvalidInput(t *testing.T) {
	for _, tt := range []struct {
		name string
		seq  []int
	}{
		{"nil sequence", nil},
		{"empty sequence", []int{}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, m, err := Find(tt.seq)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Find() error = %v, want ErrInvalidInput", err)
			}
			if res.Found {
				t.Error("Find() reported a result for invalid input")
			}
			if m != (Metrics{}) {
				t.Errorf("Find() recorded metrics for invalid input: %+v", m)
			}

			if _, m, err := FindOptimized(tt.seq); !errors.Is(err, ErrInvalidInput) || m != (Metrics{}) {
				t.Errorf("FindOptimized() = (%v, %+v), want ErrInvalidInput with empty metrics", err, m)
			}
			if _, m, err := FindWithPositions(tt.seq); !errors.Is(err, ErrInvalidInput) || m != (Metrics{}) {
				t.Errorf("FindWithPositions() = (%v, %+v), want ErrInvalidInput with empty metrics", err, m)
			}
		})
	}
}

func TestFindWithPositions(t *testing.T) {
	seq := []int{3, 3, 4, 2, 4, 4, 2, 4, 4}
	res, _, err := FindWithPositions(seq)
	if err != nil {
		t.Fatalf("FindWithPositions() error = %v", err)
	}
	if !res.Found {
		t.Fatal("FindWithPositions() found no majority")
	}
	if res.Element != 4 || res.Count != 5 {
		t.Errorf("FindWithPositions() = element %d count %d, want element 4 count 5", res.Element, res.Count)
	}

	want := []int{2, 4, 5, 7, 8}
	if len(res.Positions) != len(want) {
		t.Fatalf("positions = %v, want %v", res.Positions, want)
	}
	for i := range want {
		if res.Positions[i] != want[i] {
			t.Fatalf("positions = %v, want %v", res.Positions, want)
		}
	}
}

func TestFindWithPositionsNoMajority(t *testing.T) {
	res, _, err := FindWithPositions([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FindWithPositions() error = %v", err)
	}
	if res.Found {
		t.Errorf("FindWithPositions() = %+v, want no majority", res)
	}
	if res.Positions != nil {
		t.Errorf("positions collected for absent majority: %v", res.Positions)
	}
}

// Positions must be strictly increasing, one per occurrence, and each index
// must map back to the majority element.
func TestFindWithPositionsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 10 + rng.Intn(90)
		element := rng.Intn(100)
		seq := buildMajoritySequence(rng, n, element)

		res, _, err := FindWithPositions(seq)
		if err != nil {
			t.Fatalf("trial %d: error = %v", trial, err)
		}
		if !res.Found || res.Element != element {
			t.Fatalf("trial %d: got %+v, want element %d", trial, res, element)
		}
		if len(res.Positions) != res.Count {
			t.Fatalf("trial %d: %d positions for count %d", trial, len(res.Positions), res.Count)
		}
		prev := -1
		for _, i := range res.Positions {
			if i <= prev {
				t.Fatalf("trial %d: positions not strictly increasing: %v", trial, res.Positions)
			}
			if seq[i] != element {
				t.Fatalf("trial %d: seq[%d] = %d, want %d", trial, i, seq[i], element)
			}
			prev = i
		}
	}
}

// A true majority element must always be found, regardless of arrangement.
func TestPropertyMajorityAlwaysFound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		n := 10 + rng.Intn(90)
		element := rng.Intn(100)
		seq := buildMajoritySequence(rng, n, element)

		res, _, err := Find(seq)
		if err != nil {
			t.Fatalf("trial %d: error = %v", trial, err)
		}
		if !res.Found || res.Element != element {
			t.Fatalf("trial %d: Find() = %+v, want element %d", trial, res, element)
		}
	}
}

// When no element exceeds n/2 occurrences the result must report absence.
func TestPropertyNoMajorityNotFound(t *testing.T) {
	rng := rand.New(rand.NewSource(123))

	for trial := 0; trial < 100; trial++ {
		n := 12 + rng.Intn(40)
		distinct := 3 + rng.Intn(3)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i % distinct
		}
		shuffle(rng, seq)

		// Confirm the construction: ceil(n/distinct) <= n/2 for distinct >= 3
		// and n >= 12, so no value can be a majority.
		counts := map[int]int{}
		for _, v := range seq {
			counts[v]++
		}
		for v, c := range counts {
			if c > n/2 {
				t.Fatalf("trial %d: test construction broken, %d occurs %d/%d times", trial, v, c, n)
			}
		}

		res, _, err := Find(seq)
		if err != nil {
			t.Fatalf("trial %d: error = %v", trial, err)
		}
		if res.Found {
			t.Fatalf("trial %d: Find() = %+v, want no majority", trial, res)
		}
	}
}

// FindOptimized must agree with Find on every input while never issuing
// more comparisons.
func TestDifferentialOptimized(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(120)
		seq := make([]int, n)
		for i := range seq {
			// Small value domain so majorities occur often.
			seq[i] = rng.Intn(4)
		}

		base, baseMetrics, err := Find(seq)
		if err != nil {
			t.Fatalf("trial %d: Find() error = %v", trial, err)
		}
		opt, optMetrics, err := FindOptimized(seq)
		if err != nil {
			t.Fatalf("trial %d: FindOptimized() error = %v", trial, err)
		}

		if base.Found != opt.Found {
			t.Fatalf("trial %d: found mismatch on %v: standard %v, optimized %v",
				trial, seq, base.Found, opt.Found)
		}
		if base.Found && base.Element != opt.Element {
			t.Fatalf("trial %d: element mismatch on %v: standard %d, optimized %d",
				trial, seq, base.Element, opt.Element)
		}
		if optMetrics.Comparisons > baseMetrics.Comparisons {
			t.Fatalf("trial %d: optimized issued more comparisons (%d > %d)",
				trial, optMetrics.Comparisons, baseMetrics.Comparisons)
		}
	}
}

// Front-loaded majority: 501 copies of 99 followed by distinct fillers must
// terminate early, well under the ~2n comparisons of the two-pass algorithm.
func TestOptimizedEarlyTermination(t *testing.T) {
	seq := make([]int, 1000)
	for i := 0; i < 501; i++ {
		seq[i] = 99
	}
	for i := 501; i < 1000; i++ {
		seq[i] = i
	}

	res, m, err := FindOptimized(seq)
	if err != nil {
		t.Fatalf("FindOptimized() error = %v", err)
	}
	if !res.Found || res.Element != 99 {
		t.Fatalf("FindOptimized() = %+v, want element 99", res)
	}
	if m.Comparisons >= 2000 {
		t.Errorf("comparisons = %d, want early termination below 2000", m.Comparisons)
	}
}

func TestOptimizedUnanimous(t *testing.T) {
	seq := make([]int, 1000)
	for i := range seq {
		seq[i] = 42
	}

	res, m, err := FindOptimized(seq)
	if err != nil {
		t.Fatalf("FindOptimized() error = %v", err)
	}
	if !res.Found || res.Element != 42 {
		t.Fatalf("FindOptimized() = %+v, want element 42", res)
	}
	if m.Comparisons >= 1000 {
		t.Errorf("comparisons = %d, want termination within the first pass", m.Comparisons)
	}
}

func TestResultString(t *testing.T) {
	res, _, err := Find([]int{4, 4, 4, 2})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got, want := res.String(), "Majority Element: 4 (appears 3 times)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	none, _, _ := Find([]int{1, 2})
	if got := none.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}
}

// buildMajoritySequence places element in strictly more than half of the n
// slots, fills the rest randomly, and shuffles.
func buildMajoritySequence(rng *rand.Rand, n, element int) []int {
	seq := make([]int, n)
	majorityCount := n/2 + 1 + rng.Intn(n/2)
	if majorityCount > n {
		majorityCount = n
	}
	for i := 0; i < majorityCount; i++ {
		seq[i] = element
	}
	for i := majorityCount; i < n; i++ {
		seq[i] = rng.Intn(100)
	}
	shuffle(rng, seq)
	return seq
}

func shuffle(rng *rand.Rand, seq []int) {
	for i := len(seq) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
