package generator

import (
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, typ := range InputTypes() {
		t.Run(string(typ), func(t *testing.T) {
			a, err := Generate(1000, typ, DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			b, err := Generate(1000, typ, DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("same seed diverged at index %d: %d vs %d", i, a[i], b[i])
				}
			}
		})
	}
}

func TestGenerateShapes(t *testing.T) {
	const size = 1000

	tests := []struct {
		name  string
		typ   InputType
		check func(t *testing.T, seq []int)
	}{
		{
			"clear majority has >50% of one value",
			ClearMajority,
			func(t *testing.T, seq []int) {
				if c := count(seq, 1); c <= size/2 {
					t.Errorf("value 1 occurs %d times, want > %d", c, size/2)
				}
			},
		},
		{
			"slim majority has exactly n/2+1 of one value",
			SlimMajority,
			func(t *testing.T, seq []int) {
				if c := count(seq, 1); c != size/2+1 {
					t.Errorf("value 1 occurs %d times, want %d", c, size/2+1)
				}
			},
		},
		{
			"no majority has no value above n/2",
			NoMajority,
			func(t *testing.T, seq []int) {
				counts := map[int]int{}
				for _, v := range seq {
					counts[v]++
				}
				for v, c := range counts {
					if c > size/2 {
						t.Errorf("value %d occurs %d times, want <= %d", v, c, size/2)
					}
				}
			},
		},
		{
			"unanimous is all one value",
			Unanimous,
			func(t *testing.T, seq []int) {
				if c := count(seq, 42); c != size {
					t.Errorf("value 42 occurs %d times, want %d", c, size)
				}
			},
		},
		{
			"random stays in its domain",
			Random,
			func(t *testing.T, seq []int) {
				for i, v := range seq {
					if v < 0 || v >= 10 {
						t.Fatalf("seq[%d] = %d, want in [0,10)", i, v)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Generate(size, tt.typ, DefaultSeed)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(seq) != size {
				t.Fatalf("len = %d, want %d", len(seq), size)
			}
			tt.check(t, seq)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(0, ClearMajority, DefaultSeed); err == nil {
		t.Error("Generate(0, ...) succeeded, want error")
	}
	if _, err := Generate(-5, ClearMajority, DefaultSeed); err == nil {
		t.Error("Generate(-5, ...) succeeded, want error")
	}
	if _, err := Generate(100, InputType("bogus"), DefaultSeed); err == nil {
		t.Error("Generate with unknown type succeeded, want error")
	}
}

func TestParseInputType(t *testing.T) {
	tests := []struct {
		in      string
		want    InputType
		wantErr bool
	}{
		{"clear", ClearMajority, false},
		{"slim", SlimMajority, false},
		{"none", NoMajority, false},
		{"unanimous", Unanimous, false},
		{"random", Random, false},
		{"", "", true},
		{"majority", "", true},
	}

	for _, tt := range tests {
		got, err := ParseInputType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInputType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInputType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	for _, typ := range InputTypes() {
		if typ.Label() == "Unknown" {
			t.Errorf("type %q has no label", typ)
		}
	}
	if got := InputType("bogus").Label(); got != "Unknown" {
		t.Errorf("bogus label = %q, want Unknown", got)
	}
}

func count(seq []int, v int) int {
	n := 0
	for _, x := range seq {
		if x == v {
			n++
		}
	}
	return n
}
