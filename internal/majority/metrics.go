package majority

import (
	"fmt"
	"runtime"
	"time"
)

// Metrics records the primitive operations of one algorithm invocation.
// A fresh value is returned per call; nothing is shared between invocations.
type Metrics struct {
	// InputSize is the length of the measured sequence.
	InputSize int

	// Comparisons counts element equality tests, including the final
	// count-versus-threshold comparison of the verification pass.
	Comparisons int64

	// Assignments counts candidate adoptions during the voting pass.
	Assignments int64

	// Accesses counts element reads from the input sequence.
	Accesses int64

	// Elapsed is the wall-clock duration of the measured scan, taken from
	// the runtime's monotonic clock.
	Elapsed time.Duration

	// MemoryDelta is the heap-allocation delta across the invocation.
	// It is a best-effort diagnostic: GC activity between the two readings
	// can make it noisy or negative, and it carries no correctness weight.
	MemoryDelta int64
}

// ElapsedMillis returns the elapsed time in milliseconds.
func (m Metrics) ElapsedMillis() float64 {
	return float64(m.Elapsed.Nanoseconds()) / 1e6
}

// String renders a one-line summary of the collected metrics.
func (m Metrics) String() string {
	return fmt.Sprintf("n=%d, time=%.3fms, cmp=%d, assign=%d, access=%d, mem=%dB",
		m.InputSize, m.ElapsedMillis(), m.Comparisons, m.Assignments, m.Accesses, m.MemoryDelta)
}

func heapAlloc() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc
}
