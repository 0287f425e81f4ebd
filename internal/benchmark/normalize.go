package benchmark

import "math"

const nanosPerMilli = 1_000_000

// ToNanoseconds converts a timing in milliseconds to whole nanoseconds,
// rounding to the nearest nanosecond.
func ToNanoseconds(ms float64) (int64, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, malformed("timing %v is not finite", ms)
	}
	if ms < 0 {
		return 0, malformed("timing %v is negative", ms)
	}

	ns := math.Round(ms * nanosPerMilli)
	if ns >= math.MaxInt64 {
		return 0, malformed("timing %v ms overflows nanosecond range", ms)
	}
	return int64(ns), nil
}
