package engine

import (
	"math"
	"strconv"
)

// Clamp01 clamps a probability into [0,1]
func Clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Round6 rounds to 6 decimal places, half away from zero. Idempotent:
// Round6(Round6(x)) == Round6(x).
func Round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}

// Surface prepares a probability for output: clamp first, then round,
// so floating-point accumulation never leaks out of [0,1] or past six
// stable digits.
func Surface(x float64) float64 {
	return Round6(Clamp01(x))
}

// FormatProb renders a surfaced probability without trailing zeros
func FormatProb(x float64) string {
	return strconv.FormatFloat(Surface(x), 'f', -1, 64)
}
