// Package numeric holds small float helpers shared by the tally packages.
package numeric

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// DivBlock writes a[i] / b[i] into dst and returns it. dst is grown as
// needed and may alias a. Panics if a and b differ in length.
func DivBlock(dst, a, b []float64) []float64 {
	if len(a) != len(b) {
		panic("numeric: DivBlock length mismatch")
	}
	dst = EnsureLen(dst, len(a))
	for i := range a {
		dst[i] = a[i] / b[i]
	}
	return dst
}
