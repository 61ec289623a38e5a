package testutil

import (
	"math"

	"github.com/cwbudde/algo-neutron/tally"
)

// EulerTable returns n contiguous bins starting at low whose bounds differ by
// a factor of e, so every bin has unit lethargy width. Means are 10·(i+1)
// and std. devs. (i+1).
func EulerTable(low float64, n int) tally.Table {
	t := make(tally.Table, n)
	for i := range t {
		high := low * math.E
		t[i] = tally.Bin{
			EnergyLow:  low,
			EnergyHigh: high,
			Mean:       10 * float64(i+1),
			StdDev:     float64(i + 1),
		}
		low = high
	}
	return t
}

// LogGrid returns a table with n equal-lethargy bins between lo and hi and a
// 1/E-like mean with 5% relative uncertainty.
func LogGrid(lo, hi float64, n int) tally.Table {
	t := make(tally.Table, n)
	step := math.Log(hi/lo) / float64(n)
	for i := range t {
		el := lo * math.Exp(step*float64(i))
		eh := lo * math.Exp(step*float64(i+1))
		mean := 1e3 / math.Sqrt(el*eh)
		t[i] = tally.Bin{EnergyLow: el, EnergyHigh: eh, Mean: mean, StdDev: 0.05 * mean}
	}
	return t
}
