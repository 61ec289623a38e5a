package lethargy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-neutron/internal/numeric"
	"github.com/cwbudde/algo-neutron/tally"
)

var (
	// ErrDomain marks inputs outside the mathematical domain of the
	// transform: zero-width or inverted bins, non-positive divisors.
	ErrDomain = errors.New("lethargy: value outside domain")
	// ErrShape marks a per-bin divisor whose length differs from the table.
	ErrShape = errors.New("lethargy: divisor length does not match table")
)

// Widths returns the lethargy width ln(high/low) of every bin.
func Widths(t tally.Table) ([]float64, error) {
	out := make([]float64, len(t))
	for i, b := range t {
		if err := tally.ValidateBin(b); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrDomain, i, err)
		}
		// The ratio overflows for bins spanning the whole float range.
		u := math.Log(b.EnergyHigh / b.EnergyLow)
		if !(u > 0) || !numeric.IsFinite(u) {
			return nil, fmt.Errorf("%w: row %d: lethargy width %g", ErrDomain, i, u)
		}
		out[i] = u
	}
	return out, nil
}

// Rescale returns a copy of t with mean and std. dev. divided by the
// optional normalization divisor and then by each bin's lethargy width.
// Bin bounds and row order are preserved; t is not modified.
func Rescale(t tally.Table, opts ...Option) (tally.Table, error) {
	widths, err := Widths(t)
	if err != nil {
		return nil, err
	}
	div, err := divisors(len(t), applyOptions(opts))
	if err != nil {
		return nil, err
	}

	means, stds := t.Means(), t.StdDevs()
	for _, col := range [...][]float64{means, stds} {
		if div != nil {
			numeric.DivBlock(col, col, div)
		}
		numeric.DivBlock(col, col, widths)
	}
	return withColumns(t, means, stds), nil
}

// Restore undoes [Rescale] given the same widths and options: it
// multiplies by the lethargy width and then by the divisor.
func Restore(t tally.Table, widths []float64, opts ...Option) (tally.Table, error) {
	if len(widths) != len(t) {
		return nil, fmt.Errorf("%w: %d widths for %d bins", ErrShape, len(widths), len(t))
	}
	div, err := divisors(len(t), applyOptions(opts))
	if err != nil {
		return nil, err
	}

	means, stds := t.Means(), t.StdDevs()
	for _, col := range [...][]float64{means, stds} {
		vecmath.MulBlockInPlace(col, widths)
		if div != nil {
			vecmath.MulBlockInPlace(col, div)
		}
	}
	return withColumns(t, means, stds), nil
}

// divisors resolves the normalization options to one divisor per bin, or
// nil when no normalization was requested.
func divisors(n int, cfg config) ([]float64, error) {
	if !cfg.normalized() {
		return nil, nil
	}

	if cfg.hasScalar {
		if err := checkDivisor(-1, cfg.scalar); err != nil {
			return nil, err
		}
		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		out := make([]float64, n)
		vecmath.ScaleBlock(out, ones, cfg.scalar)
		return out, nil
	}

	if len(cfg.perBin) != n {
		return nil, fmt.Errorf("%w: %d divisors for %d bins", ErrShape, len(cfg.perBin), n)
	}
	for i, d := range cfg.perBin {
		if err := checkDivisor(i, d); err != nil {
			return nil, err
		}
	}
	return cfg.perBin, nil
}

func checkDivisor(row int, d float64) error {
	if d > 0 && numeric.IsFinite(d) {
		return nil
	}
	if row < 0 {
		return fmt.Errorf("%w: divisor %g must be positive and finite", ErrDomain, d)
	}
	return fmt.Errorf("%w: row %d: divisor %g must be positive and finite", ErrDomain, row, d)
}

// withColumns returns a copy of t with the given mean and std. dev. columns.
func withColumns(t tally.Table, means, stds []float64) tally.Table {
	out := t.Clone()
	for i := range out {
		out[i].Mean = means[i]
		out[i].StdDev = stds[i]
	}
	return out
}
