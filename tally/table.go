package tally

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-neutron/internal/numeric"
)

// Column names accepted by [Table.Column].
const (
	ColumnEnergyLow  = "energy_low"
	ColumnEnergyHigh = "energy_high"
	ColumnMean       = "mean"
	ColumnStdDev     = "std_dev"
)

var (
	ErrInvalidBin     = errors.New("tally: energy bin must satisfy 0 < low < high")
	ErrUnordered      = errors.New("tally: energy bins must increase without overlap")
	ErrNegativeStdDev = errors.New("tally: standard deviation must be >= 0")
	ErrColumnLength   = errors.New("tally: columns must have equal length")
	ErrUnknownColumn  = errors.New("tally: unknown column")
)

// Bin is one energy bin of a tally. Energies are in eV.
type Bin struct {
	EnergyLow  float64
	EnergyHigh float64
	Mean       float64
	StdDev     float64
}

// Table is an energy-ordered sequence of bins.
type Table []Bin

// Len returns the number of bins.
func (t Table) Len() int { return len(t) }

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Column returns a fresh slice holding the named column.
func (t Table) Column(name string) ([]float64, error) {
	var get func(Bin) float64
	switch name {
	case ColumnEnergyLow:
		get = func(b Bin) float64 { return b.EnergyLow }
	case ColumnEnergyHigh:
		get = func(b Bin) float64 { return b.EnergyHigh }
	case ColumnMean:
		get = func(b Bin) float64 { return b.Mean }
	case ColumnStdDev:
		get = func(b Bin) float64 { return b.StdDev }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	out := make([]float64, len(t))
	for i, b := range t {
		out[i] = get(b)
	}
	return out, nil
}

// Means returns the mean column.
func (t Table) Means() []float64 {
	out := make([]float64, len(t))
	for i, b := range t {
		out[i] = b.Mean
	}
	return out
}

// StdDevs returns the standard deviation column.
func (t Table) StdDevs() []float64 {
	out := make([]float64, len(t))
	for i, b := range t {
		out[i] = b.StdDev
	}
	return out
}

// FromColumns assembles a table from column slices of equal length.
func FromColumns(low, high, mean, stdDev []float64) (Table, error) {
	n := len(low)
	if len(high) != n || len(mean) != n || len(stdDev) != n {
		return nil, fmt.Errorf("%w: low=%d high=%d mean=%d std=%d",
			ErrColumnLength, len(low), len(high), len(mean), len(stdDev))
	}

	t := make(Table, n)
	for i := range t {
		t[i] = Bin{EnergyLow: low[i], EnergyHigh: high[i], Mean: mean[i], StdDev: stdDev[i]}
	}
	return t, nil
}

// ValidateBin checks the energy bounds of a single bin.
func ValidateBin(b Bin) error {
	if !numeric.IsFinite(b.EnergyLow) || !numeric.IsFinite(b.EnergyHigh) ||
		b.EnergyLow <= 0 || b.EnergyHigh <= b.EnergyLow {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBin, b.EnergyLow, b.EnergyHigh)
	}
	return nil
}

// Validate checks bin bounds, ordering and uncertainties.
func (t Table) Validate() error {
	for i, b := range t {
		if err := ValidateBin(b); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if b.StdDev < 0 {
			return fmt.Errorf("row %d: %w: %g", i, ErrNegativeStdDev, b.StdDev)
		}
		if i > 0 && b.EnergyLow < t[i-1].EnergyHigh {
			return fmt.Errorf("row %d: %w: low %g < previous high %g",
				i, ErrUnordered, b.EnergyLow, t[i-1].EnergyHigh)
		}
	}
	return nil
}
