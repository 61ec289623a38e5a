// Package geometry provides the volume and area formulas used to normalize
// cell and surface tallies.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-neutron/internal/numeric"
)

var (
	ErrNegativeRadius = errors.New("geometry: radius must be >= 0")
	ErrNegativeHeight = errors.New("geometry: height must be >= 0")
	ErrNonFinite      = errors.New("geometry: dimension must be finite")
)

// CylinderVolume returns π·r²·h. Inputs are not validated.
func CylinderVolume(radius, height float64) float64 {
	return CircleArea(radius) * height
}

// CircleArea returns π·r². Inputs are not validated.
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// Cylinder is a right circular cylinder.
type Cylinder struct {
	Radius float64 `toml:"radius"`
	Height float64 `toml:"height"`
}

// Validate reports whether c describes a physical cylinder.
func (c Cylinder) Validate() error {
	if err := validateRadius(c.Radius); err != nil {
		return err
	}
	if !numeric.IsFinite(c.Height) {
		return fmt.Errorf("%w: height %v", ErrNonFinite, c.Height)
	}
	if c.Height < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeHeight, c.Height)
	}
	return nil
}

// Volume returns the cylinder volume.
func (c Cylinder) Volume() float64 { return CylinderVolume(c.Radius, c.Height) }

// Circle is a disc, typically a surface-tally cross section.
type Circle struct {
	Radius float64 `toml:"radius"`
}

// Validate reports whether c describes a physical circle.
func (c Circle) Validate() error { return validateRadius(c.Radius) }

// Area returns the circle area.
func (c Circle) Area() float64 { return CircleArea(c.Radius) }

func validateRadius(r float64) error {
	if !numeric.IsFinite(r) {
		return fmt.Errorf("%w: radius %v", ErrNonFinite, r)
	}
	if r < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeRadius, r)
	}
	return nil
}
