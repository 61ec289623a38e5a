package salt

import (
	"errors"
	"fmt"
	"math"
)

// DefaultLiClFraction is the LiCl molar fraction of the eutectic mixture.
const DefaultLiClFraction = 0.695

// Validity window of the density correlation in degrees Celsius.
const (
	MinTemperature = 660.0
	MaxTemperature = 1000.0
)

const celsiusToKelvin = 273.15

// Fit coefficients, rho in g/cm³ with T in K and C in mol%.
const (
	coefA = 2.25621
	coefB = -8.20475e-3
	coefC = -4.09235e-4
	coefD = 6.37250e-5
	coefE = -2.52846e-7
	coefF = 8.73570e-9
	coefG = -5.11184e-10
)

var (
	ErrTemperatureRange = errors.New("salt: temperature outside correlation range")
	ErrFractionRange    = errors.New("salt: LiCl molar fraction must be in (0,1)")
)

// Density returns the mass density of molten LiCl–LiF in g/cm³ at tempC
// degrees Celsius for a LiCl molar fraction licl.
//
// No range check is performed.
func Density(tempC, licl float64) float64 {
	t := tempC + celsiusToKelvin
	c := licl * 100

	return coefA +
		coefB*c +
		coefC*t +
		coefD*c*c +
		coefE*c*c*c +
		coefF*t*c*c +
		coefG*c*t*t
}

// DensityAt returns [Density] at the eutectic composition.
func DensityAt(tempC float64) float64 {
	return Density(tempC, DefaultLiClFraction)
}

// InRange reports whether tempC lies inside the correlation's validity window.
func InRange(tempC float64) bool {
	return tempC >= MinTemperature && tempC <= MaxTemperature
}

// CheckedDensity is [Density] with the validity window enforced.
func CheckedDensity(tempC, licl float64) (float64, error) {
	if !InRange(tempC) {
		return 0, fmt.Errorf("%w: %g °C not in [%g, %g]", ErrTemperatureRange, tempC, MinTemperature, MaxTemperature)
	}
	if math.IsNaN(licl) || licl <= 0 || licl >= 1 {
		return 0, fmt.Errorf("%w: %g", ErrFractionRange, licl)
	}
	return Density(tempC, licl), nil
}
