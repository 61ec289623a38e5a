// Package salt provides property correlations for molten LiCl–LiF salt.
//
// The density fit is the bivariate polynomial of Janz, Tomkins and Allen,
// "Molten Salts: Volume 4, Part 4. Mixed Halide Melts", J. Phys. Chem. Ref.
// Data 8 (1979) 125–302, doi:10.1063/1.555590. It is valid between
// [MinTemperature] and [MaxTemperature] degrees Celsius.
//
// [Density] and [DensityAt] extrapolate silently outside that window.
// [CheckedDensity] enforces it.
package salt
