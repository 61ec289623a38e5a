// Package lethargy rescales energy-binned tallies to per-unit-lethargy values.
//
// The lethargy width of a bin is u = ln(E_high/E_low). Dividing a
// bin-integrated mean and its standard deviation by u gives a spectrum
// whose area on a logarithmic energy axis is proportional to the tallied
// quantity, the usual presentation for reactor-physics spectra.
//
// Cell and surface tallies are often normalized by the filter dimension
// (cell volume, surface area) first; see [WithDivisor] and [WithDivisors].
package lethargy
