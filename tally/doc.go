// Package tally models energy-binned tally results.
//
// A [Table] is an ordered list of energy bins with the estimated mean and
// its standard deviation. Tables are produced by a transport code's
// post-processing step and are treated as read-only values: transforms in
// this module return new tables instead of editing their input.
//
// [ReadCSV] and [WriteCSV] use the column headers of the tally data-frame
// export: "energy low [eV]", "energy high [eV]", "mean", "std. dev.".
package tally
