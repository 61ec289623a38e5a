// Package chart builds spectrum figures from tally tables.
//
// [NewFigure] returns a two-panel figure value: the left panel has a
// logarithmic energy axis, the right panel a linear one, and both use a
// logarithmic y axis. Each panel shows the mean as a step line and a gray
// ±1σ band. Building a figure does not render anything; callers decide
// whether to draw it onto a canvas, write it to a stream or save it.
package chart
