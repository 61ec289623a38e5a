package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Default figure size, matching a 10×5 inch landscape layout.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// DefaultColor is the first color of the tab10 cycle.
var DefaultColor color.Color = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Style holds the presentation settings of a figure.
type Style struct {
	YLabel string
	Label  string
	Color  color.Color
	Width  vg.Length
	Height vg.Length
}

// Option mutates a Style.
type Option func(*Style)

// DefaultStyle returns the style used when no options are given.
func DefaultStyle() Style {
	return Style{
		Color:  DefaultColor,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// WithYLabel sets the y-axis label of the left panel.
func WithYLabel(s string) Option {
	return func(st *Style) { st.YLabel = s }
}

// WithLabel sets the legend entry of the mean line.
func WithLabel(s string) Option {
	return func(st *Style) { st.Label = s }
}

// WithColor sets the color of the mean line. Nil is ignored.
func WithColor(c color.Color) Option {
	return func(st *Style) {
		if c != nil {
			st.Color = c
		}
	}
}

// WithSize sets the overall figure size. Non-positive values are ignored.
func WithSize(width, height vg.Length) Option {
	return func(st *Style) {
		if width > 0 {
			st.Width = width
		}
		if height > 0 {
			st.Height = height
		}
	}
}

func applyOptions(opts []Option) Style {
	st := DefaultStyle()
	for _, opt := range opts {
		if opt != nil {
			opt(&st)
		}
	}
	return st
}
