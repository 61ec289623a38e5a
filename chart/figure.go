package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Output backends register themselves with draw.NewFormattedCanvas.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/cwbudde/algo-neutron/tally"
)

var (
	ErrEmptyTable    = errors.New("chart: table has no bins")
	ErrNoPositive    = errors.New("chart: no positive values to show on a log axis")
	ErrUnknownFormat = errors.New("chart: unknown output format")
)

// Panel titles.
const (
	TitleLogX = "Log scale on x"
	TitleLinX = "Lin scale on x"
)

const energyLabel = "Energy (eV)"

// bandColor is the ±1σ fill: gray at 50% opacity.
var bandColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}

// floorFraction places clipped band edges one decade below the smallest
// positive value.
const floorFraction = 0.1

// Figure is a two-panel spectrum plot ready to be drawn.
type Figure struct {
	panels [2]*plot.Plot
	style  Style
}

// NewFigure builds the figure for t. The mean is plotted as a pre-step
// line against the lower bin edge with a mean ± std. dev. band. Values that
// are not positive are clipped to a floor below the smallest positive value.
func NewFigure(t tally.Table, opts ...Option) (*Figure, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	st := applyOptions(opts)

	floor, err := positiveFloor(t)
	if err != nil {
		return nil, err
	}

	mean, upper, lower := series(t, floor)
	xr := axisRange{min: t[0].EnergyLow, max: t[t.Len()-1].EnergyHigh}
	yr := yRange(upper, lower)

	f := &Figure{style: st}
	for i, logX := range [...]bool{true, false} {
		p, err := newPanel(mean, upper, lower, logX, st)
		if err != nil {
			return nil, err
		}
		p.X.Min, p.X.Max = xr.min, xr.max
		p.Y.Min, p.Y.Max = yr.min, yr.max
		f.panels[i] = p
	}

	f.panels[0].Title.Text = TitleLogX
	f.panels[1].Title.Text = TitleLinX
	f.panels[0].Y.Label.Text = st.YLabel

	return f, nil
}

// Panels returns the log-x and linear-x panels. Callers may adjust them
// before drawing.
func (f *Figure) Panels() (logX, linX *plot.Plot) {
	return f.panels[0], f.panels[1]
}

// Style returns the style the figure was built with.
func (f *Figure) Style() Style { return f.style }

// Draw lays out both panels side by side on c.
func (f *Figure) Draw(c draw.Canvas) {
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	row := [][]*plot.Plot{{f.panels[0], f.panels[1]}}
	canvases := plot.Align(row, tiles, c)
	for j, p := range row[0] {
		p.Draw(canvases[0][j])
	}
}

// Render renders the figure in the given format (png, svg, pdf, eps,
// jpg, tiff) and writes it to w.
func (f *Figure) Render(w io.Writer, format string) (int64, error) {
	c, err := draw.NewFormattedCanvas(f.style.Width, f.style.Height, strings.ToLower(format))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save writes the figure to path, choosing the format from the extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Render(out, format)
	return err
}

func newPanel(mean, upper, lower plotter.XYs, logX bool, st Style) (*plot.Plot, error) {
	p := plot.New()

	p.X.Label.Text = energyLabel
	if logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	band, err := plotter.NewPolygon(stepBand(upper, lower))
	if err != nil {
		return nil, fmt.Errorf("chart: band: %w", err)
	}
	band.Color = bandColor
	band.LineStyle.Width = 0

	line, err := plotter.NewLine(mean)
	if err != nil {
		return nil, fmt.Errorf("chart: mean line: %w", err)
	}
	line.StepStyle = plotter.PreStep
	line.LineStyle.Color = st.Color
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(band, line)

	if logX && st.Label != "" {
		p.Legend.Add(st.Label, line)
		p.Legend.Top = true
	}
	return p, nil
}

// series returns mean, mean+σ and mean-σ against the lower bin edge with
// non-positive values raised to floor.
func series(t tally.Table, floor float64) (mean, upper, lower plotter.XYs) {
	n := t.Len()
	mean = make(plotter.XYs, n)
	upper = make(plotter.XYs, n)
	lower = make(plotter.XYs, n)

	for i, b := range t {
		x := b.EnergyLow
		mean[i] = plotter.XY{X: x, Y: clip(b.Mean, floor)}
		upper[i] = plotter.XY{X: x, Y: clip(b.Mean+b.StdDev, floor)}
		lower[i] = plotter.XY{X: x, Y: clip(b.Mean-b.StdDev, floor)}
	}
	return mean, upper, lower
}

// stepBand traces upper forward and lower backward, both as pre-steps, so
// the closed polygon fills the area between the two step curves.
func stepBand(upper, lower plotter.XYs) plotter.XYs {
	n := len(upper)
	out := make(plotter.XYs, 0, 4*n)

	out = append(out, upper[0])
	for i := 1; i < n; i++ {
		out = append(out,
			plotter.XY{X: upper[i-1].X, Y: upper[i].Y},
			upper[i],
		)
	}

	out = append(out, lower[n-1])
	for i := n - 1; i > 0; i-- {
		out = append(out,
			plotter.XY{X: lower[i-1].X, Y: lower[i].Y},
			lower[i-1],
		)
	}
	return out
}

type axisRange struct{ min, max float64 }

// yRange spans the band. A degenerate range is widened by a factor of two
// each way; the axis would otherwise step to zero, which a log scale
// cannot show.
func yRange(upper, lower plotter.XYs) axisRange {
	r := axisRange{min: math.Inf(1), max: math.Inf(-1)}
	for i := range upper {
		r.min = math.Min(r.min, lower[i].Y)
		r.max = math.Max(r.max, upper[i].Y)
	}
	if r.min == r.max {
		r.min /= 2
		r.max *= 2
	}
	return r
}

func positiveFloor(t tally.Table) (float64, error) {
	smallest := math.Inf(1)
	for _, b := range t {
		for _, v := range [...]float64{b.Mean, b.Mean - b.StdDev, b.Mean + b.StdDev} {
			if v > 0 && v < smallest {
				smallest = v
			}
		}
	}
	if math.IsInf(smallest, 1) {
		return 0, ErrNoPositive
	}
	return smallest * floorFraction, nil
}

func clip(v, floor float64) float64 {
	if !(v > floor) {
		return floor
	}
	return v
}
