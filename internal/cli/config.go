package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-neutron/chart"
	"github.com/cwbudde/algo-neutron/geometry"
	"github.com/cwbudde/algo-neutron/tally/lethargy"
)

var (
	errAmbiguousNormalization = errors.New("normalize: set at most one of divisor, divisors, cylinder, circle")
	errUnknownKeys            = errors.New("config: unknown keys")
)

// Config is the optional TOML run configuration.
//
//	[plot]
//	width = 10      # inches
//	height = 5
//	ylabel = "Flux per unit lethargy"
//	label = "fuel"
//	color = "tab:blue"
//
//	[normalize]
//	cylinder = { radius = 1.2, height = 10 }
type Config struct {
	Plot      PlotConfig      `toml:"plot"`
	Normalize NormalizeConfig `toml:"normalize"`
}

// PlotConfig mirrors the chart options.
type PlotConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	YLabel string  `toml:"ylabel"`
	Label  string  `toml:"label"`
	Color  string  `toml:"color"`
}

// NormalizeConfig selects the normalization divisor of a rescale.
type NormalizeConfig struct {
	Divisor  *float64           `toml:"divisor"`
	Divisors []float64          `toml:"divisors"`
	Cylinder *geometry.Cylinder `toml:"cylinder"`
	Circle   *geometry.Circle   `toml:"circle"`
}

// LoadConfig decodes a TOML file. An empty path yields the zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", errUnknownKeys, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Options converts the normalization settings into rescale options.
func (n NormalizeConfig) Options() ([]lethargy.Option, error) {
	set := 0
	var opts []lethargy.Option

	if n.Divisor != nil {
		set++
		opts = append(opts, lethargy.WithDivisor(*n.Divisor))
	}
	if n.Divisors != nil {
		set++
		opts = append(opts, lethargy.WithDivisors(n.Divisors))
	}
	if n.Cylinder != nil {
		set++
		if err := n.Cylinder.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, lethargy.WithDivisor(n.Cylinder.Volume()))
	}
	if n.Circle != nil {
		set++
		if err := n.Circle.Validate(); err != nil {
			return nil, err
		}
		opts = append(opts, lethargy.WithDivisor(n.Circle.Area()))
	}

	if set > 1 {
		return nil, errAmbiguousNormalization
	}
	return opts, nil
}

// Source names the configured normalization, or "none".
func (n NormalizeConfig) Source() string {
	switch {
	case n.Divisor != nil:
		return "divisor"
	case n.Divisors != nil:
		return "divisors"
	case n.Cylinder != nil:
		return "cylinder"
	case n.Circle != nil:
		return "circle"
	}
	return "none"
}

// Options converts the plot settings into chart options.
func (p PlotConfig) Options() ([]chart.Option, error) {
	opts := []chart.Option{
		chart.WithYLabel(p.YLabel),
		chart.WithLabel(p.Label),
		chart.WithSize(vg.Length(p.Width)*vg.Inch, vg.Length(p.Height)*vg.Inch),
	}
	if p.Color != "" {
		c, err := chart.ParseColor(p.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, chart.WithColor(c))
	}
	return opts, nil
}
