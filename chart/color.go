package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// tab10 is the default categorical palette of most plotting tools.
var tab10 = map[string]string{
	"blue":   "#1f77b4",
	"orange": "#ff7f0e",
	"green":  "#2ca02c",
	"red":    "#d62728",
	"purple": "#9467bd",
	"brown":  "#8c564b",
	"pink":   "#e377c2",
	"gray":   "#7f7f7f",
	"olive":  "#bcbd22",
	"cyan":   "#17becf",
}

var cycle = [...]string{"blue", "orange", "green", "red", "purple", "brown", "pink", "gray", "olive", "cyan"}

// ParseColor parses a color given as hex ("#1f77b4", "#f80"), a tab10 name
// ("tab:orange"), a cycle index ("C3") or an SVG color name ("darkred").
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return nil, fmt.Errorf("chart: empty color")
	}

	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, fmt.Errorf("chart: color %q: %w", s, err)
		}
		return c, nil
	}

	if rest, ok := strings.CutPrefix(name, "tab:"); ok {
		if hex, ok := tab10[rest]; ok {
			return ParseColor(hex)
		}
	}

	if len(name) == 2 && name[0] == 'c' && name[1] >= '0' && name[1] <= '9' {
		return ParseColor(tab10[cycle[name[1]-'0']])
	}

	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("chart: unknown color %q", s)
}
