package cli

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-neutron/geometry"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "run.toml", `
[plot]
width = 8
height = 4
ylabel = "Flux"
label = "cell 7"
color = "#2ca02c"

[normalize]
circle = { radius = 0.5 }
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Plot.Width != 8 || cfg.Plot.Label != "cell 7" || cfg.Plot.Color != "#2ca02c" {
		t.Fatalf("plot = %+v", cfg.Plot)
	}
	if cfg.Normalize.Circle == nil || cfg.Normalize.Circle.Radius != 0.5 {
		t.Fatalf("normalize = %+v", cfg.Normalize)
	}

	opts, err := cfg.Normalize.Options()
	if err != nil || len(opts) != 1 {
		t.Fatalf("Options() = %d, %v", len(opts), err)
	}
	if _, err := cfg.Plot.Options(); err != nil {
		t.Fatalf("Plot.Options: %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	opts, err := cfg.Normalize.Options()
	if err != nil || len(opts) != 0 {
		t.Fatalf("Options() = %d, %v", len(opts), err)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeFile(t, "typo.toml", "[plot]\ncolour = \"red\"\n")
	if _, err := LoadConfig(path); !errors.Is(err, errUnknownKeys) {
		t.Fatalf("err = %v, want %v", err, errUnknownKeys)
	}
}

func TestNormalizeOptionsErrors(t *testing.T) {
	one := 1.0
	tests := []struct {
		name    string
		n       NormalizeConfig
		wantErr error
	}{
		{
			name:    "ambiguous",
			n:       NormalizeConfig{Divisor: &one, Circle: &geometry.Circle{Radius: 1}},
			wantErr: errAmbiguousNormalization,
		},
		{
			name:    "negative radius",
			n:       NormalizeConfig{Cylinder: &geometry.Cylinder{Radius: -1, Height: 1}},
			wantErr: geometry.ErrNegativeRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.n.Options(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeSource(t *testing.T) {
	one := 1.0
	tests := []struct {
		n    NormalizeConfig
		want string
	}{
		{n: NormalizeConfig{}, want: "none"},
		{n: NormalizeConfig{Divisor: &one}, want: "divisor"},
		{n: NormalizeConfig{Divisors: []float64{}}, want: "divisors"},
		{n: NormalizeConfig{Cylinder: &geometry.Cylinder{Radius: 1, Height: 1}}, want: "cylinder"},
		{n: NormalizeConfig{Circle: &geometry.Circle{Radius: 1}}, want: "circle"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.n.Source(); got != tt.want {
				t.Fatalf("Source() = %q, want %q", got, tt.want)
			}
		})
	}
}
