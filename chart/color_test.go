package chart

import (
	"image/color"
	"testing"
)

func rgb8(c color.Color) [3]uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [3]uint8{n.R, n.G, n.B}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want [3]uint8
	}{
		{in: "#1f77b4", want: [3]uint8{0x1f, 0x77, 0xb4}},
		{in: "#F80", want: [3]uint8{0xff, 0x88, 0x00}},
		{in: "tab:orange", want: [3]uint8{0xff, 0x7f, 0x0e}},
		{in: "C0", want: [3]uint8{0x1f, 0x77, 0xb4}},
		{in: "c3", want: [3]uint8{0xd6, 0x27, 0x28}},
		{in: " darkred ", want: [3]uint8{0x8b, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := rgb8(c); got != tt.want {
				t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "tab:magenta", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestDefaultColorIsC0(t *testing.T) {
	c, err := ParseColor("C0")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if rgb8(c) != rgb8(DefaultColor) {
		t.Fatalf("C0 = %v, default = %v", rgb8(c), rgb8(DefaultColor))
	}
}
