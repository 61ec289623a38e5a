package salt

import (
	"errors"
	"math"
	"testing"
)

func TestDensityKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		licl  float64
		want  float64
	}{
		{name: "lower bound", tempC: 660, licl: DefaultLiClFraction, want: 1.5354676930669064},
		{name: "700C", tempC: 700, licl: DefaultLiClFraction, want: 1.5180770908993306},
		{name: "upper bound", tempC: 1000, licl: DefaultLiClFraction, want: 1.3840237912665103},
		{name: "equimolar", tempC: 800, licl: 0.5, want: 1.5285102246291375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Density(tt.tempC, tt.licl)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Density(%v, %v) = %v, want %v", tt.tempC, tt.licl, got, tt.want)
			}
		})
	}
}

func TestDensityFinitePositiveInRange(t *testing.T) {
	for temp := MinTemperature; temp <= MaxTemperature; temp += 10 {
		for frac := 0.05; frac < 1; frac += 0.05 {
			rho := Density(temp, frac)
			if math.IsNaN(rho) || math.IsInf(rho, 0) || rho <= 0 {
				t.Fatalf("Density(%v, %v) = %v, want finite positive", temp, frac, rho)
			}
		}
	}
}

func TestDensityDecreasesWithTemperature(t *testing.T) {
	prev := DensityAt(MinTemperature)
	for temp := MinTemperature + 5; temp <= MaxTemperature; temp += 5 {
		rho := DensityAt(temp)
		if rho >= prev {
			t.Fatalf("DensityAt(%v) = %v, not below %v", temp, rho, prev)
		}
		prev = rho
	}
}

func TestDensityDeterministic(t *testing.T) {
	a := Density(812.5, 0.61)
	b := Density(812.5, 0.61)
	if a != b {
		t.Fatalf("Density not deterministic: %v != %v", a, b)
	}
	if DensityAt(812.5) != Density(812.5, DefaultLiClFraction) {
		t.Fatal("DensityAt must use the default fraction")
	}
}

func TestDensityExtrapolatesSilently(t *testing.T) {
	rho := DensityAt(25)
	if math.Abs(rho-1.7963156186581752) > 1e-12 {
		t.Fatalf("DensityAt(25) = %v, want extrapolated 1.7963", rho)
	}
}

func TestCheckedDensity(t *testing.T) {
	tests := []struct {
		name    string
		tempC   float64
		licl    float64
		wantErr error
	}{
		{name: "valid", tempC: 700, licl: 0.695},
		{name: "min edge", tempC: 660, licl: 0.695},
		{name: "max edge", tempC: 1000, licl: 0.695},
		{name: "too cold", tempC: 659, licl: 0.695, wantErr: ErrTemperatureRange},
		{name: "too hot", tempC: 1001, licl: 0.695, wantErr: ErrTemperatureRange},
		{name: "nan temp", tempC: math.NaN(), licl: 0.695, wantErr: ErrTemperatureRange},
		{name: "zero fraction", tempC: 700, licl: 0, wantErr: ErrFractionRange},
		{name: "unit fraction", tempC: 700, licl: 1, wantErr: ErrFractionRange},
		{name: "nan fraction", tempC: 700, licl: math.NaN(), wantErr: ErrFractionRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckedDensity(tt.tempC, tt.licl)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := Density(tt.tempC, tt.licl); got != want {
				t.Fatalf("CheckedDensity = %v, want %v", got, want)
			}
		})
	}
}
