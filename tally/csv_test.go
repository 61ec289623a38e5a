package tally_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-neutron/internal/testutil"
	"github.com/cwbudde/algo-neutron/tally"
)

func TestReadCSVDataFrameExport(t *testing.T) {
	in := `,cell,energy low [eV],energy high [eV],nuclide,score,mean,std. dev.
0,1,1.0e-5,1.0,total,flux,12.5,0.25
1,1,1.0,1.0e3,total,flux,40,1.5
2,1,1.0e3,2.0e7,total,flux,7.25,0.125
`
	got, err := tally.ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	want := tally.Table{
		{EnergyLow: 1e-5, EnergyHigh: 1, Mean: 12.5, StdDev: 0.25},
		{EnergyLow: 1, EnergyHigh: 1e3, Mean: 40, StdDev: 1.5},
		{EnergyLow: 1e3, EnergyHigh: 2e7, Mean: 7.25, StdDev: 0.125},
	}
	testutil.RequireTableEqual(t, got, want)
}

func TestReadCSVColumnOrderFree(t *testing.T) {
	in := "std. dev.,mean,energy high [eV],energy low [eV]\n0.1,2,20,10\n"
	got, err := tally.ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	testutil.RequireTableEqual(t, got, tally.Table{{EnergyLow: 10, EnergyHigh: 20, Mean: 2, StdDev: 0.1}})
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "empty", in: "", wantErr: tally.ErrEmptyInput},
		{name: "missing column", in: "energy low [eV],energy high [eV],mean\n1,2,3\n", wantErr: tally.ErrMissingColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tally.ReadCSV(strings.NewReader(tt.in))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	_, err := tally.ReadCSV(strings.NewReader("energy low [eV],energy high [eV],mean,std. dev.\n1,2,x,0\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v, want parse error naming line 2", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	tab := testutil.LogGrid(1e-5, 2e7, 50)

	var buf bytes.Buffer
	if err := tally.WriteCSV(&buf, tab); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "energy low [eV],energy high [eV],mean,std. dev.\n") {
		t.Fatalf("unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}

	got, err := tally.ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	testutil.RequireTableEqual(t, got, tab)
}
