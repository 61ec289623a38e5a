package tally

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header names of the tally data-frame export.
const (
	HeaderEnergyLow  = "energy low [eV]"
	HeaderEnergyHigh = "energy high [eV]"
	HeaderMean       = "mean"
	HeaderStdDev     = "std. dev."
)

var (
	ErrMissingColumn = errors.New("tally: missing required column")
	ErrEmptyInput    = errors.New("tally: no header row")
)

var requiredHeaders = [...]string{HeaderEnergyLow, HeaderEnergyHigh, HeaderMean, HeaderStdDev}

// ReadCSV parses a table from CSV with a header row. Extra columns, such as
// the filter and nuclide columns of a full export, are ignored. Rows keep
// their file order.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("tally: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		// Spreadsheet exports may start with a byte order mark.
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	var cols [len(requiredHeaders)]int
	for i, h := range requiredHeaders {
		c, ok := index[h]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, h)
		}
		cols[i] = c
	}

	var t Table
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tally: read line %d: %w", line, err)
		}

		var vals [len(requiredHeaders)]float64
		for i, c := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("tally: line %d column %q: %w", line, requiredHeaders[i], err)
			}
			vals[i] = v
		}
		t = append(t, Bin{EnergyLow: vals[0], EnergyHigh: vals[1], Mean: vals[2], StdDev: vals[3]})
	}
	return t, nil
}

// WriteCSV writes t with the standard header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(requiredHeaders[:]); err != nil {
		return err
	}

	rec := make([]string, len(requiredHeaders))
	for _, b := range t {
		rec[0] = formatFloat(b.EnergyLow)
		rec[1] = formatFloat(b.EnergyHigh)
		rec[2] = formatFloat(b.Mean)
		rec[3] = formatFloat(b.StdDev)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
