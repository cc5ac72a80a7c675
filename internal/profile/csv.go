package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformed indicates a profile CSV that cannot be read back.
var ErrMalformed = errors.New("profile: malformed csv")

// WriteCSV writes a header row followed by one row per level, each value
// rounded to digits significant figures.
func (p *Profile) WriteCSV(w io.Writer, digits int) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(p.Columns); err != nil {
		return err
	}
	record := make([]string, len(p.Columns))
	for _, row := range p.Rows {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', digits, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (*Profile, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}

	p := &Profile{Columns: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %q", ErrMalformed, i+2, p.Columns[j], field)
			}
			row[j] = v
		}
		p.Rows = append(p.Rows, row)
	}
	return p, nil
}
