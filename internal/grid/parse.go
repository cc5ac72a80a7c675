package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a grid literal: columns are separated by commas and rows by
// semicolons, so "35" is a scalar, "0,100,200" a row and "1;2;3" a column.
func Parse(s string) (*Grid, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty literal", ErrParse)
	}

	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			f = strings.TrimSpace(f)
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d value %q", ErrParse, i, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	g, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return g, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
