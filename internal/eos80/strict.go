package eos80

import (
	"math"

	"github.com/san-kum/seawater/internal/grid"
)

// Range is a closed interval of valid values.
type Range struct {
	Min, Max float64
}

// Validity ranges of the EOS-80 fit (UNESCO 1983, Fofonoff & Millard).
var (
	SalinityRange    = Range{Min: 0, Max: 42}
	TemperatureRange = Range{Min: -2, Max: 40}
	PressureRange    = Range{Min: 0, Max: 10000}
)

// CheckRange reports the first cell of S, T or P outside the EOS-80
// validity range, or NaN. Shapes are validated the same way as Dens.
// No entry point calls it; it exists for callers that opt in to strict input.
func CheckRange(s, t, p *grid.Grid) error {
	if err := grid.MatchShape("T", t, s); err != nil {
		return err
	}
	pb, err := grid.BroadcastTo("P", p, s)
	if err != nil {
		return err
	}

	checks := []struct {
		name string
		g    *grid.Grid
		r    Range
	}{
		{"S", s, SalinityRange},
		{"T", t, TemperatureRange},
		{"P", pb, PressureRange},
	}
	for _, c := range checks {
		for i := 0; i < c.g.Rows(); i++ {
			for j := 0; j < c.g.Cols(); j++ {
				v := c.g.At(i, j)
				if math.IsNaN(v) || v < c.r.Min || v > c.r.Max {
					return &RangeError{Arg: c.name, Row: i, Col: j, Value: v, Min: c.r.Min, Max: c.r.Max}
				}
			}
		}
	}
	return nil
}
