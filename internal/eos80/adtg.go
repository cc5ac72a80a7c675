package eos80

import "github.com/san-kum/seawater/internal/grid"

// Adtg returns the adiabatic temperature gradient ∂T/∂P in °C/dbar.
func Adtg(s, t, p *grid.Grid) (*grid.Grid, error) {
	if err := grid.MatchShape("T", t, s); err != nil {
		return nil, err
	}
	pb, err := grid.BroadcastTo("P", p, s)
	if err != nil {
		return nil, err
	}
	return grid.Map3(s, t, pb, adtg), nil
}

func adtg(s, t, p float64) float64 {
	t68 := T68Factor * t
	ds := s - 35

	return horner(adtgA[:], t68) + horner(adtgB[:], t68)*ds +
		(horner(adtgC[:], t68)+horner(adtgD[:], t68)*ds)*p +
		horner(adtgE[:], t68)*p*p
}
