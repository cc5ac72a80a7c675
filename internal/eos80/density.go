package eos80

import (
	"math"

	"github.com/san-kum/seawater/internal/grid"
)

// Smow returns the density of Standard Mean Ocean Water (S = 0, P = 0) at
// temperature t.
func Smow(t *grid.Grid) *grid.Grid {
	return grid.Map(t, smow)
}

// Dens0 returns the density of seawater at zero pressure.
func Dens0(s, t *grid.Grid) (*grid.Grid, error) {
	if err := grid.MatchShape("T", t, s); err != nil {
		return nil, err
	}
	return grid.Map2(s, t, dens0), nil
}

// Dens returns in-situ density ρ = ρ0 / (1 - P/K) with P in bar.
func Dens(s, t, p *grid.Grid) (*grid.Grid, error) {
	if err := grid.MatchShape("T", t, s); err != nil {
		return nil, err
	}
	pb, err := grid.BroadcastTo("P", p, s)
	if err != nil {
		return nil, err
	}

	rho0, err := Dens0(s, t)
	if err != nil {
		return nil, err
	}
	k, err := Seck(s, t, p)
	if err != nil {
		return nil, err
	}

	return grid.Map3(rho0, k, pb, func(rho0, k, p float64) float64 {
		return rho0 / (1 - (p/10)/k)
	}), nil
}

func smow(t float64) float64 {
	return horner(smowA[:], T68Factor*t)
}

func dens0(s, t float64) float64 {
	t68 := T68Factor * t
	return smow(t) +
		horner(dens0B[:], t68)*s +
		horner(dens0C[:], t68)*s*math.Sqrt(s) +
		dens0D0*s*s
}

