package eos80

import (
	"github.com/san-kum/seawater/internal/grid"
	"github.com/san-kum/seawater/internal/integrators"
)

// Ptmp returns the potential temperature a parcel at (S, T, P) would have
// if moved adiabatically to reference pressure PR.
//
// The adiabat is integrated in a single Gill step on the IPTS-68 scale,
// exactly as in Fofonoff & Millard (1983).
func Ptmp(s, t, p, pr *grid.Grid) (*grid.Grid, error) {
	return PtmpWith(integrators.NewGill(), 1, s, t, p, pr)
}

// PtmpWith is Ptmp with a caller-chosen integrator and number of equal
// pressure sub-steps.
func PtmpWith(integ integrators.Integrator, steps int, s, t, p, pr *grid.Grid) (*grid.Grid, error) {
	if err := grid.MatchShape("T", t, s); err != nil {
		return nil, err
	}
	pb, err := grid.BroadcastTo("P", p, s)
	if err != nil {
		return nil, err
	}
	prb, err := grid.BroadcastTo("PR", pr, s)
	if err != nil {
		return nil, err
	}

	return grid.Map4(s, t, pb, prb, func(s, t, p, pr float64) float64 {
		return ptmp(integ, steps, s, t, p, pr)
	}), nil
}

// Pden returns the potential density: in-situ density at PR of a parcel
// brought there adiabatically.
func Pden(s, t, p, pr *grid.Grid) (*grid.Grid, error) {
	theta, err := Ptmp(s, t, p, pr)
	if err != nil {
		return nil, err
	}
	return Dens(s, theta, pr)
}

func ptmp(integ integrators.Integrator, steps int, s, t, p, pr float64) float64 {
	gradient := func(t68, p float64) float64 {
		return adtg(s, t68/T68Factor, p)
	}
	theta := integrators.Integrate(integ, gradient, T68Factor*t, p, pr, steps)
	return theta / T68Factor
}
