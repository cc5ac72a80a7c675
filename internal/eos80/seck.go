package eos80

import (
	"math"

	"github.com/san-kum/seawater/internal/grid"
)

// Seck returns the secant bulk modulus K(S,T,P) in bar.
func Seck(s, t, p *grid.Grid) (*grid.Grid, error) {
	if err := grid.MatchShape("T", t, s); err != nil {
		return nil, err
	}
	pb, err := grid.BroadcastTo("P", p, s)
	if err != nil {
		return nil, err
	}
	return grid.Map3(s, t, pb, seck), nil
}

func seck(s, t, p float64) float64 {
	p /= 10 // decibar to bar
	t68 := T68Factor * t

	aw := horner(seckH[:], t68)
	bw := horner(seckK[:], t68)
	kw := horner(seckE[:], t68)

	sr := math.Sqrt(s)
	a := aw + (horner(seckI[:], t68)+seckJ0*sr)*s
	b := bw + horner(seckM[:], t68)*s
	k0 := kw + (horner(seckF[:], t68)+horner(seckG[:], t68)*sr)*s

	return k0 + (a+b*p)*p
}
