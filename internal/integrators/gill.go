package integrators

import "math"

// Gill is the fourth-order Runge-Kutta scheme with Gill's (1 ∓ 1/√2)
// weights, as used by Fofonoff & Millard (1983) for potential temperature.
// The stage sequence is fixed; rearranging it changes the last digits.
type Gill struct{}

func NewGill() *Gill {
	return &Gill{}
}

func (g *Gill) Name() string { return "gill" }

func (g *Gill) Step(f Derivative, x, p, dp float64) float64 {
	dx := dp * f(x, p)
	th := x + 0.5*dx
	q := dx

	dx = dp * f(th, p+0.5*dp)
	th = th + (1-1/math.Sqrt2)*(dx-q)
	q = (2-math.Sqrt2)*dx + (-2+3/math.Sqrt2)*q

	dx = dp * f(th, p+0.5*dp)
	th = th + (1+1/math.Sqrt2)*(dx-q)
	q = (2+math.Sqrt2)*dx + (-2-3/math.Sqrt2)*q

	dx = dp * f(th, p+dp)
	return th + (dx-2*q)/6
}
