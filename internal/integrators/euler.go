package integrators

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f Derivative, x, p, dp float64) float64 {
	return x + dp*f(x, p)
}

// Midpoint is the second-order explicit midpoint rule.
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Name() string { return "midpoint" }

func (m *Midpoint) Step(f Derivative, x, p, dp float64) float64 {
	k1 := f(x, p)
	return x + dp*f(x+0.5*dp*k1, p+0.5*dp)
}
