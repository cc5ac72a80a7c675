package integrators

// RK4 is the classic fourth-order Runge-Kutta scheme.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f Derivative, x, p, dp float64) float64 {
	k1 := f(x, p)
	k2 := f(x+dp*0.5*k1, p+dp*0.5)
	k3 := f(x+dp*0.5*k2, p+dp*0.5)
	k4 := f(x+dp*k3, p+dp)

	return x + dp/6.0*(k1+2*k2+2*k3+k4)
}
