package integrators

import (
	"errors"
	"math"
)

// ErrStepTooSmall indicates the adaptive step shrank below the minimum.
var ErrStepTooSmall = errors.New("integrators: adaptive step below minimum")

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// RK45 is the Dormand-Prince embedded pair with step-size control.
type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
	minStep  float64
	tol      float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
		minStep:  1e-6,
		tol:      1e-10,
	}
}

func (r *RK45) Name() string { return "rk45" }

// Step integrates across dp adaptively; failures fall back to the last
// accepted estimate.
func (r *RK45) Step(f Derivative, x, p, dp float64) float64 {
	out, _, _ := r.Solve(f, x, p, p+dp, r.tol)
	return out
}

// StepAdaptive takes one Dormand-Prince step and proposes the next step size.
func (r *RK45) StepAdaptive(f Derivative, x, p, dp, tol float64) (float64, float64, float64) {
	k1 := f(x, p)
	k2 := f(x+dp*b21*k1, p+a2*dp)
	k3 := f(x+dp*(b31*k1+b32*k2), p+a3*dp)
	k4 := f(x+dp*(b41*k1+b42*k2+b43*k3), p+a4*dp)
	k5 := f(x+dp*(b51*k1+b52*k2+b53*k3+b54*k4), p+a5*dp)
	k6 := f(x+dp*(b61*k1+b62*k2+b63*k3+b64*k4+b65*k5), p+dp)

	xNew := x + dp*(c1*k1+c3*k3+c4*k4+c5*k5+c6*k6)
	k7 := f(xNew, p+dp)

	errEst := dp * (dc1*k1 + dc3*k3 + dc4*k4 + dc5*k5 + dc6*k6 + dc7*k7)
	scale := math.Abs(x) + math.Abs(dp*k1) + 1e-10
	errRatio := math.Abs(errEst) / scale / tol

	var dpNew float64
	if errRatio > 1 {
		dpNew = dp * math.Max(r.minScale, r.safety*math.Pow(errRatio, -0.25))
	} else if errRatio > 0 {
		dpNew = dp * math.Min(r.maxScale, r.safety*math.Pow(errRatio, -0.2))
	} else {
		dpNew = dp * r.maxScale
	}

	return xNew, dpNew, errRatio
}

// Solve integrates from p0 to p1, accepting steps whose error ratio is <= 1.
// It returns the solution and the number of accepted steps.
func (r *RK45) Solve(f Derivative, x0, p0, p1, tol float64) (float64, int, error) {
	x, p := x0, p0
	dp := p1 - p0
	steps := 0
	for p != p1 {
		last := false
		if math.Abs(dp) >= math.Abs(p1-p) {
			dp = p1 - p
			last = true
		}
		xNew, dpNew, errRatio := r.StepAdaptive(f, x, p, dp, tol)
		if errRatio <= 1 || math.IsNaN(errRatio) {
			x, p = xNew, p+dp
			if last {
				p = p1
			}
			steps++
		}
		if p != p1 && math.Abs(dpNew) < r.minStep {
			return x, steps, ErrStepTooSmall
		}
		dp = dpNew
	}

	return x, steps, nil
}
