package integrators

import (
	"errors"
	"math"
	"testing"
)

// decay is dx/dp = -k x with the exact solution x0·exp(-k·Δp).
func decay(k float64) Derivative {
	return func(x, p float64) float64 { return -k * x }
}

// ramp is dx/dp = p, a pure quadrature every fourth-order scheme solves exactly.
func ramp(x, p float64) float64 { return p }

func TestGill_StepMatchesExact(t *testing.T) {
	integ := NewGill()
	got := Integrate(integ, decay(1), 1, 0, 1, 100)
	want := math.Exp(-1)

	if math.Abs(got-want) > 1e-10 {
		t.Errorf("gill: got %.12f, want %.12f", got, want)
	}
}

func TestFourthOrderSchemes_Quadrature(t *testing.T) {
	for _, integ := range []Integrator{NewGill(), NewRK4()} {
		got := integ.Step(ramp, 0, 0, 2)
		if math.Abs(got-2) > 1e-12 {
			t.Errorf("%s: ∫p dp over [0,2] = %v, want 2", integ.Name(), got)
		}
	}
}

func TestGill_AgreesWithRK4ToFourthOrder(t *testing.T) {
	f := func(x, p float64) float64 { return 1e-4 + 1e-6*x - 1e-9*p }
	g := NewGill().Step(f, 10, 0, 1000)
	r := NewRK4().Step(f, 10, 0, 1000)

	if math.Abs(g-r) > 1e-9 {
		t.Errorf("gill %.12f vs rk4 %.12f", g, r)
	}
}

func TestGill_ZeroStepIsIdentity(t *testing.T) {
	if got := NewGill().Step(decay(3), 7.25, 100, 0); got != 7.25 {
		t.Errorf("zero step changed state: %v", got)
	}
}

func TestOrderOfAccuracy(t *testing.T) {
	tests := []struct {
		integ Integrator
		tol   float64
	}{
		{NewEuler(), 1e-2},
		{NewMidpoint(), 1e-4},
		{NewRK4(), 1e-8},
		{NewGill(), 1e-8},
	}

	want := math.Exp(-2)
	for _, tt := range tests {
		got := Integrate(tt.integ, decay(2), 1, 0, 1, 50)
		if math.Abs(got-want) > tt.tol {
			t.Errorf("%s: error %.3e exceeds %.0e", tt.integ.Name(), math.Abs(got-want), tt.tol)
		}
	}
}

func TestRK45_Solve(t *testing.T) {
	integ := NewRK45()
	got, steps, err := integ.Solve(decay(1), 1, 0, 5, 1e-10)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if steps == 0 {
		t.Error("expected at least one accepted step")
	}
	if math.Abs(got-math.Exp(-5)) > 1e-8 {
		t.Errorf("rk45: got %.12f, want %.12f", got, math.Exp(-5))
	}
}

func TestRK45_Backwards(t *testing.T) {
	got := NewRK45().Step(decay(1), math.Exp(-1), 1, -1)
	if math.Abs(got-1) > 1e-8 {
		t.Errorf("backward solve: got %.12f, want 1", got)
	}
}

func TestRK45_ZeroSpan(t *testing.T) {
	got, steps, err := NewRK45().Solve(decay(1), 3, 2, 2, 1e-8)
	if err != nil || steps != 0 || got != 3 {
		t.Errorf("zero span: got %v, %d, %v", got, steps, err)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		integ, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if integ.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, integ.Name())
		}
	}

	if _, err := Get("leapfrog"); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("want ErrUnknownIntegrator, got %v", err)
	}
}
