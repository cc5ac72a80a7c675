package integrators

import (
	"errors"
	"fmt"
	"sort"
)

// Derivative is dx/dp evaluated at (x, p).
type Derivative func(x, p float64) float64

// Integrator advances x from p to p+dp in one step.
type Integrator interface {
	Name() string
	Step(f Derivative, x, p, dp float64) float64
}

// ErrUnknownIntegrator is returned by Get for unregistered names.
var ErrUnknownIntegrator = errors.New("integrators: unknown integrator")

var registry = map[string]func() Integrator{
	"gill":     func() Integrator { return NewGill() },
	"rk4":      func() Integrator { return NewRK4() },
	"midpoint": func() Integrator { return NewMidpoint() },
	"euler":    func() Integrator { return NewEuler() },
	"rk45":     func() Integrator { return NewRK45() },
}

// Get returns the integrator registered under name.
func Get(name string) (Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownIntegrator, name, Names())
	}
	return fn(), nil
}

// Names lists registered integrators in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Integrate carries x0 from p0 to p1 in steps equal sub-steps.
func Integrate(integ Integrator, f Derivative, x0, p0, p1 float64, steps int) float64 {
	if steps < 1 {
		steps = 1
	}
	dp := (p1 - p0) / float64(steps)
	x := x0
	for i := 0; i < steps; i++ {
		x = integ.Step(f, x, p0+float64(i)*dp, dp)
	}
	return x
}
