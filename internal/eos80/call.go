package eos80

import (
	"fmt"
	"sort"

	"github.com/san-kum/seawater/internal/grid"
)

type entry struct {
	arity int
	fn    func(args []*grid.Grid) (*grid.Grid, error)
}

var entries = map[string]entry{
	"smow":  {1, func(a []*grid.Grid) (*grid.Grid, error) { return Smow(a[0]), nil }},
	"dens0": {2, func(a []*grid.Grid) (*grid.Grid, error) { return Dens0(a[0], a[1]) }},
	"seck":  {3, func(a []*grid.Grid) (*grid.Grid, error) { return Seck(a[0], a[1], a[2]) }},
	"dens":  {3, func(a []*grid.Grid) (*grid.Grid, error) { return Dens(a[0], a[1], a[2]) }},
	"adtg":  {3, func(a []*grid.Grid) (*grid.Grid, error) { return Adtg(a[0], a[1], a[2]) }},
	"ptmp":  {4, func(a []*grid.Grid) (*grid.Grid, error) { return Ptmp(a[0], a[1], a[2], a[3]) }},
	"pden":  {4, func(a []*grid.Grid) (*grid.Grid, error) { return Pden(a[0], a[1], a[2], a[3]) }},
}

var signatures = map[string]string{
	"smow":  "T",
	"dens0": "S, T",
	"seck":  "S, T, P",
	"dens":  "S, T, P",
	"adtg":  "S, T, P",
	"ptmp":  "S, T, P, PR",
	"pden":  "S, T, P, PR",
}

var descriptions = map[string]string{
	"smow":  "standard mean ocean water density [kg/m³]",
	"dens0": "density at zero pressure [kg/m³]",
	"seck":  "secant bulk modulus [bar]",
	"dens":  "in-situ density [kg/m³]",
	"adtg":  "adiabatic temperature gradient [°C/dbar]",
	"ptmp":  "potential temperature [°C]",
	"pden":  "potential density [kg/m³]",
}

// Call dispatches to an entry point by name. The argument count is checked
// before anything else, then each function validates shapes as usual.
func Call(name string, args ...*grid.Grid) (*grid.Grid, error) {
	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFunction, name, Names())
	}
	if len(args) != e.arity {
		return nil, &ArgumentCountError{Func: name, Got: len(args), Want: e.arity}
	}
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("%w: argument %d of %s", ErrNilArgument, i+1, name)
		}
	}
	return e.fn(args)
}

// Arity returns the number of arguments name takes.
func Arity(name string) (int, bool) {
	e, ok := entries[name]
	return e.arity, ok
}

// Describe returns a one-line summary of name including its unit.
func Describe(name string) string {
	return descriptions[name]
}

// Signature returns the argument list of name, e.g. "S, T, P".
func Signature(name string) string {
	return signatures[name]
}

// Names lists the dispatchable entry points in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
