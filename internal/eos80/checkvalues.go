package eos80

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/seawater/internal/grid"
)

// CheckValue is a published test case from UNESCO Tech. Pap. Mar. Sci. 44.
// Temperatures in Args, and a temperature result, are on the IPTS-68 scale
// as printed.
type CheckValue struct {
	Func string
	Args []float64
	Want float64
	Tol  float64
}

// CheckResult is the outcome of evaluating a CheckValue.
type CheckResult struct {
	CheckValue
	Got float64
	Err error
}

func (r CheckResult) Pass() bool {
	return r.Err == nil && math.Abs(r.Got-r.Want) <= r.Tol
}

func (c CheckValue) Label() string {
	parts := strings.Split(Signature(c.Func), ", ")
	args := make([]string, len(c.Args))
	for i, v := range c.Args {
		name := "?"
		if i < len(parts) {
			name = parts[i]
		}
		args[i] = fmt.Sprintf("%s=%g", name, v)
	}
	return fmt.Sprintf("%s(%s)", c.Func, strings.Join(args, " "))
}

var checkValues = []CheckValue{
	{Func: "dens", Args: []float64{40, 40, 10000}, Want: 1059.82037, Tol: 5e-5},
	{Func: "adtg", Args: []float64{40, 40, 10000}, Want: 3.255976e-4, Tol: 5e-11},
	{Func: "ptmp", Args: []float64{40, 40, 10000, 0}, Want: 36.89073, Tol: 1e-5},
}

// CheckValues returns a copy of the published reference cases.
func CheckValues() []CheckValue {
	out := make([]CheckValue, len(checkValues))
	copy(out, checkValues)
	return out
}

// Evaluate runs c through Call, converting temperatures between ITS-90 and
// the printed IPTS-68 values.
func (c CheckValue) Evaluate() CheckResult {
	names := strings.Split(Signature(c.Func), ", ")
	args := make([]*grid.Grid, len(c.Args))
	for i, v := range c.Args {
		if i < len(names) && names[i] == "T" {
			v /= T68Factor
		}
		args[i] = grid.Scalar(v)
	}

	out, err := Call(c.Func, args...)
	if err != nil {
		return CheckResult{CheckValue: c, Got: math.NaN(), Err: err}
	}
	got := out.Scalar()
	if c.Func == "ptmp" {
		got *= T68Factor
	}
	return CheckResult{CheckValue: c, Got: got}
}

// RunChecks evaluates every published reference case.
func RunChecks() []CheckResult {
	results := make([]CheckResult, len(checkValues))
	for i, c := range checkValues {
		results[i] = c.Evaluate()
	}
	return results
}
