package eos80

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCount indicates a call with the wrong number of arguments.
	ErrArgumentCount = errors.New("eos80: wrong number of arguments")

	// ErrUnknownFunction indicates a name Call does not dispatch.
	ErrUnknownFunction = errors.New("eos80: unknown function")

	// ErrNilArgument indicates a nil grid passed to Call.
	ErrNilArgument = errors.New("eos80: nil argument")

	// ErrOutOfRange indicates a value outside the EOS-80 validity range.
	// Only CheckRange returns it.
	ErrOutOfRange = errors.New("eos80: value outside EOS-80 range")
)

// ArgumentCountError wraps ErrArgumentCount with the function and counts.
type ArgumentCountError struct {
	Func string
	Got  int
	Want int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("eos80: %s takes %d arguments (%s), got %d", e.Func, e.Want, signatures[e.Func], e.Got)
}

func (e *ArgumentCountError) Unwrap() error {
	return ErrArgumentCount
}

// RangeError wraps ErrOutOfRange with the first offending cell.
type RangeError struct {
	Arg      string
	Row, Col int
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("eos80: %s[%d,%d] = %g outside [%g, %g]", e.Arg, e.Row, e.Col, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
