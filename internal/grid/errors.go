package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates an argument whose shape is neither equal to
	// nor broadcastable against the reference shape.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrBadShape indicates a non-positive row or column count, or ragged rows.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrParse indicates a grid literal that could not be parsed.
	ErrParse = errors.New("grid: malformed literal")
)

// ShapeError wraps ErrShapeMismatch with the offending argument.
type ShapeError struct {
	Arg  string
	Got  Shape
	Want string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("grid: %s has shape %s, want %s", e.Arg, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
