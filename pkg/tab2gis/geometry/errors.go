package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuildable indicates fewer than two vertices.
	ErrNotBuildable = errors.New("not enough vertices to build a geometry")
	// ErrInvalidGeometry indicates a ring that stayed invalid after repair.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Error reports a figure whose geometry could not be constructed.
type Error struct {
	Figure string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("figure %q: %v: %s", e.Figure, e.Err, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}
