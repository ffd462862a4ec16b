package phong3d

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularTransform: a shape transform cannot be inverted, usually a zero scale axis.
	ErrSingularTransform = errors.New("singular transform")
	// ErrDegenerateNormal: a zero-length or non-finite vector was normalized.
	ErrDegenerateNormal = errors.New("degenerate normal")
)

// GeometryError is raised while building a scene and rejects it before rendering.
type GeometryError struct {
	Shape string
	Err   error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("shape %q: %v", e.Shape, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// NumericError is a per-sample problem; the renderer suppresses it locally.
type NumericError struct {
	Op  string
	Err error
}

func (e *NumericError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NumericError) Unwrap() error { return e.Err }
