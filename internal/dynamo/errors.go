package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup. A running tick never returns an error.
var (
	// ErrEmptyScheme indicates a scheme without movable points.
	ErrEmptyScheme = errors.New("dynamo: scheme has no movable points")

	// ErrInvalidPoint indicates a coordinate or mass that is NaN or Inf.
	ErrInvalidPoint = errors.New("dynamo: invalid point (NaN or Inf detected)")

	// ErrInvalidPeriod indicates a non-positive loop period.
	ErrInvalidPeriod = errors.New("dynamo: loop period must be positive")

	// ErrInvalidTicks indicates a negative tick count.
	ErrInvalidTicks = errors.New("dynamo: tick count must not be negative")
)

// PointError wraps an error with the position of the offending point.
type PointError struct {
	Group   string
	Index   int
	Wrapped error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%s point %d: %v", e.Group, e.Index, e.Wrapped)
}

func (e *PointError) Unwrap() error {
	return e.Wrapped
}
