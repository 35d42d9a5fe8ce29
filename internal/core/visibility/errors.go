package visibility

import "errors"

var (
	// ErrInvalidInput is returned when the observer or a segment has a NaN
	// or infinite coordinate.
	ErrInvalidInput = errors.New("visibility: invalid input")

	// ErrInvalidConfig is returned by New for an unusable tolerance.
	ErrInvalidConfig = errors.New("visibility: invalid configuration")
)
