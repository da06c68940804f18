package colormap

import "errors"

var (
	// ErrInvalidRange is returned when anchor ordering is violated, e.g. the
	// steep point lies above the flat point or outside [min, max].
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidConfiguration is returned when only one half of an optional
	// parameter pair was supplied, or an enumerated option has a bad value.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidControlPoints is returned when an assembled position sequence
	// is not finite and non-decreasing over [0,1].
	ErrInvalidControlPoints = errors.New("invalid control points")
)
