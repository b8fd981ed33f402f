package gm

import "errors"

var (
	// ErrInvalidArgument reports malformed input: a wrong shape, a non-finite
	// component, an offset outside of the destination buffer.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain reports a mathematically undefined operation, like dividing by zero,
	// inverting a singular matrix or normalizing a zero length vector.
	ErrDomain = errors.New("domain error")

	// ErrTolerance is raised (as a panic) when a negative epsilon is passed to
	// a tolerance based comparison.
	ErrTolerance = errors.New("negative tolerance")
)
