package geom

import "errors"

var (
	// ErrDegeneratePolyLine indicates a polyline was built from fewer than two
	// distinct points.
	ErrDegeneratePolyLine = errors.New("geom: polyline needs at least two distinct points")

	// ErrDegenerateRing indicates a ring was built from fewer than three unique
	// points once consecutive duplicates were removed.
	ErrDegenerateRing = errors.New("geom: ring needs at least three unique points")

	// ErrParallelLines indicates two lines have no unique intersection point.
	ErrParallelLines = errors.New("geom: lines are parallel or coincident")

	// ErrEmptyInput indicates a function received a nil or empty slice where a
	// non-empty one was required.
	ErrEmptyInput = errors.New("geom: empty input")
)
