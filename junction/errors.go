package junction

import "errors"

var (
	// ErrEmptyIntersection indicates no roads were supplied.
	ErrEmptyIntersection = errors.New("junction: intersection has no incident roads")

	// ErrRoadTooShort indicates a terminus/degenerate trim would consume the
	// entire road.
	ErrRoadTooShort = errors.New("junction: road is too short to trim")

	// ErrPolylineInvalid indicates a trim produced fewer than two distinct
	// points.
	ErrPolylineInvalid = errors.New("junction: trim produced an invalid center-line")

	// ErrRingDegenerate indicates the final polygon has fewer than three
	// unique vertices.
	ErrRingDegenerate = errors.New("junction: intersection polygon is degenerate")

	// ErrUnsortedRoads is returned by Validate (never by Solve itself) when a
	// road supplied to an intersection doesn't touch it at all.
	ErrUnsortedRoads = errors.New("junction: a road does not touch the given intersection")
)
