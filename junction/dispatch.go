package junction

import (
	"fmt"

	"github.com/osmstreets/intersectgeom/geom"
)

// Solve is the kernel's single entry point. Given the roads incident to an
// intersection, in clockwise order, it selects a handler and returns the
// trimmed center-lines plus the intersection polygon.
//
// Possible errors: ErrEmptyIntersection (no roads supplied), ErrRoadTooShort
// (a terminus or degenerate trim would consume an entire road),
// ErrPolylineInvalid (a trim produced a center-line with fewer than two
// distinct points), ErrRingDegenerate (the reconstructed polygon has fewer
// than three unique vertices). There are no partial results: any of these
// aborts the whole call.
func Solve(intersectionID IntersectionID, roads []InputRoad, pretrim map[RoadSide]geom.Pt2D, cfg *Config) (Results, error) {
	cfg = orDefault(cfg)

	switch {
	case len(roads) == 0:
		return Results{}, fmt.Errorf("solve intersection %d: %w", intersectionID, ErrEmptyIntersection)

	case len(roads) == 1:
		log.WithField("intersection", intersectionID).Debug("dispatch: terminus handler")
		return terminusHandler(intersectionID, roads[0])

	case len(roads) == 2:
		log.WithField("intersection", intersectionID).Debug("dispatch: degenerate handler")
		return degenerateHandler(intersectionID, roads)

	case len(pretrim) > 0:
		log.WithField("intersection", intersectionID).Debug("dispatch: pre-trimmed handler")
		return pretrimmedHandler(intersectionID, roads, pretrim, cfg)
	}

	if res, ok := rampHandler(intersectionID, roads, cfg); ok {
		log.WithField("intersection", intersectionID).Debug("dispatch: on/off-ramp handler")
		return res, nil
	}

	log.WithField("intersection", intersectionID).Debug("dispatch: general-case trimmer")
	return generalCaseHandler(intersectionID, roads, cfg)
}
