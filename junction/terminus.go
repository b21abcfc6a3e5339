package junction

import (
	"fmt"

	"github.com/osmstreets/intersectgeom/geom"
)

// terminusHandler resolves a dead end: a single road meeting the junction
// with nothing to trim against. The road is cut back by its own half-width
// and the gap is capped with a rectangle, per §4.3.
func terminusHandler(intersectionID IntersectionID, road InputRoad) (Results, error) {
	res := newResults(intersectionID)

	toward := road.centerLinePointedAt(intersectionID)
	if toward.Length() < road.HalfWidth()+geom.Epsilon {
		return res, fmt.Errorf("terminus at intersection %d, road %d: %w", intersectionID, road.ID, ErrRoadTooShort)
	}

	trimmedToward, ok := trimFromEnd(toward, road.HalfWidth())
	if !ok {
		return res, fmt.Errorf("terminus at intersection %d, road %d: %w", intersectionID, road.ID, ErrRoadTooShort)
	}

	outerLeft, errOL := toward.ShiftLeft(road.HalfWidth())
	outerRight, errOR := toward.ShiftRight(road.HalfWidth())
	roadLeft, errRL := trimmedToward.ShiftLeft(road.HalfWidth())
	roadRight, errRR := trimmedToward.ShiftRight(road.HalfWidth())
	if errOL != nil || errOR != nil || errRL != nil || errRR != nil {
		return res, fmt.Errorf("terminus at intersection %d, road %d: %w", intersectionID, road.ID, ErrPolylineInvalid)
	}

	ring, err := geom.NewRingDeduping([]geom.Pt2D{
		roadRight.LastPt(), outerRight.LastPt(), outerLeft.LastPt(), roadLeft.LastPt(), roadRight.LastPt(),
	})
	if err != nil {
		return res, fmt.Errorf("terminus at intersection %d, road %d: %w", intersectionID, road.ID, ErrRingDegenerate)
	}

	res.IntersectionPolygon = ring
	res.TrimmedCenterPts[road.ID] = road.canonicalOrientation(trimmedToward, intersectionID)
	return res, nil
}
