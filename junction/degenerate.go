package junction

import (
	"fmt"

	"github.com/osmstreets/intersectgeom/geom"
)

// degenerateHandler resolves a two-road junction: a kink or a width change
// along what is really a single corridor, per §4.4. Center-lines are left
// untouched unless the two roads have different widths, in which case the
// wider road is trimmed back by the difference of the two half-widths to
// leave room for the taper. That trim fails with ErrRoadTooShort if it would
// consume the whole wider road.
func degenerateHandler(intersectionID IntersectionID, roads []InputRoad) (Results, error) {
	res := newResults(intersectionID)
	a, b := roads[0], roads[1]

	towardA := a.centerLinePointedAt(intersectionID)
	towardB := b.centerLinePointedAt(intersectionID)
	trimmedA, trimmedB := towardA, towardB

	widthDiff := a.HalfWidth() - b.HalfWidth()
	switch {
	case widthDiff > geom.Epsilon:
		t, ok := trimFromEnd(towardA, widthDiff)
		if !ok {
			return res, fmt.Errorf("degenerate junction %d, road %d: %w", intersectionID, a.ID, ErrRoadTooShort)
		}
		trimmedA = t
	case widthDiff < -geom.Epsilon:
		t, ok := trimFromEnd(towardB, -widthDiff)
		if !ok {
			return res, fmt.Errorf("degenerate junction %d, road %d: %w", intersectionID, b.ID, ErrRoadTooShort)
		}
		trimmedB = t
	}

	aRight, errAR := trimmedA.ShiftRight(a.HalfWidth())
	aLeft, errAL := trimmedA.ShiftLeft(a.HalfWidth())
	bRight, errBR := trimmedB.ShiftRight(b.HalfWidth())
	bLeft, errBL := trimmedB.ShiftLeft(b.HalfWidth())
	if errAR != nil || errAL != nil || errBR != nil || errBL != nil {
		return res, fmt.Errorf("degenerate junction %d: %w", intersectionID, ErrPolylineInvalid)
	}

	ring, err := geom.NewRingDeduping([]geom.Pt2D{
		aRight.LastPt(), bLeft.LastPt(), bRight.LastPt(), aLeft.LastPt(), aRight.LastPt(),
	})
	if err != nil {
		return res, fmt.Errorf("degenerate junction %d: %w", intersectionID, ErrRingDegenerate)
	}

	res.IntersectionPolygon = ring
	res.TrimmedCenterPts[a.ID] = a.canonicalOrientation(trimmedA, intersectionID)
	res.TrimmedCenterPts[b.ID] = b.canonicalOrientation(trimmedB, intersectionID)
	return res, nil
}
