package junction

import (
	"fmt"

	"github.com/osmstreets/intersectgeom/geom"
)

// reconstructPolygon walks the trimmed roads' edges in clockwise order and
// emits the outer ring of the junction polygon, per §4.8: a pair of edges
// from the same road contributes no corner vertex; a pair from different
// roads is virtually extended back out to its own road's original,
// untrimmed center-line length before the two are intersected, so a road
// trimmed much harder on one side than the other still reaches far enough
// to meet its neighbor cleanly.
func reconstructPolygon(roads []InputRoad, trimmedToward map[RoadID]geom.PolyLine, intersectionID IntersectionID) (geom.Ring, error) {
	roadByID := make(map[RoadID]InputRoad, len(roads))
	orderedEdges := make([]RoadEdge, 0, len(roads)*2)
	for _, r := range roads {
		roadByID[r.ID] = r
		toward := trimmedToward[r.ID]
		right, errR := toward.ShiftRight(r.HalfWidth())
		left, errL := toward.ShiftLeft(r.HalfWidth())
		if errR != nil || errL != nil {
			log.WithField("road", r.ID).Debug("skipping road with a degenerate trimmed edge during polygon reconstruction")
			continue
		}
		orderedEdges = append(orderedEdges,
			RoadEdge{Road: r.ID, Side: Right, PL: right},
			RoadEdge{Road: r.ID, Side: Left, PL: left},
		)
	}
	if len(orderedEdges) == 0 {
		return nil, fmt.Errorf("polygon reconstruction for intersection %d: %w", intersectionID, ErrRingDegenerate)
	}

	pts := make([]geom.Pt2D, 0, len(orderedEdges)*2+1)
	for _, pair := range edgePairs(orderedEdges) {
		a, b := pair[0], pair[1]
		pts = append(pts, a.PL.LastPt())

		if a.Road == b.Road {
			continue
		}
		if corner, ok := outerCorner(roadByID[a.Road], a, roadByID[b.Road], b); ok {
			pts = append(pts, corner)
		}
	}
	pts = append(pts, pts[0])

	ring, err := geom.NewRingDeduping(pts)
	if err != nil {
		return nil, fmt.Errorf("polygon reconstruction for intersection %d: %w", intersectionID, ErrRingDegenerate)
	}
	return ring, nil
}

// outerCorner extends edge a and edge b past their junction-side end, each
// back out to its own road's original center-line length -- so a road
// trimmed much harder than its neighbor still virtually reaches the
// corner -- then reverses both and takes their polyline intersection, the
// same primitive cornerSearch uses. Unlike an infinite-line intersection,
// this can correctly report no corner when the (possibly curved) extended
// edges don't actually cross.
func outerCorner(roadA InputRoad, a RoadEdge, roadB InputRoad, b RoadEdge) (geom.Pt2D, bool) {
	rayA := a.PL.ExtendToLength(roadA.CenterLine.Length()).Reversed()
	rayB := b.PL.ExtendToLength(roadB.CenterLine.Length()).Reversed()
	pt, _, ok := rayA.Intersection(rayB)
	return pt, ok
}
