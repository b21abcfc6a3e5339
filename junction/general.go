package junction

import (
	"github.com/osmstreets/intersectgeom/geom"
)

// generalCaseHandler implements the N>=3 corner-search trimmer: for every
// adjacent cross-road pair of edges, find where they meet near the
// junction, project that corner perpendicular onto each side's original
// center-line, and keep whichever of a road's two candidate trims is
// shorter. Every projection runs against a snapshot of the original
// center-lines taken before any road is mutated -- never against a
// center-line already shortened earlier in this same call.
func generalCaseHandler(intersectionID IntersectionID, roads []InputRoad, cfg *Config) (Results, error) {
	cfg = orDefault(cfg)
	res := newResults(intersectionID)

	roadByID := make(map[RoadID]InputRoad, len(roads))
	snapshot := make(map[RoadID]geom.PolyLine, len(roads))
	trimmedToward := make(map[RoadID]geom.PolyLine, len(roads))
	for _, r := range roads {
		roadByID[r.ID] = r
		snapshot[r.ID] = r.CenterLine
		trimmedToward[r.ID] = r.centerLinePointedAt(intersectionID)
	}

	edges := computeEdges(roads, intersectionID)
	for _, pair := range edgePairs(edges) {
		a, b := pair[0], pair[1]
		if a.Road == b.Road {
			continue
		}

		corner, ok := cornerSearch(a.PL, b.PL)
		if !ok {
			log.WithFields(map[string]interface{}{
				"road_a": a.Road,
				"road_b": b.Road,
			}).Debug("corner pair produced no intersection; skipping without virtual extension")
			// TODO: when no hit is found, extend both edges' supporting
			// infinite lines and intersect those instead of giving up, so
			// acute corners whose polylines don't directly overlap still
			// get trimmed.
			continue
		}

		for _, side := range [2]RoadEdge{a, b} {
			r := roadByID[side.Road]
			away := originalCenterAwayFromJunction(snapshot, roadByID, r.ID, intersectionID)
			trimmed, ok := trimRoadAgainstCorner(away, side.PL, corner)
			if !ok {
				continue
			}
			if trimmed.Length() < trimmedToward[r.ID].Length() {
				trimmedToward[r.ID] = trimmed
			}
		}
	}

	for _, r := range roads {
		res.TrimmedCenterPts[r.ID] = r.canonicalOrientation(trimmedToward[r.ID], intersectionID)
	}

	ring, err := reconstructPolygon(roads, trimmedToward, intersectionID)
	if err != nil {
		return res, err
	}
	res.IntersectionPolygon = ring
	return res, nil
}

// cornerSearch finds where edge a and edge b, both oriented toward the
// junction, first cross once reversed so each starts at its junction-side
// end. A shared first point after reversal -- both edges' junction-side
// endpoints already coincide -- is treated as the corner directly; a plain
// polyline intersection search misses this degenerate case because the
// first segment of each reversed polyline has zero-length overlap with the
// other at that point.
func cornerSearch(aPL, bPL geom.PolyLine) (geom.Pt2D, bool) {
	ra, rb := aPL.Reversed(), bPL.Reversed()
	if ra.FirstPt().Equals(rb.FirstPt()) {
		return ra.FirstPt(), true
	}
	pt, _, ok := ra.Intersection(rb)
	return pt, ok
}

// trimRoadAgainstCorner projects corner onto sideEdge to find the tangent
// there, builds the perpendicular line through corner, and intersects it
// with away (the road's original center-line, oriented away from the
// junction) to find every candidate cut point. It returns the longest
// resulting suffix re-pointed toward the junction; ties within
// geom.Epsilon are broken by preferring the candidate at the smaller arc
// length along away, giving a stable, order-independent result.
func trimRoadAgainstCorner(away geom.PolyLine, sideEdge geom.PolyLine, corner geom.Pt2D) (geom.PolyLine, bool) {
	_, tangent, ok := sideEdge.DistAlongOfPoint(corner)
	if !ok {
		return nil, false
	}
	perp := geom.NewInfiniteLineFromPtAngle(corner, tangent.Rotate(90))

	var bestSuffix geom.PolyLine
	bestPos := 0.0
	found := false
	for _, seg := range away.Lines() {
		pt, ok := seg.IntersectionInfinite(perp)
		if !ok {
			continue
		}
		suffix, ok := away.GetSliceStartingAt(pt)
		if !ok {
			continue
		}
		pos, _, ok := away.DistAlongOfPoint(pt)
		if !ok {
			continue
		}

		switch {
		case !found:
			bestSuffix, bestPos, found = suffix, pos, true
		case suffix.Length() > bestSuffix.Length()+geom.Epsilon:
			bestSuffix, bestPos = suffix, pos
		case suffix.Length() > bestSuffix.Length()-geom.Epsilon && pos < bestPos:
			bestSuffix, bestPos = suffix, pos
		}
	}
	if !found {
		return nil, false
	}
	return bestSuffix.Reversed(), true
}
