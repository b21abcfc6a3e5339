package junction

import (
	"github.com/osmstreets/intersectgeom/geom"
)

// pretrimmedHandler truncates each road to a caller-supplied perpendicular
// projection point instead of computing a corner, per §4.5. It is used
// when an upstream step (merging adjacent junctions) has already decided
// where a road should end. Feeding a pretrimmed handler's own output back
// through it with the same pretrim map is idempotent: the second call's
// perpendicular projections land exactly on the already-trimmed edges and
// produce a trim no shorter than what's already there.
func pretrimmedHandler(intersectionID IntersectionID, roads []InputRoad, pretrim map[RoadSide]geom.Pt2D, cfg *Config) (Results, error) {
	res := newResults(intersectionID)

	roadByID := make(map[RoadID]InputRoad, len(roads))
	trimmedToward := make(map[RoadID]geom.PolyLine, len(roads))
	for _, r := range roads {
		roadByID[r.ID] = r
		trimmedToward[r.ID] = r.centerLinePointedAt(intersectionID)
	}

	for rs, pt := range pretrim {
		r, ok := roadByID[rs.Road]
		if !ok {
			continue
		}
		toward := r.centerLinePointedAt(intersectionID)
		edge, err := edgeForSide(toward, r.HalfWidth(), rs.Side)
		if err != nil {
			continue
		}
		dist, _, ok := edge.DistAlongOfPoint(pt)
		if !ok {
			log.WithFields(map[string]interface{}{
				"road": rs.Road,
				"side": rs.Side,
			}).Debug("pretrim point does not lie on the road's edge; ignoring")
			continue
		}

		backFromJunction := edge.Length() - dist
		candidate, ok := trimFromEnd(toward, backFromJunction)
		if !ok {
			continue
		}
		if candidate.Length() < trimmedToward[r.ID].Length() {
			trimmedToward[r.ID] = candidate
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
