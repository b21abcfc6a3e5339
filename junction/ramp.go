package junction

import (
	"math"

	"github.com/osmstreets/intersectgeom/geom"
)

// rampHandler detects and resolves the specialized 3-road acute-merge
// pattern described in §4.6: one short road (the ramp) meeting the
// junction nearly tangentially to one of the other two. It returns
// ok=false whenever the pattern doesn't apply to any of the three ways of
// picking which road is the ramp, so the dispatcher falls back to the
// general-case trimmer.
func rampHandler(intersectionID IntersectionID, roads []InputRoad, cfg *Config) (Results, bool) {
	cfg = orDefault(cfg)
	if len(roads) != 3 {
		return Results{}, false
	}

	for i, ramp := range roads {
		mainA := roads[(i+1)%3]
		mainB := roads[(i+2)%3]
		if res, ok := tryRamp(intersectionID, ramp, mainA, mainB, cfg); ok {
			log.WithField("ramp_road", ramp.ID).Debug("on/off-ramp pattern matched")
			return res, true
		}
	}
	return Results{}, false
}

// tryRamp treats ramp as the merging road and mainA as the road it merges
// into, checking whether both of ramp's edges hit one of mainA's edges
// within cfg.RampMaxGapMeters and whether the two roads meet within
// cfg.RampMaxAngleDegrees of being tangential.
func tryRamp(intersectionID IntersectionID, ramp, mainA, mainB InputRoad, cfg *Config) (Results, bool) {
	rampToward := ramp.centerLinePointedAt(intersectionID)
	rampLeft, errRL := rampToward.ShiftLeft(ramp.HalfWidth())
	rampRight, errRR := rampToward.ShiftRight(ramp.HalfWidth())
	if errRL != nil || errRR != nil {
		return Results{}, false
	}

	mainToward := mainA.centerLinePointedAt(intersectionID)
	mainNear, errMN := mainToward.ShiftRight(mainA.HalfWidth())
	mainFar, errMF := mainToward.ShiftLeft(mainA.HalfWidth())
	if errMN != nil || errMF != nil {
		return Results{}, false
	}

	hitLeft, okLeft := nearestHit(rampLeft, mainNear, mainFar, cfg)
	hitRight, okRight := nearestHit(rampRight, mainNear, mainFar, cfg)
	if !okLeft || !okRight {
		return Results{}, false
	}

	rampAngle := rampToward.Lines()[len(rampToward.Lines())-1].Angle()
	mainAngle := mainToward.Lines()[len(mainToward.Lines())-1].Angle()
	gapDegrees := math.Abs(float64(rampAngle-mainAngle)) * 180 / math.Pi
	if gapDegrees > 180 {
		gapDegrees = 360 - gapDegrees
	}
	if gapDegrees > cfg.RampMaxAngleDegrees && math.Abs(gapDegrees-180) > cfg.RampMaxAngleDegrees {
		return Results{}, false
	}

	res := newResults(intersectionID)

	trimmedMain, ok := trimFromEnd(mainToward, mainA.HalfWidth()/4)
	if !ok {
		trimmedMain = mainToward
	}
	extendedRamp := rampToward.ExtendToLength(rampToward.Length() + ramp.HalfWidth())

	res.TrimmedCenterPts[ramp.ID] = ramp.canonicalOrientation(extendedRamp, intersectionID)
	res.TrimmedCenterPts[mainA.ID] = mainA.canonicalOrientation(trimmedMain, intersectionID)
	res.TrimmedCenterPts[mainB.ID] = mainB.canonicalOrientation(mainB.centerLinePointedAt(intersectionID), intersectionID)

	ring, err := geom.NewRingDeduping([]geom.Pt2D{
		rampRight.LastPt(), rampLeft.LastPt(), hitLeft, hitRight, rampRight.LastPt(),
	})
	if err != nil {
		return Results{}, false
	}
	res.IntersectionPolygon = ring
	res.addDebug(hitLeft, "ramp-main-hit-left")
	res.addDebug(hitRight, "ramp-main-hit-right")
	return res, true
}

// nearestHit returns the closest point where rampEdge crosses either of
// the main road's two edges, and whether that crossing lies within
// cfg.RampMaxGapMeters of rampEdge's junction-side endpoint.
func nearestHit(rampEdge, mainNear, mainFar geom.PolyLine, cfg *Config) (geom.Pt2D, bool) {
	best := geom.Pt2D{}
	bestDist := math.Inf(1)
	found := false
	for _, candidate := range [2]geom.PolyLine{mainNear, mainFar} {
		pt, _, ok := rampEdge.Intersection(candidate)
		if !ok {
			continue
		}
		d := rampEdge.LastPt().Dist(pt)
		if d < bestDist {
			bestDist, best, found = d, pt, true
		}
	}
	if !found || bestDist > cfg.RampMaxGapMeters {
		return geom.Pt2D{}, false
	}
	return best, true
}
