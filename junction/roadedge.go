package junction

import "github.com/osmstreets/intersectgeom/geom"

// computeEdges projects every road's left and right edges, in the caller's
// clockwise order, interleaving each road's two edges so adjacent entries
// in the returned slice always belong to adjacent roads around the
// junction. This interleaving is what makes the cyclic-pair walk in the
// general-case trimmer (§4.7) and the polygon reconstructor (§4.8) line up
// corners correctly.
//
// Each edge's polyline points toward the junction: PL.LastPt() is always
// the junction-side endpoint.
func computeEdges(roads []InputRoad, junctionID IntersectionID) []RoadEdge {
	edges := make([]RoadEdge, 0, len(roads)*2)
	for _, r := range roads {
		toward := r.centerLinePointedAt(junctionID)

		right, errR := toward.ShiftRight(r.HalfWidth())
		left, errL := toward.ShiftLeft(r.HalfWidth())
		if errR != nil || errL != nil {
			log.WithFields(map[string]interface{}{
				"road": r.ID,
			}).Debug("road edge projection produced a degenerate offset; skipping this road's edges")
			continue
		}

		edges = append(edges,
			RoadEdge{Road: r.ID, Side: Right, PL: right},
			RoadEdge{Road: r.ID, Side: Left, PL: left},
		)
	}
	return edges
}

// withCyclicFirst appends a copy of edges[0] to the end of edges, so a
// caller can walk consecutive pairs with a plain loop and still see the
// pair that wraps from the last edge back to the first. Expressed as its
// own helper, per the design note in spec.md §9, to avoid off-by-one
// mistakes at every call site that needs cyclic pairing.
func withCyclicFirst(edges []RoadEdge) []RoadEdge {
	if len(edges) == 0 {
		return edges
	}
	out := make([]RoadEdge, len(edges)+1)
	copy(out, edges)
	out[len(edges)] = edges[0]
	return out
}

// edgePairs yields each consecutive (A, B) pair in the cyclic edge
// sequence.
func edgePairs(edges []RoadEdge) [][2]RoadEdge {
	cyclic := withCyclicFirst(edges)
	pairs := make([][2]RoadEdge, 0, len(edges))
	for i := 0; i+1 < len(cyclic); i++ {
		pairs = append(pairs, [2]RoadEdge{cyclic[i], cyclic[i+1]})
	}
	return pairs
}

// edgeForSide returns toward shifted to the requested side.
func edgeForSide(toward geom.PolyLine, halfWidth float64, side Side) (geom.PolyLine, error) {
	if side == Left {
		return toward.ShiftLeft(halfWidth)
	}
	return toward.ShiftRight(halfWidth)
}

// trimFromEnd returns pl (oriented toward the junction, i.e. LastPt is the
// junction-side endpoint) shortened by d meters measured back from that
// endpoint. ok is false if d is at least pl's full length.
func trimFromEnd(pl geom.PolyLine, d float64) (geom.PolyLine, bool) {
	total := pl.Length()
	if d >= total {
		return nil, false
	}
	target := total - d
	travelled := 0.0
	for i := 1; i < len(pl); i++ {
		seg := geom.Segment{A: pl[i-1], B: pl[i]}
		segLen := seg.Length()
		if travelled+segLen >= target {
			remain := target - travelled
			cut := seg.A.Project(remain, seg.Angle())
			out := make(geom.PolyLine, 0, i+1)
			out = append(out, pl[:i]...)
			out = append(out, cut)
			result, err := geom.NewPolyLine(out)
			if err != nil {
				return nil, false
			}
			return result, true
		}
		travelled += segLen
	}
	return nil, false
}

// originalCenterAwayFromJunction returns road's pre-trim center-line
// (looked up in snapshot), oriented so it points away from junctionID. The
// general-case trimmer relies on every perpendicular projection happening
// against this untouched snapshot, never against a center-line already
// shortened earlier in the same call (spec.md §3, §9).
func originalCenterAwayFromJunction(snapshot map[RoadID]geom.PolyLine, roads map[RoadID]InputRoad, road RoadID, junctionID IntersectionID) geom.PolyLine {
	r := roads[road]
	away := snapshot[road]
	if r.DstI == junctionID {
		away = away.Reversed()
	}
	return away
}
