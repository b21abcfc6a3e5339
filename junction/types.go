// Package junction implements the intersection geometry kernel: given the
// roads incident to a junction, it trims back their center-lines so they no
// longer overlap and produces a closed polygon filling the gap between
// them. See the package-level design notes below for the orientation
// convention every handler relies on.
//
// Orientation convention: every polyline handled internally by a handler
// points toward the junction while work is in progress, i.e. PL.LastPt()
// is always the junction-side endpoint. Canonical src->dst orientation (as
// recorded on the InputRoad) is restored only when a center-line is
// written into Results.TrimmedCenterPts.
package junction

import "github.com/osmstreets/intersectgeom/geom"

// RoadID is an opaque, dense-but-non-contiguous handle for a road. It has
// no arithmetic meaning.
type RoadID int64

// IntersectionID is an opaque, dense-but-non-contiguous handle for a
// junction. It has no arithmetic meaning.
type IntersectionID int64

// Side distinguishes the two edges of a road.
type Side uint8

const (
	// Left is the road edge on the left when facing along the road toward
	// the junction being processed.
	Left Side = iota
	// Right is the road edge on the right when facing along the road toward
	// the junction being processed.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// RoadSide names one edge of one road, the key type for the pretrim map.
type RoadSide struct {
	Road RoadID
	Side Side
}

// OriginalRoad carries OSM provenance for a road, unused by the geometry
// itself. It round-trips through GeoJSON export as feature properties.
type OriginalRoad struct {
	OSMWayID  int64
	OSMNode1  int64
	OSMNode2  int64
}

// InputRoad is one road incident to the junction being processed.
type InputRoad struct {
	ID   RoadID
	SrcI IntersectionID
	DstI IntersectionID

	// CenterLine runs from SrcI to DstI; it must have at least two distinct
	// points and positive length.
	CenterLine geom.PolyLine

	// TotalWidth is the full width of the road, including shoulders and
	// sidewalks, in meters. Must be positive.
	TotalWidth float64

	// HighwayType is an opaque tag, unused by the geometry kernel.
	HighwayType string

	// Original is optional OSM provenance, carried through to GeoJSON export.
	Original *OriginalRoad
}

// HalfWidth is half of TotalWidth.
func (r InputRoad) HalfWidth() float64 {
	return r.TotalWidth / 2
}

// OtherEnd returns the intersection at the opposite end of the road from i.
// For a loop (SrcI == DstI), it returns i itself.
func (r InputRoad) OtherEnd(i IntersectionID) IntersectionID {
	if r.SrcI == i {
		return r.DstI
	}
	return r.SrcI
}

// centerLinePointedAt returns the road's center-line oriented so it points
// *toward* i: if i is the dst, the line is returned as-is; if i is the src,
// it's reversed. This is the "toward the junction" half of the orientation
// convention documented on the package; handlers that need the "away from
// the junction" orientation call .Reversed() on the result.
func (r InputRoad) centerLinePointedAt(i IntersectionID) geom.PolyLine {
	if r.DstI == i {
		return r.CenterLine
	}
	return r.CenterLine.Reversed()
}

// canonicalOrientation returns pl re-oriented to run from SrcI to DstI,
// given that pl currently points toward i (the junction this handler is
// processing). This is the inverse of centerLinePointedAt, used right
// before a trimmed center-line is written into Results.
func (r InputRoad) canonicalOrientation(pl geom.PolyLine, i IntersectionID) geom.PolyLine {
	if r.DstI == i {
		return pl
	}
	return pl.Reversed()
}

// RoadEdge is the left or right side of a road, offset from its
// center-line by HalfWidth, oriented so PL.LastPt() is the junction-side
// endpoint. It's derived, never stored across calls: whenever a road's
// center-line changes, its edges must be recomputed.
type RoadEdge struct {
	Road RoadID
	Side Side
	PL   geom.PolyLine
}

// DebugMarker is a labeled point retained for diagnosing the algorithm,
// never interpreted by callers beyond display.
type DebugMarker struct {
	Pt    geom.Pt2D
	Label string
}

// Results is the kernel's output for a single junction.
type Results struct {
	IntersectionID      IntersectionID
	IntersectionPolygon geom.Ring
	TrimmedCenterPts    map[RoadID]geom.PolyLine
	Debug               []DebugMarker
}

func newResults(id IntersectionID) Results {
	return Results{
		IntersectionID:   id,
		TrimmedCenterPts: make(map[RoadID]geom.PolyLine),
	}
}

func (res *Results) addDebug(pt geom.Pt2D, label string) {
	res.Debug = append(res.Debug, DebugMarker{Pt: pt, Label: label})
}
