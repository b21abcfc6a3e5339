package geom

import "math"

// PolyLine is an ordered, open sequence of at least two distinct points.
// It is the kernel's representation of a road center-line or road edge.
type PolyLine []Pt2D

// NewPolyLine validates and returns a PolyLine. Consecutive duplicate
// points are not silently dropped here -- the caller (the junction package)
// is expected to hand in already-deduplicated input, same as the teacher's
// Path64 callers are expected to pre-filter via stripDuplicates before
// handing paths to the offsetting engine.
func NewPolyLine(pts []Pt2D) (PolyLine, error) {
	if len(pts) < 2 {
		return nil, ErrDegeneratePolyLine
	}
	allSame := true
	for _, p := range pts[1:] {
		if !p.Equals(pts[0]) {
			allSame = false
			break
		}
	}
	if allSame {
		return nil, ErrDegeneratePolyLine
	}
	out := make(PolyLine, len(pts))
	copy(out, pts)
	return out, nil
}

// Length returns the total arc length of the polyline.
func (pl PolyLine) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Dist(pl[i])
	}
	return total
}

// FirstPt returns the first point.
func (pl PolyLine) FirstPt() Pt2D {
	return pl[0]
}

// LastPt returns the last point.
func (pl PolyLine) LastPt() Pt2D {
	return pl[len(pl)-1]
}

// Reversed returns a new polyline with the point order reversed.
func (pl PolyLine) Reversed() PolyLine {
	out := make(PolyLine, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Lines enumerates the polyline's segments in order.
func (pl PolyLine) Lines() []Segment {
	segs := make([]Segment, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		segs = append(segs, Segment{A: pl[i-1], B: pl[i]})
	}
	return segs
}

// Intersection returns the first point (by segment order, then by distance
// along the leading segment) where pl crosses other, along with the index
// of the segment of pl that produced it.
func (pl PolyLine) Intersection(other PolyLine) (Pt2D, int, bool) {
	otherLines := other.Lines()
	for i, seg := range pl.Lines() {
		var best Pt2D
		bestDist := math.Inf(1)
		found := false
		for _, oseg := range otherLines {
			if pt, ok := seg.Intersection(oseg); ok {
				d := seg.A.Dist(pt)
				if d < bestDist {
					bestDist = d
					best = pt
					found = true
				}
			}
		}
		if found {
			return best, i, true
		}
	}
	return Pt2D{}, -1, false
}

// DistAlongOfPoint returns how far along pl the point p falls (it must lie
// on, or within Epsilon of, one of pl's segments) and the tangent angle of
// the polyline at that position.
func (pl PolyLine) DistAlongOfPoint(p Pt2D) (float64, Angle, bool) {
	travelled := 0.0
	for _, seg := range pl.Lines() {
		segLen := seg.Length()
		if isPointOnSegment(p, seg.A, seg.B) {
			return travelled + seg.A.Dist(p), seg.Angle(), true
		}
		travelled += segLen
	}
	return 0, 0, false
}

// GetSliceStartingAt returns the portion of pl from p (which must lie on
// pl) to its end. Returns ok=false if p isn't on the polyline or the
// resulting slice would be degenerate.
func (pl PolyLine) GetSliceStartingAt(p Pt2D) (PolyLine, bool) {
	for i, seg := range pl.Lines() {
		if !isPointOnSegment(p, seg.A, seg.B) {
			continue
		}
		pts := []Pt2D{p}
		if !p.Equals(seg.B) {
			pts = append(pts, pl[i+1:]...)
		} else {
			pts = append(pts, pl[i+2:]...)
		}
		out, err := NewPolyLine(pts)
		if err != nil {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

// ExtendToLength returns pl extended in a straight line past its last
// point so the result has exactly length d. If pl is already at least d
// long, it's returned unchanged (the junction package's outerCorner
// relies on this: extending an already-long edge must be a no-op, not
// a truncation).
func (pl PolyLine) ExtendToLength(d float64) PolyLine {
	cur := pl.Length()
	if d <= cur {
		return pl
	}
	extra := d - cur
	last := pl[len(pl)-1]
	secondLast := pl[len(pl)-2]
	dir := secondLast.Angle(last)
	newLast := last.Project(extra, dir)
	out := make(PolyLine, len(pl))
	copy(out, pl)
	out[len(out)-1] = newLast
	return out
}

// ShiftLeft returns pl offset perpendicular to its direction of travel by
// dist meters to the left.
func (pl PolyLine) ShiftLeft(dist float64) (PolyLine, error) {
	return pl.shift(dist)
}

// ShiftRight returns pl offset perpendicular to its direction of travel by
// dist meters to the right.
func (pl PolyLine) ShiftRight(dist float64) (PolyLine, error) {
	return pl.shift(-dist)
}

// shift is the shared engine behind ShiftLeft/ShiftRight: offset every
// segment along its own left-hand normal, then at each interior vertex
// reconnect the two adjacent offset segments by intersecting their
// supporting infinite lines (a miter join), falling back to the midpoint of
// the two raw offset endpoints when the segments are too close to parallel for that
// intersection to be numerically meaningful. This mirrors, in spirit, the
// per-edge-normal-then-join approach of the teacher's offset engine
// (offset_internal.go's GetPerpendic + join handling), simplified here
// because road edges are open polylines with only two join styles that
// matter (straight-through and mild bends), not the full square/round/miter
// join taxonomy a general polygon offsetter needs.
func (pl PolyLine) shift(dist float64) (PolyLine, error) {
	if len(pl) < 2 {
		return nil, ErrDegeneratePolyLine
	}
	if dist == 0 {
		out := make(PolyLine, len(pl))
		copy(out, pl)
		return out, nil
	}

	segs := pl.Lines()
	offsetSegs := make([]Segment, len(segs))
	for i, s := range segs {
		normal := s.Angle().Rotate(90)
		offsetSegs[i] = Segment{
			A: s.A.Project(dist, normal),
			B: s.B.Project(dist, normal),
		}
	}

	out := make(PolyLine, 0, len(pl))
	out = append(out, offsetSegs[0].A)
	for i := 0; i < len(offsetSegs)-1; i++ {
		cur, next := offsetSegs[i], offsetSegs[i+1]
		joint, err := NewInfiniteLineFromPtAngle(cur.A, cur.Angle()).Intersection(
			NewInfiniteLineFromPtAngle(next.A, next.Angle()))
		if err != nil {
			// Near-parallel segments: the raw endpoints already agree closely
			// enough, just take the midpoint as a bevel.
			mid := Pt2D{X: (cur.B.X + next.A.X) / 2, Y: (cur.B.Y + next.A.Y) / 2}
			out = append(out, mid)
			continue
		}
		out = append(out, joint)
	}
	out = append(out, offsetSegs[len(offsetSegs)-1].B)

	result, err := NewPolyLine(out)
	if err != nil {
		log.WithError(err).Debug("shift produced a degenerate polyline")
		return nil, err
	}
	return result, nil
}
