package geom

// Ring is a simple closed polygon boundary: the first and last point are
// implicitly the same vertex and are not both stored. A Ring always has at
// least three unique points.
type Ring []Pt2D

// Polygon is just a named Ring, kept distinct so exported signatures that
// hand back a finished shape (as opposed to a ring still under
// construction) read clearly.
type Polygon = Ring

// NewRingDeduping builds a Ring from a closed point sequence (first point
// repeated as the last), dropping consecutive duplicates the way the
// teacher's Ring::deduping_new contract describes. Fails with
// ErrDegenerateRing if fewer than three unique points remain.
func NewRingDeduping(points []Pt2D) (Ring, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	deduped := make([]Pt2D, 0, len(points))
	for _, p := range points {
		if len(deduped) > 0 && p.Equals(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, p)
	}
	// The input is a closed loop (first point repeated at the end); drop
	// that repeat now that it has served to dedupe against its neighbor.
	if len(deduped) > 1 && deduped[0].Equals(deduped[len(deduped)-1]) {
		deduped = deduped[:len(deduped)-1]
	}

	if len(deduped) < 3 {
		return nil, ErrDegenerateRing
	}
	return Ring(deduped), nil
}

// Polygon returns r as a Polygon (an identity conversion; see the Polygon
// type doc).
func (r Ring) Polygon() Polygon {
	return r
}

// Area returns the signed area of the ring (positive for counter-clockwise
// vertex order), via the shoelace formula.
func (r Ring) Area() float64 {
	area := 0.0
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return area / 2
}

// Lines enumerates the ring's edges, including the closing edge from the
// last point back to the first.
func (r Ring) Lines() []Segment {
	n := len(r)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		segs = append(segs, Segment{A: r[i], B: r[j]})
	}
	return segs
}

// Contains reports whether p is inside or on the boundary of r, within
// Epsilon, using a standard even-odd ray cast. Grounded on the teacher's
// PointInPolygon/WindingNumber pair in geometry.go, collapsed to the single
// fill rule this kernel needs (there's no boolean-op fill-rule selection
// here, just "is this trim endpoint inside the junction polygon").
func (r Ring) Contains(p Pt2D) bool {
	for _, seg := range r.Lines() {
		if isPointOnSegment(p, seg.A, seg.B) {
			return true
		}
	}

	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := r[i], r[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
