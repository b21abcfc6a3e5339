package geom

import "math"

// Epsilon is the default tolerance, in meters, used throughout this package
// for point-coincidence checks and near-parallel detection. It is also the
// tolerance the junction kernel uses for its own coincident-endpoint
// workaround (see cornerSearch in the junction package).
const Epsilon = 1e-6

// Pt2D is a point in the plane, in meters.
type Pt2D struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and other.
func (p Pt2D) Dist(other Pt2D) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Hypot(dx, dy)
}

// Equals reports whether p and other are within Epsilon of each other.
func (p Pt2D) Equals(other Pt2D) bool {
	return p.Dist(other) < Epsilon
}

// Angle returns the direction from p to other, as an Angle.
func (p Pt2D) Angle(other Pt2D) Angle {
	return Angle(math.Atan2(other.Y-p.Y, other.X-p.X)).normalized()
}

// Project returns the point dist meters from p in direction a.
func (p Pt2D) Project(dist float64, a Angle) Pt2D {
	return Pt2D{
		X: p.X + dist*math.Cos(float64(a)),
		Y: p.Y + dist*math.Sin(float64(a)),
	}
}

// Offset returns p shifted by (dx, dy).
func (p Pt2D) Offset(dx, dy float64) Pt2D {
	return Pt2D{X: p.X + dx, Y: p.Y + dy}
}

// Angle is a direction in radians, normalized to [0, 2*pi).
type Angle float64

// NewAngle wraps a radian value into the canonical [0, 2*pi) range.
func NewAngle(radians float64) Angle {
	return Angle(radians).normalized()
}

func (a Angle) normalized() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Rotate returns a rotated by degs degrees (positive is counter-clockwise).
func (a Angle) Rotate(degs float64) Angle {
	return NewAngle(float64(a) + degs*math.Pi/180)
}

// Opposite returns the angle pointing the other way.
func (a Angle) Opposite() Angle {
	return a.Rotate(180)
}

// Radians returns the underlying radian value.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Pt2D
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}

// Angle returns the direction from A to B.
func (s Segment) Angle() Angle {
	return s.A.Angle(s.B)
}

// Intersection returns the point where s and other cross, if any. Parallel
// or non-crossing segments report ok=false.
func (s Segment) Intersection(other Segment) (Pt2D, bool) {
	return segmentIntersection(s.A, s.B, other.A, other.B, true, true)
}

// IntersectionInfinite returns the point where s crosses the infinite line
// l. The hit must fall within s itself (within Epsilon of its ends); only
// l is unbounded.
func (s Segment) IntersectionInfinite(l InfiniteLine) (Pt2D, bool) {
	return lineSegmentIntersection(l, s)
}

// InfiniteLine is a line with no endpoints, described by a point it passes
// through and a direction.
type InfiniteLine struct {
	Pt  Pt2D
	Dir Angle
}

// NewInfiniteLineFromPtAngle builds the infinite line through p heading in
// direction a.
func NewInfiniteLineFromPtAngle(p Pt2D, a Angle) InfiniteLine {
	return InfiniteLine{Pt: p, Dir: a}
}

// Intersection returns the unique point where l and other cross. Parallel
// or coincident lines return ErrParallelLines.
func (l InfiniteLine) Intersection(other InfiniteLine) (Pt2D, error) {
	// Represent each line as a point plus a unit direction vector and solve
	// the 2x2 linear system p1 + t*d1 = p2 + u*d2.
	d1x, d1y := math.Cos(l.Dir.Radians()), math.Sin(l.Dir.Radians())
	d2x, d2y := math.Cos(other.Dir.Radians()), math.Sin(other.Dir.Radians())

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < Epsilon {
		return Pt2D{}, ErrParallelLines
	}

	dx := other.Pt.X - l.Pt.X
	dy := other.Pt.Y - l.Pt.Y
	t := (dx*d2y - dy*d2x) / denom

	return Pt2D{X: l.Pt.X + t*d1x, Y: l.Pt.Y + t*d1y}, nil
}

// crossProduct returns the z-component of (b-a) x (c-a), positive when c is
// to the left of the directed line a->b.
func crossProduct(a, b, c Pt2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func isCollinear(a, b, c Pt2D) bool {
	// Normalize by segment length so the tolerance is in meters, not in the
	// raw (length-squared-scaled) units of the cross product.
	segLen := a.Dist(b)
	if segLen < Epsilon {
		return a.Dist(c) < Epsilon
	}
	return math.Abs(crossProduct(a, b, c))/segLen < Epsilon
}

func isPointOnSegment(p, a, b Pt2D) bool {
	if !isCollinear(a, b, p) {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-Epsilon && p.X <= maxX+Epsilon && p.Y >= minY-Epsilon && p.Y <= maxY+Epsilon
}
