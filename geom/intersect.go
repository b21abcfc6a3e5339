package geom

import "math"

// segmentIntersection finds where segment (a1,a2) crosses segment (b1,b2),
// using the same sign-of-cross-product test the teacher's clipper.SegmentIntersection
// uses for its robust integer version, adapted to float64 with an epsilon
// instead of exact zero comparisons. clampToA and clampToB control whether
// the hit must fall within each segment's own bounds, or may land anywhere
// on its infinite extension.
func segmentIntersection(a1, a2, b1, b2 Pt2D, clampToA, clampToB bool) (Pt2D, bool) {
	d1x, d1y := a2.X-a1.X, a2.Y-a1.Y
	d2x, d2y := b2.X-b1.X, b2.Y-b1.Y

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < Epsilon {
		// Parallel or collinear. Collinear overlap isn't a useful answer for
		// this kernel (center-lines are never meant to run along each
		// other), so treat it as no intersection like the rest of the
		// polyline-trim algorithm does.
		return Pt2D{}, false
	}

	dx, dy := b1.X-a1.X, b1.Y-a1.Y
	t := (dx*d2y - dy*d2x) / denom
	u := (dx*d1y - dy*d1x) / denom

	if clampToA && (t < -Epsilon || t > 1+Epsilon) {
		return Pt2D{}, false
	}
	if clampToB && (u < -Epsilon || u > 1+Epsilon) {
		return Pt2D{}, false
	}

	return Pt2D{X: a1.X + t*d1x, Y: a1.Y + t*d1y}, true
}

// lineSegmentIntersection finds where the finite segment seg crosses the
// infinite line l, requiring the hit to fall within seg's own bounds.
func lineSegmentIntersection(l InfiniteLine, seg Segment) (Pt2D, bool) {
	far := l.Pt.Project(1e9, l.Dir)
	near := l.Pt.Project(-1e9, l.Dir)
	return segmentIntersection(seg.A, seg.B, near, far, true, false)
}
