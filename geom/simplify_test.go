package geom

import "testing"

func TestSimplifyRDPDropsNearlyCollinearPoints(t *testing.T) {
	points := []Pt2D{
		{X: 0, Y: 0},
		{X: 5, Y: 0.001},
		{X: 10, Y: 0},
	}
	out := SimplifyRDP(points, 0.1)
	if len(out) != 2 {
		t.Fatalf("expected the nearly-collinear midpoint to be dropped, got %d points", len(out))
	}
}

func TestSimplifyRDPKeepsSignificantDetour(t *testing.T) {
	points := []Pt2D{
		{X: 0, Y: 0},
		{X: 5, Y: 5},
		{X: 10, Y: 0},
	}
	out := SimplifyRDP(points, 0.1)
	if len(out) != 3 {
		t.Fatalf("expected the detour point to survive, got %d points", len(out))
	}
}

func TestSimplifyRDPShortInputIsUnchanged(t *testing.T) {
	points := []Pt2D{{X: 0, Y: 0}, {X: 1, Y: 1}}
	out := SimplifyRDP(points, 0.1)
	if len(out) != 2 {
		t.Fatalf("expected two points unchanged, got %d", len(out))
	}
}
