package junction_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmstreets/intersectgeom/geom"
	"github.com/osmstreets/intersectgeom/junction"
)

func mustPL(t *testing.T, pts ...geom.Pt2D) geom.PolyLine {
	t.Helper()
	pl, err := geom.NewPolyLine(pts)
	require.NoError(t, err)
	return pl
}

func pt(x, y float64) geom.Pt2D { return geom.Pt2D{X: x, Y: y} }

const here junction.IntersectionID = 1

// ringIsSimple reports whether no two non-adjacent edges of r cross. Adjacent
// edges share a vertex and are excluded, since that shared point would
// otherwise register as a spurious self-intersection.
func ringIsSimple(r geom.Ring) bool {
	segs := r.Lines()
	n := len(segs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if _, ok := segs[i].Intersection(segs[j]); ok {
				return false
			}
		}
	}
	return true
}

// S1: right-angle cross, four roads of equal width meeting at the origin.
// Each arm trims by exactly its half-width (5) off a 20 m input, and the
// polygon is the 10x10 square bounded by the trimmed edges.
func TestScenarioRightAngleCross(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: here, CenterLine: mustPL(t, pt(-20, 0), pt(0, 0)), TotalWidth: 10},
		{ID: 2, SrcI: here, DstI: 3, CenterLine: mustPL(t, pt(0, 0), pt(0, 20)), TotalWidth: 10},
		{ID: 3, SrcI: here, DstI: 4, CenterLine: mustPL(t, pt(0, 0), pt(20, 0)), TotalWidth: 10},
		{ID: 4, SrcI: here, DstI: 5, CenterLine: mustPL(t, pt(0, 0), pt(0, -20)), TotalWidth: 10},
	}

	res, err := junction.Solve(here, roads, nil, nil)
	require.NoError(t, err)

	require.Len(t, res.IntersectionPolygon, 4)
	assert.True(t, ringIsSimple(res.IntersectionPolygon))
	assert.InDelta(t, 100, math.Abs(res.IntersectionPolygon.Area()), 1e-6)

	for _, r := range roads {
		trimmed, ok := res.TrimmedCenterPts[r.ID]
		require.True(t, ok)
		assert.InDelta(t, r.CenterLine.Length()-r.HalfWidth(), trimmed.Length(), 1e-6)
	}
}

// S2: a tee, three roads each ending exactly half-width short of the shared
// point. Nothing further needs trimming, and the polygon collapses to the
// 10x10 square spec.md §8 gives an area for.
func TestScenarioTee(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: here, CenterLine: mustPL(t, pt(0, 50), pt(0, 5)), TotalWidth: 10},
		{ID: 2, SrcI: here, DstI: 3, CenterLine: mustPL(t, pt(5, 0), pt(50, 0)), TotalWidth: 10},
		{ID: 3, SrcI: 4, DstI: here, CenterLine: mustPL(t, pt(0, -50), pt(0, -5)), TotalWidth: 10},
	}

	res, err := junction.Solve(here, roads, nil, nil)
	require.NoError(t, err)
	require.Len(t, res.TrimmedCenterPts, 3)
	assert.True(t, ringIsSimple(res.IntersectionPolygon))
	assert.InDelta(t, 100, math.Abs(res.IntersectionPolygon.Area()), 1e-6)

	for _, r := range roads {
		trimmed, ok := res.TrimmedCenterPts[r.ID]
		require.True(t, ok)
		assert.InDelta(t, 45, trimmed.Length(), 1e-6)
	}
}

// S3: terminus, a single dead-end road.
func TestScenarioTerminus(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: here, CenterLine: mustPL(t, pt(-20, 0), pt(0, 0)), TotalWidth: 10},
	}

	res, err := junction.Solve(here, roads, nil, nil)
	require.NoError(t, err)
	require.Len(t, res.IntersectionPolygon, 4)

	trimmed := res.TrimmedCenterPts[1]
	assert.InDelta(t, 20-5, trimmed.Length(), 1e-6)
}

// S4: an acute on/off-ramp merge. The ramp meets the edges of the main
// road's western arm (road 1) at 15 degrees, well inside RampMaxAngleDegrees (30), and its shifted
// edges cross the main road's edges within RampMaxGapMeters (0.5) of their
// own tip, so this is one of the ~15% of junctions §4.6 actually handles
// rather than falling through to the general-case trimmer.
func TestScenarioAcuteMerge(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: here, CenterLine: mustPL(t, pt(-100, 0), pt(0, 0)), TotalWidth: 10},
		{ID: 2, SrcI: here, DstI: 3, CenterLine: mustPL(t, pt(0, 0), pt(100, 0)), TotalWidth: 10},
		{ID: 3, SrcI: 4, DstI: here, CenterLine: mustPL(t, pt(-6.9319, 0.4676), pt(-5, -0.05)), TotalWidth: 10.251},
	}

	res, err := junction.Solve(here, roads, nil, nil)
	require.NoError(t, err)

	assert.Len(t, res.IntersectionPolygon, 4)
	assert.True(t, ringIsSimple(res.IntersectionPolygon))
	require.Len(t, res.TrimmedCenterPts, 3)

	ramp := res.TrimmedCenterPts[3]
	assert.InDelta(t, roads[2].CenterLine.Length()+roads[2].HalfWidth(), ramp.Length(), 0.05,
		"ramp center-line extends past its junction end by its own half-width, per §4.6")

	mainA := res.TrimmedCenterPts[1]
	assert.InDelta(t, roads[0].CenterLine.Length()-roads[0].HalfWidth()/4, mainA.Length(), 0.05)

	mainB := res.TrimmedCenterPts[2]
	assert.InDelta(t, roads[1].CenterLine.Length(), mainB.Length(), 1e-6)
}

// S5: an empty intersection must fail, not silently produce an empty result.
func TestScenarioEmptyInput(t *testing.T) {
	_, err := junction.Solve(here, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, junction.ErrEmptyIntersection))
}

// S6: a tee whose east road is offset by 1e-9 m, so adjacent edges'
// junction-side endpoints coincide within Epsilon but not exactly -- the
// coincident-first-point workaround in the corner search must still find
// the shared corner.
func TestScenarioNearCoincidentEndpoints(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: here, CenterLine: mustPL(t, pt(0, 50), pt(0, 5)), TotalWidth: 10},
		{ID: 2, SrcI: here, DstI: 3, CenterLine: mustPL(t, pt(5, 1e-9), pt(50, 1e-9)), TotalWidth: 10},
		{ID: 3, SrcI: 4, DstI: here, CenterLine: mustPL(t, pt(0, -50), pt(0, -5)), TotalWidth: 10},
	}

	res, err := junction.Solve(here, roads, nil, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.IntersectionPolygon), 3)
}

// Idempotence of the pre-trimmed handler: feeding its own trimmed edges
// back through it with the same pretrim map must not change the result.
func TestPretrimmedHandlerIsIdempotent(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: here, CenterLine: mustPL(t, pt(-20, 0), pt(0, 0)), TotalWidth: 10},
		{ID: 2, SrcI: here, DstI: 3, CenterLine: mustPL(t, pt(0, 0), pt(20, 0)), TotalWidth: 10},
		{ID: 3, SrcI: here, DstI: 4, CenterLine: mustPL(t, pt(0, 0), pt(0, 20)), TotalWidth: 10},
	}

	pretrim := map[junction.RoadSide]geom.Pt2D{
		{Road: 1, Side: junction.Left}:  pt(-5, 5),
		{Road: 1, Side: junction.Right}: pt(-5, -5),
	}

	first, err := junction.Solve(here, roads, pretrim, nil)
	require.NoError(t, err)

	roadsAfter := make([]junction.InputRoad, len(roads))
	copy(roadsAfter, roads)
	for i, r := range roadsAfter {
		if trimmed, ok := first.TrimmedCenterPts[r.ID]; ok {
			roadsAfter[i].CenterLine = trimmed
		}
	}

	second, err := junction.Solve(here, roadsAfter, pretrim, nil)
	require.NoError(t, err)

	for id, pl := range first.TrimmedCenterPts {
		other, ok := second.TrimmedCenterPts[id]
		require.True(t, ok)
		assert.InDelta(t, pl.Length(), other.Length(), 1e-3)
	}
}

func TestValidateRejectsRoadNotTouchingIntersection(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: 2, DstI: 3, CenterLine: mustPL(t, pt(0, 0), pt(1, 0)), TotalWidth: 10},
	}
	err := junction.Validate(roads, here)
	assert.True(t, errors.Is(err, junction.ErrUnsortedRoads))
}

func TestValidateRejectsNonPositiveWidth(t *testing.T) {
	roads := []junction.InputRoad{
		{ID: 1, SrcI: here, DstI: 3, CenterLine: mustPL(t, pt(0, 0), pt(1, 0)), TotalWidth: 0},
	}
	err := junction.Validate(roads, here)
	assert.True(t, errors.Is(err, junction.ErrPolylineInvalid))
}
