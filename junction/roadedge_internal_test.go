package junction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmstreets/intersectgeom/geom"
)

func mustPolyLine(t *testing.T, pts ...geom.Pt2D) geom.PolyLine {
	t.Helper()
	pl, err := geom.NewPolyLine(pts)
	require.NoError(t, err)
	return pl
}

func TestComputeEdgesInterleavesPerRoad(t *testing.T) {
	const j IntersectionID = 1
	roads := []InputRoad{
		{ID: 1, SrcI: 2, DstI: j, CenterLine: mustPolyLine(t, geom.Pt2D{X: -10}, geom.Pt2D{})},
		{ID: 2, SrcI: j, DstI: 3, CenterLine: mustPolyLine(t, geom.Pt2D{}, geom.Pt2D{X: 10})},
	}
	for i := range roads {
		roads[i].TotalWidth = 6
	}

	edges := computeEdges(roads, j)
	require.Len(t, edges, 4)
	assert.Equal(t, RoadID(1), edges[0].Road)
	assert.Equal(t, RoadID(1), edges[1].Road)
	assert.Equal(t, RoadID(2), edges[2].Road)
	assert.Equal(t, RoadID(2), edges[3].Road)
	assert.NotEqual(t, edges[0].Side, edges[1].Side)
}

func TestWithCyclicFirstAppendsFirstEdge(t *testing.T) {
	edges := []RoadEdge{{Road: 1}, {Road: 2}, {Road: 3}}
	cyclic := withCyclicFirst(edges)
	require.Len(t, cyclic, 4)
	assert.Equal(t, cyclic[0], cyclic[3])
}

func TestEdgePairsWrapsAround(t *testing.T) {
	edges := []RoadEdge{{Road: 1}, {Road: 2}, {Road: 3}}
	pairs := edgePairs(edges)
	require.Len(t, pairs, 3)
	assert.Equal(t, RoadID(3), pairs[2][0].Road)
	assert.Equal(t, RoadID(1), pairs[2][1].Road)
}

func TestTrimFromEndShortensTowardsJunction(t *testing.T) {
	pl := mustPolyLine(t, geom.Pt2D{}, geom.Pt2D{X: 10})
	trimmed, ok := trimFromEnd(pl, 3)
	require.True(t, ok)
	assert.InDelta(t, 7, trimmed.Length(), 1e-9)
	assert.InDelta(t, 7, trimmed.LastPt().X, 1e-9)
}

func TestTrimFromEndFailsWhenLongerThanPolyline(t *testing.T) {
	pl := mustPolyLine(t, geom.Pt2D{}, geom.Pt2D{X: 10})
	_, ok := trimFromEnd(pl, 20)
	assert.False(t, ok)
}
