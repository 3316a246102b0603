// Package waterfall_test validates the MST, regional minima and the full
// watershed levels on small strips with hand-checkable basins.
package waterfall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/builder"
	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/waterfall"
)

// edgeCosts builds a cost function defined on the listed edges only;
// everything else is priced "no cost" and stays out of the MST.
func edgeCosts(costs map[int]float64) core.CostFunc {
	return func(d core.Dart) (float64, bool) {
		c, ok := costs[d.EdgeLabel()]

		return c, ok
	}
}

func TestMinimumSpanningTree_DropsCycleEdge(t *testing.T) {
	g, err := builder.GridMap(2, 2)
	require.NoError(t, err)

	// The four cells form a cycle in the face-adjacency graph; the most
	// expensive edge (11) must be dropped.
	cost := edgeCosts(map[int]float64{3: 1, 4: 2, 8: 3, 11: 4})
	mst := waterfall.MinimumSpanningTree(g.Map, cost)

	assert.Len(t, mst, 3)
	assert.Contains(t, mst, 3)
	assert.Contains(t, mst, 4)
	assert.Contains(t, mst, 8)
	assert.NotContains(t, mst, 11)
}

func TestRegionalMinima_StrictMinimaOnly(t *testing.T) {
	g, err := builder.GridMap(4, 1, builder.WithBorderProtection())
	require.NoError(t, err)

	// Faces 1..4 in a row; interior edges 10 (1|2), 11 (2|3), 12 (3|4).
	// Edges 10 and 12 are the two basins' minima; 11 is the saddle.
	cost := edgeCosts(map[int]float64{10: 1, 11: 10, 12: 1})
	mst := waterfall.MinimumSpanningTree(g.Map, cost)
	require.Len(t, mst, 3)

	minima := waterfall.RegionalMinima(g.Map, mst)
	assert.Equal(t, map[int]int{1: 10, 2: 10, 3: 12, 4: 12}, minima)
}

func TestRegionalMinima_PlateauHasNone(t *testing.T) {
	g, err := builder.GridMap(3, 1, builder.WithBorderProtection())
	require.NoError(t, err)

	// Equal costs disqualify both edges: neither is a strict minimum.
	cost := edgeCosts(map[int]float64{8: 1, 9: 1})
	mst := waterfall.MinimumSpanningTree(g.Map, cost)
	require.Len(t, mst, 2)

	minima := waterfall.RegionalMinima(g.Map, mst)
	assert.Empty(t, minima)
}

func TestStep_MergesBasins(t *testing.T) {
	g, err := builder.GridMap(3, 1, builder.WithBorderProtection())
	require.NoError(t, err)
	m := g.Map

	// One basin: edge 8 is the single regional minimum and the flood pulls
	// face 3 in across edge 9.
	cost := edgeCosts(map[int]float64{8: 1, 9: 5})
	merges, err := waterfall.Step(m, cost)
	require.NoError(t, err)
	assert.Equal(t, 2, merges)
	assert.Equal(t, 2, m.FaceCount())
	assert.NoError(t, m.CheckConsistency())
}

func TestStep_PlateauIsFixedPoint(t *testing.T) {
	g, err := builder.GridMap(3, 1, builder.WithBorderProtection())
	require.NoError(t, err)

	cost := edgeCosts(map[int]float64{8: 1, 9: 1})
	merges, err := waterfall.Step(g.Map, cost)
	require.NoError(t, err)
	assert.Zero(t, merges)
	assert.Equal(t, 4, g.Map.FaceCount())
}

func TestStep_ProtectedEdgeSkipped(t *testing.T) {
	g, err := builder.GridMap(3, 1, builder.WithBorderProtection())
	require.NoError(t, err)
	m := g.Map

	// The flood labels all three faces into one basin, but the protected
	// saddle edge must not be committed.
	m.Edge(9).SetFlag(core.ScissorProtection)
	cost := edgeCosts(map[int]float64{8: 1, 9: 5})
	merges, err := waterfall.Step(m, cost)
	require.NoError(t, err)
	assert.Equal(t, 1, merges)
	assert.NotNil(t, m.Edge(9))
	assert.Equal(t, 3, m.FaceCount())
	assert.NoError(t, m.CheckConsistency())
}

func TestRun_SegmentationHierarchy(t *testing.T) {
	g, err := builder.GridMap(4, 1, builder.WithBorderProtection())
	require.NoError(t, err)
	m := g.Map

	// Level 1 merges each basin (faces 1+2 and 3+4); level 2 merges the two
	// basins across the saddle; level 3 finds nothing left.
	cost := edgeCosts(map[int]float64{10: 1, 11: 10, 12: 1})
	counts, err := waterfall.Run(m, cost, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, counts)
	assert.Equal(t, 2, m.FaceCount())
	assert.NoError(t, m.CheckConsistency())
}

func TestRun_RefusesBadLevels(t *testing.T) {
	g, err := builder.GridMap(2, 2)
	require.NoError(t, err)

	_, err = waterfall.Run(g.Map, edgeCosts(nil), 0)
	assert.ErrorIs(t, err, waterfall.ErrBadLevels)
}
