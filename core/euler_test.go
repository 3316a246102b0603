package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/builder"
	"github.com/eldruin/geomap/core"
)

// grid2x2 builds the unprotected 2×2 lattice: faces 1..4 row-major plus
// the infinite face 0. Interior edges: 8 (1|2), 3 (1|3), 4 (2|4), 11 (3|4).
func grid2x2(t *testing.T) *builder.Grid {
	t.Helper()
	g, err := builder.GridMap(2, 2)
	require.NoError(t, err)

	return g
}

func TestMergeFaces_SurvivorIsSmallerLabel(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// Edge 8 separates face 1 (left of dart -8) and face 2.
	f, err := m.MergeFaces(m.Dart(8))
	require.NoError(t, err)
	assert.Equal(t, 1, f.Label())
	assert.Nil(t, m.Face(2))
	assert.Equal(t, 4, m.FaceCount())
	assert.Nil(t, m.Edge(8))
	assert.NoError(t, m.CheckConsistency())
}

func TestMergeFaces_InfiniteFaceAlwaysSurvives(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// Edge 1 borders face 1 and the infinite face.
	f, err := m.MergeFaces(m.Dart(1))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Label())
	assert.Nil(t, m.Face(1))
	assert.NoError(t, m.CheckConsistency())
}

func TestMergeFaces_RefusesBridge(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// Removing edges 1 and 8 around face 1 turns edge 3 into part of the
	// merged region's boundary; removing 7 as well makes it a bridge.
	_, err := m.MergeFaces(m.Dart(1))
	require.NoError(t, err)
	_, err = m.MergeFaces(m.Dart(8))
	require.NoError(t, err)
	require.True(t, m.Edge(7).IsBridge())

	_, err = m.MergeFaces(m.Dart(7))
	assert.ErrorIs(t, err, core.ErrIsBridge)
}

func TestMergeFaces_RefusesProtected(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	m.Edge(8).SetFlag(core.BorderProtection)
	_, err := m.MergeFaces(m.Dart(8))
	assert.ErrorIs(t, err, core.ErrProtected)
	assert.NotNil(t, m.Edge(8))
	assert.Equal(t, 5, m.FaceCount())
}

func TestRemoveBridge_SplitsContour(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// Merge faces 1 and 2 into the infinite face; edge 7 (left border of
	// cell (0,0)) then has the infinite face on both sides.
	_, err := m.MergeFaces(m.Dart(1))
	require.NoError(t, err)
	_, err = m.MergeFaces(m.Dart(8))
	require.NoError(t, err)
	require.True(t, m.Edge(7).IsBridge())

	f, err := m.RemoveBridge(m.Dart(7))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Label())
	assert.Nil(t, m.Edge(7))
	assert.NoError(t, m.CheckConsistency())
}

func TestRemoveBridge_RefusesNonBridge(t *testing.T) {
	g := grid2x2(t)

	_, err := g.Map.RemoveBridge(g.Map.Dart(8))
	assert.ErrorIs(t, err, core.ErrNotBridge)
}

func TestMergeEdges_FusesDegree2Node(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// Removing edge 8 leaves node 2 with degree 2 (edges 1 and 2).
	_, err := m.MergeFaces(m.Dart(8))
	require.NoError(t, err)
	n := m.Node(2)
	require.Equal(t, 2, n.Degree())

	// Fuse along dart -1 (node 2 → node 1): edge 1 survives and now spans
	// node 3 … node 1.
	e, err := m.MergeEdges(m.Dart(-1))
	require.NoError(t, err)
	assert.Equal(t, 1, e.Label())
	assert.Nil(t, m.Edge(2))
	assert.Nil(t, m.Node(2))
	assert.Equal(t, 3, m.Dart(-1).StartNodeLabel())
	assert.Equal(t, 1, m.Dart(-1).EndNodeLabel())
	assert.NoError(t, m.CheckConsistency())
}

func TestMergeEdges_SurvivorInheritsFlags(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	m.Edge(2).SetFlag(core.ScissorProtection)
	_, err := m.MergeFaces(m.Dart(8))
	require.NoError(t, err)

	e, err := m.MergeEdges(m.Dart(-1))
	require.NoError(t, err)
	assert.True(t, e.Flag(core.ScissorProtection))
}

func TestMergeEdges_RefusesWrongDegree(t *testing.T) {
	g := grid2x2(t)

	// Node 2 has degree 3 in the intact grid.
	_, err := g.Map.MergeEdges(g.Map.Dart(-1))
	assert.ErrorIs(t, err, core.ErrBadDegree)
}

func TestRemoveIsolatedNode(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	err := m.RemoveIsolatedNode(1)
	assert.ErrorIs(t, err, core.ErrNotIsolated)

	// Strip node 1 of both incident edges: merging face 1 away turns edge 7
	// into a bridge, and removing that bridge isolates the corner.
	_, err = m.MergeFaces(m.Dart(1))
	require.NoError(t, err)
	_, err = m.RemoveBridge(m.Dart(7))
	require.NoError(t, err)
	require.Equal(t, 0, m.Node(1).Degree())

	require.NoError(t, m.RemoveIsolatedNode(1))
	assert.Nil(t, m.Node(1))
	assert.NoError(t, m.CheckConsistency())
}

func TestProtectFace_SealsContour(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	f := m.Face(1)
	m.ProtectFace(f, true)
	assert.True(t, f.Flag(core.ProtectedFace))
	for _, l := range []int{1, 8, 3, 7} {
		assert.True(t, m.Edge(l).Flag(core.ContourProtection), "edge %d", l)
	}

	// Protection blocks the operators until cleared.
	_, err := m.MergeFaces(m.Dart(8))
	assert.ErrorIs(t, err, core.ErrProtected)

	m.ProtectFace(f, false)
	_, err = m.MergeFaces(m.Dart(8))
	assert.NoError(t, err)
}

func TestOperators_RequireInitializedMap(t *testing.T) {
	m := core.NewGeoMap()
	_, _ = m.AddNode(core.Vector2{})
	_, _ = m.AddNode(core.Vector2{X: 1})
	_, _ = m.AddEdge(1, 2)

	_, err := m.MergeFaces(core.Dart{})
	assert.ErrorIs(t, err, core.ErrNotInitialized)
	_, err = m.RemoveBridge(core.Dart{})
	assert.ErrorIs(t, err, core.ErrNotInitialized)
	_, err = m.MergeEdges(core.Dart{})
	assert.ErrorIs(t, err, core.ErrNotInitialized)
	assert.ErrorIs(t, m.RemoveIsolatedNode(1), core.ErrNotInitialized)
}
