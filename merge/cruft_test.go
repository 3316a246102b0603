package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/builder"
	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/merge"
)

func TestRemoveCruft_Degree2Nodes(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// A bare MergeFaces leaves node 2 at degree 2.
	_, err := m.MergeFaces(m.Dart(8))
	require.NoError(t, err)
	require.Equal(t, 2, m.Node(2).Degree())

	count, err := merge.RemoveCruft(m, merge.CruftDegree2Nodes, merge.WithConsistencyChecks())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Nil(t, m.Node(2))
	assert.NoError(t, m.CheckConsistency())
}

func TestRemoveCruft_IsolatedNodesAfterFullMerge(t *testing.T) {
	g := grid2x2(t)
	m := g.Map

	// Without protection the merger consumes every edge; bridge removals
	// leave isolated nodes behind.
	_, err := merge.NewMerger(m, costByLabel).Merge()
	require.NoError(t, err)
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 0, m.EdgeCount())
	stranded := m.NodeCount()
	require.Positive(t, stranded)

	count, err := merge.RemoveCruft(m, merge.CruftIsolatedNodes)
	require.NoError(t, err)
	assert.Equal(t, stranded, count)
	assert.Equal(t, 0, m.NodeCount())
}

func TestRemoveCruft_SkipsProtectedEdges(t *testing.T) {
	g, err := builder.RingMap()
	require.NoError(t, err)
	m := g.Map

	// CruftEdges merges across every removable edge: the four interior
	// edges go, the protected border stays.
	count, err := merge.RemoveCruft(m, merge.CruftAll)
	require.NoError(t, err)
	assert.Positive(t, count)
	assert.Equal(t, 2, m.FaceCount())
	for _, e := range m.Edges() {
		assert.True(t, e.Flag(core.BorderProtection), "edge %d", e.Label())
	}
	assert.NoError(t, m.CheckConsistency())
}
