package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/builder"
	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/merge"
)

// costByLabel prices every dart with its edge label, so the merger
// processes edges in ascending label order.
func costByLabel(d core.Dart) (float64, bool) {
	return float64(d.EdgeLabel()), true
}

func TestMerger_FaceCountDropsByOnePerMerge(t *testing.T) {
	g, err := builder.RingMap()
	require.NoError(t, err)
	m := g.Map

	merger := merge.NewMerger(m, costByLabel)
	for {
		before := m.FaceCount()
		merged, err := merger.MergeStep()
		if err != nil {
			assert.ErrorIs(t, err, merge.ErrExhausted)

			break
		}
		if merged {
			assert.Equal(t, before-1, m.FaceCount())
		} else {
			assert.Equal(t, before, m.FaceCount())
		}
	}
	assert.NoError(t, m.CheckConsistency())
}

func TestMerger_ProtectedEdgesSurvive(t *testing.T) {
	g, err := builder.RingMap()
	require.NoError(t, err)
	m := g.Map

	count, err := merge.NewMerger(m, costByLabel).Merge()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// All four cells collapse into one region; the protected border ring
	// survives as four fused edges around four corner nodes.
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, 4, m.EdgeCount())
	assert.Equal(t, 4, m.NodeCount())
	for _, e := range m.Edges() {
		assert.True(t, e.Flag(core.BorderProtection), "edge %d", e.Label())
	}
	assert.NoError(t, m.CheckConsistency())
}

func TestMerger_Deterministic(t *testing.T) {
	run := func() (int, []int) {
		g, err := builder.RingMap()
		require.NoError(t, err)
		merger := merge.NewMerger(g.Map, costByLabel)
		_, err = merger.Merge()
		require.NoError(t, err)
		var faces []int
		for _, f := range g.Map.Faces() {
			faces = append(faces, f.Label())
		}

		return merger.StepCount(), faces
	}

	steps1, faces1 := run()
	steps2, faces2 := run()
	assert.Equal(t, steps1, steps2)
	assert.Equal(t, faces1, faces2)
}

func TestMerger_CostLog(t *testing.T) {
	g, err := builder.RingMap()
	require.NoError(t, err)

	merger := merge.NewMerger(g.Map, costByLabel, merge.WithCostLog())
	count, err := merger.Merge()
	require.NoError(t, err)

	log := merger.CostLog()
	require.Len(t, log, count)
	for i := 1; i < len(log); i++ {
		assert.LessOrEqual(t, log[i-1], log[i], "merge costs must be non-decreasing")
	}
}

func TestMergeToStep_StopsAtCounter(t *testing.T) {
	g, err := builder.RingMap()
	require.NoError(t, err)

	merger := merge.NewMerger(g.Map, costByLabel)
	count, err := merger.MergeToStep(2)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, merger.StepCount())
	assert.Equal(t, 3, g.Map.FaceCount())
}

func TestThresholdMergeCost_StopsBelowBound(t *testing.T) {
	g, err := builder.GridMap(2, 2)
	require.NoError(t, err)
	m := g.Map

	// Edges 1 and 2 cost below the bound; each pop triggers a transaction
	// that also removes the edges shared with the already-merged region.
	count, merger, err := merge.ThresholdMergeCost(m, costByLabel, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 3, m.FaceCount())
	assert.Nil(t, m.Face(1))
	assert.Nil(t, m.Face(2))
	assert.NotNil(t, m.Face(3))
	assert.NotNil(t, m.Face(4))
	assert.NoError(t, m.CheckConsistency())

	// The same merger continues when the bound is raised.
	more, err := merger.MergeToCost(100)
	require.NoError(t, err)
	assert.Positive(t, more)
	assert.NoError(t, m.CheckConsistency())
}

func TestMerger_ExhaustedQueue(t *testing.T) {
	g, err := builder.GridMap(1, 1)
	require.NoError(t, err)

	never := func(core.Dart) (float64, bool) { return 0, false }
	merger := merge.NewMerger(g.Map, never)
	_, err = merger.MergeStep()
	assert.ErrorIs(t, err, merge.ErrExhausted)
}
