// Package srg_test validates seeded region growing and the static label
// flood on the sealed four-cell ring fixture.
package srg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/builder"
	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/srg"
)

// ringFixture builds the sealed 2×2 ring and returns it with a cost
// function defined on the four interior edges only:
//
//	face 1 — face 2: edge 8, cost 1
//	face 2 — face 4: edge 4, cost 2
//	face 3 — face 4: edge 11, cost 1
//	face 1 — face 3: edge 3, cost 3
//
// Border edges are priced "never merge".
func ringFixture(t *testing.T) (*builder.Grid, core.CostFunc) {
	t.Helper()
	g, err := builder.RingMap()
	require.NoError(t, err)

	costs := map[int]float64{8: 1, 4: 2, 11: 1, 3: 3}
	cost := func(d core.Dart) (float64, bool) {
		c, ok := costs[d.EdgeLabel()]

		return c, ok
	}

	return g, cost
}

func TestGrow_NoSeeds(t *testing.T) {
	g, cost := ringFixture(t)

	_, err := srg.NewGrower(g.Map, cost).Grow()
	assert.ErrorIs(t, err, srg.ErrNoSeeds)
}

func TestGrow_AbsorbsCheapestFirst(t *testing.T) {
	g, cost := ringFixture(t)
	m := g.Map

	// Seed the bottom-left cell; growth must absorb its cheapest neighbor
	// first (face 2 at cost 1), then face 4 (cost 2), then face 3 — whose
	// queued cost drops from 3 to 1 once face 4 joins the region.
	m.Face(1).SetFlag(core.SRGSeed)
	merges, err := srg.NewGrower(m, cost).Grow()
	require.NoError(t, err)
	assert.Equal(t, 3, merges)

	assert.Equal(t, 2, m.FaceCount())
	survivor := m.Face(1)
	require.NotNil(t, survivor)
	assert.True(t, survivor.IsSeed())
	assert.Nil(t, m.Face(2))
	assert.Nil(t, m.Face(3))
	assert.Nil(t, m.Face(4))

	// No border-candidate marks survive the pass.
	for _, f := range m.Faces() {
		assert.False(t, f.IsBorderCandidate(), "face %d", f.Label())
	}
	assert.NoError(t, m.CheckConsistency())
}

func TestGrow_StaticPolicyKeepsFirstOffer(t *testing.T) {
	g, cost := ringFixture(t)
	m := g.Map

	// Under the static policy queued candidates are never re-priced; the
	// pass still absorbs the whole ring, only the pop order differs.
	m.Face(1).SetFlag(core.SRGSeed)
	merges, err := srg.NewGrower(m, cost, srg.WithPolicy(srg.PolicyStatic)).Grow()
	require.NoError(t, err)
	assert.Equal(t, 3, merges)
	assert.Equal(t, 2, m.FaceCount())
	assert.NoError(t, m.CheckConsistency())
}

func TestGrow_TwoSeedsPartition(t *testing.T) {
	g, cost := ringFixture(t)
	m := g.Map

	// Opposite corners both seeded: each absorbs one neighbor, then the two
	// seed regions stand off (seeds never absorb seeds). The corner seed 4
	// lives on through the smaller survivor label 3.
	m.Face(1).SetFlag(core.SRGSeed)
	m.Face(4).SetFlag(core.SRGSeed)
	merges, err := srg.NewGrower(m, cost).Grow()
	require.NoError(t, err)
	assert.Equal(t, 2, merges)
	assert.Equal(t, 3, m.FaceCount())
	require.NotNil(t, m.Face(1))
	require.NotNil(t, m.Face(3))
	assert.Nil(t, m.Face(4))
	assert.True(t, m.Face(1).IsSeed())
	assert.True(t, m.Face(3).IsSeed())
	assert.NoError(t, m.CheckConsistency())
}

func TestGrow_ProtectedNeighborStaysOut(t *testing.T) {
	g, cost := ringFixture(t)
	m := g.Map

	// Sealing face 4 protects edges 4 and 11, so only face 2 (via edge 8)
	// and face 3 (via edge 3) can join the seed.
	m.ProtectFace(m.Face(4), true)
	m.Face(1).SetFlag(core.SRGSeed)

	merges, err := srg.NewGrower(m, cost).Grow()
	require.NoError(t, err)
	assert.Equal(t, 2, merges)
	assert.NotNil(t, m.Face(4))
	assert.Equal(t, 3, m.FaceCount())
	assert.NoError(t, m.CheckConsistency())
}

func TestFlood_NoSeeds(t *testing.T) {
	g, cost := ringFixture(t)

	_, err := srg.Flood(g.Map, cost, nil)
	assert.ErrorIs(t, err, srg.ErrNoSeeds)
}

func TestFlood_UnknownSeedFace(t *testing.T) {
	g, cost := ringFixture(t)

	_, err := srg.Flood(g.Map, cost, map[int]int{99: 1})
	assert.ErrorIs(t, err, srg.ErrFaceNotFound)
}

func TestFlood_FirstOfferSticks(t *testing.T) {
	g, cost := ringFixture(t)

	// Two seed regions; the flood is static, so face 3 keeps the label of
	// the region that offered it first (region 100 via edge 3, offered
	// during init), even though region 200 reaches it cheaper later.
	labels, err := srg.Flood(g.Map, cost, map[int]int{1: 100, 4: 200})
	require.NoError(t, err)

	assert.Equal(t, map[int]int{1: 100, 2: 100, 3: 100, 4: 200}, labels)
}

func TestFlood_DoesNotMutate(t *testing.T) {
	g, cost := ringFixture(t)
	m := g.Map

	_, err := srg.Flood(m, cost, map[int]int{1: 7})
	require.NoError(t, err)
	assert.Equal(t, 5, m.FaceCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.NoError(t, m.CheckConsistency())
}

func TestFlood_RestrictedSubgraph(t *testing.T) {
	g, _ := ringFixture(t)

	// Only edge 8 is passable: the flood reaches face 2 and nothing else.
	cost := func(d core.Dart) (float64, bool) {
		if d.EdgeLabel() != 8 {
			return 0, false
		}

		return 1, true
	}
	labels, err := srg.Flood(g.Map, cost, map[int]int{1: 5})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 5, 2: 5}, labels)
}
