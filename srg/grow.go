package srg

import (
	stderrors "errors"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/costqueue"
	"github.com/eldruin/geomap/merge"
)

// Grower carries the state of one seeded region growing pass.
//
// Costs are evaluated on the dart whose left face is the absorbing seed
// region and whose right face is the candidate, so asymmetric cost
// functions see a consistent orientation during initialization and growth.
type Grower struct {
	m     *core.GeoMap
	cost  core.CostFunc
	queue *costqueue.Queue
	cfg   Options
}

// NewGrower prepares a growing pass over the given map and cost function.
// Seed faces must already carry the core.SRGSeed flag.
func NewGrower(m *core.GeoMap, cost core.CostFunc, opts ...Option) *Grower {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grower{m: m, cost: cost, cfg: cfg}
}

// Grow absorbs every reachable non-seed face into an adjacent seed region,
// cheapest candidate first, until the queue runs dry. Each absorbed face
// is merged via the multi-edge merge transaction and the survivor becomes
// a seed itself. Returns the number of merges performed.
//
// Popped candidates that went stale — already a seed, or retired by an
// earlier transaction — are discarded. The merge target is re-derived from
// the live map at pop time: the queue only orders candidates, it is never
// trusted for adjacency.
func (g *Grower) Grow() (int, error) {
	// 1) Collect the initially marked seeds; growing without any is a
	//    caller error, not a refusal.
	var seeds []*core.Face
	for _, f := range g.m.Faces() {
		if f.IsSeed() {
			seeds = append(seeds, f)
		}
	}
	if len(seeds) == 0 {
		return 0, errors.WithStack(ErrNoSeeds)
	}

	// 2) Seed the queue with every neighbor of every seed region.
	g.queue = costqueue.New(g.m.MaxFaceLabel() + 1)
	for _, f := range seeds {
		g.enqueueNeighbors(f)
	}

	// 3) Absorb candidates in cost order.
	merges := 0
	for {
		label, _, ok := g.queue.Pop()
		if !ok {
			break
		}
		f := g.m.Face(label)
		if f == nil || f.IsSeed() {
			continue // stale entry
		}

		d, found := g.bestSeedDart(f)
		if !found {
			// No seed neighbor reachable right now (e.g. everything shared
			// is protected). Unmark so a later promotion can re-enqueue.
			f.ClearFlag(core.SRGBorder)

			continue
		}

		survivor, err := merge.FacesCompletely(d)
		if err != nil {
			if stderrors.Is(err, merge.ErrProtected) {
				f.ClearFlag(core.SRGBorder)

				continue
			}

			return merges, errors.Wrapf(err, "srg: absorbing face %d", label)
		}

		survivor.SetFlag(core.SRGSeed)
		survivor.ClearFlag(core.SRGBorder)
		merges++
		if g.cfg.Logger != nil {
			g.cfg.Logger.WithFields(logrus.Fields{
				"face":     label,
				"survivor": survivor.Label(),
				"step":     merges,
			}).Debug("grow step")
		}
		g.enqueueNeighbors(survivor)
	}

	// 4) Hygiene: no SRGBorder marks survive the pass.
	for _, f := range g.m.Faces() {
		f.ClearFlag(core.SRGBorder)
	}
	if g.cfg.Logger != nil {
		g.cfg.Logger.WithFields(logrus.Fields{
			"operations": merges,
			"faces":      g.m.FaceCount(),
		}).Info("seeded region growing")
	}

	return merges, nil
}

// enqueueNeighbors offers every non-seed neighbor of the seed face as a
// growth candidate. Under the dynamic policy an already-queued candidate
// is lowered to the cheaper cost; under the static policy the first
// assignment sticks.
func (g *Grower) enqueueNeighbors(seed *core.Face) {
	for _, anchor := range seed.Contours() {
		for _, c := range anchor.PhiOrbit() {
			nb := c.RightFace()
			if nb == nil || nb.IsSeed() {
				continue
			}
			cost, ok := g.cost(c)
			if !ok {
				continue
			}
			if nb.IsBorderCandidate() {
				if g.cfg.Policy != PolicyDynamic {
					continue
				}
				if cur, queued := g.queue.Cost(nb.Label()); !queued || cost < cur {
					g.queue.SetCost(nb.Label(), cost)
				}

				continue
			}
			nb.SetFlag(core.SRGBorder)
			g.queue.Insert(nb.Label(), cost)
		}
	}
}

// bestSeedDart re-derives the cheapest seed neighbor of the candidate from
// the live map and returns a dart pointing from that seed region into the
// candidate (seed left, candidate right).
func (g *Grower) bestSeedDart(f *core.Face) (core.Dart, bool) {
	best := core.Dart{}
	bestCost := math.Inf(1)
	found := false
	for _, anchor := range f.Contours() {
		for _, c := range anchor.PhiOrbit() {
			nb := c.RightFace()
			if nb == nil || !nb.IsSeed() {
				continue
			}
			cost, ok := g.cost(c.Alpha())
			if !ok {
				continue
			}
			if !found || cost < bestCost {
				best, bestCost, found = c.Alpha(), cost, true
			}
		}
	}

	return best, found
}
