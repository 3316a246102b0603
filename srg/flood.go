package srg

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/costqueue"
)

// Flood propagates region labels from the seed faces over the whole
// reachable subdivision without mutating it. seeds maps face labels to
// arbitrary region labels; the result assigns a region label to every face
// a cost-defined path connects to a seed (seeds included).
//
// Flood always follows the static policy: each face keeps the cost and
// label of the first region that offered it, matching the merge order a
// static Grow pass would produce. Restricting the pass to a subgraph —
// the waterfall restricts it to MST edges — is done by returning ok=false
// from the cost function for excluded darts.
func Flood(m *core.GeoMap, cost core.CostFunc, seeds map[int]int, opts ...Option) (map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(seeds) == 0 {
		return nil, errors.WithStack(ErrNoSeeds)
	}

	labels := make(map[int]int, m.FaceCount())
	pending := make(map[int]int) // first-offered region label per queued face
	queue := costqueue.New(m.MaxFaceLabel() + 1)

	offer := func(f *core.Face, regionLabel int) {
		for _, anchor := range f.Contours() {
			for _, c := range anchor.PhiOrbit() {
				nb := c.RightFace()
				if nb == nil {
					continue
				}
				if _, done := labels[nb.Label()]; done {
					continue
				}
				if _, queued := pending[nb.Label()]; queued {
					continue // static policy: the first offer sticks
				}
				w, ok := cost(c)
				if !ok {
					continue
				}
				pending[nb.Label()] = regionLabel
				queue.Insert(nb.Label(), w)
			}
		}
	}

	// Deterministic init order: ascending seed face labels.
	seedFaces := make([]int, 0, len(seeds))
	for fl := range seeds {
		seedFaces = append(seedFaces, fl)
	}
	sort.Ints(seedFaces)
	for _, fl := range seedFaces {
		if m.Face(fl) == nil {
			return nil, errors.Wrapf(ErrFaceNotFound, "seed label %d", fl)
		}
		labels[fl] = seeds[fl]
	}
	for _, fl := range seedFaces {
		offer(m.Face(fl), seeds[fl])
	}

	for {
		fl, _, ok := queue.Pop()
		if !ok {
			break
		}
		if _, done := labels[fl]; done {
			continue
		}
		labels[fl] = pending[fl]
		delete(pending, fl)
		offer(m.Face(fl), labels[fl])
	}

	if cfg.Logger != nil {
		cfg.Logger.WithField("labeled", len(labels)).Info("label flood")
	}

	return labels, nil
}
