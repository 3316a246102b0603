package waterfall

import (
	stderrors "errors"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/merge"
	"github.com/eldruin/geomap/srg"
)

// MinimumSpanningTree computes the MST of the face-adjacency graph under
// the given edge cost function and returns the cost of every kept edge,
// keyed by edge label. Edges priced "no cost" and bridges never enter;
// edges that would close a cycle are dropped.
//
// Kruskal with union-find (path compression + union by rank); sorting
// breaks cost ties by edge label, keeping the tree deterministic.
// Complexity: O(E log E + α(F)·E).
func MinimumSpanningTree(m *core.GeoMap, cost core.CostFunc) map[int]float64 {
	// 1) Collect priced, non-bridge edges.
	type pricedEdge struct {
		label int
		cost  float64
	}
	candidates := make([]pricedEdge, 0, m.EdgeCount())
	for _, e := range m.Edges() {
		if e.IsBridge() {
			continue
		}
		if c, ok := cost(e.Dart()); ok {
			candidates = append(candidates, pricedEdge{e.Label(), c})
		}
	}

	// 2) Ascending cost, ties by label.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].cost != candidates[j].cost {
			return candidates[i].cost < candidates[j].cost
		}

		return candidates[i].label < candidates[j].label
	})

	// 3) Union-find over face labels.
	parent := make(map[int]int, m.FaceCount())
	rank := make(map[int]int, m.FaceCount())
	find := func(u int) int {
		if _, ok := parent[u]; !ok {
			parent[u] = u
		}
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		if rank[u] < rank[v] {
			parent[u] = v
		} else {
			parent[v] = u
			if rank[u] == rank[v] {
				rank[u]++
			}
		}
	}

	// 4) Keep every edge joining two components.
	mst := make(map[int]float64, len(candidates))
	for _, c := range candidates {
		e := m.Edge(c.label)
		u, v := find(e.LeftFaceLabel()), find(e.RightFaceLabel())
		if u == v {
			continue
		}
		union(u, v)
		mst[c.label] = c.cost
	}

	return mst
}

// RegionalMinima returns the regional minima of the MST: every MST edge
// whose cost is strictly below the cost of every other MST edge incident
// to either of its bounding faces' full contours. Both incident faces are
// labeled with the minimum edge's label; the result maps face label →
// region label.
func RegionalMinima(m *core.GeoMap, mst map[int]float64) map[int]int {
	labels := make([]int, 0, len(mst))
	for l := range mst {
		labels = append(labels, l)
	}
	sort.Ints(labels)

	minima := make(map[int]int)
	for _, el := range labels {
		e := m.Edge(el)
		if e == nil {
			continue
		}
		c := mst[el]
		if faceHasCheaper(m.Face(e.LeftFaceLabel()), el, c, mst) ||
			faceHasCheaper(m.Face(e.RightFaceLabel()), el, c, mst) {
			continue
		}
		minima[e.LeftFaceLabel()] = el
		minima[e.RightFaceLabel()] = el
	}

	return minima
}

// faceHasCheaper reports whether any MST edge other than el on the face's
// contours costs no more than c — which disqualifies el as a strict
// regional minimum.
func faceHasCheaper(f *core.Face, el int, c float64, mst map[int]float64) bool {
	if f == nil {
		return false
	}
	for _, anchor := range f.Contours() {
		for _, d := range anchor.PhiOrbit() {
			l := d.EdgeLabel()
			if l == el {
				continue
			}
			if mc, ok := mst[l]; ok && mc <= c {
				return true
			}
		}
	}

	return false
}

// Step performs one waterfall level: MST, regional minima, a static label
// flood restricted to MST edges, and the commit phase merging every
// adjacent same-label face pair through the merge transaction. Protected
// edges are skipped. Returns the number of merges performed.
//
// A bridge carrying a flood label is reported via ErrBridgeInCommit after
// the remaining commits have been performed.
func Step(m *core.GeoMap, cost core.CostFunc, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) MST and its regional minima.
	mst := MinimumSpanningTree(m, cost)
	if len(mst) == 0 {
		return 0, nil
	}
	minima := RegionalMinima(m, mst)
	if len(minima) == 0 {
		// A plateau of ties everywhere; this level has nothing to merge.
		return 0, nil
	}

	// 2) Flood the basins along MST edges only.
	restricted := func(d core.Dart) (float64, bool) {
		if _, ok := mst[d.EdgeLabel()]; !ok {
			return 0, false
		}

		return cost(d)
	}
	basins, err := srg.Flood(m, restricted, minima)
	if err != nil {
		return 0, errors.Wrap(err, "waterfall: flood phase")
	}

	// 3) Commit: merge same-basin neighbors.
	merges := 0
	var bridges []int
	for _, e := range m.Edges() {
		if m.Edge(e.Label()) == nil {
			continue // removed by an earlier commit transaction
		}
		l1, ok1 := basins[e.LeftFaceLabel()]
		l2, ok2 := basins[e.RightFaceLabel()]
		if !ok1 || !ok2 || l1 != l2 {
			continue
		}
		if e.IsProtected() {
			continue
		}
		if e.IsBridge() {
			bridges = append(bridges, e.Label())

			continue
		}
		if _, err := merge.FacesCompletely(e.Dart()); err != nil {
			if stderrors.Is(err, merge.ErrProtected) {
				continue
			}

			return merges, errors.Wrapf(err, "waterfall: committing edge %d", e.Label())
		}
		merges++
	}

	if cfg.Logger != nil {
		cfg.Logger.WithFields(logrus.Fields{
			"operations": merges,
			"minima":     len(minima),
			"faces":      m.FaceCount(),
		}).Info("waterfall step")
	}
	if len(bridges) > 0 {
		return merges, errors.Wrapf(ErrBridgeInCommit, "edges %v", bridges)
	}

	return merges, nil
}

// Run applies Step up to levels times on the progressively coarsened map,
// stopping early at a fixed point (a level with zero merges). Returns the
// merge count of every executed level.
func Run(m *core.GeoMap, cost core.CostFunc, levels int, opts ...Option) ([]int, error) {
	if levels < 1 {
		return nil, ErrBadLevels
	}
	counts := make([]int, 0, levels)
	for i := 0; i < levels; i++ {
		n, err := Step(m, cost, opts...)
		if err != nil {
			return counts, err
		}
		counts = append(counts, n)
		if n == 0 {
			break
		}
	}

	return counts, nil
}
