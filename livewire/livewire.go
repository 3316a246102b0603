package livewire

import (
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/eldruin/geomap/core"
)

// pathEntry records the best known way into a node: the accumulated cost
// and the dart that arrives there. The start node carries dart 0.
type pathEntry struct {
	cost float64
	dart int
}

// frontierItem is one lazily-duplicated frontier candidate: the dart to
// traverse and the total cost of doing so.
type frontierItem struct {
	cost float64
	dart int
}

// byCost orders frontier items by ascending cost, ties by dart label.
func byCost(a, b interface{}) int {
	x, y := a.(frontierItem), b.(frontierItem)
	switch {
	case x.cost < y.cost:
		return -1
	case x.cost > y.cost:
		return 1
	case x.dart < y.dart:
		return -1
	case x.dart > y.dart:
		return 1
	default:
		return 0
	}
}

// LiveWire is an incremental shortest-path search anchored at a start
// node. Zero value is not usable; construct with New.
//
// LiveWire reads the subdivision but never mutates it. Mutating the map
// mid-search invalidates the recorded paths; re-anchor with New after any
// merge.
type LiveWire struct {
	m     *core.GeoMap
	cost  core.CostFunc
	start int
	end   int
	paths map[int]pathEntry
	front *priorityqueue.Queue
	cfg   Options
}

// New anchors a live-wire search at the given start node and seeds the
// frontier with every dart leaving it, excluding edges flagged
// CurrentContour.
func New(m *core.GeoMap, cost core.CostFunc, startNodeLabel int, opts ...Option) (*LiveWire, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := m.Node(startNodeLabel)
	if n == nil {
		return nil, errors.Wrapf(core.ErrNodeNotFound, "live wire start node %d", startNodeLabel)
	}

	lw := &LiveWire{
		m:     m,
		cost:  cost,
		start: startNodeLabel,
		end:   startNodeLabel,
		paths: map[int]pathEntry{startNodeLabel: {cost: 0, dart: 0}},
		front: priorityqueue.NewWith(byCost),
		cfg:   cfg,
	}
	lw.expandNode(n, 0, core.CurrentContour)

	return lw, nil
}

// StartNodeLabel returns the anchor node of the search.
func (lw *LiveWire) StartNodeLabel() int { return lw.start }

// EndNodeLabel returns the current end node (initially the start node).
func (lw *LiveWire) EndNodeLabel() int { return lw.end }

// SetEndNodeLabel moves the current end node to n. It succeeds only if n
// has already been reached; no expansion is forced, keeping the call cheap
// enough for per-mouse-move previews.
func (lw *LiveWire) SetEndNodeLabel(n int) bool {
	if _, ok := lw.paths[n]; !ok {
		return false
	}
	lw.end = n

	return true
}

// TotalCost returns the accumulated path cost to node n, or false if the
// search has not reached it yet.
func (lw *LiveWire) TotalCost(n int) (float64, bool) {
	e, ok := lw.paths[n]

	return e.cost, ok
}

// ExpandBorder pops the cheapest frontier dart. If its end node is still
// unreached, the node is recorded and its outgoing darts join the
// frontier. Stale pops (node already reached via a cheaper dart) are
// discarded. Returns false once the frontier is exhausted: the full
// shortest-path tree is then known.
func (lw *LiveWire) ExpandBorder() bool {
	v, ok := lw.front.Dequeue()
	if !ok {
		return false
	}
	item := v.(frontierItem)
	d := lw.m.Dart(item.dart)
	nl := d.EndNodeLabel()
	if _, reached := lw.paths[nl]; reached {
		return true // lazy duplicate
	}
	lw.paths[nl] = pathEntry{cost: item.cost, dart: item.dart}
	lw.expandNode(lw.m.Node(nl), item.cost, core.CurrentContour|core.BorderProtection)
	if lw.cfg.Logger != nil {
		lw.cfg.Logger.WithFields(logrus.Fields{
			"node": nl,
			"cost": item.cost,
		}).Debug("live wire reached node")
	}

	return true
}

// ExpandToNode drives the search until node n is reached or the frontier
// runs dry. Reports whether n was reached.
func (lw *LiveWire) ExpandToNode(n int) bool {
	for {
		if _, ok := lw.paths[n]; ok {
			return true
		}
		if !lw.ExpandBorder() {
			return false
		}
	}
}

// ExpandToCost drives the search until the cheapest frontier candidate
// exceeds maxCost or the frontier runs dry. Every node reachable at total
// cost <= maxCost is in the table afterwards.
func (lw *LiveWire) ExpandToCost(maxCost float64) {
	for {
		v, ok := lw.front.Peek()
		if !ok || v.(frontierItem).cost > maxCost {
			return
		}
		lw.ExpandBorder()
	}
}

// Expand exhausts the frontier, computing the complete shortest-path tree.
func (lw *LiveWire) Expand() {
	lw.ExpandToCost(math.Inf(1))
}

// expandNode pushes every dart leaving n onto the frontier, skipping edges
// matching the exclude mask and the edge the search arrived through.
func (lw *LiveWire) expandNode(n *core.Node, baseCost float64, exclude core.Flags) {
	arrived := lw.paths[n.Label()].dart
	anchor := n.Anchor()
	if anchor.IsNil() {
		return
	}
	for _, c := range anchor.SigmaOrbit() {
		if c.Label() == -arrived {
			continue // back along the incoming edge
		}
		if c.Edge().Flags().Flag(exclude) {
			continue
		}
		w, ok := lw.cost(c)
		if !ok {
			continue
		}
		lw.front.Enqueue(frontierItem{cost: baseCost + w, dart: c.Label()})
	}
}

// Path iterates the darts of a recorded shortest path lazily, from the
// query node back towards the start. Obtain one with PathDarts; each call
// to Next yields the next dart or reports exhaustion.
type Path struct {
	m    *core.GeoMap
	lw   *LiveWire
	node int
}

// PathDarts returns a lazy walk from node n back to the start node,
// yielding for each hop the dart pointing from the current node to its
// predecessor. Returns false if n has not been reached.
func (lw *LiveWire) PathDarts(n int) (*Path, bool) {
	if _, ok := lw.paths[n]; !ok {
		return nil, false
	}

	return &Path{m: lw.m, lw: lw, node: n}, true
}

// Next yields the next dart of the walk, or false once the start node is
// reached.
func (p *Path) Next() (core.Dart, bool) {
	e := p.lw.paths[p.node]
	if e.dart == 0 {
		return core.Dart{}, false
	}
	// The recorded dart arrives at the node; its reversal points back to
	// the predecessor.
	d := p.m.Dart(-e.dart)
	p.node = d.EndNodeLabel()

	return d, true
}

// NodeLabel returns the node the walk currently stands on.
func (p *Path) NodeLabel() int { return p.node }

// LoopPath checks whether the optimal path to n crosses the current end
// node and, if so, returns the darts from n back to that crossing (the
// closable loop segment). Returns false when the path reaches the start
// without touching the end node, or when n is unreached.
func (lw *LiveWire) LoopPath(n int) ([]core.Dart, bool) {
	if n == lw.end {
		return nil, false
	}
	walk, ok := lw.PathDarts(n)
	if !ok {
		return nil, false
	}
	var darts []core.Dart
	for {
		d, more := walk.Next()
		if !more {
			return nil, false
		}
		darts = append(darts, d)
		if walk.NodeLabel() == lw.end {
			return darts, true
		}
	}
}
