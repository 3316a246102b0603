package merge

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/eldruin/geomap/core"
	"github.com/eldruin/geomap/costqueue"
)

// Merger performs greedy global region merging ordered by a pluggable edge
// cost function.
//
// The queue holds one cost per live edge; costs are revised in place after
// every merge, so popped entries can be stale — MergeStep re-validates each
// pop against the live map and treats stale or protected edges as no-ops
// that do not consume a step.
type Merger struct {
	m       *core.GeoMap
	cost    core.CostFunc
	queue   *costqueue.Queue
	steps   int
	costLog []float64
	cfg     Options
}

// NewMerger seeds a cost queue with every edge whose cost function yields a
// value; edges priced "never merge" stay out of the queue.
func NewMerger(m *core.GeoMap, cost core.CostFunc, opts ...Option) *Merger {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	q := costqueue.New(m.MaxEdgeLabel() + 1)
	for _, e := range m.Edges() {
		if c, ok := cost(e.Dart()); ok {
			q.Insert(e.Label(), c)
		}
	}

	return &Merger{m: m, cost: cost, queue: q, cfg: cfg}
}

// MergeStep pops the cheapest queued edge and merges across it.
//
// Returns (false, nil) for a refused pop — the edge vanished, became
// protected, or its transaction hit a protected shared edge; refusals do
// not consume a step. Returns ErrExhausted when the queue is empty.
// On success the boundary of the surviving face is re-priced.
func (g *Merger) MergeStep() (bool, error) {
	label, cost, ok := g.queue.Pop()
	if !ok {
		return false, ErrExhausted
	}

	e := g.m.Edge(label)
	if e == nil || e.IsProtected() {
		return false, nil
	}

	var survivor *core.Face
	var err error
	if e.IsBridge() {
		survivor, err = g.m.RemoveBridge(e.Dart())
	} else {
		survivor, err = FacesCompletely(e.Dart(), g.transactionOptions()...)
		if err == nil {
			g.repriceBoundary(survivor)
		}
	}
	if err != nil {
		if errors.Is(err, ErrProtected) || errors.Is(err, core.ErrProtected) {
			return false, nil
		}

		return false, err
	}

	g.steps++
	if g.cfg.CostLog {
		g.costLog = append(g.costLog, cost)
	}
	if g.cfg.Logger != nil {
		g.cfg.Logger.WithFields(logrus.Fields{
			"edge": label,
			"cost": cost,
			"step": g.steps,
			"face": survivor.Label(),
		}).Debug("merge step")
	}

	return true, nil
}

// MergeToCost repeats MergeStep while the queue's minimum cost stays below
// maxCost. Returns the number of merges performed.
func (g *Merger) MergeToCost(maxCost float64) (int, error) {
	count := 0
	for {
		_, c, ok := g.queue.Top()
		if !ok || c >= maxCost {
			break
		}
		merged, err := g.MergeStep()
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				break
			}

			return count, err
		}
		if merged {
			count++
		}
	}
	g.report("merge to cost", count)

	return count, nil
}

// MergeToStep repeats MergeStep until the step counter reaches n or the
// queue runs dry. Returns the number of merges performed by this call.
func (g *Merger) MergeToStep(n int) (int, error) {
	count := 0
	for g.steps < n {
		merged, err := g.MergeStep()
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				break
			}

			return count, err
		}
		if merged {
			count++
		}
	}
	g.report("merge to step", count)

	return count, nil
}

// Merge runs until the queue is exhausted. Returns the number of merges.
func (g *Merger) Merge() (int, error) {
	return g.MergeToCost(math.Inf(1))
}

// StepCount returns the number of successful merges performed so far.
func (g *Merger) StepCount() int { return g.steps }

// CostLog returns the recorded per-merge costs (WithCostLog required).
func (g *Merger) CostLog() []float64 { return g.costLog }

// Queue exposes the underlying cost queue, e.g. to inspect the pending
// minimum. Mutating it mid-run voids the determinism guarantee.
func (g *Merger) Queue() *costqueue.Queue { return g.queue }

// repriceBoundary recomputes the queued cost of every edge on the
// survivor's full boundary, dropping edges priced "never merge".
func (g *Merger) repriceBoundary(survivor *core.Face) {
	for _, anchor := range survivor.Contours() {
		for _, d := range anchor.PhiOrbit() {
			if c, ok := g.cost(d); ok {
				g.queue.SetCost(d.EdgeLabel(), c)
			} else {
				g.queue.Remove(d.EdgeLabel())
			}
		}
	}
}

// transactionOptions forwards the merger's transaction-relevant settings.
func (g *Merger) transactionOptions() []Option {
	if g.cfg.KeepDegree2Nodes {
		return []Option{WithKeepDegree2Nodes()}
	}

	return nil
}

// report logs an operation count at Info level.
func (g *Merger) report(op string, count int) {
	if g.cfg.Logger != nil {
		g.cfg.Logger.WithFields(logrus.Fields{
			"operations": count,
			"faces":      g.m.FaceCount(),
		}).Info(op)
	}
}

// ThresholdMergeCost merges faces in order of increasing cost until no
// queued edge costs less than maxCost. It returns the number of merges and
// the Merger itself, which a later call can drive further with a raised
// bound via MergeToCost without re-pricing the whole map.
func ThresholdMergeCost(m *core.GeoMap, cost core.CostFunc, maxCost float64, opts ...Option) (int, *Merger, error) {
	g := NewMerger(m, cost, opts...)
	count, err := g.MergeToCost(maxCost)

	return count, g, err
}
