// Package costqueue provides an indexed min-heap keyed by integer cell
// labels, with mutable priorities.
//
// What:
//
//   - Queue maps each label to at most one queued cost.
//   - Insert adds or overwrites; SetCost is its alias — priorities may move
//     in either direction, not only decrease.
//   - Pop and Top yield the globally cheapest entry; ties break toward the
//     smaller label, so identical inputs replay identically.
//
// Why:
//
//   - Greedy region merging and seeded growing revise costs in place while
//     the subdivision mutates underneath them. The queue deliberately lags
//     behind the topology: entries may refer to cells that have since been
//     merged away, and every consumer re-validates a popped label against
//     the live map before acting on it.
//
// Implementation: a binary heap (container/heap) plus a label→slot index,
// giving O(log n) Insert/SetCost/Pop/Remove and O(1) Top/Cost. No library
// in this module's dependency set offers an indexed updatable heap — the
// gods heaps have no decrease-key — so this is the one hand-built
// container in the module.
//
// Complexity: Insert/SetCost/Pop/Remove O(log n); Top/Cost/Len/Empty O(1).
package costqueue

import "container/heap"

// entry is one (label, cost) pair plus its heap slot.
type entry struct {
	label int
	cost  float64
	slot  int
}

// Queue is an indexed min-cost priority queue over integer labels.
// The zero value is not usable; call New.
type Queue struct {
	items []*entry
	index map[int]*entry
}

// New creates an empty queue. capacityHint pre-sizes the internal storage
// (a map's worth of labels, e.g. maxEdgeLabel+1); pass 0 when unknown.
func New(capacityHint int) *Queue {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Queue{
		items: make([]*entry, 0, capacityHint),
		index: make(map[int]*entry, capacityHint),
	}
}

// Insert adds a mapping from label to cost, overwriting any queued cost
// for the same label.
func (q *Queue) Insert(label int, cost float64) {
	if e, ok := q.index[label]; ok {
		e.cost = cost
		heap.Fix((*costHeap)(q), e.slot)

		return
	}
	e := &entry{label: label, cost: cost}
	q.index[label] = e
	heap.Push((*costHeap)(q), e)
}

// SetCost is Insert under its traditional name: a mutable-priority update
// that may raise or lower the queued cost.
func (q *Queue) SetCost(label int, cost float64) { q.Insert(label, cost) }

// Cost returns the currently queued cost for the label.
func (q *Queue) Cost(label int) (float64, bool) {
	e, ok := q.index[label]
	if !ok {
		return 0, false
	}

	return e.cost, true
}

// Contains reports whether the label is queued.
func (q *Queue) Contains(label int) bool {
	_, ok := q.index[label]

	return ok
}

// Remove deletes the label's entry, if any.
func (q *Queue) Remove(label int) {
	e, ok := q.index[label]
	if !ok {
		return
	}
	heap.Remove((*costHeap)(q), e.slot)
	delete(q.index, label)
}

// Pop removes and returns the minimum-cost (label, cost) pair.
// ok is false when the queue is empty.
func (q *Queue) Pop() (label int, cost float64, ok bool) {
	if len(q.items) == 0 {
		return 0, 0, false
	}
	e := heap.Pop((*costHeap)(q)).(*entry)
	delete(q.index, e.label)

	return e.label, e.cost, true
}

// Top returns the minimum-cost (label, cost) pair without removing it.
// ok is false when the queue is empty.
func (q *Queue) Top() (label int, cost float64, ok bool) {
	if len(q.items) == 0 {
		return 0, 0, false
	}

	return q.items[0].label, q.items[0].cost, true
}

// Len returns the number of queued labels.
func (q *Queue) Len() int { return len(q.items) }

// Empty reports whether no labels are queued.
func (q *Queue) Empty() bool { return len(q.items) == 0 }

// costHeap adapts Queue to container/heap. Less orders by cost, then by
// label, which makes tie-breaking deterministic for a given input.
type costHeap Queue

func (h *costHeap) Len() int { return len(h.items) }

func (h *costHeap) Less(i, j int) bool {
	if h.items[i].cost != h.items[j].cost {
		return h.items[i].cost < h.items[j].cost
	}

	return h.items[i].label < h.items[j].label
}

func (h *costHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].slot = i
	h.items[j].slot = j
}

func (h *costHeap) Push(x interface{}) {
	e := x.(*entry)
	e.slot = len(h.items)
	h.items = append(h.items, e)
}

func (h *costHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]

	return e
}
