// Package livewire implements an incremental single-source shortest-path
// search over the dart graph of a planar subdivision, for interactive
// boundary tracing (intelligent scissors).
//
// What:
//
//   - New anchors a search at a start node and seeds the frontier with
//     every dart leaving it.
//   - ExpandBorder pops the cheapest frontier dart and, if its end node is
//     unreached, records the (cost, incoming dart) pair and pushes the
//     node's outgoing darts; one pop per call.
//   - ExpandToNode, ExpandToCost and Expand drive ExpandBorder until a
//     target is reached, the frontier cost exceeds a bound, or exhaustion.
//   - PathDarts walks the recorded incoming darts lazily from any reached
//     node back to the start; LoopPath detects paths crossing the current
//     end node.
//
// Why:
//
//   - An interactive caller moves the query point constantly; recomputing
//     a full shortest-path tree per mouse move is wasted work. The search
//     state persists and grows only as far as queries demand.
//
// The frontier is keyed by dart, not node: several darts can reach the
// same node at different costs, and duplicates are simply discarded when
// popped stale. Edges flagged CurrentContour are never entered (they are
// the path being drawn); BorderProtection edges are skipped during
// expansion.
//
// An unreached query node is not an error: TotalCost and SetEndNodeLabel
// report false and the caller expands further.
package livewire
