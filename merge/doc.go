// Package merge implements the multi-edge merge transaction and the
// cost-driven automatic region merger on top of core.GeoMap.
//
// What:
//
//   - FacesCompletely merges the two faces of a dart across every boundary
//     edge they share, all-or-nothing: a single protection flag on any
//     shared edge aborts the whole transaction before the first mutation.
//     Degenerate nodes left behind (degree 0 or 2) are cleaned up.
//   - FacesByLabel finds a common dart of two faces and delegates.
//   - RemoveEdge is the composed Euler operation: bridge removal or a full
//     face merge, depending on what the dart borders.
//   - Merger repeatedly pops the cheapest edge from a mutable-priority
//     queue, re-validates it against the live map (stale or protected pops
//     are no-ops, not steps), merges, and re-prices the survivor's whole
//     boundary. MergeToCost, MergeToStep and Merge drive it to a bound.
//   - ThresholdMergeCost is the one-shot entry point; it returns the Merger
//     so a later call can resume with a raised cost bound.
//   - RemoveCruft sweeps isolated nodes, degree-2 nodes, bridges or all
//     removable edges, by bitmask.
//
// Why:
//
//   - Region adjacency in images: two regions can touch along several
//     disjoint arcs; merging only one arc leaves the rest as bridges
//     inside the unified face. The transaction removes all of them at once
//     and keeps the map clean.
//
// Determinism: queue ties break toward smaller edge labels and maps are
// iterated in sorted label order, so identical initial costs reproduce the
// identical merge sequence.
//
// Errors:
//
//   - ErrProtected, ErrNotAdjacent, ErrExhausted: expected refusals.
//   - ErrIsBridge: FacesCompletely called on a bridge dart (caller error).
//   - ErrNoCommonEdges: invariant violation — differing faces but no shared
//     boundary; the map is corrupt.
package merge
