// Package waterfall implements hierarchical watershed segmentation on a
// planar subdivision, via a minimum spanning tree over the face-adjacency
// graph.
//
// What:
//
//   - MinimumSpanningTree runs Kruskal over the faces: edges in increasing
//     cost order, union-find with path compression and union by rank;
//     edges that would close a cycle are dropped (their cost becomes
//     "none" in the output).
//   - RegionalMinima finds the MST edges whose cost is the strict minimum
//     among all MST edges touching either bounding face's full contours,
//     and labels both faces with that edge's label.
//   - Step runs one waterfall level: MST → regional minima → a static
//     label flood restricted to MST edges (srg.Flood) → commit, merging
//     every adjacent same-label face pair through the merge transaction.
//   - Run applies Step repeatedly on the progressively coarsened map,
//     yielding the per-level merge counts of the segmentation hierarchy.
//
// Why:
//
//   - The waterfall transform removes watershed over-segmentation one
//     saliency level at a time; each level merges every catchment basin
//     into the regional minimum that floods it.
//
// Edge cases:
//
//   - Protected edges never merge; faces sealed behind them stay put.
//   - Cost ties can leave a face without any strict regional minimum; such
//     plateau faces keep their label only if the flood reaches them.
//   - A bridge whose face received a flood label is a caller error: Step
//     reports ErrBridgeInCommit instead of silently fixing the map.
//
// Errors:
//
//   - ErrBadLevels: Run invoked with levels < 1.
//   - ErrBridgeInCommit: see above; merges already performed stay valid.
package waterfall
