// Package core implements a combinatorial map — a planar subdivision of
// nodes, edges and faces navigated through darts.
//
// What:
//
//   - GeoMap stores nodes (with positions and sigma rings), edges (with two
//     directed darts and a flag bitmask) and faces (bounded by one or more
//     contours, each a closed phi-orbit of darts).
//   - Dart is an oriented reference to one side of an edge. Three orbit
//     generators navigate the map: NextSigma (rotate to the next edge around
//     the start node), NextPhi (advance along the left face boundary) and
//     Alpha (flip to the opposite orientation of the same edge).
//   - Four Euler operators mutate the map: MergeFaces, RemoveBridge,
//     MergeEdges and RemoveIsolatedNode. Each either succeeds and returns
//     the surviving cell or refuses with a sentinel error; ordinary
//     topological refusals never panic.
//
// Why:
//
//   - Image segmentation: region adjacency with full boundary topology,
//     supporting incremental merging under protection flags.
//   - Contour tools: dart orbits give exact boundary walks for scissors,
//     paintbrushes and live-wire tracing.
//
// Construction happens in two phases: AddNode/AddEdge assemble the
// embedded graph, then InitFaces sorts every sigma ring by geometric angle
// and derives the faces as phi-orbits. The edge set must be connected;
// the outer orbit (non-positive signed area) becomes the infinite face,
// which always carries label 0. After InitFaces only the Euler operators
// may change the topology.
//
// Complexity:
//
//   - Dart navigation: O(deg) per sigma step (ring scan), O(1) for Alpha.
//   - Euler operators: O(len of affected contours).
//   - InitFaces: O(E log E) for ring sorting plus O(E) orbit discovery.
//
// Errors:
//
//   - ErrNodeNotFound / ErrEdgeNotFound / ErrFaceNotFound: label lookup misses.
//   - ErrNotBuildPhase / ErrNotInitialized: operation in the wrong phase.
//   - ErrLoopNotAllowed: AddEdge with identical endpoints.
//   - ErrDisconnected: InitFaces on a disconnected edge set.
//   - ErrProtected: Euler operator on a protection-flagged edge (refusal).
//   - ErrIsBridge / ErrNotBridge / ErrBadDegree / ErrIsLoop / ErrNotIsolated:
//     Euler operator preconditions not met (refusals).
package core
