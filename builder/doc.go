// Package builder constructs deterministic planar subdivisions for tests,
// examples and benchmarks.
//
// What:
//
//   - GridMap builds a cols×rows crack-edge lattice: every grid cell is one
//     finite face, the outside is the infinite face, and the Grid handle
//     maps (column, row) coordinates back to node, edge and face labels.
//   - RingMap is the 2×2 special case — four faces in a ring, the smallest
//     subdivision in which multi-edge merging, growing and flooding all
//     behave non-trivially.
//
// Why:
//
//   - Segmentation algorithms need reproducible fixtures: identical calls
//     produce identical labels, so merge sequences replay exactly.
//   - WithBorderProtection seals the image border the way interactive
//     pipelines do, keeping the infinite face out of every merge pass.
//
// Options:
//
//   - WithOrigin(v): lattice origin (default 0,0).
//   - WithCellSize(s): cell side length, must be > 0 (default 1).
//   - WithBorderProtection(): flag outer boundary edges BorderProtection.
//
// Errors:
//
//   - ErrBadDimensions: cols or rows < 1, or cell size ≤ 0.
package builder
