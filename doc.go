// Package geomap is an in-memory toolkit for cost-driven segmentation of
// planar subdivisions — region merging, seeded growing, watershed
// hierarchies and interactive contour tracing on a combinatorial map.
//
// 🚀 What is geomap?
//
//	A pure-Go library that brings together:
//		• Core primitives: a combinatorial map of nodes, edges and faces,
//		  navigated through darts (sigma/phi/alpha orbits) and mutated
//		  through four Euler operators
//		• Merge transactions: all-or-nothing multi-edge face merging with
//		  protection flags and degenerate-node cleanup
//		• Automatic region merging: greedy, cost-ordered simplification
//		• Seeded region growing: dynamic and Adams–Bischof-literal policies
//		• Waterfall: MST-based hierarchical watershed segmentation
//		• Live wire: incremental single-source shortest paths for
//		  semi-automatic contour tracing
//
// ✨ Why choose geomap?
//
//   - Deterministic – identical inputs and cost functions reproduce
//     identical merge sequences and survivor labels
//   - Honest failure modes – topological refusals are reported, never
//     thrown; invariant violations carry diagnosable context
//   - Cooperative – interactive searches advance one bounded step at a
//     time, so a UI loop stays responsive between redraws
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/      — GeoMap, Node, Edge, Face, Dart, flags & Euler operators
//	builder/   — deterministic subdivision fixtures (grid maps)
//	costqueue/ — indexed min-heap with mutable priorities
//	merge/     — merge transaction, automatic region merger, cruft removal
//	srg/       — seeded region growing and label flooding
//	waterfall/ — MST, regional minima, watershed levels
//	livewire/  — interactive shortest-path contour tool
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │ A │ B │
//	    ├───┼───┤
//	    │ D │ C │
//	    └───┴───┘
//
//	a 2×2 grid subdivision with four faces in a ring — the smallest
//	interesting playground for merging and growing.
package geomap
