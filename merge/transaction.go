package merge

import (
	"github.com/pkg/errors"

	"github.com/eldruin/geomap/core"
)

// FacesCompletely merges the two faces separated by dart d across every
// boundary edge they share, not only the edge of d. The two faces may
// touch along several disjoint arcs; every arc is removed in one atomic
// transaction.
//
// Algorithm:
//  1. Walk the phi-orbit of d (the left face's boundary) and collect every
//     dart whose right face matches d's right face.
//  2. If any collected edge carries a protection flag, abort with
//     ErrProtected before mutating anything.
//  3. Merge across the first collected edge; every remaining collected
//     edge has become a bridge inside the unified face and is removed as
//     such. All removals must yield the same survivor.
//  4. Nodes incident to a removed edge are cleaned up: degree 0 → removed
//     as isolated, degree 2 (and not a self-loop anchor) → its two edges
//     fused, unless WithKeepDegree2Nodes is set.
//
// Returns the surviving face. ErrProtected is an ordinary refusal;
// ErrIsBridge flags a caller error; ErrNoCommonEdges flags a corrupt map.
func FacesCompletely(d core.Dart, opts ...Option) (*core.Face, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := d.Map()
	if d.IsNil() {
		return nil, core.ErrNilDart
	}
	e := d.Edge()
	if e == nil {
		return nil, core.ErrEdgeNotFound
	}
	if e.IsBridge() {
		return nil, ErrIsBridge
	}

	// 1+2) Collect the shared boundary; any protection aborts all-or-nothing.
	right := d.RightFaceLabel()
	var common []core.Dart
	for _, c := range d.PhiOrbit() {
		if c.RightFaceLabel() != right {
			continue
		}
		if c.Edge().IsProtected() {
			return nil, ErrProtected
		}
		common = append(common, c)
	}
	if len(common) == 0 {
		return nil, errors.Wrapf(ErrNoCommonEdges, "dart %d between faces %d|%d",
			d.Label(), d.LeftFaceLabel(), right)
	}

	// 3) First shared edge merges the faces; the rest are now bridges.
	affected := make([]int, 0, 2*len(common))
	var survivor *core.Face
	for _, c := range common {
		affected = append(affected, c.StartNodeLabel(), c.EndNodeLabel())
		if survivor == nil {
			f, err := m.MergeFaces(c)
			if err != nil {
				return nil, errors.Wrapf(err, "merge: first common edge %d", c.EdgeLabel())
			}
			survivor = f

			continue
		}
		f, err := m.RemoveBridge(c)
		if err != nil {
			return nil, errors.Wrapf(err, "merge: common edge %d", c.EdgeLabel())
		}
		if f.Label() != survivor.Label() {
			return nil, errors.Errorf("merge: common edge %d yielded face %d, want survivor %d",
				c.EdgeLabel(), f.Label(), survivor.Label())
		}
	}

	// 4) Clean up degenerate nodes.
	for _, nl := range affected {
		n := m.Node(nl)
		if n == nil {
			continue
		}
		if n.Degree() == 0 {
			if err := m.RemoveIsolatedNode(nl); err != nil {
				return nil, errors.Wrapf(err, "merge: isolated node %d", nl)
			}

			continue
		}
		if cfg.KeepDegree2Nodes || n.Degree() != 2 {
			continue
		}
		anchor := n.Anchor()
		if anchor.EndNodeLabel() == nl {
			// Self-loop anchor; fusing would destroy the loop's only node.
			continue
		}
		if _, err := m.MergeEdges(anchor); err != nil {
			return nil, errors.Wrapf(err, "merge: fusing edges at node %d", nl)
		}
	}

	return survivor, nil
}

// FacesByLabel merges the faces with the two given labels completely,
// locating a common dart first. Returns ErrFaceNotFound when either label
// is retired and ErrNotAdjacent when the faces share no boundary edge.
func FacesByLabel(m *core.GeoMap, label1, label2 int, opts ...Option) (*core.Face, error) {
	f1 := m.Face(label1)
	if f1 == nil {
		return nil, errors.Wrapf(ErrFaceNotFound, "label %d", label1)
	}
	if m.Face(label2) == nil {
		return nil, errors.Wrapf(ErrFaceNotFound, "label %d", label2)
	}
	for _, anchor := range f1.Contours() {
		for _, c := range anchor.PhiOrbit() {
			if c.RightFaceLabel() == label2 {
				return FacesCompletely(c, opts...)
			}
		}
	}

	return nil, errors.Wrapf(ErrNotAdjacent, "faces %d and %d", label1, label2)
}

// RemoveEdge is the composed Euler operation: it removes the dart's edge
// via RemoveBridge when both sides border the same face, and via the full
// merge transaction otherwise. Returns the surviving face.
func RemoveEdge(d core.Dart, opts ...Option) (*core.Face, error) {
	e := d.Edge()
	if e == nil {
		return nil, core.ErrEdgeNotFound
	}
	if e.IsBridge() {
		return d.Map().RemoveBridge(d)
	}

	return FacesCompletely(d, opts...)
}
