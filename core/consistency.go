package core

import "github.com/pkg/errors"

// CheckConsistency validates the structural invariants of an initialized
// map: ring/edge agreement, face stamping, anchor coverage. A non-nil
// return means the map was corrupted by a programming error, not by any
// ordinary refusal; the error carries enough context to diagnose the cell.
//
// Intended for tests and debugging after mutation batches; cost is
// O(N + E + F + total contour length).
func (m *GeoMap) CheckConsistency() error {
	if !m.initialized {
		return errors.WithStack(ErrNotInitialized)
	}
	if m.faces[0] == nil {
		return errors.Errorf("core: infinite face missing")
	}

	// 1) Every ring entry references a live edge whose dart starts here.
	for _, n := range m.Nodes() {
		for _, dl := range n.ring {
			d := m.Dart(dl)
			if d.IsNil() {
				return errors.Errorf("core: %v: ring references dead dart %d", CellRef{KindNode, n.label}, dl)
			}
			if d.StartNodeLabel() != n.label {
				return errors.Errorf("core: %v: ring dart %d starts at %v",
					CellRef{KindNode, n.label}, dl, CellRef{KindNode, d.StartNodeLabel()})
			}
		}
	}

	// 2) Every edge appears exactly once per orientation in its rings, and
	//    its face labels are live.
	for _, e := range m.Edges() {
		if err := m.checkRingMembership(e.startNode, e.label); err != nil {
			return err
		}
		if err := m.checkRingMembership(e.endNode, -e.label); err != nil {
			return err
		}
		if m.faces[e.leftFace] == nil || m.faces[e.rightFace] == nil {
			return errors.Errorf("core: %v: dead face labels %d|%d",
				CellRef{KindEdge, e.label}, e.leftFace, e.rightFace)
		}
	}

	// 3) Every face's anchors lie on distinct phi-orbits stamped with the
	//    face's own label; together the contours cover each dart once.
	covered := make(map[int]bool, 2*len(m.edges))
	for _, f := range m.Faces() {
		for _, anchor := range f.Contours() {
			if anchor.IsNil() {
				return errors.Errorf("core: %v: dead anchor", CellRef{KindFace, f.label})
			}
			for _, d := range anchor.PhiOrbit() {
				if d.LeftFaceLabel() != f.label {
					return errors.Errorf("core: %v: contour dart %d stamped with %v",
						CellRef{KindFace, f.label}, d.label, CellRef{KindFace, d.LeftFaceLabel()})
				}
				if covered[d.label] {
					return errors.Errorf("core: dart %d covered by more than one contour", d.label)
				}
				covered[d.label] = true
			}
		}
	}
	if len(covered) != 2*len(m.edges) {
		return errors.Errorf("core: contours cover %d darts, expected %d", len(covered), 2*len(m.edges))
	}

	return nil
}

// checkRingMembership verifies the dart label occurs exactly once in the
// node's sigma ring.
func (m *GeoMap) checkRingMembership(nodeLabel, dartLabel int) error {
	n := m.nodes[nodeLabel]
	if n == nil {
		return errors.Wrapf(ErrNodeNotFound, "core: dart %d starts at dead node %d", dartLabel, nodeLabel)
	}
	count := 0
	for _, l := range n.ring {
		if l == dartLabel {
			count++
		}
	}
	if count != 1 {
		return errors.Errorf("core: %v: dart %d occurs %d times in ring",
			CellRef{KindNode, nodeLabel}, dartLabel, count)
	}

	return nil
}
