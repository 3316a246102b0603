package core

import "github.com/pkg/errors"

// This file implements the four Euler operators plus ProtectFace.
// Each operator validates its preconditions, refuses with a sentinel error
// on ordinary topological objections (protection, wrong cell shape), and
// only then mutates the map. Composed transactions (package merge) rely on
// this check-before-mutate ordering for their all-or-nothing guarantee.

// MergeFaces removes the edge of d and merges the two distinct faces on
// its sides. The survivor is the face with the smaller label, so the
// infinite face always survives. Returns the survivor.
//
// Refusals: ErrNotInitialized, ErrNilDart/ErrEdgeNotFound, ErrProtected,
// ErrIsBridge (both sides border the same face).
func (m *GeoMap) MergeFaces(d Dart) (*Face, error) {
	e, err := m.operableEdge(d)
	if err != nil {
		return nil, err
	}
	left, right := d.LeftFaceLabel(), d.RightFaceLabel()
	if left == right {
		return nil, ErrIsBridge
	}

	survivorLabel, retiredLabel := left, right
	if retiredLabel < survivorLabel {
		survivorLabel, retiredLabel = retiredLabel, survivorLabel
	}
	survivor := m.faces[survivorLabel]
	retired := m.faces[retiredLabel]
	if survivor == nil || retired == nil {
		return nil, errors.Wrapf(ErrFaceNotFound, "MergeFaces: dart %d borders %v and %v",
			d.label, CellRef{KindFace, left}, CellRef{KindFace, right})
	}

	// Stamp the retired face's darts before any surgery.
	for _, anchor := range retired.Contours() {
		m.assignLeftFace(anchor.PhiOrbit(), survivorLabel)
	}

	// Replacement anchors for the two contours losing darts, computed while
	// the rings still contain them.
	repl1 := firstOtherEdge(d.PhiOrbit(), e.label)
	repl2 := firstOtherEdge(d.Alpha().PhiOrbit(), e.label)

	m.removeDartFromRing(d)
	m.removeDartFromRing(d.Alpha())

	anchors := dropEdgeAnchors(append(survivor.anchors, retired.anchors...), e.label)
	if repl1 != 0 {
		anchors = append(anchors, repl1)
	}
	if repl2 != 0 {
		anchors = append(anchors, repl2)
	}
	delete(m.faces, retiredLabel)
	delete(m.edges, e.label)
	survivor.anchors = m.dedupeAnchors(anchors)

	return survivor, nil
}

// RemoveBridge removes a two-sided bridge edge, splitting its contour into
// two contours of the same face (one of which may vanish for a dangling
// edge). Returns the face.
//
// Refusals: ErrNotInitialized, ErrNilDart/ErrEdgeNotFound, ErrProtected,
// ErrNotBridge.
func (m *GeoMap) RemoveBridge(d Dart) (*Face, error) {
	e, err := m.operableEdge(d)
	if err != nil {
		return nil, err
	}
	left, right := d.LeftFaceLabel(), d.RightFaceLabel()
	if left != right {
		return nil, ErrNotBridge
	}
	f := m.faces[left]
	if f == nil {
		return nil, errors.Wrapf(ErrFaceNotFound, "RemoveBridge: dart %d borders %v",
			d.label, CellRef{KindFace, left})
	}

	// The split leaves (up to) two cycles; anchor one dart on each side.
	repl1 := firstOtherEdge(d.PhiOrbit(), e.label)
	repl2 := firstOtherEdge(d.Alpha().PhiOrbit(), e.label)

	m.removeDartFromRing(d)
	m.removeDartFromRing(d.Alpha())

	anchors := dropEdgeAnchors(f.anchors, e.label)
	if repl1 != 0 {
		anchors = append(anchors, repl1)
	}
	if repl2 != 0 {
		anchors = append(anchors, repl2)
	}
	delete(m.edges, e.label)
	f.anchors = m.dedupeAnchors(anchors)

	return f, nil
}

// MergeEdges fuses the two edges meeting at the degree-2 start node of d
// into one. The edge of d survives and keeps its label and its left/right
// faces; the flags of the removed edge are folded into the survivor so
// protection outlives the fusion. The node disappears. Returns the
// surviving edge.
//
// Refusals: ErrNotInitialized, ErrNilDart/ErrEdgeNotFound, ErrBadDegree,
// ErrIsLoop (both ring darts belong to the same edge).
func (m *GeoMap) MergeEdges(d Dart) (*Edge, error) {
	if !m.initialized {
		return nil, ErrNotInitialized
	}
	e1 := d.Edge()
	if e1 == nil {
		return nil, ErrEdgeNotFound
	}
	n := d.StartNode()
	if n == nil {
		return nil, ErrNodeNotFound
	}
	if n.Degree() != 2 {
		return nil, ErrBadDegree
	}
	other := n.ring[0]
	if other == d.label {
		other = n.ring[1]
	}
	o := Dart{m: m, label: other}
	e2 := o.Edge()
	if e2.label == e1.label {
		return nil, ErrIsLoop
	}

	// Re-point the far endpoint of the removed edge at the survivor.
	// The fused dart starting there continues in d's direction, so it is
	// exactly d.label in either orientation of e1.
	far := o.EndNode()
	replaceInRing(far, -o.label, d.label)
	if d.label > 0 {
		e1.startNode = far.label
	} else {
		e1.endNode = far.label
	}

	// Contour anchors referencing the removed darts move to the fused
	// darts covering the same boundary stretch.
	m.replaceAnchor(o.LeftFaceLabel(), o.label, -d.label)
	m.replaceAnchor(o.RightFaceLabel(), -o.label, d.label)

	e1.flags |= e2.flags
	delete(m.edges, e2.label)
	delete(m.nodes, n.label)

	return e1, nil
}

// RemoveIsolatedNode deletes a degree-0 node.
// Refusals: ErrNotInitialized, ErrNodeNotFound, ErrNotIsolated.
func (m *GeoMap) RemoveIsolatedNode(label int) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	n, ok := m.nodes[label]
	if !ok {
		return ErrNodeNotFound
	}
	if n.Degree() != 0 {
		return ErrNotIsolated
	}
	delete(m.nodes, label)

	return nil
}

// ProtectFace sets (or clears) ContourProtection on every edge of every
// contour of the face, and the ProtectedFace flag on the face itself.
func (m *GeoMap) ProtectFace(f *Face, protect bool) {
	for _, anchor := range f.Contours() {
		for _, d := range anchor.PhiOrbit() {
			if protect {
				d.Edge().SetFlag(ContourProtection)
			} else {
				d.Edge().ClearFlag(ContourProtection)
			}
		}
	}
	if protect {
		f.SetFlag(ProtectedFace)
	} else {
		f.ClearFlag(ProtectedFace)
	}
}

// operableEdge validates the common preconditions of the edge-removing
// operators.
func (m *GeoMap) operableEdge(d Dart) (*Edge, error) {
	if !m.initialized {
		return nil, ErrNotInitialized
	}
	if d.IsNil() {
		return nil, ErrNilDart
	}
	e := d.Edge()
	if e == nil {
		return nil, ErrEdgeNotFound
	}
	if e.IsProtected() {
		return nil, ErrProtected
	}

	return e, nil
}

// removeDartFromRing deletes the dart's label from its start node's ring.
func (m *GeoMap) removeDartFromRing(d Dart) {
	n := d.StartNode()
	if n == nil {
		return
	}
	for i, l := range n.ring {
		if l == d.label {
			n.ring = append(n.ring[:i], n.ring[i+1:]...)

			return
		}
	}
}

// replaceInRing swaps one dart label for another at the same ring position,
// preserving the rotational order.
func replaceInRing(n *Node, old, new int) {
	for i, l := range n.ring {
		if l == old {
			n.ring[i] = new

			return
		}
	}
}

// replaceAnchor swaps one anchor dart label of a face for another.
func (m *GeoMap) replaceAnchor(faceLabel, old, new int) {
	f := m.faces[faceLabel]
	if f == nil {
		return
	}
	for i, a := range f.anchors {
		if a == old {
			f.anchors[i] = new

			return
		}
	}
}

// firstOtherEdge returns the first dart label in the walk that does not
// belong to the given edge, or 0 when the walk dies with the edge.
func firstOtherEdge(walk []Dart, edgeLabel int) int {
	for _, c := range walk {
		if c.EdgeLabel() != edgeLabel {
			return c.label
		}
	}

	return 0
}

// dropEdgeAnchors filters out anchors referencing darts of the given edge.
func dropEdgeAnchors(anchors []int, edgeLabel int) []int {
	result := anchors[:0:0]
	for _, a := range anchors {
		l := a
		if l < 0 {
			l = -l
		}
		if l != edgeLabel {
			result = append(result, a)
		}
	}

	return result
}

// dedupeAnchors keeps one anchor per distinct phi-orbit, preserving the
// first occurrence. Must run after ring surgery so the orbits are current.
func (m *GeoMap) dedupeAnchors(anchors []int) []int {
	seen := make(map[int]bool, len(anchors))
	result := make([]int, 0, len(anchors))
	for _, a := range anchors {
		if seen[a] {
			continue
		}
		result = append(result, a)
		for _, c := range (Dart{m: m, label: a}).PhiOrbit() {
			seen[c.label] = true
		}
	}

	return result
}
