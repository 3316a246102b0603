package core

import "fmt"

// Dart is an oriented reference to one side of an edge. Its label is
// ±edgeLabel: positive darts run start→end, negative darts end→start.
// The zero value is the nil dart.
//
// Darts are small values; navigation methods return new darts rather than
// mutating the receiver.
type Dart struct {
	m     *GeoMap
	label int
}

// Label returns the signed dart label (0 for the nil dart).
func (d Dart) Label() int { return d.label }

// Map returns the GeoMap this dart navigates, or nil for the nil dart.
func (d Dart) Map() *GeoMap { return d.m }

// IsNil reports whether the dart references nothing.
func (d Dart) IsNil() bool { return d.label == 0 || d.m == nil }

// EdgeLabel returns the label of the underlying edge.
func (d Dart) EdgeLabel() int {
	if d.label < 0 {
		return -d.label
	}

	return d.label
}

// Edge returns the underlying edge, or nil for the nil dart.
func (d Dart) Edge() *Edge {
	if d.IsNil() {
		return nil
	}

	return d.m.edges[d.EdgeLabel()]
}

// Alpha returns the opposite-orientation twin on the same edge.
func (d Dart) Alpha() Dart {
	if d.IsNil() {
		return Dart{}
	}

	return Dart{m: d.m, label: -d.label}
}

// StartNodeLabel returns the label of the node this dart starts at.
func (d Dart) StartNodeLabel() int {
	e := d.Edge()
	if e == nil {
		return 0
	}
	if d.label > 0 {
		return e.startNode
	}

	return e.endNode
}

// EndNodeLabel returns the label of the node this dart points to.
func (d Dart) EndNodeLabel() int {
	return d.Alpha().StartNodeLabel()
}

// StartNode returns the node this dart starts at.
func (d Dart) StartNode() *Node {
	if d.IsNil() {
		return nil
	}

	return d.m.nodes[d.StartNodeLabel()]
}

// EndNode returns the node this dart points to.
func (d Dart) EndNode() *Node {
	if d.IsNil() {
		return nil
	}

	return d.m.nodes[d.EndNodeLabel()]
}

// LeftFaceLabel returns the label of the face left of this dart.
func (d Dart) LeftFaceLabel() int {
	e := d.Edge()
	if e == nil {
		return 0
	}
	if d.label > 0 {
		return e.leftFace
	}

	return e.rightFace
}

// RightFaceLabel returns the label of the face right of this dart.
func (d Dart) RightFaceLabel() int {
	return d.Alpha().LeftFaceLabel()
}

// LeftFace returns the face left of this dart.
func (d Dart) LeftFace() *Face {
	if d.IsNil() {
		return nil
	}

	return d.m.faces[d.LeftFaceLabel()]
}

// RightFace returns the face right of this dart.
func (d Dart) RightFace() *Face {
	if d.IsNil() {
		return nil
	}

	return d.m.faces[d.RightFaceLabel()]
}

// NextSigma returns the next dart sharing this dart's start node,
// in counter-clockwise rotational order.
func (d Dart) NextSigma() Dart {
	return d.sigmaStep(+1)
}

// PrevSigma returns the previous dart in the start node's rotational order.
func (d Dart) PrevSigma() Dart {
	return d.sigmaStep(-1)
}

// sigmaStep walks the start node's ring by delta positions (cyclic).
func (d Dart) sigmaStep(delta int) Dart {
	if d.IsNil() {
		return Dart{}
	}
	n := d.StartNode()
	if n == nil || len(n.ring) == 0 {
		return Dart{}
	}
	for i, l := range n.ring {
		if l == d.label {
			j := (i + delta + len(n.ring)) % len(n.ring)

			return Dart{m: d.m, label: n.ring[j]}
		}
	}

	// A dart whose label is absent from its own start ring means the map
	// is corrupt; CheckConsistency reports this as an invariant violation.
	return Dart{}
}

// NextPhi returns the next dart along the boundary of this dart's left
// face. With sigma rings sorted counter-clockwise, the left-face walk
// takes the twin dart and rotates one step clockwise: phi = prevSigma ∘ alpha.
func (d Dart) NextPhi() Dart {
	return d.Alpha().PrevSigma()
}

// PrevPhi returns the previous dart along the left face boundary:
// phi⁻¹ = alpha ∘ nextSigma.
func (d Dart) PrevPhi() Dart {
	return d.NextSigma().Alpha()
}

// SigmaOrbit returns the full cyclic sequence of darts sharing this dart's
// start node, beginning with the dart itself. The slice is a snapshot; it
// stays valid across subsequent map mutations but may reference removed darts.
func (d Dart) SigmaOrbit() []Dart {
	return d.orbit(Dart.NextSigma)
}

// PhiOrbit returns the full boundary walk of this dart's left face contour,
// beginning with the dart itself. The slice is a snapshot.
func (d Dart) PhiOrbit() []Dart {
	return d.orbit(Dart.NextPhi)
}

// orbit collects the cycle of step applied to d, as an explicit work list.
func (d Dart) orbit(step func(Dart) Dart) []Dart {
	if d.IsNil() {
		return nil
	}
	result := []Dart{d}
	for c := step(d); !c.IsNil() && c.label != d.label; c = step(c) {
		result = append(result, c)
	}

	return result
}

// String implements fmt.Stringer.
func (d Dart) String() string {
	if d.IsNil() {
		return "Dart(nil)"
	}

	return fmt.Sprintf("Dart %d: node %d→%d, faces %d|%d",
		d.label, d.StartNodeLabel(), d.EndNodeLabel(), d.LeftFaceLabel(), d.RightFaceLabel())
}
