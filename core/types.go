// Package core defines the central GeoMap, Node, Edge, Face and Dart types,
// the shared flag bitmasks, and the CostFunc contract consumed by every
// segmentation algorithm in this module.
//
// This file declares the flag constants, Vector2, CellKind/CellRef,
// CostFunc, the cell structs and the sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core map operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrFaceNotFound indicates an operation referenced a non-existent face.
	ErrFaceNotFound = errors.New("core: face not found")

	// ErrNilDart indicates a nil (zero-label) dart was passed to an operation.
	ErrNilDart = errors.New("core: nil dart")

	// ErrNotBuildPhase indicates AddNode/AddEdge was called after InitFaces.
	ErrNotBuildPhase = errors.New("core: map already initialized; use Euler operators")

	// ErrNotInitialized indicates an Euler operator ran before InitFaces.
	ErrNotInitialized = errors.New("core: map not initialized; call InitFaces first")

	// ErrLoopNotAllowed indicates AddEdge was called with identical endpoints.
	// Loops only arise later, through edge fusion at degree-2 nodes.
	ErrLoopNotAllowed = errors.New("core: self-loop edges cannot be added directly")

	// ErrDisconnected indicates InitFaces found more than one outer orbit,
	// i.e. the edge set does not form a single connected boundary complex.
	ErrDisconnected = errors.New("core: edge set is disconnected")

	// ErrProtected indicates an Euler operator refused to remove a
	// protection-flagged edge. This is an expected refusal, not a failure.
	ErrProtected = errors.New("core: edge is protected")

	// ErrIsBridge indicates MergeFaces was called on a bridge
	// (both sides of the edge border the same face).
	ErrIsBridge = errors.New("core: edge is a bridge")

	// ErrNotBridge indicates RemoveBridge was called on a non-bridge edge.
	ErrNotBridge = errors.New("core: edge is not a bridge")

	// ErrBadDegree indicates MergeEdges was called at a node whose degree is not 2.
	ErrBadDegree = errors.New("core: node degree is not 2")

	// ErrIsLoop indicates MergeEdges was called where the two incident
	// dart-ends belong to the same edge (a self-loop anchor).
	ErrIsLoop = errors.New("core: cannot fuse a self-loop")

	// ErrNotIsolated indicates RemoveIsolatedNode was called on a node with degree > 0.
	ErrNotIsolated = errors.New("core: node is not isolated")
)

// Flags is a per-cell bitmask. Edge flags guard topological removal;
// face flags classify regions during growing and committing.
type Flags uint32

// Edge protection and classification flags.
// The numeric values are part of the public contract: callers may persist
// them or combine them with their own bits above EdgeUser.
const (
	// BorderProtection marks edges on the image border; they are never removed.
	BorderProtection Flags = 1

	// ScissorProtection marks edges committed by the intelligent-scissors tool.
	ScissorProtection Flags = 2

	// ContourProtection marks edges protecting a whole face contour
	// (see GeoMap.ProtectFace).
	ContourProtection Flags = 4

	// CustomProtection is reserved for caller-defined protection.
	CustomProtection Flags = 8

	// AllProtection combines every protection bit; Euler operators refuse
	// edges matching this mask.
	AllProtection = BorderProtection | ScissorProtection | ContourProtection | CustomProtection

	// CurrentContour marks edges belonging to the contour currently being
	// traced; the live wire avoids them to prevent immediate backtracking.
	CurrentContour Flags = 2048

	// EdgeUser is the first bit free for application-defined edge flags.
	EdgeUser Flags = 0x100000
)

// Face classification flags.
const (
	// ProtectedFace marks a face whose contour edges carry ContourProtection.
	ProtectedFace Flags = 2

	// SRGSeed marks a face as a seed region for seeded region growing.
	SRGSeed Flags = 8

	// SRGBorder marks a face that is already enqueued as a growth candidate.
	SRGBorder Flags = 16

	// FaceUser is the first bit free for application-defined face flags.
	FaceUser Flags = 0x100000
)

// Flag reports whether any bit of mask is set.
func (f Flags) Flag(mask Flags) bool { return f&mask != 0 }

// Vector2 is a 2D point. The segmentation core treats positions as opaque;
// they only matter for the angular sigma-ring ordering at build time.
type Vector2 struct {
	X, Y float64
}

// CellKind distinguishes the three cell types of a combinatorial map.
// It replaces runtime attribute probing with a tag decided at construction.
type CellKind uint8

const (
	// KindNode tags a CellRef as a node label.
	KindNode CellKind = iota

	// KindEdge tags a CellRef as an edge label.
	KindEdge

	// KindFace tags a CellRef as a face label.
	KindFace
)

// String returns a short human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindFace:
		return "face"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// CellRef addresses one cell of a GeoMap by kind and label.
type CellRef struct {
	Kind  CellKind
	Label int
}

// String formats the reference as e.g. "face 7".
func (c CellRef) String() string { return fmt.Sprintf("%s %d", c.Kind, c.Label) }

// CostFunc assigns a cost to a directed dart. The second return value is
// false when the operation the cost would drive must never happen for this
// dart (the "no merge" sentinel). Cost functions may be asymmetric: the
// cost of a dart and of its Alpha twin need not agree.
type CostFunc func(Dart) (float64, bool)

// Node is a junction of the subdivision. Its sigma ring lists the labels of
// all darts starting here, in counter-clockwise rotational order.
type Node struct {
	m        *GeoMap
	label    int
	position Vector2
	ring     []int
}

// Label returns the node's stable integer label. Labels start at 1;
// label 0 is never assigned.
func (n *Node) Label() int { return n.label }

// Position returns the node's embedded 2D position.
func (n *Node) Position() Vector2 { return n.position }

// Degree returns the number of dart-ends incident to this node.
func (n *Node) Degree() int { return len(n.ring) }

// Anchor returns one dart starting at this node, or the nil dart for an
// isolated node.
func (n *Node) Anchor() Dart {
	if len(n.ring) == 0 {
		return Dart{}
	}

	return Dart{m: n.m, label: n.ring[0]}
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node %d at (%g, %g), degree %d", n.label, n.position.X, n.position.Y, len(n.ring))
}

// Edge is an undirected boundary segment carrying two directed darts:
// +label (start→end) and -label (end→start).
type Edge struct {
	m                  *GeoMap
	label              int
	startNode, endNode int
	leftFace, rightFace int
	flags              Flags
}

// Label returns the edge's stable integer label (always positive).
func (e *Edge) Label() int { return e.label }

// StartNodeLabel returns the label of the start node of the positive dart.
func (e *Edge) StartNodeLabel() int { return e.startNode }

// EndNodeLabel returns the label of the end node of the positive dart.
func (e *Edge) EndNodeLabel() int { return e.endNode }

// LeftFaceLabel returns the label of the face left of the positive dart.
func (e *Edge) LeftFaceLabel() int { return e.leftFace }

// RightFaceLabel returns the label of the face right of the positive dart.
func (e *Edge) RightFaceLabel() int { return e.rightFace }

// IsBridge reports whether both sides of the edge border the same face.
func (e *Edge) IsBridge() bool { return e.leftFace == e.rightFace }

// IsLoop reports whether both endpoints are the same node.
func (e *Edge) IsLoop() bool { return e.startNode == e.endNode }

// Dart returns the positive (forward) dart of this edge.
func (e *Edge) Dart() Dart { return Dart{m: e.m, label: e.label} }

// Flags returns the full flag bitmask of the edge.
func (e *Edge) Flags() Flags { return e.flags }

// Flag reports whether any bit of mask is set on the edge.
func (e *Edge) Flag(mask Flags) bool { return e.flags.Flag(mask) }

// SetFlag sets every bit of mask on the edge.
func (e *Edge) SetFlag(mask Flags) { e.flags |= mask }

// ClearFlag clears every bit of mask on the edge.
func (e *Edge) ClearFlag(mask Flags) { e.flags &^= mask }

// IsProtected reports whether the edge carries any protection bit and must
// not be removed by an Euler operator.
func (e *Edge) IsProtected() bool { return e.flags.Flag(AllProtection) }

// String implements fmt.Stringer.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge %d: %d→%d, faces %d|%d, flags %#x",
		e.label, e.startNode, e.endNode, e.leftFace, e.rightFace, uint32(e.flags))
}

// Face is a region of the subdivision, bounded by one or more contours.
// Each contour is a closed phi-orbit, addressed by one anchor dart.
// The infinite face carries label 0.
type Face struct {
	m       *GeoMap
	label   int
	anchors []int
	flags   Flags
}

// Label returns the face's stable integer label.
func (f *Face) Label() int { return f.label }

// Contour returns the anchor dart of the first contour, or the nil dart for
// a face without boundary (possible only for the infinite face after every
// edge has been merged away).
func (f *Face) Contour() Dart {
	if len(f.anchors) == 0 {
		return Dart{}
	}

	return Dart{m: f.m, label: f.anchors[0]}
}

// Contours returns one anchor dart per contour of the face.
func (f *Face) Contours() []Dart {
	result := make([]Dart, len(f.anchors))
	for i, a := range f.anchors {
		result[i] = Dart{m: f.m, label: a}
	}

	return result
}

// HoleContours returns the anchor darts of every contour except the first.
func (f *Face) HoleContours() []Dart {
	if len(f.anchors) < 2 {
		return nil
	}
	result := make([]Dart, 0, len(f.anchors)-1)
	for _, a := range f.anchors[1:] {
		result = append(result, Dart{m: f.m, label: a})
	}

	return result
}

// Flags returns the full flag bitmask of the face.
func (f *Face) Flags() Flags { return f.flags }

// Flag reports whether any bit of mask is set on the face.
func (f *Face) Flag(mask Flags) bool { return f.flags.Flag(mask) }

// SetFlag sets every bit of mask on the face.
func (f *Face) SetFlag(mask Flags) { f.flags |= mask }

// ClearFlag clears every bit of mask on the face.
func (f *Face) ClearFlag(mask Flags) { f.flags &^= mask }

// IsSeed reports whether the face is marked as a growing seed.
func (f *Face) IsSeed() bool { return f.flags.Flag(SRGSeed) }

// IsBorderCandidate reports whether the face is already enqueued as a
// growth candidate.
func (f *Face) IsBorderCandidate() bool { return f.flags.Flag(SRGBorder) }

// String implements fmt.Stringer.
func (f *Face) String() string {
	return fmt.Sprintf("Face %d with %d contour(s), flags %#x", f.label, len(f.anchors), uint32(f.flags))
}
