package core

import (
	"math"
	"sort"
)

// GeoMap is the in-memory planar subdivision.
//
// A GeoMap starts in the build phase: AddNode and AddEdge assemble the
// embedded graph. InitFaces then freezes the embedding, derives the faces
// and switches the map to the operating phase, in which only the Euler
// operators (euler.go) change the topology.
//
// GeoMap is not safe for concurrent mutation; all segmentation passes in
// this module are single-threaded by design.
type GeoMap struct {
	nodes map[int]*Node
	edges map[int]*Edge
	faces map[int]*Face

	maxNodeLabel int
	maxEdgeLabel int
	maxFaceLabel int

	initialized bool
}

// NewGeoMap creates an empty map in the build phase.
// Complexity: O(1)
func NewGeoMap() *GeoMap {
	return &GeoMap{
		nodes: make(map[int]*Node),
		edges: make(map[int]*Edge),
		faces: make(map[int]*Face),
	}
}

// Initialized reports whether InitFaces has completed.
func (m *GeoMap) Initialized() bool { return m.initialized }

// AddNode creates a node at the given position and returns it.
// Node labels start at 1; label 0 is never assigned.
func (m *GeoMap) AddNode(pos Vector2) (*Node, error) {
	if m.initialized {
		return nil, ErrNotBuildPhase
	}
	m.maxNodeLabel++
	n := &Node{m: m, label: m.maxNodeLabel, position: pos}
	m.nodes[n.label] = n

	return n, nil
}

// AddEdge creates an edge between two existing nodes and returns it.
// Self-loops are refused; they only arise later through MergeEdges.
// The sigma ring positions are provisional until InitFaces sorts them.
func (m *GeoMap) AddEdge(startLabel, endLabel int) (*Edge, error) {
	if m.initialized {
		return nil, ErrNotBuildPhase
	}
	if startLabel == endLabel {
		return nil, ErrLoopNotAllowed
	}
	start, ok := m.nodes[startLabel]
	if !ok {
		return nil, ErrNodeNotFound
	}
	end, ok := m.nodes[endLabel]
	if !ok {
		return nil, ErrNodeNotFound
	}

	m.maxEdgeLabel++
	e := &Edge{m: m, label: m.maxEdgeLabel, startNode: startLabel, endNode: endLabel}
	m.edges[e.label] = e
	start.ring = append(start.ring, e.label)
	end.ring = append(end.ring, -e.label)

	return e, nil
}

// InitFaces freezes the embedding: every sigma ring is sorted
// counter-clockwise by the angle toward the opposite endpoint, faces are
// derived as phi-orbits, and the single outer orbit (the one with
// non-positive signed area) becomes the infinite face, label 0.
//
// The edge set must form one connected boundary complex; more than one
// outer orbit yields ErrDisconnected and leaves the map uninitialized.
// Ties between parallel straight edges are broken by dart label, keeping
// construction deterministic.
func (m *GeoMap) InitFaces() error {
	if m.initialized {
		return ErrNotBuildPhase
	}

	// 1) Sort every sigma ring counter-clockwise.
	for _, n := range m.nodes {
		m.sortRing(n)
	}

	// 2) Discover phi-orbits in ascending dart order: +1, -1, +2, -2, …
	type orbit struct {
		anchor int
		darts  []Dart
		area   float64
	}
	seen := make(map[int]bool, 2*len(m.edges))
	var orbits []orbit
	labels := m.sortedEdgeLabels()
	for _, l := range labels {
		for _, dl := range [2]int{l, -l} {
			if seen[dl] {
				continue
			}
			walk := (Dart{m: m, label: dl}).PhiOrbit()
			for _, c := range walk {
				seen[c.label] = true
			}
			orbits = append(orbits, orbit{anchor: dl, darts: walk, area: m.orbitArea(walk)})
		}
	}

	// 3) Exactly one orbit may have non-positive area: the outer boundary.
	outer := -1
	for i, o := range orbits {
		if o.area <= 0 {
			if outer >= 0 {
				return ErrDisconnected
			}
			outer = i
		}
	}

	// 4) Materialize faces. The infinite face gets label 0; finite faces
	//    are labeled in orbit-discovery order.
	if outer >= 0 {
		f := &Face{m: m, label: 0, anchors: []int{orbits[outer].anchor}}
		m.faces[0] = f
		m.assignLeftFace(orbits[outer].darts, 0)
	} else if len(m.edges) == 0 {
		// An empty map still owns the infinite face.
		m.faces[0] = &Face{m: m, label: 0}
	}
	for i, o := range orbits {
		if i == outer {
			continue
		}
		m.maxFaceLabel++
		f := &Face{m: m, label: m.maxFaceLabel, anchors: []int{o.anchor}}
		m.faces[f.label] = f
		m.assignLeftFace(o.darts, f.label)
	}

	m.initialized = true

	return nil
}

// sortRing orders a node's darts counter-clockwise by the direction toward
// the opposite endpoint, with dart labels as deterministic tie-breakers.
func (m *GeoMap) sortRing(n *Node) {
	angles := make(map[int]float64, len(n.ring))
	for _, dl := range n.ring {
		other := (Dart{m: m, label: dl}).EndNode()
		angles[dl] = math.Atan2(other.position.Y-n.position.Y, other.position.X-n.position.X)
	}
	sort.Slice(n.ring, func(i, j int) bool {
		ai, aj := angles[n.ring[i]], angles[n.ring[j]]
		if ai != aj {
			return ai < aj
		}

		return n.ring[i] < n.ring[j]
	})
}

// orbitArea computes twice the signed area of the polygon traced by the
// start-node positions of the walk (shoelace formula, CCW positive).
func (m *GeoMap) orbitArea(walk []Dart) float64 {
	var sum float64
	for i, d := range walk {
		p := d.StartNode().position
		q := walk[(i+1)%len(walk)].StartNode().position
		sum += p.X*q.Y - q.X*p.Y
	}

	return sum
}

// assignLeftFace stamps the face label onto the left side of every dart in
// the walk.
func (m *GeoMap) assignLeftFace(walk []Dart, faceLabel int) {
	for _, d := range walk {
		e := m.edges[d.EdgeLabel()]
		if d.label > 0 {
			e.leftFace = faceLabel
		} else {
			e.rightFace = faceLabel
		}
	}
}

// Node returns the node with the given label, or nil.
func (m *GeoMap) Node(label int) *Node { return m.nodes[label] }

// Edge returns the edge with the given label, or nil.
func (m *GeoMap) Edge(label int) *Edge { return m.edges[label] }

// Face returns the face with the given label, or nil.
func (m *GeoMap) Face(label int) *Face { return m.faces[label] }

// Dart returns the dart with the given signed label. The nil dart is
// returned for label 0 or when the underlying edge does not exist.
func (m *GeoMap) Dart(label int) Dart {
	l := label
	if l < 0 {
		l = -l
	}
	if _, ok := m.edges[l]; !ok {
		return Dart{}
	}

	return Dart{m: m, label: label}
}

// NodeCount returns the number of live nodes.
func (m *GeoMap) NodeCount() int { return len(m.nodes) }

// EdgeCount returns the number of live edges.
func (m *GeoMap) EdgeCount() int { return len(m.edges) }

// FaceCount returns the number of live faces, including the infinite face.
func (m *GeoMap) FaceCount() int { return len(m.faces) }

// MaxNodeLabel returns the highest node label ever assigned.
func (m *GeoMap) MaxNodeLabel() int { return m.maxNodeLabel }

// MaxEdgeLabel returns the highest edge label ever assigned.
func (m *GeoMap) MaxEdgeLabel() int { return m.maxEdgeLabel }

// MaxFaceLabel returns the highest finite face label ever assigned.
func (m *GeoMap) MaxFaceLabel() int { return m.maxFaceLabel }

// Nodes returns all live nodes in ascending label order.
func (m *GeoMap) Nodes() []*Node {
	labels := make([]int, 0, len(m.nodes))
	for l := range m.nodes {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	result := make([]*Node, len(labels))
	for i, l := range labels {
		result[i] = m.nodes[l]
	}

	return result
}

// Edges returns all live edges in ascending label order.
func (m *GeoMap) Edges() []*Edge {
	labels := m.sortedEdgeLabels()
	result := make([]*Edge, len(labels))
	for i, l := range labels {
		result[i] = m.edges[l]
	}

	return result
}

// Faces returns all live faces in ascending label order,
// starting with the infinite face.
func (m *GeoMap) Faces() []*Face {
	labels := make([]int, 0, len(m.faces))
	for l := range m.faces {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	result := make([]*Face, len(labels))
	for i, l := range labels {
		result[i] = m.faces[l]
	}

	return result
}

// sortedEdgeLabels returns the live edge labels in ascending order.
// Sorted iteration keeps every batch algorithm in this module deterministic.
func (m *GeoMap) sortedEdgeLabels() []int {
	labels := make([]int, 0, len(m.edges))
	for l := range m.edges {
		labels = append(labels, l)
	}
	sort.Ints(labels)

	return labels
}
