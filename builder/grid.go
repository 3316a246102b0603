// Package builder: grid fixture construction.
//
// This file declares GridOptions, the functional options, the Grid handle
// and the GridMap/RingMap constructors.
package builder

import (
	"errors"
	"fmt"

	"github.com/eldruin/geomap/core"
)

// ErrBadDimensions indicates non-positive grid dimensions or cell size.
var ErrBadDimensions = errors.New("builder: grid dimensions and cell size must be positive")

// GridOptions configures grid construction.
// Use DefaultOptions() for the standard unit lattice.
type GridOptions struct {
	// Origin is the position of lattice corner (0,0).
	Origin core.Vector2

	// CellSize is the side length of one cell; must be > 0.
	CellSize float64

	// BorderProtection flags every outer boundary edge BorderProtection,
	// so no merge pass can open a face toward the infinite face.
	BorderProtection bool
}

// Option configures GridOptions.
type Option func(*GridOptions)

// WithOrigin sets the position of lattice corner (0,0).
func WithOrigin(v core.Vector2) Option {
	return func(o *GridOptions) { o.Origin = v }
}

// WithCellSize sets the side length of one grid cell.
func WithCellSize(s float64) Option {
	return func(o *GridOptions) { o.CellSize = s }
}

// WithBorderProtection seals the outer boundary of the grid.
func WithBorderProtection() Option {
	return func(o *GridOptions) { o.BorderProtection = true }
}

// DefaultOptions returns the standard configuration: unit cells anchored at
// the coordinate origin, border unprotected.
func DefaultOptions() GridOptions {
	return GridOptions{CellSize: 1}
}

// Grid is a constructed lattice subdivision plus the coordinate bookkeeping
// the construction produced. Columns run along +X, rows along +Y; cell
// (c, r) spans lattice corners (c, r) … (c+1, r+1).
type Grid struct {
	// Map is the initialized subdivision.
	Map *core.GeoMap

	// Cols and Rows are the cell dimensions.
	Cols, Rows int

	nodes  [][]int // nodes[r][c], lattice corner labels
	hEdges [][]int // hEdges[r][c]: corner (c,r) → (c+1,r)
	vEdges [][]int // vEdges[r][c]: corner (c,r) → (c,r+1)
}

// NodeAt returns the label of the lattice corner (c, r),
// with 0 ≤ c ≤ Cols and 0 ≤ r ≤ Rows.
func (g *Grid) NodeAt(c, r int) int { return g.nodes[r][c] }

// HorizontalEdge returns the label of the edge from corner (c, r) to
// (c+1, r).
func (g *Grid) HorizontalEdge(c, r int) int { return g.hEdges[r][c] }

// VerticalEdge returns the label of the edge from corner (c, r) to
// (c, r+1).
func (g *Grid) VerticalEdge(c, r int) int { return g.vEdges[r][c] }

// FaceAt returns the label of the face of cell (c, r),
// with 0 ≤ c < Cols and 0 ≤ r < Rows.
func (g *Grid) FaceAt(c, r int) int {
	// The cell lies left of the +X dart along its bottom edge.
	return g.Map.Dart(g.hEdges[r][c]).LeftFaceLabel()
}

// Face returns the face of cell (c, r).
func (g *Grid) Face(c, r int) *core.Face { return g.Map.Face(g.FaceAt(c, r)) }

// GridMap builds a cols×rows lattice subdivision and initializes its
// faces. Construction is deterministic: identical arguments yield
// identical node, edge and face labels.
func GridMap(cols, rows int, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cols < 1 || rows < 1 || cfg.CellSize <= 0 {
		return nil, ErrBadDimensions
	}

	m := core.NewGeoMap()
	g := &Grid{Map: m, Cols: cols, Rows: rows}

	// 1) Lattice corners, row-major.
	g.nodes = make([][]int, rows+1)
	for r := 0; r <= rows; r++ {
		g.nodes[r] = make([]int, cols+1)
		for c := 0; c <= cols; c++ {
			n, err := m.AddNode(core.Vector2{
				X: cfg.Origin.X + float64(c)*cfg.CellSize,
				Y: cfg.Origin.Y + float64(r)*cfg.CellSize,
			})
			if err != nil {
				return nil, fmt.Errorf("builder: add node (%d,%d): %w", c, r, err)
			}
			g.nodes[r][c] = n.Label()
		}
	}

	// 2) Horizontal edges, then vertical edges, both row-major.
	g.hEdges = make([][]int, rows+1)
	for r := 0; r <= rows; r++ {
		g.hEdges[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			e, err := m.AddEdge(g.nodes[r][c], g.nodes[r][c+1])
			if err != nil {
				return nil, fmt.Errorf("builder: add horizontal edge (%d,%d): %w", c, r, err)
			}
			g.hEdges[r][c] = e.Label()
			if cfg.BorderProtection && (r == 0 || r == rows) {
				e.SetFlag(core.BorderProtection)
			}
		}
	}
	g.vEdges = make([][]int, rows)
	for r := 0; r < rows; r++ {
		g.vEdges[r] = make([]int, cols+1)
		for c := 0; c <= cols; c++ {
			e, err := m.AddEdge(g.nodes[r][c], g.nodes[r+1][c])
			if err != nil {
				return nil, fmt.Errorf("builder: add vertical edge (%d,%d): %w", c, r, err)
			}
			g.vEdges[r][c] = e.Label()
			if cfg.BorderProtection && (c == 0 || c == cols) {
				e.SetFlag(core.BorderProtection)
			}
		}
	}

	// 3) Derive faces.
	if err := m.InitFaces(); err != nil {
		return nil, fmt.Errorf("builder: init faces: %w", err)
	}

	return g, nil
}

// RingMap builds the sealed 2×2 grid: four faces in a ring around the
// center node, outer border protected. Diagonal cells share only a corner,
// not an edge.
func RingMap(opts ...Option) (*Grid, error) {
	return GridMap(2, 2, append(opts, WithBorderProtection())...)
}
