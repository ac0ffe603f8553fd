// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a districting lattice. It supports:
//
//   - Rook or queen adjacency (Conn4 or Conn8)
//   - Conversion to a *core.Graph with populations and affiliations
//   - Stripe initial plans and text rendering of assignments
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/recom/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Only "forward" offsets: every undirected pair is emitted once, from
	// its lower row-major endpoint.
	offsets := [][2]int{{1, 0}, {0, 1}}
	if opts.Conn == Conn8 {
		offsets = append(offsets, [2]int{1, 1}, [2]int{-1, 1})
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Options:         opts,
		neighborOffsets: offsets,
	}, nil
}

// NewLattice builds a width×height GridGraph whose cells all hold value 0.
func NewLattice(width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// VertexID formats the unique vertex identifier for cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the GridGraph into an immutable *core.Graph.
// Each cell (x,y) becomes the vertex with ID "x,y", dense index y*Width+x,
// metadata {x,y,value}, population Options.Population and affiliation
// Options.Labels[value]. Orthogonal neighbors are joined by rook edges with
// shared perimeter 1; under Conn8 diagonal neighbors get queen-only edges.
//
// Returns ErrUnknownLabel if Labels is set and misses a cell value.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	b := core.NewBuilder(core.WithStrictVertices(), core.WithCapacity(gg.Width*gg.Height, gg.Width*gg.Height*len(gg.neighborOffsets)))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			value := gg.CellValues[y][x]
			opts := []core.VertexOption{
				core.WithPopulation(gg.Options.Population),
				core.WithMetadata("x", x),
				core.WithMetadata("y", y),
				core.WithMetadata("value", value),
			}
			if gg.Options.Labels != nil {
				label, ok := gg.Options.Labels[value]
				if !ok {
					return nil, fmt.Errorf("cell (%d,%d) value %d: %w", x, y, value, ErrUnknownLabel)
				}
				opts = append(opts, core.WithAffiliation(label))
			}
			if err := b.AddVertex(VertexID(x, y), opts...); err != nil {
				return nil, err
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				opts := []core.EdgeOption{core.WithSharedPerimeter(1)}
				if d[0] != 0 && d[1] != 0 {
					opts = []core.EdgeOption{
						core.WithEdgeKind(core.Diagonal),
						core.WithSharedPerimeter(gg.Options.DiagonalPerimeter),
					}
				}
				if _, err := b.AddEdge(VertexID(x, y), VertexID(nx, ny), opts...); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ColumnStripes returns the initial plan that cuts the grid into k vertical
// stripes: cell (x, y) goes to district ⌊x·k / Width⌋. Every district gets at
// least one column, so 1 ≤ k ≤ Width is required (ErrBadDistricts otherwise).
func (gg *GridGraph) ColumnStripes(k int) ([]int, error) {
	if k < 1 || k > gg.Width {
		return nil, fmt.Errorf("k=%d, width=%d: %w", k, gg.Width, ErrBadDistricts)
	}
	out := make([]int, gg.Width*gg.Height)
	for i := range out {
		x, _ := gg.Coordinate(i)
		out[i] = x * k / gg.Width
	}

	return out, nil
}

// RowStripes is the horizontal counterpart of ColumnStripes.
func (gg *GridGraph) RowStripes(k int) ([]int, error) {
	if k < 1 || k > gg.Height {
		return nil, fmt.Errorf("k=%d, height=%d: %w", k, gg.Height, ErrBadDistricts)
	}
	out := make([]int, gg.Width*gg.Height)
	for i := range out {
		_, y := gg.Coordinate(i)
		out[i] = y * k / gg.Height
	}

	return out, nil
}

// Render draws an assignment as text, one line per row from y=Height-1 down to
// y=0 so the picture matches the layout rows handed to FromLayout. Districts
// are printed as base-36 digits.
func (gg *GridGraph) Render(assignment []int) (string, error) {
	if len(assignment) != gg.Width*gg.Height {
		return "", fmt.Errorf("got %d, want %d: %w", len(assignment), gg.Width*gg.Height, ErrAssignmentSize)
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var sb strings.Builder
	for y := gg.Height - 1; y >= 0; y-- {
		for x := 0; x < gg.Width; x++ {
			d := assignment[gg.Index(x, y)]
			if d >= 0 && d < len(digits) {
				sb.WriteByte(digits[d])
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
