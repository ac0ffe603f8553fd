// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/recom.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownLabel indicates a cell value with no entry in GridOptions.Labels.
	ErrUnknownLabel = errors.New("gridgraph: cell value has no affiliation label")
	// ErrBadDistricts indicates a stripe plan that cannot give every district a column or row.
	ErrBadDistricts = errors.New("gridgraph: district count out of range")
	// ErrAssignmentSize indicates an assignment whose length differs from the cell count.
	ErrAssignmentSize = errors.New("gridgraph: assignment length mismatch")
)

// Connectivity selects neighbor connectivity: rook (Conn4) or queen (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals NE, SE, SW, NW as queen-only edges.
	Conn8
)

// GridOptions contains tunable parameters for lattice construction.
type GridOptions struct {
	// Conn chooses rook or queen adjacency.
	Conn Connectivity
	// Population is the population of every cell.
	Population int64
	// Labels maps a cell value to the affiliation of the unit. A nil map
	// leaves every unit unaffiliated.
	Labels map[int]string
	// DiagonalPerimeter is the shared perimeter stamped on queen-only edges.
	// Orthogonal edges always carry 1.
	DiagonalPerimeter float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, Population=1, no labels, DiagonalPerimeter=0.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:       Conn4,
		Population: 1,
	}
}

// GridGraph treats a 2D integer grid as a lattice of population units.
// It is immutable once built. Width and Height define dimensions;
// CellValues[y][x] holds the voter layout value of cell (x, y).
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Options         GridOptions
	neighborOffsets [][2]int
}
