// Package gridgraph treats a 2D grid of cells as a districting lattice:
// every cell is a population unit, neighboring cells share a border.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int voter layout.
//   - ToCoreGraph emits a *core.Graph with rook edges (and queen-only
//     diagonal edges under Conn8), unit populations and party labels.
//   - ColumnStripes/RowStripes produce stripe initial plans.
//   - Render prints an assignment as a character grid.
//   - HenryRows and ColumnLayout are bundled voter layouts.
//
// Complexity:
//
//   - ToCoreGraph: O(W×H×d), Memory: O(W×H×d)   (d = 2 or 4 forward offsets).
//   - ColumnStripes, RowStripes, Render: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (rook) or Conn8 (queen).
//   - GridOptions.Population: population of every cell.
//   - GridOptions.Labels: cell value → affiliation.
//   - GridOptions.DiagonalPerimeter: perimeter on queen-only edges.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed layout.
//   - ErrUnknownLabel: cell value missing from Labels.
//   - ErrBadDistricts: stripe count out of range.
//   - ErrAssignmentSize: Render input of the wrong length.
package gridgraph
