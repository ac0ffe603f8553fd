package gridgraph

// Voter layouts are written top row first, the way they read on paper:
// rows[0] is the row with the largest y. FromLayout flips them so that
// CellValues[y][x] = rows[Height-1-y][x].

// Minority and Majority are the two cell values used by the bundled layouts.
const (
	Minority = 0
	Majority = 1
)

// HenryRows is the 10×10 voter configuration known as "Henry": 40 minority
// cells (value 0) scattered through a majority (value 1) background.
var HenryRows = [][]int{
	{1, 1, 0, 0, 0, 0, 0, 0, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	{1, 0, 0, 1, 1, 0, 0, 0, 1, 1},
	{0, 0, 1, 1, 1, 1, 1, 0, 1, 0},
	{0, 1, 1, 1, 0, 1, 1, 1, 1, 0},
	{0, 1, 0, 0, 0, 1, 0, 1, 1, 1},
	{0, 1, 0, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 1, 1, 0, 0, 1, 1, 1, 0},
	{1, 1, 1, 0, 1, 1, 1, 1, 0, 0},
}

// FromLayout builds a GridGraph from layout rows written top row first.
func FromLayout(rows [][]int, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	flipped := make([][]int, len(rows))
	for i, row := range rows {
		flipped[len(rows)-1-i] = row
	}

	return NewGridGraph(flipped, opts)
}

// ColumnLayout returns width×height layout rows where the leftmost
// minorityColumns columns are Minority and the rest Majority.
func ColumnLayout(width, height, minorityColumns int) [][]int {
	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, width)
		for x := range rows[y] {
			if x >= minorityColumns {
				rows[y][x] = Majority
			}
		}
	}

	return rows
}
