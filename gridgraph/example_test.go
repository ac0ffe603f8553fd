// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/recom/gridgraph"
)

// ExampleGridGraph_ColumnStripes renders the column plan of a 4×3 lattice
// split into two districts.
func ExampleGridGraph_ColumnStripes() {
	gg, _ := gridgraph.NewLattice(4, 3, gridgraph.DefaultGridOptions())
	plan, _ := gg.ColumnStripes(2)
	out, _ := gg.Render(plan)
	fmt.Print(out)

	// Output:
	// 0011
	// 0011
	// 0011
}
