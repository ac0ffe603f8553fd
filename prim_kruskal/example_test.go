package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a triangle whose edges
// weigh A–B 1, A–C 4, B–C 2. The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	b := core.NewBuilder()
	b.AddEdge("A", "B")
	b.AddEdge("B", "C")
	b.AddEdge("A", "C")
	g, _ := b.Build()
	sub := core.Induce(g, []int{0, 1, 2})

	// Weights follow sub.Edges(): A–B, A–C, B–C.
	tree, total, err := prim_kruskal.Kruskal(sub, []float64{1, 4, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", total)
	for _, pos := range tree {
		e := sub.Edges()[pos]
		fmt.Printf(" %s-%s", g.ID(sub.Global(e.U)), g.ID(sub.Global(e.V)))
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}
