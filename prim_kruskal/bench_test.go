package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/recom/prim_kruskal"
)

// BenchmarkRandomSpanningTree_Kruskal samples trees of a 20×20 lattice.
func BenchmarkRandomSpanningTree_Kruskal(b *testing.B) {
	sub := buildLattice(b, 20)
	r := rand.New(rand.NewSource(1))
	opts := prim_kruskal.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.RandomSpanningTree(sub, r, opts)
	}
}

// BenchmarkRandomSpanningTree_Prim samples trees of a 20×20 lattice.
func BenchmarkRandomSpanningTree_Prim(b *testing.B) {
	sub := buildLattice(b, 20)
	r := rand.New(rand.NewSource(1))
	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.RandomSpanningTree(sub, r, opts)
	}
}
