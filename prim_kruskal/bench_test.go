package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantour/prim_kruskal"
)

// BenchmarkKruskal measures performance on a seeded random graph with 200 vertices.
func BenchmarkKruskal(b *testing.B) {
	adj := mustDense(b, randomAdjacency(rand.New(rand.NewSource(42)), 200, 0.3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(adj)
	}
}

// BenchmarkPrim measures performance on the same graph, always starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	adj := mustDense(b, randomAdjacency(rand.New(rand.NewSource(42)), 200, 0.3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(adj, 0)
	}
}
