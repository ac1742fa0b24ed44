package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/spantour/matrix"
	"github.com/katalvlaran/spantour/prim_kruskal"
)

// ExampleMinimumSpanningTree runs Kruskal on a four-vertex graph.
// Edges by weight: 1–2 (2), 0–3 (3), 1–3 (5), 2–3 (6), 0–1 (8).
// The first three join every vertex, so the tree weighs 10.
func ExampleMinimumSpanningTree() {
	tree, err := prim_kruskal.MinimumSpanningTree([][]float64{
		{0, 8, 0, 3},
		{8, 0, 2, 5},
		{0, 2, 0, 6},
		{3, 5, 6, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range tree {
		fmt.Println(row)
	}
	// Output:
	// [0 0 0 3]
	// [0 0 2 5]
	// [0 0 0 0]
	// [0 0 0 0]
}

// ExamplePrim grows the same tree from vertex 2 and reports its weight.
func ExamplePrim() {
	adj, _ := matrix.FromRows([][]float64{
		{0, 8, 0, 3},
		{8, 0, 2, 5},
		{0, 2, 0, 6},
		{3, 5, 6, 0},
	})
	tree, err := prim_kruskal.Prim(adj, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(prim_kruskal.TotalWeight(tree), prim_kruskal.EdgeCount(tree))
	// Output: 10 3
}

func ExampleKruskal_malformed() {
	_, err := prim_kruskal.MinimumSpanningTree([][]float64{{0, 1}, {1}})
	fmt.Println(err)
	// Output: prim_kruskal: malformed adjacency matrix: FromRows: row 1 has 1 entries, want 2: matrix: matrix is not square
}
