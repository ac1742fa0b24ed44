package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantour/dfs"
	"github.com/katalvlaran/spantour/matrix"
)

// ExampleDFS walks a four-vertex tree stored one direction per edge:
//
//	0 -3- 3 -5- 2 -2- 1
//
// From 0 the only neighbour is 3; from 3 the column scan finds 2; from 2 it finds 1.
func ExampleDFS() {
	tree, _ := matrix.FromRows([][]float64{
		{0, 0, 0, 3},
		{0, 0, 2, 0},
		{0, 0, 0, 5},
		{0, 0, 0, 0},
	})
	nodes, err := dfs.DFS(tree, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range nodes {
		fmt.Printf("(%d,%g) ", n.Index, n.Weight)
	}
	fmt.Println()
	// Output: (0,0) (3,3) (2,5) (1,2)
}
