package prim_kruskal

import "github.com/katalvlaran/spantour/matrix"

// Edge is an undirected weighted edge between two vertex indices.
// (a, b, w) and (b, a, w) describe the same edge; From is the endpoint whose
// row the edge was read from.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Edges enumerates the edges of adj in row-major order.
//
// Zero entries and self-loops are skipped. An entry (i, j, w) with j < i is
// dropped when (j, i) also holds w, because that edge was already emitted
// from row j. Mirror entries with different weights are both kept; Kruskal
// will simply try the lighter one first.
//
// Complexity: O(n²).
func Edges(adj matrix.Matrix) ([]Edge, error) {
	if err := validate(adj); err != nil {
		return nil, err
	}

	return collectEdges(adj), nil
}

// collectEdges is Edges without validation; adj must already be validated.
func collectEdges(adj matrix.Matrix) []Edge {
	n := adj.Rows()
	edges := make([]Edge, 0, n)
	var (
		i, j   int
		w, rev float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // a self-loop can never join two components
			}
			w, _ = adj.At(i, j)
			if w == 0 {
				continue
			}
			if j < i {
				if rev, _ = adj.At(j, i); rev == w {
					continue // already emitted as (j, i, w)
				}
			}
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}

	return edges
}

// TotalWeight sums every nonzero entry of a tree matrix. Because MST output
// stores each edge once, this is the tree's weight.
func TotalWeight(tree matrix.Matrix) float64 {
	var total float64
	n, m := tree.Rows(), tree.Cols()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			w, _ := tree.At(i, j)
			total += w
		}
	}

	return total
}

// EdgeCount counts the nonzero entries of a tree matrix, i.e. its edges.
func EdgeCount(tree matrix.Matrix) int {
	count := 0
	n, m := tree.Rows(), tree.Cols()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if w, _ := tree.At(i, j); w != 0 {
				count++
			}
		}
	}

	return count
}
