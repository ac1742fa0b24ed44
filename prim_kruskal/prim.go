// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm
// over a dense adjacency matrix.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantour/matrix"
)

// Prim computes a minimum spanning tree of the component containing root by
// growing outwards one vertex at a time.
//
// Error Conditions:
//   - ErrMalformedGraph : adj is nil, empty, not square, or holds NaN/Inf/negative weights.
//   - ErrRootOutOfRange : root ∉ [0, n).
//
// Steps:
//  1. Validate adj and root.
//  2. bestCost[v] = +Inf, parent[v] = -1; bestCost[root] = 0.
//  3. Repeat: pick the cheapest vertex u outside the tree (lowest index on ties);
//     stop when none is reachable. Add u and write [parent][u].
//  4. Relax every neighbour v of u, reading the edge in either direction
//     (the smaller weight wins when both directions are populated).
//
// Vertices outside root's component are left untouched: the result is a
// tree, not a forest. Its weight equals Kruskal's on a connected graph.
//
// Complexity: O(n²) time, O(n²) memory for the output.
func Prim(adj matrix.Matrix, root int) (*matrix.Dense, error) {
	// 1. Validate.
	if err := validate(adj); err != nil {
		return nil, err
	}
	n := adj.Rows()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}

	out, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	// 2. Initialization.
	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	parent := make([]int, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[root] = 0

	var u, v int
	var w float64
	for it := 0; it < n; it++ {
		// 3. Cheapest fringe vertex.
		u = -1
		minW := math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			break // rest of the graph is unreachable from root
		}
		inTree[u] = true
		if parent[u] >= 0 {
			if err = out.Set(parent[u], u, bestCost[u]); err != nil {
				return nil, err
			}
		}

		// 4. Relax.
		for v = 0; v < n; v++ {
			if inTree[v] || v == u {
				continue
			}
			if w = undirectedWeight(adj, u, v); w != 0 && w < bestCost[v] {
				bestCost[v] = w
				parent[v] = u
			}
		}
	}

	return out, nil
}

// undirectedWeight returns the lighter nonzero weight of (u,v) and (v,u), or 0.
func undirectedWeight(adj matrix.Matrix, u, v int) float64 {
	a, _ := adj.At(u, v)
	b, _ := adj.At(v, u)
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case b < a:
		return b
	default:
		return a
	}
}
