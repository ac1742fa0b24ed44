// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It reads a sparse-by-zero adjacency matrix and produces a matrix holding only the tree edges.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantour/disjoint"
	"github.com/katalvlaran/spantour/matrix"
)

// Kruskal computes the minimum spanning forest of adj.
//
// Error Conditions:
//   - ErrMalformedGraph : adj is nil, empty, not square, or holds NaN/Inf/negative weights.
//
// Steps:
//  1. Validate the adjacency matrix.
//  2. Collect edges row-major (see Edges for de-duplication).
//  3. Stable sort by ascending weight: equal weights keep encounter order.
//  4. Put every vertex index into its own disjoint.Set subset.
//  5. For each edge: if its endpoints are in different subsets, merge them and
//     write the weight at [From][To] of a zero n×n output (one direction only).
//  6. Stop early once n-1 edges have been accepted.
//
// A disconnected input yields a forest with fewer than n-1 edges; this is not an error.
//
// Complexity: O(n² + E log E). Memory: O(n² + E).
func Kruskal(adj matrix.Matrix) (*matrix.Dense, error) {
	// 1. Validate.
	if err := validate(adj); err != nil {
		return nil, err
	}
	n := adj.Rows()

	// 2-3. Collect and order candidate edges.
	edges := collectEdges(adj)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. One subset per vertex index.
	universe := make([]int, n)
	for v := range universe {
		universe[v] = v
	}
	components, err := disjoint.New(universe)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	// 5. Greedy acceptance.
	var (
		accepted int
		same     bool
	)
	for _, e := range edges {
		if accepted == n-1 {
			break // 6. spanning tree complete
		}
		if same, err = components.Connected(e.From, e.To); err != nil {
			return nil, err
		}
		if same {
			continue // would close a cycle
		}
		if err = components.Merge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("prim_kruskal: Kruskal: %w", err)
		}
		if err = out.Set(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		accepted++
	}

	return out, nil
}
