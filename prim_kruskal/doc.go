// Package prim_kruskal computes minimum spanning trees over sparse-by-zero
// adjacency matrices (see package matrix): Kruskal's algorithm as the primary
// builder and Prim's algorithm as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a disconnected graph the same construction yields a minimum spanning forest.
//
//   - Why MST matters:
//
//   - Network Design: cheapest way to connect every site.
//
//   - Approximation: the MST is the backbone of the tree-walk TSP heuristic in package tsp.
//
// Input convention
//
//	Entry (i, j) of the input is the weight of edge i–j; 0 means "no edge". Only one of
//	(i, j)/(j, i) needs to be populated. When both are populated with the same weight
//	the edge is counted once, taken from the smaller row index.
//
// Output convention
//
//	The result is a fresh n×n matrix holding only the selected edges, each written in ONE
//	direction: Kruskal writes (From, To) as the edge was first encountered in row-major order,
//	Prim writes (parent, child). Consumers must read both directions (matrix.EdgeWeight,
//	dfs.DFS do).
//
// Algorithms Provided
//
//   - Kruskal(adj matrix.Matrix) (*matrix.Dense, error)
//
//   - Strategy: enumerate edges row-major, stable-sort by weight (ties keep encounter order),
//     accept an edge iff its endpoints are in different disjoint.Set subsets.
//
//   - Complexity: O(n² + E log E) time, O(n² + E) memory.
//
//   - Determinism: identical input always produces bit-identical output.
//
//   - Prim(adj matrix.Matrix, root int) (*matrix.Dense, error)
//
//   - Strategy: dense O(n²) growth from root; ties pick the lowest vertex index.
//
//   - Spans only root's component.
//
// Error Conditions
//
//   - ErrMalformedGraph  input is nil, empty, not square, or holds NaN/Inf/negative weights.
//     The underlying matrix sentinel is wrapped too, so errors.Is(err, matrix.ErrNonSquare) works.
//   - ErrRootOutOfRange  Prim root outside [0, n).
//   - ErrUnknownMethod   Compute called with an unsupported method.
//
// Disconnected input is NOT an error: Kruskal returns a spanning forest.
package prim_kruskal
