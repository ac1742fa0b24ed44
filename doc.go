// Package spantour groups a small set of graph routines that sit on top of a
// sparse-by-zero adjacency matrix: minimum spanning trees, ordered tree walks
// and the tree-walk approximation of the travelling salesman tour.
//
// What lives where:
//
//	matrix/       Dense adjacency storage, validators, edge lookups
//	disjoint/     generic union-find (union by rank, read-only Find)
//	prim_kruskal/ Kruskal MST (primary) and Prim MST (cross-check)
//	dfs/          iterative depth-first walk ordered by edge weight
//	tsp/          Euclidean distances, MST + DFS tour, tour cost
//	cmd/spantour  JSON5-in / JSON-out demo harness
//
// Quick ASCII example:
//
//	    0──3──1        weights: 0-3:3  3-1:5
//	       │                    3-2:6
//	       2
//
// Kruskal keeps the three edges above for a four-vertex graph; DFS from 0
// then yields 0, 3, 1, 2 and the tour closes back at 0.
//
//	go get github.com/katalvlaran/spantour
package spantour
