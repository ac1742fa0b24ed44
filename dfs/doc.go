// Package dfs implements an ordered depth‑first traversal of a spanning tree
// stored as a sparse-by-zero adjacency matrix (see package matrix).
//
// What:
//
//   - DFS(tree, start, opts...) lists the vertices reachable from start,
//     each paired with the weight of the edge used to reach it.
//   - At every vertex the unvisited neighbours are gathered from the row
//     (tree[u][j]) and then the column (tree[i][u]), because tree matrices
//     store each edge in one direction only. A neighbour seen in both scans
//     keeps its row entry.
//   - Neighbours are visited lightest edge first; equal weights keep the
//     gathering order (stable sort).
//
// Why:
//
//   - The visiting order of a minimum spanning tree is the backbone of the
//     tree-walk TSP heuristic in package tsp.
//
// Implementation:
//
//   - Iterative, with an explicit stack of frames (vertex, depth, ordered
//     candidates, cursor). Output is identical to the recursive formulation
//     but deep trees cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V²) matrix reads plus O(V log V) sorting.
//   - Memory: O(V).
//
// Errors:
//
//   - ErrStartOutOfRange      start ∉ [0, n).
//   - matrix sentinels        tree nil, empty, non-square, NaN/Inf or negative.
//   - hook errors             propagated from OnVisit, wrapped.
package dfs
