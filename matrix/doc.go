// Package matrix offers the adjacency-matrix representation shared by the
// spanning tree, traversal and tour packages.
//
// The matrix package provides:
//
//   - Matrix, a minimal mutable float64 matrix interface.
//   - Dense, a row-major implementation with bounds-checked At/Set.
//   - FromRows / Rows2D to move between [][]float64 and Dense.
//   - ValidateAdjacency for the sparse-by-zero convention: square, finite,
//     non-negative, 0 meaning "no edge".
//   - EdgeWeight / HasEdge, which read an undirected edge from whichever
//     direction is populated.
//
// Because 0 encodes "no edge", a legitimate zero-weight edge cannot be
// represented.
package matrix
