// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by the MST, traversal and TSP
// packages. Errors live in errors.go, the concrete Dense type in dense.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// When a Matrix is used as an adjacency matrix, entry (i, j) is the weight of
// the edge between vertices i and j and 0 means "no edge". The matrix is read
// as undirected: consumers look at both (i, j) and (j, i).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Compile-time check.
var _ Matrix = (*Dense)(nil)
