// SPDX-License-Identifier: MIT
// Package matrix provides the dense adjacency storage used by the spanning tree,
// traversal and tour packages.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix, the usual starting point for an
// adjacency matrix with no edges.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// FromRows copies a slice of rows into a new square Dense.
//
// Errors:
//   - ErrBadShape  if rows is empty.
//   - ErrNonSquare if any row length differs from len(rows).
//
// The input slice is never retained.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, validatorErrorf("FromRows", ErrBadShape)
	}
	// Stage 1: every row must have exactly n entries.
	for i := range rows {
		if len(rows[i]) != n {
			return nil, validatorErrorf(fmt.Sprintf("FromRows: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	// Stage 2: flat copy.
	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := range rows {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Rows2D exports the matrix as a freshly allocated slice of rows.
// Complexity: O(r*c).
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
