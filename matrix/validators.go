// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for adjacency checks.
//   - Keep algorithm packages minimal by delegating shape/value checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - Value scans run O(n²) in row-major order, so the first offending entry
//     reported is always the same one.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateSquare", ErrBadShape)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateAdjacency checks that m is a usable sparse-by-zero adjacency matrix:
// square, every entry finite and non-negative.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNonSquare, ErrNaNInf, ErrNegativeWeight.
// Complexity: O(n²).
func ValidateAdjacency(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.Rows()
	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateAdjacency", err)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateAdjacency: (%d,%d)", i, j), ErrNaNInf)
			}
			if w < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateAdjacency: (%d,%d)=%g", i, j, w), ErrNegativeWeight)
			}
		}
	}

	return nil
}

// HasEdge reports whether vertices i and j are joined in either direction,
// which is how a one-direction tree matrix has to be read.
// Out-of-range indices report false.
func HasEdge(m Matrix, i, j int) bool {
	return EdgeWeight(m, i, j) != 0
}

// EdgeWeight returns the weight joining i and j, preferring (i, j) and falling
// back to (j, i). Zero means no edge.
func EdgeWeight(m Matrix, i, j int) float64 {
	if w, err := m.At(i, j); err == nil && w != 0 {
		return w
	}
	if w, err := m.At(j, i); err == nil {
		return w
	}

	return 0
}
