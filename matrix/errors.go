// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Validators return these sentinels wrapped with a call-site tag;
// tests MUST check them via errors.Is. No function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// If context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> NaN/Inf -> negative weight.

var (
	// ErrBadShape is returned when a requested or supplied shape is empty (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't,
	// including row slices of unequal length.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite weights are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry in an adjacency matrix.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
