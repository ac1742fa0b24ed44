// Package tsp: cost utilities.
//
// This file provides small, allocation-conscious helpers to compute the total
// cost of a closed walk represented by a vertex index tour.
//
// Design:
//   - Works on any matrix.Matrix; reads (u, v) and falls back to (v, u).
//   - Strict sentinels on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantour/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist over the consecutive pairs of tour.
//
// Contract:
//   - dist is a valid adjacency matrix (square, finite, non-negative).
//   - tour has at least 2 entries, all in [0, n), and is closed (first == last).
//   - every consecutive pair of distinct vertices must be joined by an edge.
//
// Returns the matrix sentinel for a bad dist and ErrInvalidTour otherwise.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := matrix.ValidateAdjacency(dist); err != nil {
		return 0, fmt.Errorf("tsp: TourCost: %w", err)
	}
	n := dist.Rows()
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return 0, fmt.Errorf("%w: not a closed walk", ErrInvalidTour)
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: index out of range at position %d", ErrInvalidTour, i)
		}
		if u == v {
			continue
		}
		if w = matrix.EdgeWeight(dist, u, v); w == 0 {
			return 0, fmt.Errorf("%w: no edge %d–%d", ErrInvalidTour, u, v)
		}
		sum += w
	}

	return math.Round(sum*roundScale) / roundScale, nil
}
