// Package tsp: tour utilities.
//
// Helpers that operate purely on tour structure (index sequences), without
// depending on distance matrices:
//   - ValidateTour: enforce closed Hamiltonian cycle invariants.
//   - TourLength: geometric length of a closed tour over City values.
//
// Design:
//   - Errors are the sentinels from types.go, wrapped with context.
//   - O(n) time, deterministic.
package tsp

import "fmt"

// ValidateTour checks that tour is a closed Hamiltonian cycle over n cities
// starting and ending at start:
//   - len(tour) == n+1,
//   - tour[0] == tour[n] == start,
//   - tour[:n] is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: length %d for %d cities", ErrInvalidTour, len(tour), n)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: must start and end at %d", ErrInvalidTour, start)
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d out of range", ErrInvalidTour, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d visited twice", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}

// TourLength returns the total Euclidean length of walking path in order.
// The path is not closed implicitly: pass FindPath output, which already
// returns to its start.
func TourLength(path []City) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		total += Distance(path[i], path[i+1])
	}

	return total
}
