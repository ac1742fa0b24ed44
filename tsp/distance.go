package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantour/matrix"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceMatrix builds the complete weighted graph over cities: entry (i, j)
// is the Euclidean distance between cities i and j, the diagonal is 0.
// Both directions are filled from the same computation, so the matrix is
// exactly symmetric.
//
// Errors: ErrNoCities, ErrInvalidCity, ErrCoincidentCities.
// Complexity: O(n²) time and memory.
func DistanceMatrix(cities []City) (*matrix.Dense, error) {
	n := len(cities)
	if n == 0 {
		return nil, ErrNoCities
	}
	for i, c := range cities {
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) {
			return nil, fmt.Errorf("%w: city %d (%g, %g)", ErrInvalidCity, i, c.X, c.Y)
		}
	}

	dist, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(cities[i], cities[j])
			if d == 0 {
				return nil, fmt.Errorf("%w: cities %d and %d", ErrCoincidentCities, i, j)
			}
			if math.IsInf(d, 0) {
				return nil, fmt.Errorf("%w: distance %d–%d overflows", ErrInvalidCity, i, j)
			}
			_ = dist.Set(i, j, d)
			_ = dist.Set(j, i, d)
		}
	}

	return dist, nil
}
