package tsp

import (
	"errors"

	"github.com/katalvlaran/spantour/prim_kruskal"
)

var (
	// ErrNoCities is returned when the city list is empty.
	ErrNoCities = errors.New("tsp: no cities")

	// ErrStartOutOfRange is returned when the start index is not a valid city index.
	ErrStartOutOfRange = errors.New("tsp: start index out of range")

	// ErrInvalidCity is returned when a city has a NaN or infinite coordinate.
	ErrInvalidCity = errors.New("tsp: invalid city coordinate")

	// ErrCoincidentCities is returned when two distinct cities share a location.
	ErrCoincidentCities = errors.New("tsp: coincident cities")

	// ErrInvalidTour is returned when a tour is not a closed walk over valid indices.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// City is a point in the plane.
type City struct {
	X float64
	Y float64
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of city indices, starting and ending at the start city.
	// For n cities, len(Tour) == n+1.
	Tour []int

	// Cost is the total Euclidean length of the closed tour, rounded to 1e-9.
	Cost float64
}

// Options configures Approx.
type Options struct {
	// Method selects the spanning tree builder: prim_kruskal.MethodKruskal
	// (default) or prim_kruskal.MethodPrim. Kruskal fixes tie-breaking by
	// edge encounter order; Prim by vertex index.
	Method string
}

// DefaultOptions returns Options using Kruskal.
func DefaultOptions() Options {
	return Options{Method: prim_kruskal.MethodKruskal}
}
