// Package tsp: tree-walk approximation.
//
// Approx computes a tour by walking the minimum spanning tree of the complete
// Euclidean graph depth-first from the start city and returning home:
//
//  1. Distance matrix over all cities (DistanceMatrix).
//  2. Minimum spanning tree (prim_kruskal.Compute with opts.Method).
//  3. Ordered DFS of the tree from start (dfs.DFS).
//  4. Append start to close the cycle and price it (TourCost).
//
// Determinism: steps 2 and 3 break ties by encounter order, so identical
// input always yields the identical tour.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/spantour/dfs"
	"github.com/katalvlaran/spantour/prim_kruskal"
)

// Approx runs the tree-walk heuristic and returns the tour as city indices.
func Approx(cities []City, start int, opts Options) (TSResult, error) {
	n := len(cities)
	if n == 0 {
		return TSResult{}, ErrNoCities
	}
	if start < 0 || start >= n {
		return TSResult{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// 1) Complete graph.
	dist, err := DistanceMatrix(cities)
	if err != nil {
		return TSResult{}, err
	}

	// 2) Spanning tree. Prim is rooted at start so it spans the same vertices.
	tree, err := prim_kruskal.Compute(dist, prim_kruskal.MSTOptions{Method: opts.Method, Root: start})
	if err != nil {
		return TSResult{}, err
	}

	// 3) Walk.
	walk, err := dfs.DFS(tree, start)
	if err != nil {
		return TSResult{}, err
	}
	if len(walk) != n {
		// Cannot happen on a complete graph with distinct cities.
		return TSResult{}, fmt.Errorf("%w: walk covers %d of %d cities", ErrInvalidTour, len(walk), n)
	}

	// 4) Close and price.
	tour := make([]int, 0, n+1)
	tour = append(tour, dfs.Indices(walk)...)
	tour = append(tour, start)

	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}

// FindPath returns the cities in tree-walk order followed by the start city
// again, i.e. a closed tour of length len(cities)+1 whose first and last
// elements are cities[start]. Kruskal builds the spanning tree.
func FindPath(cities []City, start int) ([]City, error) {
	res, err := Approx(cities, start, DefaultOptions())
	if err != nil {
		return nil, err
	}

	return ToCities(cities, res.Tour), nil
}

// ToCities maps a tour of indices back onto the city values.
// Indices must be valid for cities.
func ToCities(cities []City, tour []int) []City {
	out := make([]City, len(tour))
	for i, idx := range tour {
		out[i] = cities[idx]
	}

	return out
}
