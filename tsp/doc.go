// Package tsp builds travelling-salesman tours over 2D cities with the
// minimum-spanning-tree heuristic.
//
// Pipeline:
//
//  1. DistanceMatrix: complete graph, Euclidean weights, zero diagonal.
//  2. prim_kruskal.Kruskal (or Prim, via Options): minimum spanning tree.
//  3. dfs.DFS from the start city: ordered tree walk, lightest edge first.
//  4. Close the loop by returning to the start city.
//
// The result is a tour following the tree-walk order, not a minimal tour.
// Under the triangle inequality the tour is at most twice the optimum.
//
// Tour invariants (checked in tests through ValidateTour):
//   - len(Tour) == n+1,
//   - Tour[0] == Tour[n] == start,
//   - every city appears exactly once in Tour[:n].
//
// Errors:
//   - ErrNoCities          empty input.
//   - ErrStartOutOfRange   start ∉ [0, n).
//   - ErrInvalidCity       NaN or ±Inf coordinate.
//   - ErrCoincidentCities  two distinct cities at distance 0; the adjacency
//     convention reads 0 as "no edge", so such a city could never be reached.
//   - ErrInvalidTour       TourCost/ValidateTour given a malformed tour.
//
// Use this package for classroom-scale inputs (tens to low hundreds of
// cities): the distance matrix is dense, O(n²) memory.
package tsp
