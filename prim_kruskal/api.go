package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spantour/matrix"
)

// MinimumSpanningTree is a slice-in/slice-out facade over Kruskal for callers
// that keep adjacency as [][]float64.
//
// Ragged or non-square rows fail with ErrMalformedGraph (wrapping
// matrix.ErrNonSquare). The returned rows are freshly allocated.
func MinimumSpanningTree(rows [][]float64) ([][]float64, error) {
	adj, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGraph, err)
	}
	tree, err := Kruskal(adj)
	if err != nil {
		return nil, err
	}

	return tree.Rows2D(), nil
}
