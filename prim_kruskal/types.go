// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantour/matrix"
)

// ErrMalformedGraph indicates that the adjacency matrix is unusable: nil, empty,
// not square, ragged, or carrying NaN/Inf/negative weights.
var ErrMalformedGraph = errors.New("prim_kruskal: malformed adjacency matrix")

// ErrRootOutOfRange indicates that Prim was given a root outside [0, n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with Root 0.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal (or ""): Kruskal(adj).
//	– MethodPrim:            Prim(adj, opts.Root).
//	– Otherwise:             ErrUnknownMethod.
func Compute(adj matrix.Matrix, opts MSTOptions) (*matrix.Dense, error) {
	switch opts.Method {
	case MethodKruskal, "":
		return Kruskal(adj)
	case MethodPrim:
		return Prim(adj, opts.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate runs the shared adjacency checks and tags failures with ErrMalformedGraph.
func validate(adj matrix.Matrix) error {
	if err := matrix.ValidateAdjacency(adj); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedGraph, err)
	}

	return nil
}
