// Package dfs defines types and options for depth-first traversal,
// including a pre-order hook and depth limiting.
package dfs

import (
	"errors"
)

// ErrStartOutOfRange indicates that the start vertex is not a row of the tree matrix.
var ErrStartOutOfRange = errors.New("dfs: start vertex out of range")

// Node is one step of a traversal: the vertex reached and the weight of the
// edge used to reach it. The start vertex carries weight 0.
type Node struct {
	Index  int
	Weight float64
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(tree, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is appended to the
	// result (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(n Node) error

	// MaxDepth, if non-negative, limits how many edges away from start the
	// traversal may go. A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n Node) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit removes the bound.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// Indices projects a traversal onto its vertex indices.
func Indices(nodes []Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Index
	}

	return out
}
