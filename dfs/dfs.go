package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantour/matrix"
)

// frame is one level of the explicit traversal stack.
type frame struct {
	vertex int    // vertex whose neighbours are being expanded
	depth  int    // edges from start
	cands  []Node // unvisited neighbours at entry time, lightest first
	next   int    // cursor into cands
}

// walker encapsulates state during DFS.
type walker struct {
	tree    matrix.Matrix
	n       int
	opts    DFSOptions
	visited []bool
	out     []Node
}

// DFS performs an ordered depth‑first traversal of tree from start.
//
// The result starts with Node{start, 0} and contains every vertex of start's
// connected component exactly once; vertices in other components are absent.
// The tree matrix is never modified, and calls share no state.
//
// Steps:
//  1. Validate tree (square, finite, non-negative) and start.
//  2. Emit start and push its frame.
//  3. Loop: advance the top frame's cursor; skip candidates visited meanwhile;
//     emit the candidate and, unless MaxDepth forbids, push its frame.
//     Pop exhausted frames.
func DFS(tree matrix.Matrix, start int, opts ...Option) ([]Node, error) {
	// 1. Validate input.
	if err := matrix.ValidateAdjacency(tree); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	n := tree.Rows()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	w := &walker{
		tree:    tree,
		n:       n,
		opts:    dopts,
		visited: make([]bool, n),
		out:     make([]Node, 0, n),
	}

	// 2. Root.
	if err := w.emit(Node{Index: start, Weight: 0}); err != nil {
		return nil, err
	}
	stack := []*frame{{vertex: start, depth: 0, cands: w.candidates(start)}}

	// 3. Iterative expansion.
	var (
		top  *frame
		cand Node
	)
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		if top.next >= len(top.cands) {
			stack = stack[:len(stack)-1]
			continue
		}
		cand = top.cands[top.next]
		top.next++

		if w.visited[cand.Index] {
			continue // reached through another branch (only possible on cyclic input)
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if err := w.emit(cand); err != nil {
			return nil, err
		}
		stack = append(stack, &frame{vertex: cand.Index, depth: top.depth + 1, cands: w.candidates(cand.Index)})
	}

	return w.out, nil
}

// emit marks a vertex visited, runs the hook and appends it to the output.
func (w *walker) emit(node Node) error {
	w.visited[node.Index] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", node.Index, err)
		}
	}
	w.out = append(w.out, node)

	return nil
}

// candidates gathers the unvisited neighbours of u, row scan before column
// scan, first entry per vertex wins, then stable-sorts them by weight.
func (w *walker) candidates(u int) []Node {
	var (
		cands = make([]Node, 0, 4)
		seen  = make(map[int]bool)
		i     int
		wt    float64
	)
	add := func(v int, weight float64) {
		if v == u || weight == 0 || w.visited[v] || seen[v] {
			return
		}
		seen[v] = true
		cands = append(cands, Node{Index: v, Weight: weight})
	}

	for i = 0; i < w.n; i++ { // row: tree[u][i]
		wt, _ = w.tree.At(u, i)
		add(i, wt)
	}
	for i = 0; i < w.n; i++ { // column: tree[i][u]
		wt, _ = w.tree.At(i, u)
		add(i, wt)
	}

	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].Weight < cands[b].Weight
	})

	return cands
}
