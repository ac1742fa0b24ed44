package dfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantour/dfs"
	"github.com/katalvlaran/spantour/matrix"
	"github.com/katalvlaran/spantour/prim_kruskal"
)

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// Tree edges 0–3 (3), 1–2 (2), 2–3 (5), each stored in one direction.
var fourTree = [][]float64{
	{0, 0, 0, 3},
	{0, 0, 2, 0},
	{0, 0, 0, 5},
	{0, 0, 0, 0},
}

// fourTree plus 3–4 (8).
var fiveTree = [][]float64{
	{0, 0, 0, 3, 0},
	{0, 0, 2, 0, 0},
	{0, 0, 0, 5, 0},
	{0, 0, 0, 0, 8},
	{0, 0, 0, 0, 0},
}

func TestDFS_Fixtures(t *testing.T) {
	cases := []struct {
		name  string
		tree  [][]float64
		start int
		want  []dfs.Node
	}{
		{"four from 0", fourTree, 0, []dfs.Node{{0, 0}, {3, 3}, {2, 5}, {1, 2}}},
		{"four from 3", fourTree, 3, []dfs.Node{{3, 0}, {0, 3}, {2, 5}, {1, 2}}},
		{"five from 0", fiveTree, 0, []dfs.Node{{0, 0}, {3, 3}, {2, 5}, {1, 2}, {4, 8}}},
		{"five from 3", fiveTree, 3, []dfs.Node{{3, 0}, {0, 3}, {2, 5}, {1, 2}, {4, 8}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.DFS(mustDense(t, tc.tree), tc.start)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("traversal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDFS_TieBreak_RowBeforeColumn: equal weights keep gathering order, row scan first.
func TestDFS_TieBreak_RowBeforeColumn(t *testing.T) {
	// Edges of vertex 2: 2–4 stored in row 2, 0–2 and 1–2 stored in column 2. All weigh 1.
	tree := mustDense(t, [][]float64{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	got, err := dfs.DFS(tree, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 0, 1}, dfs.Indices(got))
}

// TestDFS_BothDirectionsPopulated: a symmetric entry is only visited once, with the row weight.
func TestDFS_BothDirectionsPopulated(t *testing.T) {
	tree := mustDense(t, [][]float64{
		{0, 4, 0},
		{4, 0, 1},
		{0, 1, 0},
	})
	got, err := dfs.DFS(tree, 1)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Node{{1, 0}, {2, 1}, {0, 4}}, got)
}

// TestDFS_OtherComponentsAbsent: unreachable vertices are simply missing.
func TestDFS_OtherComponentsAbsent(t *testing.T) {
	tree := mustDense(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 7},
		{0, 0, 0, 0},
	})
	got, err := dfs.DFS(tree, 1)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Node{{1, 0}, {0, 1}}, got)

	got, err = dfs.DFS(tree, 3)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Node{{3, 0}, {2, 7}}, got)
}

// TestDFS_CyclicInputVisitsOnce: non-tree input still yields each vertex exactly once.
func TestDFS_CyclicInputVisitsOnce(t *testing.T) {
	tree := mustDense(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	got, err := dfs.DFS(tree, 0)
	require.NoError(t, err)
	// 0 → 1 (1); from 1 the only unvisited neighbour is 2 (3). Vertex 2 is then
	// skipped as a candidate of 0.
	assert.Equal(t, []dfs.Node{{0, 0}, {1, 1}, {2, 3}}, got)
}

func TestDFS_Errors(t *testing.T) {
	tree := mustDense(t, fourTree)

	_, err := dfs.DFS(tree, 4)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
	_, err = dfs.DFS(tree, -1)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)

	_, err = dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	neg := mustDense(t, [][]float64{{0, -1}, {0, 0}})
	_, err = dfs.DFS(neg, 0)
	assert.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

func TestDFS_OnVisitHook(t *testing.T) {
	tree := mustDense(t, fourTree)

	var seen []int
	got, err := dfs.DFS(tree, 0, dfs.WithOnVisit(func(n dfs.Node) error {
		seen = append(seen, n.Index)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, dfs.Indices(got), seen)

	boom := errors.New("boom")
	_, err = dfs.DFS(tree, 0, dfs.WithOnVisit(func(n dfs.Node) error {
		if n.Index == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_MaxDepth(t *testing.T) {
	tree := mustDense(t, fiveTree)

	got, err := dfs.DFS(tree, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, dfs.Indices(got))

	got, err = dfs.DFS(tree, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, dfs.Indices(got))

	got, err = dfs.DFS(tree, 3, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 2, 4}, dfs.Indices(got))

	got, err = dfs.DFS(tree, 0, dfs.WithMaxDepth(-1))
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

// TestDFS_DeepChain walks a path long enough to matter for a recursive walker.
func TestDFS_DeepChain(t *testing.T) {
	const n = 1500
	chain, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, chain.Set(i, i+1, 1))
	}

	got, err := dfs.DFS(chain, 0)
	require.NoError(t, err)
	require.Len(t, got, n)
	for i, node := range got {
		require.Equal(t, i, node.Index)
	}
}

// TestDFS_CompletenessOnRandomForests: every vertex of start's component appears exactly once
// and the walk is deterministic.
func TestDFS_CompletenessOnRandomForests(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for iter := 0; iter < 30; iter++ {
		n := 2 + r.Intn(20)
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Float64() < 0.25 {
					w := float64(1 + r.Intn(9))
					rows[i][j], rows[j][i] = w, w
				}
			}
		}
		forest, err := prim_kruskal.Kruskal(mustDense(t, rows))
		require.NoError(t, err)

		start := r.Intn(n)
		got, err := dfs.DFS(forest, start)
		require.NoError(t, err)
		require.Equal(t, start, got[0].Index)

		// Reference component via the Prim tree rooted at start.
		prim, err := prim_kruskal.Prim(mustDense(t, rows), start)
		require.NoError(t, err)
		require.Len(t, got, prim_kruskal.EdgeCount(prim)+1)

		seen := make(map[int]bool, n)
		for _, node := range got {
			require.False(t, seen[node.Index], "vertex %d visited twice", node.Index)
			seen[node.Index] = true
		}

		again, err := dfs.DFS(forest, start)
		require.NoError(t, err)
		require.Equal(t, got, again)
	}
}
