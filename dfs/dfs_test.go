package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/builder"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		g.AddNode(core.NewNode(orb.Point{float64(i), 0}))
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddConnection(core.Connection{From: i, To: i + 1, Cost: 1})
	}

	return g
}

// buildBinaryTree creates a directed complete binary tree of depth d (nodes = 2^d-1).
// Node i has children 2i+1 and 2i+2.
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	n := (1 << depth) - 1
	for i := 0; i < n; i++ {
		g.AddNode(core.NewNode(orb.Point{float64(i), 0}))
		if i > 0 {
			_ = g.AddConnection(core.Connection{From: (i - 1) / 2, To: i, Cost: 1})
		}
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := buildChain(1)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited[0])
	assert.Equal(t, 0, res.Depth[0])
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent, "start node should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	a := g.AddNode(core.NewNode(orb.Point{}))
	require.NoError(t, g.AddConnection(core.Connection{From: a, To: a, Cost: 1}))

	res, err := dfs.DFS(g, a)
	require.NoError(t, err)
	assert.Equal(t, []int{a}, res.Order)
}

func TestDFS_LargeChain_PostOrderDepthParent(t *testing.T) {
	const n = 10
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)

	expected := make([]int, n)
	for i := range expected {
		expected[i] = n - 1 - i
	}
	assert.Equal(t, expected, res.Order, "chain post-order reversed")
	assert.Equal(t, n-1, res.Depth[n-1])
	assert.Equal(t, n-2, res.Parent[n-1])
}

func TestDFS_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 100000
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, 0, res.Order[n-1])
}

func TestDFS_Disconnected(t *testing.T) {
	g := buildChain(5)
	for i := 0; i < 3; i++ {
		g.AddNode(core.NewNode(orb.Point{}))
	}

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, res.Order)
	for i := 5; i < 8; i++ {
		assert.Falsef(t, res.Visited[i], "disconnected %d should not be visited", i)
	}

	full, err := dfs.DFS(g, core.InvalidNodeID, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, full.Order, 8)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, res.Visited[1])

	res, err = dfs.DFS(buildChain(5), 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildBinaryTree(2) // 0→1, 0→2

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(id int) bool {
		return id != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_BinaryTree_PreAndPostOrder(t *testing.T) {
	res, err := dfs.DFS(buildBinaryTree(3), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 4, 2, 5, 6}, res.Preorder)
	assert.Equal(t, []int{3, 4, 1, 5, 6, 2, 0}, res.Order)
}

func TestDFS_OnExitError(t *testing.T) {
	res, err := dfs.DFS(buildChain(2), 0, dfs.WithOnExit(func(id int) error {
		if id == 1 {
			return errors.New("halt on exit")
		}
		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for 1")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_OnVisitError(t *testing.T) {
	var pre, post []int
	res, err := dfs.DFS(buildBinaryTree(3), 0,
		dfs.WithOnVisit(func(id int) error {
			pre = append(pre, id)
			if id == 3 {
				return errors.New("stop")
			}
			return nil
		}),
		dfs.WithOnExit(func(id int) error {
			post = append(post, id)
			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit hook for 3")
	assert.Equal(t, []int{0, 1, 3}, pre)
	assert.Empty(t, post)
	assert.Empty(t, res.Order)
}

func TestDFS_CancellationImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(buildChain(100), 0, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

func TestReachable(t *testing.T) {
	g := buildChain(4)
	got, err := dfs.Reachable(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = dfs.Reachable(g, 9)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestIsConnected(t *testing.T) {
	cycle, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	ok, err := dfs.IsConnected(cycle)
	require.NoError(t, err)
	assert.True(t, ok)

	cycle.AddNode(core.NewNode(orb.Point{}))
	ok, err = dfs.IsConnected(cycle)
	require.NoError(t, err)
	assert.False(t, ok, "an isolated node breaks connectivity")

	ok, err = dfs.IsConnected(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = dfs.IsConnected(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
