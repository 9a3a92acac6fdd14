package gridgraph_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph, InBounds and Passable
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	zeroSize := gridgraph.DefaultGridOptions()
	zeroSize.CellSize = 0

	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"ZeroCellSize", [][]int{{1}}, zeroSize, gridgraph.ErrCellSize},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGridGraph_CopiesInput(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	grid[0][0] = gridgraph.TerrainWall
	assert.True(t, gg.Passable(0, 0))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.Truef(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.Falsef(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

func TestPassable_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.ImpassableThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{{1, 4, 5, 9, 0, -3}}, opts)
	require.NoError(t, err)

	want := []bool{true, true, false, false, false, false}
	for x, w := range want {
		assert.Equalf(t, w, gg.Passable(x, 0), "cell %d", x)
	}
	assert.False(t, gg.Passable(6, 0))
}

//----------------------------------------------------------------------------//
// Ids and positions
//----------------------------------------------------------------------------//

func TestNodeIDAndCell(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = 10
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2, 3}, {4, 5, 6}}, opts)
	require.NoError(t, err)

	id := gg.NodeID(2, 1)
	assert.Equal(t, 5, id)
	c, ok := gg.Cell(id)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 1, Value: 6}, c)

	assert.Equal(t, core.InvalidNodeID, gg.NodeID(3, 0))
	_, ok = gg.Cell(6)
	assert.False(t, ok)
	_, ok = gg.Cell(-1)
	assert.False(t, ok)

	assert.Equal(t, orb.Point{25, 15}, gg.CellCenter(2, 1))
	x, y := gg.Coordinate(4)
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})
}

//----------------------------------------------------------------------------//
// ToCoreGraph
//----------------------------------------------------------------------------//

// TestToCoreGraph_Conn4 verifies that only orthogonal connections exist under Conn4.
func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	assert.Equal(t, 4, cg.NodeCount())
	assert.False(t, cg.Directed())
	assert.True(t, cg.HasConnection(gg.NodeID(0, 0), gg.NodeID(0, 1)))
	assert.True(t, cg.HasConnection(gg.NodeID(0, 1), gg.NodeID(1, 1)))
	assert.False(t, cg.HasConnection(gg.NodeID(0, 0), gg.NodeID(1, 1)), "no diagonal under Conn4")
	assert.Equal(t, 0, cg.Degree(gg.NodeID(1, 0)), "walls keep their node but stay isolated")
	assert.Equal(t, 4, cg.ConnectionCount())

	n, ok := cg.Node(gg.NodeID(1, 1))
	require.True(t, ok)
	assert.Equal(t, orb.Point{1.5, 1.5}, n.Position)
}

// TestToCoreGraph_Conn8 verifies diagonal connectivity under Conn8.
func TestToCoreGraph_Conn8(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	assert.True(t, cg.HasConnection(gg.NodeID(0, 0), gg.NodeID(1, 1)))
	assert.Equal(t, 2, cg.ConnectionCount())

	full, err := gridgraph.From2D([][]int{{1, 1}, {1, 1}}, gridgraph.Conn8)
	require.NoError(t, err)
	fullG, err := full.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 12, fullG.ConnectionCount(), "6 edges, mirrors included")
}

// TestToCoreGraph_RandomTerrain checks that conversion never fails and emits
// exactly one undirected connection per neighboring pair of passable cells.
func TestToCoreGraph_RandomTerrain(t *testing.T) {
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		for seed := int64(1); seed <= 5; seed++ {
			gg, err := gridgraph.From2D(randomTerrain(20, seed), conn)
			require.NoError(t, err)
			cg, err := gg.ToCoreGraph()
			require.NoErrorf(t, err, "%v seed=%d", conn, seed)

			pairs := 0
			for y := 0; y < gg.Height; y++ {
				for x := 0; x < gg.Width; x++ {
					if !gg.Passable(x, y) {
						continue
					}
					for _, d := range gg.NeighborOffsets() {
						if gg.Passable(x+d[0], y+d[1]) {
							pairs++
						}
					}
				}
			}
			// Each pair was counted from both cells; mirrors double it back.
			assert.Equalf(t, pairs, cg.ConnectionCount(), "%v seed=%d", conn, seed)
		}
	}
}

func TestToCoreGraph_TerrainCostIsMaxOfEndpoints(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{gridgraph.TerrainGround, gridgraph.TerrainMud},
		{gridgraph.TerrainGround, gridgraph.TerrainGround},
	}, gridgraph.Conn8)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)

	cost := func(a, b int) float64 {
		c, ok := cg.Connection(a, b)
		require.True(t, ok)
		return c.Cost
	}
	mud := gg.NodeID(1, 0)
	assert.Equal(t, 2.0, cost(gg.NodeID(0, 0), mud))
	assert.Equal(t, 2.0, cost(mud, gg.NodeID(0, 0)))
	assert.Equal(t, 2.0, cost(gg.NodeID(0, 1), mud), "diagonals are not scaled")
	assert.Equal(t, 1.0, cost(gg.NodeID(0, 0), gg.NodeID(1, 1)))
}

func TestToCoreGraph_AStarAvoidsMud(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 5, 1},
		{1, 5, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)
	cg, err := gg.ToCoreGraph()
	require.NoError(t, err)
	start, goal := gg.NodeID(0, 0), gg.NodeID(2, 0)

	path, err := astar.New(cg, astar.Manhattan).FindPath(start, goal)
	require.NoError(t, err)
	ids := make([]int, len(path))
	for i, n := range path {
		ids[i] = n.ID
	}
	assert.Equal(t, []int{0, 3, 6, 7, 8, 5, 2}, ids)

	dist, _, err := dijkstra.Dijkstra(cg, dijkstra.Source(start))
	require.NoError(t, err)
	assert.Equal(t, 6.0, dist[goal])
	assert.Equal(t, dist[goal], astar.PathCost(cg, path))
}
