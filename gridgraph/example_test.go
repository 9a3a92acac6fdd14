// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions and Breach
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Breach finds the walkable regions of a map split by a
// wall and the single wall cell to clear to join them.
//
//	1 1 0 1
//	1 0 0 1
//	1 1 0 1
func ExampleGridGraph_Breach() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 0, 1},
	}, gridgraph.Conn4)

	fmt.Println("regions:", len(gg.Regions()))
	path, cost, _ := gg.Breach(0, 1)
	fmt.Printf("clear %d cell(s):", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()
	// Output:
	// regions: 2
	// clear 1 cell(s): (1,0) (2,0) (3,0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ToCoreGraph with A*
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ToCoreGraph routes around a strip of mud.
func ExampleGridGraph_ToCoreGraph() {
	mud := gridgraph.TerrainMud * 3
	gg, _ := gridgraph.From2D([][]int{
		{1, mud, 1},
		{1, mud, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)
	g, err := gg.ToCoreGraph()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := astar.New(g, astar.Manhattan).FindPath(gg.NodeID(0, 0), gg.NodeID(2, 0))
	cells := make([]string, 0, len(path))
	for _, n := range path {
		c, _ := gg.Cell(n.ID)
		cells = append(cells, fmt.Sprintf("(%d,%d)", c.X, c.Y))
	}
	fmt.Println(strings.Join(cells, " "))
	fmt.Println("cost:", astar.PathCost(g, path))
	// Output:
	// (0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)
	// cost: 6
}
