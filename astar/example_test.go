package astar_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
)

// ExampleAStar_FindPath routes around a costly direct connection.
func ExampleAStar_FindPath() {
	g := core.NewGraph()
	a := g.AddNode(core.NewNode(orb.Point{0, 0}))
	b := g.AddNode(core.NewNode(orb.Point{5, 5}))
	c := g.AddNode(core.NewNode(orb.Point{10, 0}))
	_ = g.AddConnection(core.Connection{From: a, To: c, Cost: 30})
	_ = g.AddConnection(core.Connection{From: a, To: b, Cost: 8})
	_ = g.AddConnection(core.Connection{From: b, To: c, Cost: 8})

	path, err := astar.New(g, astar.Euclidean).FindPath(a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ids := make([]int, 0, len(path))
	for _, n := range path {
		ids = append(ids, n.ID)
	}
	fmt.Println(ids)
	fmt.Println(astar.PathCost(g, path))
	// Output:
	// [0 1 2]
	// 16
}
