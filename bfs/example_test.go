package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvnav/bfs"
	"github.com/katalvlaran/lvnav/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid.
// Node ids are row-major; the start is the top-left corner.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// 4
}

// ExampleFindPath finds the fewest-hop route around a 6-cycle.
func ExampleFindPath() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))

	path, err := bfs.FindPath(g, 0, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ids := make([]int, 0, len(path))
	for _, n := range path {
		ids = append(ids, n.ID)
	}
	fmt.Println(ids)
	// Output:
	// [0 5 4]
}
