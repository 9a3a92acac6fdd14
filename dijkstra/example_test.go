// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest paths on a small directed graph
// and rebuilding one path from the predecessor map.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true))
	a := g.AddNode(core.NewNode(orb.Point{0, 0}))
	b := g.AddNode(core.NewNode(orb.Point{1, 0}))
	c := g.AddNode(core.NewNode(orb.Point{0, 1}))
	d := g.AddNode(core.NewNode(orb.Point{1, 1}))
	_ = g.AddConnection(core.Connection{From: a, To: b, Cost: 2})
	_ = g.AddConnection(core.Connection{From: a, To: c, Cost: 1})
	_ = g.AddConnection(core.Connection{From: c, To: b, Cost: 1})
	_ = g.AddConnection(core.Connection{From: b, To: d, Cost: 3})
	_ = g.AddConnection(core.Connection{From: c, To: d, Cost: 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(a), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[d]=%.0f path=%v\n", dist[d], dijkstra.PathTo(prev, a, d))
	// Output: dist[d]=5 path=[0 1 3]
}
