// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// BenchmarkAddNode measures node insertion including the cache refresh.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.NodeCount() == 1024 {
			g.Clear()
		}
		g.AddNode(core.NewNode(orb.Point{float64(i), 0}))
	}
}

// BenchmarkAddConnection_Star measures undirected insertion into a hub node.
func BenchmarkAddConnection_Star(b *testing.B) {
	g := core.NewGraph(core.WithMultiConnections())
	hub := g.AddNode(core.NewNode(orb.Point{}))
	leaves := make([]int, 100)
	for i := range leaves {
		leaves[i] = g.AddNode(core.NewNode(orb.Point{float64(i), 1}))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddConnection(core.Connection{From: hub, To: leaves[i%100], Cost: 1})
	}
}

// BenchmarkConnectionsFrom measures neighbor retrieval on a 1000-leaf star.
func BenchmarkConnectionsFrom(b *testing.B) {
	g := core.NewGraph()
	hub := g.AddNode(core.NewNode(orb.Point{}))
	for i := 0; i < 1000; i++ {
		leaf := g.AddNode(core.NewNode(orb.Point{float64(i), 1}))
		_ = g.AddConnection(core.Connection{From: hub, To: leaf, Cost: 1})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectionsFrom(hub)
	}
}

// BenchmarkClone measures deep copying a 100x100 grid-shaped graph.
func BenchmarkClone(b *testing.B) {
	const side = 100
	g := core.NewGraph()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			id := g.AddNode(core.NewNode(orb.Point{float64(x), float64(y)}))
			if x > 0 {
				_ = g.AddConnection(core.Connection{From: id, To: id - 1, Cost: 1})
			}
			if y > 0 {
				_ = g.AddConnection(core.Connection{From: id, To: id - side, Cost: 1})
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
