package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvnav/builder"
	"github.com/katalvlaran/lvnav/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain of 10,000 nodes.
// The graph is built once; each iteration is O(V + E).
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkIsConnected_Grid measures connectivity checks on a 100x100 grid.
func BenchmarkIsConnected_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.IsConnected(g)
	}
}
