package astar_test

import (
	"testing"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/builder"
)

// BenchmarkFindPath_Grid measures corner-to-corner queries on a 100×100 grid.
func BenchmarkFindPath_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	for _, h := range []struct {
		name string
		fn   astar.Heuristic
	}{
		{"Manhattan", astar.Manhattan},
		{"Euclidean", astar.Euclidean},
		{"Zero", astar.Zero},
	} {
		a := astar.New(g, h.fn)
		b.Run(h.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = a.FindPath(0, 9999)
			}
		})
	}
}
