package funnel_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/funnel"
)

// ExampleOptimizePortals pulls a path taut around a single corner.
func ExampleOptimizePortals() {
	start, goal := orb.Point{0.2, 0.2}, orb.Point{1.2, -0.8}
	pts := funnel.OptimizePortals([]funnel.Portal{
		{Left: start, Right: start},
		{Left: orb.Point{1, 1}, Right: orb.Point{1, 0}},
		{Left: orb.Point{2, 0}, Right: orb.Point{1, 0}},
		{Left: goal, Right: goal},
	})
	for _, p := range pts {
		fmt.Println(p[0], p[1])
	}
	// Output:
	// 0.2 0.2
	// 1 0
	// 1.2 -0.8
}
