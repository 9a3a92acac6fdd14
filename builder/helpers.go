// Package builder provides internal helper functions used by Constructor
// implementations to place nodes and emit connections.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method tag for uniform reporting.
package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// addNodes inserts one plain node per point, in order, and returns the ids.
// Complexity: O(len(pts)·V) because of core's cache refresh.
func addNodes(g *core.Graph, pts []orb.Point) []int {
	ids := make([]int, len(pts))
	for i, p := range pts {
		ids[i] = g.AddNode(core.NewNode(p))
	}

	return ids
}

// connect adds u→v with a cost drawn from cfg.costFn. When mirror is set
// and g is directed, v→u is added with the same cost.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int, mirror bool) error {
	pu, _ := g.Node(u)
	pv, _ := g.Node(v)
	cost := cfg.costFn(pu.Position, pv.Position, cfg.rng)

	if err := g.AddConnection(core.Connection{From: u, To: v, Cost: cost}); err != nil {
		return fmt.Errorf("%s: AddConnection(%d→%d, c=%g): %w", method, u, v, cost, err)
	}
	if mirror && g.Directed() {
		if err := g.AddConnection(core.Connection{From: v, To: u, Cost: cost}); err != nil {
			return fmt.Errorf("%s: AddConnection(%d→%d, c=%g): %w", method, v, u, cost, err)
		}
	}

	return nil
}

// connectAllPairs connects every unordered pair of ids, mirrored in digraphs.
// Complexity: O(m²) where m = len(ids).
func connectAllPairs(g *core.Graph, cfg builderConfig, method string, ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := connect(g, cfg, method, ids[i], ids[j], true); err != nil {
				return err
			}
		}
	}

	return nil
}

// ringLayout places n points on a circle around center so that neighboring
// points are exactly side apart. Point 0 sits on the positive x axis and
// the ring runs counter-clockwise.
func ringLayout(center orb.Point, n int, side float64) []orb.Point {
	pts := make([]orb.Point, n)
	if n == 1 {
		pts[0] = center
		return pts
	}
	radius := side / (2 * math.Sin(math.Pi/float64(n)))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{center[0] + radius*math.Cos(a), center[1] + radius*math.Sin(a)}
	}

	return pts
}

// circleLayout places n points on a circle of the given radius around center.
func circleLayout(center orb.Point, n int, radius float64) []orb.Point {
	pts := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{center[0] + radius*math.Cos(a), center[1] + radius*math.Sin(a)}
	}

	return pts
}
