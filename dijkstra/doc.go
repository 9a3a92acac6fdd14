// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on core.Graph values with non-negative connection costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Supports optional path reconstruction, distance caps, and "impassable" cost thresholds.
//
// When to use:
//
//   - As the exact reference for heuristic searches: astar tests compare their
//     path costs against Dijkstra distances on random graphs.
//   - For reachability-by-budget queries (WithMaxDistance).
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[int]float64, prev map[int]int, err error)
//
//	  - opts:
//	      • Source(int):                   required, the starting node id.
//	      • WithReturnPath():              if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(float64):      explores only nodes with distance ≤ given value.
//	      • WithInfEdgeThreshold(float64): skips any connection whose cost ≥ threshold.
//	  - dist:    map[v] = minimal distance from Source to v, or +Inf if unreachable.
//	  - prev:    map[v] = predecessor of v, or core.InvalidNodeID for the source and unreachable nodes.
//
//	func PathTo(prev map[int]int, source, target int) []int
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//   - ErrBadMaxDistance / ErrBadInfThreshold are raised via panic by the option constructors.
//
// Thread safety:
//
//   - Dijkstra only reads g; concurrent mutation of g must be synchronized externally.
package dijkstra
