// Package funnel smooths a navmesh node path into a taut polyline with the
// simple stupid funnel algorithm.
//
// What:
//
//   - FindPortals: turns a node path (start, line nodes, goal) into the
//     sequence of mesh edges it crosses, each oriented Left/Right relative to
//     the direction of travel. The first and last portals are degenerate
//     (start,start) and (goal,goal).
//   - OptimizePortals: walks the portals keeping a funnel (apex, left, right)
//     and emits a corner every time one side crosses the other.
//   - SSFA: zero-size value bundling both steps; navgraph uses it as the
//     default smoother.
//
// Orientation:
//
//	Coordinates are y-up. Left is counter-clockwise of the travel direction.
//
// Complexity:
//
//   - FindPortals:     O(n)
//   - OptimizePortals: O(n) amortized, O(n²) worst case on restarts
package funnel
