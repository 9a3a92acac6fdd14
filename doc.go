// Package lvnav is an in-memory toolkit for agent navigation: a mutable
// node/connection graph, the searches that run on it, and a navigation-mesh
// pipeline that turns walkable polygons into smoothed agent paths.
//
// 🚀 What is lvnav?
//
//	A small, deterministic library that brings together:
//		• Core primitives: nodes with positions, connections with costs,
//		  generation-checked handles, id recycling and deep clones
//		• Searches: A* (pluggable heuristics), BFS, DFS, Dijkstra
//		• Euler: classification and randomized Hierholzer trails
//		• Navmesh: ear-clipping triangulation, obstacle inflation,
//		  R-tree point location, YAML/GeoJSON scenes
//		• NavGraph: line-midpoint graph, start/goal injection, funnel smoothing
//		• GridGraph: terrain grids with regions and wall breaching
//
// ✨ Why choose lvnav?
//
//   - Reproducible – seeded randomness, insertion-ordered neighbours
//   - Explicit failures – sentinel errors, "no path" kept apart from bad input
//   - Observable – logrus debug fields and OpenTelemetry spans/metrics
//
// Packages:
//
//	core/      - Graph, Node, Connection, Handle
//	astar/     - heuristic-guided shortest path
//	bfs/       - breadth-first traversal and fewest-hop paths
//	dfs/       - iterative depth-first traversal and connectivity
//	dijkstra/  - single-source distances (A* oracle)
//	euler/     - Eulerian circuits and trails
//	builder/   - deterministic fixture graphs
//	navmesh/   - triangulated walkable area and scenes
//	funnel/    - portals and the simple stupid funnel algorithm
//	navgraph/  - NavGraph construction and pathfinding
//	gridgraph/ - terrain grids as graphs
//	cmd/lvnav  - CLI: scene stats and route queries
//
// Quick example:
//
//	sc, _ := navmesh.LoadSceneFile("arena.yaml")
//	ng, _ := navgraph.FromScene(sc)
//	path, err := navgraph.FindPath(orb.Point{-55, -25}, orb.Point{55, 25}, ng)
//
//	go get github.com/katalvlaran/lvnav
package lvnav
