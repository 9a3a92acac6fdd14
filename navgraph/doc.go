// Package navgraph turns a navigation mesh into a searchable graph and
// answers point-to-point path queries on it.
//
// What:
//
//   - New / FromScene: one node at the midpoint of every mesh line shared by
//     two triangles; nodes of lines bounding the same triangle are connected,
//     with Euclidean costs.
//   - Pathfinder.FindPath: locate the start and goal triangles, inject both
//     positions into a clone of the graph, run A* and smooth the node path
//     through the crossed portals.
//   - Pathfinder.FindPathDebug: the same query returning the raw node
//     positions and portals alongside the final path.
//
// Results:
//
//   - Start and goal in one triangle: [start, goal], no search.
//   - Goal unreachable: empty path, nil error.
//   - Position off the mesh: ErrOutsideNavMesh, naming the endpoint.
//
// Collaborators:
//
//   - Heuristic: astar.Chebyshev by default (WithHeuristic).
//   - Smoother: funnel.SSFA by default (WithSmoother).
//   - Logging: logrus, debug level (WithLogger).
//   - Telemetry: an OpenTelemetry span per build and per query, plus
//     build/query counters and histograms, on the global providers.
//     The ctx passed to FindPath only carries telemetry.
//
// The NavGraph passed to a query is never modified; concurrent queries on
// one NavGraph are safe as long as nothing mutates it.
//
// Example:
//
//	ng, err := navgraph.FromScene(scene)
//	path, err := navgraph.NewPathfinder().FindPath(ctx, from, to, ng)
package navgraph
