// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (connection count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node id → distance (connections) from start
//   - Parent: map from node id → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual connections via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once a goal is visited (WithStopAt).
//   - FindPath: fewest-connections route between two nodes as []core.Node.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Cheap baseline against which weighted searches (astar, dijkstra) are compared.
//
// Determinism
//
//	Neighbors are expanded in connection insertion order, so the visit
//	sequence is fully reproducible for a given construction order.
//	Connection costs are ignored.
//
// Complexity (V = nodes, E = connections)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != blocked }),
//	)
//
//	path, err := bfs.FindPath(g, start, goal) // empty path when unreachable
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start id is not live.
//   - ErrGoalVertexNotFound   if the FindPath goal id is not live.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from BFSResult.PathTo for an unreached node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
