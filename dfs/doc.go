// Package dfs implements depth-first search traversal and connectivity
// checks on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking, using an explicit frame stack. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - Reachable: discovery-ordered node ids reachable from a start node.
//   - IsConnected: every live node reachable from the first live node.
//
// Why:
//   - Eulerian classification needs a connectivity test that survives very
//     large graphs without exhausting the goroutine stack.
//   - Provide a foundation for reachability queries before expensive searches.
//
// Complexity:
//
//   - DFS, Reachable, IsConnected: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node id not live
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
