// Package euler classifies graphs by Eulerianity and discovers Eulerian
// circuits and trails with a randomized Hierholzer walk.
//
// What:
//
//   - IsEulerian: NotEulerian, SemiEulerian or Eulerian from connectivity
//     (dfs.IsConnected) and the count of odd-degree nodes.
//   - FindPath: a node sequence that walks every connection exactly once.
//     SemiEulerian trails run between the two odd nodes; Eulerian circuits
//     start and end at the same random node.
//
// How:
//
//   - The walk consumes connections on a private clone, so the input graph
//     is never modified. By default an undirected edge is consumed together
//     with its mirror; WithDirectedConsumption removes only the walked
//     direction, producing a closed walk over every stored connection.
//   - Start node and connection choices come from a RandSource. WithSeed
//     gives reproducible trails; without options a fixed default seed is used.
//
// Complexity:
//
//   - IsEulerian: O(V + E)
//   - FindPath:   O(V + E·deg) (connection removal scans the adjacency list)
//
// Example:
//
//	e := euler.New(g, euler.WithSeed(42))
//	if path, kind := e.FindPath(); kind != euler.NotEulerian {
//	    // path[0] ... path[len(path)-1]
//	}
package euler
