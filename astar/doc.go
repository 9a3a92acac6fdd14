// Package astar implements heuristic-guided shortest-path search on a core.Graph.
//
// What:
//
//   - FindPath: cheapest path between two live nodes as []core.Node.
//   - Heuristic: function value over absolute axis offsets (dx, dy).
//     Provided: Manhattan, Euclidean, SqrtEuclidean, Octile, Chebyshev, Zero.
//   - PathCost: total connection cost of a returned path.
//
// How:
//
//   - Node records {id, incoming, g, f} live in an open set (binary heap keyed
//     on f, ties broken by insertion order, with an id index) and a closed map.
//   - A cheaper route to a closed node reopens it; a cheaper route to an open
//     node replaces its record.
//   - The goal is reconstructed through incoming connections once popped.
//
// Optimality:
//
//	Holds when the heuristic never overestimates. Euclidean and Chebyshev are
//	admissible on graphs whose costs are at least the straight-line distance
//	(core.Graph.SetConnectionCostsToDistances). SqrtEuclidean is not admissible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors:
//
//   - ErrGraphNil       searcher built over a nil graph
//   - ErrStartNotFound  start id not live
//   - ErrGoalNotFound   goal id not live
//
// An unreachable goal is not an error: FindPath returns an empty path.
package astar
