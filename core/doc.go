// Package core provides a mutable, positioned node/connection Graph used by
// every search and navigation package of lvnav.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected connections (WithDirected). Undirected graphs
//     store a mirror connection with the same cost for every insertion.
//   - Optional self-loops (WithLoops) and parallel connections (WithMultiConnections).
//   - A sparse node table: ids are slot indices, removed nodes leave a
//     tombstone, and the lowest free id is always reused first.
//   - Generation-checked Handles that never resolve to a recycled slot.
//   - Tagged node kinds: KindPlain and KindNav (carrying a navmesh LineIndex).
//   - Deep Clone for algorithms that destroy their working copy.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) int                   // amortized O(1) in id order
//	AddNodeHandle(n Node) Handle
//	RemoveNode(id int)                    // O(V+E)
//	IsNodeValid(id int) bool              // O(1)
//	Node(id int) (Node, bool)             // O(1)
//	Resolve(h Handle) (Node, bool)        // O(1)
//
//	// Connection lifecycle
//	AddConnection(c Connection) error     // O(deg)
//	RemoveConnection(from, to int)        // O(deg)
//	Connection(from, to int) (Connection, bool)
//	ConnectionsFrom(id int) []Connection
//
//	// Editor queries
//	NodeAtPosition(p orb.Point, margin float64) (Node, bool)
//	ConnectionAtPosition(p orb.Point, maxDist float64) (Connection, bool)
//
//	// Maintenance
//	SetConnectionCostsToDistances()
//	Clone() *Graph
//	Clear()
//
// Errors:
//
//	ErrNodeNotFound      – invalid or removed node id
//	ErrLoopNotAllowed    – self-loop when loops disabled
//	ErrConnectionExists  – parallel connection when multi-connections disabled
//
// Graph is not safe for concurrent mutation; callers that share a graph
// across queries clone it first.
package core
