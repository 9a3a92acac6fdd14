// File: methods_connections.go
// Role: Connection lifecycle, adjacency queries and cost maintenance.
// Invariants:
//   - Undirected graphs store a mirror (b→a, same cost) for every (a→b).
//   - connCount counts stored directed connections, mirrors included.

package core

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AddConnection inserts conn. Both endpoints must be live nodes.
// For undirected graphs the mirror connection is inserted as well.
//
// Returns ErrNodeNotFound, ErrLoopNotAllowed or ErrConnectionExists.
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddConnection(conn Connection) error {
	// 1) Endpoint validation
	if !g.IsNodeValid(conn.From) {
		return fmt.Errorf("AddConnection(%d→%d): from: %w", conn.From, conn.To, ErrNodeNotFound)
	}
	if !g.IsNodeValid(conn.To) {
		return fmt.Errorf("AddConnection(%d→%d): to: %w", conn.From, conn.To, ErrNodeNotFound)
	}
	// 2) Loop constraint
	if conn.From == conn.To && !g.allowLoops {
		return fmt.Errorf("AddConnection(%d→%d): %w", conn.From, conn.To, ErrLoopNotAllowed)
	}
	// 3) Multi-connection constraint
	if !g.allowMulti && g.indexOf(conn.From, conn.To) >= 0 {
		return fmt.Errorf("AddConnection(%d→%d): %w", conn.From, conn.To, ErrConnectionExists)
	}

	g.slots[conn.From].conns = append(g.slots[conn.From].conns, conn)
	g.connCount++

	// 4) Mirror for undirected graphs
	if !g.directed {
		mirror := Connection{From: conn.To, To: conn.From, Cost: conn.Cost}
		g.slots[conn.To].conns = append(g.slots[conn.To].conns, mirror)
		g.connCount++
	}

	return nil
}

// RemoveConnection deletes the first connection from→to and, for undirected
// graphs, its mirror. Missing connections and invalid ids are a no-op.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveConnection(from, to int) {
	if !g.IsNodeValid(from) || !g.IsNodeValid(to) {
		return
	}
	if !g.removeFirst(from, to) {
		return
	}
	if !g.directed {
		g.removeFirst(to, from)
	}
}

// removeFirst erases the first stored from→to connection, preserving order.
func (g *Graph) removeFirst(from, to int) bool {
	i := g.indexOf(from, to)
	if i < 0 {
		return false
	}
	conns := g.slots[from].conns
	g.slots[from].conns = append(conns[:i], conns[i+1:]...)
	g.connCount--

	return true
}

// indexOf returns the position of the first from→to connection, or -1.
func (g *Graph) indexOf(from, to int) int {
	for i, c := range g.slots[from].conns {
		if c.To == to {
			return i
		}
	}

	return -1
}

// Connection returns the first connection from→to.
// The boolean is false when either id is invalid or no connection exists.
// Complexity: O(deg(from)).
func (g *Graph) Connection(from, to int) (Connection, bool) {
	if !g.IsNodeValid(from) || !g.IsNodeValid(to) {
		return Connection{}, false
	}
	if i := g.indexOf(from, to); i >= 0 {
		return g.slots[from].conns[i], true
	}

	return Connection{}, false
}

// HasConnection reports whether at least one connection from→to exists.
func (g *Graph) HasConnection(from, to int) bool {
	_, ok := g.Connection(from, to)

	return ok
}

// ConnectionsFrom returns a copy of the outgoing connections of id, in
// insertion order. Invalid ids yield nil.
// Complexity: O(deg(id)).
func (g *Graph) ConnectionsFrom(id int) []Connection {
	if !g.IsNodeValid(id) {
		return nil
	}
	conns := g.slots[id].conns
	out := make([]Connection, len(conns))
	copy(out, conns)

	return out
}

// Degree returns the number of outgoing connections of id (0 if invalid).
func (g *Graph) Degree(id int) int {
	if !g.IsNodeValid(id) {
		return 0
	}

	return len(g.slots[id].conns)
}

// Connections returns every stored connection (mirrors included), grouped
// by source node in table order.
// Complexity: O(V + E).
func (g *Graph) Connections() []Connection {
	out := make([]Connection, 0, g.connCount)
	for _, id := range g.active {
		out = append(out, g.slots[id].conns...)
	}

	return out
}

// ConnectionCount returns the number of stored directed connections.
// An undirected edge counts twice (connection + mirror). O(1).
func (g *Graph) ConnectionCount() int {
	return g.connCount
}

// ConnectionAtPosition returns the connection whose segment passes closest
// to pos, provided that distance is below maxDist.
// Complexity: O(E).
func (g *Graph) ConnectionAtPosition(pos orb.Point, maxDist float64) (Connection, bool) {
	var (
		best   Connection
		found  bool
		bestSq = maxDist * maxDist
	)
	for _, id := range g.active {
		from := g.slots[id].node.Position
		for _, c := range g.slots[id].conns {
			to := g.slots[c.To].node.Position
			dSq := planar.DistanceFromSegmentSquared(from, to, pos)
			if dSq < bestSq {
				best, bestSq, found = c, dSq, true
			}
		}
	}

	return best, found
}

// SetConnectionCostsToDistances rewrites every connection cost to the
// Euclidean distance between its endpoints.
// Complexity: O(E).
func (g *Graph) SetConnectionCostsToDistances() {
	for _, id := range g.active {
		conns := g.slots[id].conns
		for i := range conns {
			from := g.slots[conns[i].From].node.Position
			to := g.slots[conns[i].To].node.Position
			conns[i].Cost = planar.Distance(from, to)
		}
	}
}
