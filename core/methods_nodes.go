// File: methods_nodes.go
// Role: Node lifecycle and node queries on the sparse slot table.
// Invariants:
//   - nextID is always the smallest id without a live node.
//   - active holds exactly the live ids, in table order.
//   - A slot's generation advances on every insert and removal.

package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AddNode stores node in the lowest free slot and returns the assigned id.
// The node's ID field is overwritten. Always succeeds.
// Complexity: O(log V) search plus an O(V) worst-case shift of the id cache;
// appending in id order is amortized O(1).
func (g *Graph) AddNode(node Node) int {
	return g.AddNodeHandle(node).ID
}

// AddNodeHandle behaves like AddNode but returns a generation-checked Handle.
func (g *Graph) AddNodeHandle(node Node) Handle {
	id := g.nextID
	// Grow the table when every existing slot is occupied.
	if id >= len(g.slots) {
		g.slots = append(g.slots, make([]slot, id+1-len(g.slots))...)
	}
	node.ID = id
	s := &g.slots[id]
	s.node = node
	s.live = true
	s.gen++
	s.conns = nil

	g.insertActive(id)
	g.advanceNextID(id + 1)

	return Handle{ID: id, Generation: s.gen}
}

// RemoveNode deletes the node with the given id together with every
// connection that starts or ends at it. Invalid ids are a no-op.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id int) {
	if !g.IsNodeValid(id) {
		return
	}
	s := &g.slots[id]
	g.connCount -= len(s.conns)
	s.conns = nil
	s.live = false
	s.gen++
	s.node = Node{ID: InvalidNodeID, LineIndex: NoLineIndex}

	// Incoming connections: mirrors in undirected graphs, plain inbound
	// connections in directed ones. Both are erased the same way.
	for i := range g.slots {
		if !g.slots[i].live {
			continue
		}
		g.slots[i].conns = g.filterTo(g.slots[i].conns, id)
	}

	g.removeActive(id)
	if id < g.nextID {
		g.nextID = id
	}
}

// filterTo drops every connection pointing at id, keeping connCount current.
func (g *Graph) filterTo(conns []Connection, id int) []Connection {
	kept := conns[:0]
	for _, c := range conns {
		if c.To == id {
			g.connCount--
			continue
		}
		kept = append(kept, c)
	}

	return kept
}

// IsNodeValid reports whether id refers to a live node.
// Complexity: O(1).
func (g *Graph) IsNodeValid(id int) bool {
	return id >= 0 && id < len(g.slots) && g.slots[id].live
}

// Node returns the node stored under id.
// The boolean is false when id is invalid or tombstoned.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, bool) {
	if !g.IsNodeValid(id) {
		return Node{ID: InvalidNodeID, LineIndex: NoLineIndex}, false
	}

	return g.slots[id].node, true
}

// HandleOf returns the current handle for a live node.
func (g *Graph) HandleOf(id int) (Handle, bool) {
	if !g.IsNodeValid(id) {
		return Handle{ID: InvalidNodeID}, false
	}

	return Handle{ID: id, Generation: g.slots[id].gen}, true
}

// Resolve returns the node behind h if the slot is still live and has not
// been recycled since the handle was taken.
func (g *Graph) Resolve(h Handle) (Node, bool) {
	if !g.IsNodeValid(h.ID) || g.slots[h.ID].gen != h.Generation {
		return Node{ID: InvalidNodeID, LineIndex: NoLineIndex}, false
	}

	return g.slots[h.ID].node, true
}

// SetNodePosition moves a live node. Connection costs are left untouched;
// call SetConnectionCostsToDistances to refresh them.
func (g *Graph) SetNodePosition(id int, pos orb.Point) error {
	if !g.IsNodeValid(id) {
		return fmt.Errorf("SetNodePosition(%d): %w", id, ErrNodeNotFound)
	}
	g.slots[id].node.Position = pos

	return nil
}

// Nodes returns the live nodes in table (id) order.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.active))
	for _, id := range g.active {
		out = append(out, g.slots[id].node)
	}

	return out
}

// NodeIDs returns the live ids in table order.
func (g *Graph) NodeIDs() []int {
	out := make([]int, len(g.active))
	copy(out, g.active)

	return out
}

// NodeCount returns the number of live nodes. O(1).
func (g *Graph) NodeCount() int {
	return len(g.active)
}

// NextID returns the id the next AddNode call will assign.
func (g *Graph) NextID() int {
	return g.nextID
}

// NodeAtPosition returns the first live node (in table order) whose
// position lies strictly within DefaultNodeRadius*margin of pos.
// Complexity: O(V).
func (g *Graph) NodeAtPosition(pos orb.Point, margin float64) (Node, bool) {
	radius := DefaultNodeRadius * margin
	radiusSq := radius * radius
	for _, id := range g.active {
		n := g.slots[id].node
		if planar.DistanceSquared(n.Position, pos) < radiusSq {
			return n, true
		}
	}

	return Node{ID: InvalidNodeID, LineIndex: NoLineIndex}, false
}

// NodeIDAtPosition is NodeAtPosition reduced to the id, or InvalidNodeID.
func (g *Graph) NodeIDAtPosition(pos orb.Point, margin float64) int {
	n, ok := g.NodeAtPosition(pos, margin)
	if !ok {
		return InvalidNodeID
	}

	return n.ID
}

// advanceNextID moves nextID to the first free slot at or after from.
func (g *Graph) advanceNextID(from int) {
	id := from
	for id < len(g.slots) && g.slots[id].live {
		id++
	}
	g.nextID = id
}

// insertActive adds id to the sorted active cache.
func (g *Graph) insertActive(id int) {
	i := sort.SearchInts(g.active, id)
	g.active = append(g.active, 0)
	copy(g.active[i+1:], g.active[i:])
	g.active[i] = id
}

// removeActive drops id from the sorted active cache.
func (g *Graph) removeActive(id int) {
	i := sort.SearchInts(g.active, id)
	if i < len(g.active) && g.active[i] == id {
		g.active = append(g.active[:i], g.active[i+1:]...)
	}
}
