// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Identity:
//   - Clone keeps ids, tombstones and generations, so handles taken on the
//     source resolve identically on the clone until either side mutates.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes, but no connections.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		slots:      make([]slot, len(g.slots)),
		active:     make([]int, len(g.active)),
		nextID:     g.nextID,
	}
	for i, s := range g.slots {
		clone.slots[i] = slot{node: s.node, live: s.live, gen: s.gen}
	}
	copy(clone.active, g.active)

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes and connections.
// The clone shares no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for i, s := range g.slots {
		if len(s.conns) == 0 {
			continue
		}
		conns := make([]Connection, len(s.conns))
		copy(conns, s.conns)
		clone.slots[i].conns = conns
	}
	clone.connCount = g.connCount

	return clone
}

// Clear resets the graph to the empty state but preserves flags.
// Slots are tombstoned rather than dropped so their generations survive:
// outstanding handles stop resolving, even after ids are reused.
func (g *Graph) Clear() {
	for i := range g.slots {
		s := &g.slots[i]
		if s.live {
			s.live = false
			s.gen++
		}
		s.conns = nil
		s.node = Node{ID: InvalidNodeID, LineIndex: NoLineIndex}
	}
	g.active = nil
	g.nextID = 0
	g.connCount = 0
}

// CloneDirected returns a deep copy in which every stored connection,
// mirrors included, becomes an independent one-way connection. Ids and
// handles are preserved. For a directed g it is equivalent to Clone.
// Complexity: O(V + E).
func (g *Graph) CloneDirected() *Graph {
	clone := g.Clone()
	clone.directed = true

	return clone
}
