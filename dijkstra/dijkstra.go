// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative connection costs.
// It processes nodes in order of increasing distance using a min-heap priority queue,
// relaxing connections and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under "lazy-decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all connections (O(E)) to detect negative costs and fail fast.
//   - We treat any connection with cost ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnav/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other live nodes of g.
//
// Returns:
//
//   - dist: map from node id to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == core.InvalidNodeID.
//   - err:  error if inputs are invalid or if a negative cost is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No connection in g can have negative cost (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(core.InvalidNodeID)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == core.InvalidNodeID {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.IsNodeValid(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 2) Pre-scan all connections to detect negative costs.
	for _, c := range g.Connections() {
		if c.Cost < 0 {
			return nil, nil, fmt.Errorf("%w: connection %d→%d cost=%g", ErrNegativeWeight, c.From, c.To, c.Cost)
		}
	}

	// 3) Prepare data structures for the algorithm.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, V),
		prev:    make(map[int]int, V),
		visited: make(map[int]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.g.NodeIDs() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = core.InvalidNodeID
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the node with the minimum distance and relaxes
// its outgoing connections until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each outgoing connection of u and attempts to improve distances to its neighbors.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	for _, c := range r.g.ConnectionsFrom(u) {
		if c.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + c.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates on equal distances.
		if newDist >= r.dist[c.To] {
			continue
		}
		r.dist[c.To] = newDist
		r.prev[c.To] = u
		heap.Push(&r.pq, &nodeItem{id: c.To, dist: newDist})
	}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
