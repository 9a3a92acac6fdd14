package euler

import (
	"math/rand"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dfs"
)

// EulerianPath classifies a graph and discovers Eulerian trails on it.
// The graph itself is never mutated.
type EulerianPath struct {
	g                   *core.Graph
	rnd                 RandSource
	directedConsumption bool
}

// New returns an EulerianPath over g.
func New(g *core.Graph, opts ...Option) *EulerianPath {
	e := &EulerianPath{g: g}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(defaultSeed))
	}

	return e
}

// IsEulerian classifies the graph.
//
// A nil or empty graph, or one in which some live node cannot be reached
// from the first live node, is NotEulerian. Otherwise the number of nodes
// with odd out-degree decides: 0 → Eulerian, 2 → SemiEulerian, else NotEulerian.
// A graph of exactly two nodes is never SemiEulerian: its single edge is
// walked there and back, so it classifies as Eulerian.
// Complexity: O(V + E).
func (e *EulerianPath) IsEulerian() Eulerianity {
	if e.g == nil || e.g.NodeCount() == 0 {
		return NotEulerian
	}
	connected, err := dfs.IsConnected(e.g)
	if err != nil || !connected {
		return NotEulerian
	}

	switch len(e.oddNodes()) {
	case 0:
		return Eulerian
	case 2:
		if e.g.NodeCount() > 2 {
			return SemiEulerian
		}
		return Eulerian
	default:
		return NotEulerian
	}
}

// FindPath returns an Eulerian trail as a node sequence together with the
// classification. NotEulerian yields an empty path.
//
// SemiEulerian trails start at the first odd-degree node (in id order) and
// end at the other one. Eulerian circuits start at a random live node and
// return to it. Connections are picked at random from the current node.
// Complexity: O(V + E·deg).
func (e *EulerianPath) FindPath() ([]core.Node, Eulerianity) {
	kind := e.IsEulerian()
	if kind == NotEulerian {
		return []core.Node{}, kind
	}

	var start int
	switch kind {
	case SemiEulerian:
		start = e.oddNodes()[0]
	default:
		ids := e.g.NodeIDs()
		start = ids[e.rnd.Intn(len(ids))]
	}

	work := e.g.Clone()
	if e.directedConsumption {
		work = e.g.CloneDirected()
	}

	trail := e.walk(work, start)

	path := make([]core.Node, len(trail))
	for i, id := range trail {
		n, _ := e.g.Node(id)
		path[len(trail)-1-i] = n
	}

	return path, kind
}

// walk runs Hierholzer's algorithm on work, consuming connections, and
// returns the trail in reverse order.
func (e *EulerianPath) walk(work *core.Graph, start int) []int {
	var (
		trail []int
		stack []int
		cur   = start
	)
	for len(stack) > 0 || work.Degree(cur) > 0 {
		if work.Degree(cur) > 0 {
			stack = append(stack, cur)
			conns := work.ConnectionsFrom(cur)
			c := conns[e.rnd.Intn(len(conns))]
			work.RemoveConnection(c.From, c.To)
			cur = c.To
			continue
		}
		trail = append(trail, cur)
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}

	return append(trail, cur)
}

// oddNodes lists live nodes with an odd out-degree, in id order.
func (e *EulerianPath) oddNodes() []int {
	var odd []int
	for _, id := range e.g.NodeIDs() {
		if e.g.Degree(id)%2 == 1 {
			odd = append(odd, id)
		}
	}

	return odd
}
