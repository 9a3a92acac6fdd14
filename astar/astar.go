package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// AStar runs heuristic-guided shortest-path queries over a single graph.
// The graph is only read; an AStar value can serve many queries.
type AStar struct {
	g *core.Graph
	h Heuristic
}

// New returns a searcher over g using heuristic h.
// A nil h falls back to Chebyshev.
func New(g *core.Graph, h Heuristic) *AStar {
	if h == nil {
		h = Chebyshev
	}

	return &AStar{g: g, h: h}
}

// FindPath returns the cheapest path from start to goal, both inclusive.
//
// An exhausted open set yields an empty, non-nil path and a nil error.
// start == goal yields a single-node path.
func (a *AStar) FindPath(start, goal int) ([]core.Node, error) {
	if a.g == nil {
		return nil, ErrGraphNil
	}
	if !a.g.IsNodeValid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !a.g.IsNodeValid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	s := &search{
		g:      a.g,
		h:      a.h,
		goal:   goal,
		open:   make(map[int]*record),
		closed: make(map[int]*record),
	}
	s.goalPos = s.position(goal)
	heap.Init(&s.pq)
	s.push(&record{id: start, from: core.InvalidNodeID, g: 0, f: s.estimate(start)})

	for s.pq.Len() > 0 {
		cur := heap.Pop(&s.pq).(*record)
		delete(s.open, cur.id)

		if cur.id == goal {
			return s.reconstruct(cur, start), nil
		}
		s.closed[cur.id] = cur
		s.expand(cur)
	}

	return []core.Node{}, nil
}

// PathCost sums the connection costs along path. Consecutive nodes without a
// connection between them contribute +Inf.
func PathCost(g *core.Graph, path []core.Node) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		c, ok := g.Connection(path[i-1].ID, path[i].ID)
		if !ok {
			return math.Inf(1)
		}
		total += c.Cost
	}

	return total
}

// record is a node entry in the open or closed set.
type record struct {
	id    int
	from  int // tail of the incoming connection; InvalidNodeID for the start
	g     float64
	f     float64
	seq   uint64
	index int
}

// search holds the state of one FindPath call.
type search struct {
	g       *core.Graph
	h       Heuristic
	goal    int
	goalPos orb.Point
	pq      recordPQ
	open    map[int]*record
	closed  map[int]*record
	seq     uint64
}

func (s *search) position(id int) orb.Point {
	n, _ := s.g.Node(id)
	return n.Position
}

func (s *search) estimate(id int) float64 {
	p := s.position(id)
	return s.h(math.Abs(s.goalPos.X()-p.X()), math.Abs(s.goalPos.Y()-p.Y()))
}

func (s *search) push(r *record) {
	r.seq = s.seq
	s.seq++
	heap.Push(&s.pq, r)
	s.open[r.id] = r
}

// expand relaxes every outgoing connection of cur.
func (s *search) expand(cur *record) {
	for _, c := range s.g.ConnectionsFrom(cur.id) {
		gCost := cur.g + c.Cost

		if old, ok := s.closed[c.To]; ok {
			if gCost >= old.g {
				continue
			}
			// Cheaper route to an expanded node: reopen it.
			delete(s.closed, c.To)
		}
		if old, ok := s.open[c.To]; ok {
			if gCost >= old.g {
				continue
			}
			heap.Remove(&s.pq, old.index)
			delete(s.open, c.To)
		}

		s.push(&record{id: c.To, from: cur.id, g: gCost, f: gCost + s.estimate(c.To)})
	}
}

// reconstruct walks incoming connections back from the goal record.
func (s *search) reconstruct(goalRec *record, start int) []core.Node {
	ids := []int{}
	for r := goalRec; r != nil && r.from != core.InvalidNodeID; {
		ids = append(ids, r.id)
		prev, ok := s.closed[r.from]
		if !ok {
			prev = s.open[r.from]
		}
		r = prev
	}
	ids = append(ids, start)

	path := make([]core.Node, len(ids))
	for i, id := range ids {
		n, _ := s.g.Node(id)
		path[len(ids)-1-i] = n
	}

	return path
}

// recordPQ is a min-heap of *record ordered by f, then insertion sequence.
type recordPQ []*record

func (pq recordPQ) Len() int { return len(pq) }

func (pq recordPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq recordPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *recordPQ) Push(x interface{}) {
	r := x.(*record)
	r.index = len(*pq)
	*pq = append(*pq, r)
}

func (pq *recordPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	r := old[n-1]
	old[n-1] = nil
	r.index = -1
	*pq = old[:n-1]

	return r
}
