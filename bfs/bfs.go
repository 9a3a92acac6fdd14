package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
	done    bool
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Connection costs are ignored; neighbors are expanded in insertion order.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsNodeValid(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(startID, 0, core.InvalidNodeID)

	return w.res, w.loop()
}

// FindPath returns the fewest-connections path from start to goal, both
// inclusive. An unreachable goal yields an empty, non-nil path and a nil error.
// start == goal yields a single-node path.
func FindPath(g *core.Graph, start, goal int) ([]core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.IsNodeValid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalVertexNotFound, goal)
	}
	res, err := BFS(g, start, WithStopAt(goal))
	if err != nil {
		return nil, err
	}

	ids, err := res.PathTo(goal)
	if err != nil {
		// Goal never discovered.
		return []core.Node{}, nil
	}
	path := make([]core.Node, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		path = append(path, n)
	}

	return path, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.InvalidNodeID {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, early stop, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.HasStop && item.id == w.opts.StopAt {
			w.done = true
			break
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, c := range w.graph.ConnectionsFrom(item.id) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		nbr := c.To
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
