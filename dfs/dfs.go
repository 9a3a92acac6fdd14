// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// The walk keeps its own explicit stack of frames, so traversal depth is
// bounded by heap memory rather than the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is not live.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id    int
	depth int
	conns []core.Connection
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Neighbors are explored in connection insertion order.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.IsNodeValid(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	res := &DFSResult{
		Preorder: make([]int, 0, n),
		Order:    make([]int, 0, n),
		Depth:    make(map[int]int, n),
		Parent:   make(map[int]int, n),
		Visited:  make(map[int]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	roots := []int{startID}
	if dopts.FullTraversal {
		roots = g.NodeIDs()
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		if err := walker.walk(root); err != nil {
			res.Order = nil
			return res, err
		}
	}

	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// walk runs one DFS tree rooted at root.
func (w *dfsWalker) walk(root int) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. All neighbors done: post-order.
		if top.next >= len(top.conns) {
			id := top.id
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
				}
			}
			w.res.Order = append(w.res.Order, id)
			continue
		}

		// 3. Advance to the next neighbor.
		nid := top.conns[top.next].To
		top.next++
		parent, depth := top.id, top.depth

		if nid == parent || w.res.Visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		w.res.Parent[nid] = parent
		// enter may grow the stack; top must not be used afterwards.
		if err := w.enter(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// enter marks id discovered, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) enter(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	w.stack = append(w.stack, frame{id: id, depth: depth, conns: w.graph.ConnectionsFrom(id)})

	return nil
}

// Reachable returns every node reachable from start along outgoing
// connections, in discovery order (start first).
func Reachable(g *core.Graph, start int) ([]int, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Preorder, nil
}

// IsConnected reports whether every live node of g is reachable from the
// first live node (table order) along outgoing connections. For undirected
// graphs this is ordinary connectivity. Graphs with zero or one node are
// connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.NodeIDs()
	if len(ids) <= 1 {
		return true, nil
	}
	reached, err := Reachable(g, ids[0])
	if err != nil {
		return false, err
	}

	return len(reached) == len(ids), nil
}
