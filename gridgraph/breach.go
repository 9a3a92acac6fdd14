package gridgraph

import (
	"container/list"
)

// Breach finds the fewest impassable cells that must be cleared to join
// region src to region dst, as numbered by Regions().
// Returns the row-major cell path (starting in src, ending in dst) and the
// number of impassable cells on it.
//
// Behavior:
//  1. Validate region indices.
//  2. Multi-source 0-1 BFS from all src cells:
//     • stepping onto a passable cell   → cost 0
//     • stepping onto an impassable cell → cost 1
//  3. Stop when any dst cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Breach(src, dst int) (path []int, cost int, err error) {
	regions := gg.Regions()
	if src < 0 || src >= len(regions) || dst < 0 || dst >= len(regions) {
		return nil, 0, ErrRegionIndex
	}
	dstSet := make(map[int]struct{}, len(regions[dst]))
	for _, i := range regions[dst] {
		dstSet[i] = struct{}{}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 steps at the front, cost-1 steps at the back
	dq := list.New()
	for _, i := range regions[src] {
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.Passable(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
