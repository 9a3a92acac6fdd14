package funnel

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/navmesh"
)

// FindPortals returns the portals crossed by path. Nodes without a valid
// mesh line (plain nodes, injected endpoints) contribute no portal.
// An empty path yields nil.
func FindPortals(path []core.Node, mesh *navmesh.Mesh) []Portal {
	if len(path) == 0 {
		return nil
	}
	start := path[0].Position
	goal := path[len(path)-1].Position

	portals := make([]Portal, 0, len(path))
	portals = append(portals, Portal{Left: start, Right: start})

	prev := start
	for _, n := range path[1 : len(path)-1] {
		if n.Kind != core.KindNav || mesh == nil {
			continue
		}
		line, ok := mesh.Line(n.LineIndex)
		if !ok {
			continue
		}
		portals = append(portals, orient(prev, line))
		prev = line.Center()
	}

	return append(portals, Portal{Left: goal, Right: goal})
}

// orient assigns the line's endpoints to Left and Right as seen when
// travelling from `from` towards the line's midpoint.
func orient(from orb.Point, l navmesh.Line) Portal {
	if cross(from, l.Center(), l.P1) > 0 {
		return Portal{Left: l.P1, Right: l.P2}
	}

	return Portal{Left: l.P2, Right: l.P1}
}

// OptimizePortals runs the funnel over portals and returns the corner
// points of the shortest path through them, from the first portal's Left
// to the last portal's Left.
func OptimizePortals(portals []Portal) []orb.Point {
	if len(portals) == 0 {
		return nil
	}

	apex, left, right := portals[0].Left, portals[0].Left, portals[0].Right
	apexIdx, leftIdx, rightIdx := 0, 0, 0
	pts := []orb.Point{apex}

	for i := 1; i < len(portals); i++ {
		l, r := portals[i].Left, portals[i].Right

		// Right side: narrow when r does not widen the funnel.
		if cross(apex, right, r) >= 0 {
			if apex == right || cross(apex, left, r) < 0 {
				right, rightIdx = r, i
			} else {
				// Right crossed left: left becomes a corner.
				pts = appendCorner(pts, left)
				apex, apexIdx = left, leftIdx
				right, rightIdx = apex, apexIdx
				i = apexIdx
				continue
			}
		}

		// Left side, mirrored.
		if cross(apex, left, l) <= 0 {
			if apex == left || cross(apex, right, l) > 0 {
				left, leftIdx = l, i
			} else {
				pts = appendCorner(pts, right)
				apex, apexIdx = right, rightIdx
				left, leftIdx = apex, apexIdx
				i = apexIdx
				continue
			}
		}
	}

	return appendCorner(pts, portals[len(portals)-1].Left)
}

// appendCorner adds p unless it repeats the last point.
func appendCorner(pts []orb.Point, p orb.Point) []orb.Point {
	if pts[len(pts)-1] == p {
		return pts
	}

	return append(pts, p)
}

// cross returns the z component of (b-a)×(c-a); positive when c is left
// of the ray a→b.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
