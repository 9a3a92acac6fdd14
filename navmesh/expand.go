package navmesh

import (
	"math"

	"github.com/paulmach/orb"
)

// miterLimit caps how far a vertex may move, as a multiple of the radius,
// so that very sharp corners do not produce long spikes.
const miterLimit = 4.0

// ExpandRing offsets ring outward by radius, inflating an obstacle by an
// agent's radius. Each vertex moves along the miter of its two edges.
//
// The result is closed and counter-clockwise. With radius <= 0 the ring is
// only normalized. Rings with fewer than three distinct points are returned
// as an unmodified copy.
func ExpandRing(ring orb.Ring, radius float64) orb.Ring {
	pts, err := openRing(ring)
	if err != nil {
		return append(orb.Ring(nil), ring...)
	}
	if signedArea2(pts) < 0 {
		reverse(pts)
	}
	if radius <= 0 {
		return closeRing(pts)
	}

	n := len(pts)
	out := make([]orb.Point, n)
	for i := range pts {
		prev, cur, next := pts[(i-1+n)%n], pts[i], pts[(i+1)%n]
		n1 := outwardNormal(prev, cur)
		n2 := outwardNormal(cur, next)

		mx, my := n1[0]+n2[0], n1[1]+n2[1]
		denom := 1 + n1[0]*n2[0] + n1[1]*n2[1]
		if denom < 1e-12 {
			// Edges fold back on each other; push along the incoming normal.
			out[i] = orb.Point{cur[0] + n1[0]*radius, cur[1] + n1[1]*radius}
			continue
		}
		scale := radius / denom
		if length := math.Hypot(mx, my) * scale; length > miterLimit*radius {
			scale *= miterLimit * radius / length
		}
		out[i] = orb.Point{cur[0] + mx*scale, cur[1] + my*scale}
	}

	return closeRing(out)
}

// outwardNormal returns the unit normal on the right of a→b, which points
// away from the interior of a counter-clockwise ring.
func outwardNormal(a, b orb.Point) orb.Point {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return orb.Point{}
	}

	return orb.Point{dy / l, -dx / l}
}

func closeRing(pts []orb.Point) orb.Ring {
	out := make(orb.Ring, 0, len(pts)+1)
	out = append(out, pts...)

	return append(out, pts[0])
}
