// File: triangulate.go
// Role: Polygon-with-holes triangulation by ear clipping.
// Method:
//   - Outer ring is made counter-clockwise and holes clockwise.
//   - Holes are merged into the outer boundary one by one (rightmost hole
//     first) through a bridge from the hole's rightmost vertex to a visible
//     boundary vertex, yielding a single weakly simple polygon.
//   - Ears are clipped until three vertices remain. Collinear vertices are
//     dropped without emitting a triangle.

package navmesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// Triangulate splits the area inside outer and outside every hole into
// triangles. Rings may be closed (first == last) or open, in any winding.
// Holes must lie strictly inside outer and must not overlap each other.
//
// Returns ErrInvalidRing for rings with fewer than three distinct points
// and ErrTriangulationFailed when no ear can be found.
// Complexity: O(n²) for n total vertices.
func Triangulate(outer orb.Ring, holes ...orb.Ring) ([][3]orb.Point, error) {
	return triangulate(DefaultEpsilon, outer, holes...)
}

func triangulate(eps float64, outer orb.Ring, holes ...orb.Ring) ([][3]orb.Point, error) {
	poly, err := openRing(outer)
	if err != nil {
		return nil, fmt.Errorf("outer: %w", err)
	}
	if signedArea2(poly) < 0 {
		reverse(poly)
	}

	hs := make([][]orb.Point, 0, len(holes))
	for i, h := range holes {
		pts, err := openRing(h)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		if signedArea2(pts) > 0 {
			reverse(pts)
		}
		hs = append(hs, pts)
	}
	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i][rightmost(hs[i])][0] > hs[j][rightmost(hs[j])][0]
	})

	for i, h := range hs {
		poly, err = bridge(poly, h, eps)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
	}

	return clipEars(poly, eps)
}

// openRing copies r without the closing point and consecutive duplicates.
func openRing(r orb.Ring) ([]orb.Point, error) {
	pts := make([]orb.Point, 0, len(r))
	for _, p := range r {
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	for len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, ErrInvalidRing
	}

	return pts, nil
}

// signedArea2 returns twice the signed area; positive for counter-clockwise.
func signedArea2(pts []orb.Point) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p[0]*q[1] - q[0]*p[1]
	}

	return a
}

func reverse(pts []orb.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// rightmost returns the index of the vertex with the largest x.
func rightmost(pts []orb.Point) int {
	best := 0
	for i, p := range pts {
		if p[0] > pts[best][0] {
			best = i
		}
	}

	return best
}

// bridge splices hole into poly through a mutually visible vertex pair.
func bridge(poly, hole []orb.Point, eps float64) ([]orb.Point, error) {
	mi := rightmost(hole)
	m := hole[mi]

	// 1) Closest edge hit by the ray from m towards +x.
	hitX := math.Inf(1)
	edge := -1
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		if a[1] == b[1] || m[1] < math.Min(a[1], b[1]) || m[1] > math.Max(a[1], b[1]) {
			continue
		}
		x := a[0] + (m[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
		if x >= m[0] && x < hitX {
			hitX, edge = x, i
		}
	}
	if edge < 0 {
		return nil, fmt.Errorf("%w: hole not inside boundary", ErrTriangulationFailed)
	}

	// 2) Candidate: the hit edge endpoint with the larger x.
	a, b := poly[edge], poly[(edge+1)%len(poly)]
	p := a
	if b[0] > a[0] {
		p = b
	}
	switch {
	case a[1] == m[1] && a[0] == hitX:
		p = a
	case b[1] == m[1] && b[0] == hitX:
		p = b
	}

	// 3) Any vertex inside triangle (m, hit, p) blocks visibility; take the
	// one with the smallest angle to the ray instead.
	hit := orb.Point{hitX, m[1]}
	if p != hit {
		bestCos := -2.0
		bestDist := math.Inf(1)
		for _, q := range poly {
			if q == p || !inTriangle(q, m, hit, p, eps) {
				continue
			}
			dx, dy := q[0]-m[0], q[1]-m[1]
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				continue
			}
			c := dx / dist
			if c > bestCos+eps || (math.Abs(c-bestCos) <= eps && dist < bestDist) {
				bestCos, bestDist = c, dist
				p = q
			}
		}
	}

	// 4) Pick the occurrence of p whose interior wedge faces m.
	j := -1
	for i, q := range poly {
		if q != p {
			continue
		}
		if j < 0 {
			j = i
		}
		prev, next := poly[(i-1+len(poly))%len(poly)], poly[(i+1)%len(poly)]
		if inWedge(prev, q, next, m) {
			j = i
			break
		}
	}

	out := make([]orb.Point, 0, len(poly)+len(hole)+2)
	out = append(out, poly[:j+1]...)
	for k := 0; k <= len(hole); k++ {
		out = append(out, hole[(mi+k)%len(hole)])
	}
	out = append(out, p)
	out = append(out, poly[j+1:]...)

	return out, nil
}

// inWedge reports whether q lies in the interior angle at v of a
// counter-clockwise polygon.
func inWedge(prev, v, next, q orb.Point) bool {
	if cross(prev, v, next) >= 0 {
		return cross(prev, v, q) > 0 && cross(v, next, q) > 0
	}

	return cross(prev, v, q) > 0 || cross(v, next, q) > 0
}

// inTriangle reports whether p lies inside or on the border of (a, b, c),
// in either winding.
func inTriangle(p, a, b, c orb.Point, eps float64) bool {
	d1, d2, d3 := cross(a, b, p), cross(b, c, p), cross(c, a, p)
	hasNeg := d1 < -eps || d2 < -eps || d3 < -eps
	hasPos := d1 > eps || d2 > eps || d3 > eps

	return !(hasNeg && hasPos)
}

// clipEars triangulates a counter-clockwise weakly simple polygon.
func clipEars(poly []orb.Point, eps float64) ([][3]orb.Point, error) {
	v := append([]orb.Point(nil), poly...)
	out := make([][3]orb.Point, 0, len(v)-2)

	start := 0
	for len(v) > 3 {
		clipped := false
		for tries := 0; tries < len(v); tries++ {
			i := (start + tries) % len(v)
			prev, cur, next := v[(i-1+len(v))%len(v)], v[i], v[(i+1)%len(v)]

			c := cross(prev, cur, next)
			if math.Abs(c) <= eps {
				v = append(v[:i], v[i+1:]...)
				start, clipped = i, true
				break
			}
			if c < 0 || blocked(v, prev, cur, next, eps) {
				continue
			}
			out = append(out, [3]orb.Point{prev, cur, next})
			v = append(v[:i], v[i+1:]...)
			start, clipped = i, true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("%w: %d vertices left", ErrTriangulationFailed, len(v))
		}
		if start >= len(v) {
			start = 0
		}
	}
	if math.Abs(cross(v[0], v[1], v[2])) > eps {
		out = append(out, [3]orb.Point{v[0], v[1], v[2]})
	}
	if len(out) == 0 {
		return nil, ErrEmptyMesh
	}

	return out, nil
}

// blocked reports whether any polygon vertex other than the ear corners
// lies inside the candidate ear.
func blocked(v []orb.Point, a, b, c orb.Point, eps float64) bool {
	for _, q := range v {
		if q == a || q == b || q == c {
			continue
		}
		if inTriangle(q, a, b, c, eps) {
			return true
		}
	}

	return false
}

// NewMeshFromPolygon triangulates poly (first ring outer, the rest holes)
// and builds a mesh from the result.
func NewMeshFromPolygon(poly orb.Polygon, opts ...Option) (*Mesh, error) {
	if len(poly) == 0 {
		return nil, ErrEmptyMesh
	}
	o := newOptions(opts...)
	tris, err := triangulate(o.eps, poly[0], poly[1:]...)
	if err != nil {
		return nil, err
	}

	return NewMesh(tris, opts...)
}
