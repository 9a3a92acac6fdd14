// File: mesh.go
// Role: Mesh construction from triangles, line deduplication and queries.
// Invariants:
//   - Every triangle is stored counter-clockwise.
//   - Two triangles sharing an edge (same endpoints) share its line index.
//   - Line and triangle indices are dense, starting at 0, in input order.

package navmesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// Mesh is an immutable triangulated navigation area.
// It is safe for concurrent reads.
type Mesh struct {
	triangles []Triangle
	lines     []Line
	lineTris  [][]int // line index → indices of bordering triangles
	tree      *rtreego.Rtree
	bound     orb.Bound
	eps       float64
}

// lineKey identifies an undirected edge by its endpoints, smaller point first.
type lineKey struct {
	a, b orb.Point
}

func newLineKey(p, q orb.Point) lineKey {
	if q[0] < p[0] || (q[0] == p[0] && q[1] < p[1]) {
		p, q = q, p
	}

	return lineKey{a: p, b: q}
}

// triEntry stores a triangle's bounding box in the R-tree.
type triEntry struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *triEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewMesh builds a mesh from raw triangles.
//
// Triangles are reoriented counter-clockwise. Edges with identical endpoints
// are merged into one Line. Returns ErrEmptyMesh for no input and
// ErrDegenerateTriangle (wrapped with the offending index) for zero-area input.
// Complexity: O(T log T).
func NewMesh(tris [][3]orb.Point, opts ...Option) (*Mesh, error) {
	o := newOptions(opts...)
	if len(tris) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &Mesh{
		triangles: make([]Triangle, 0, len(tris)),
		tree:      rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
		bound:     orb.Bound{Min: tris[0][0], Max: tris[0][0]},
		eps:       o.eps,
	}
	index := make(map[lineKey]int, len(tris)*2)

	for i, pts := range tris {
		area2 := cross(pts[0], pts[1], pts[2])
		if math.Abs(area2) <= o.eps {
			return nil, fmt.Errorf("%w: #%d %v", ErrDegenerateTriangle, i, pts)
		}
		if area2 < 0 {
			pts[1], pts[2] = pts[2], pts[1]
		}

		t := Triangle{Index: i, Points: pts}
		for k := 0; k < 3; k++ {
			p, q := pts[k], pts[(k+1)%3]
			key := newLineKey(p, q)
			li, ok := index[key]
			if !ok {
				li = len(m.lines)
				index[key] = li
				m.lines = append(m.lines, Line{Index: li, P1: p, P2: q})
				m.lineTris = append(m.lineTris, nil)
			}
			t.LineIndices[k] = li
			m.lineTris[li] = append(m.lineTris[li], i)
			m.bound = m.bound.Extend(p)
		}
		m.triangles = append(m.triangles, t)

		rect, err := triangleRect(pts)
		if err != nil {
			return nil, fmt.Errorf("%w: #%d: %v", ErrDegenerateTriangle, i, err)
		}
		m.tree.Insert(&triEntry{idx: i, rect: rect})
	}

	o.log.WithFields(logrus.Fields{
		"triangles": len(m.triangles),
		"lines":     len(m.lines),
	}).Debug("navmesh: mesh built")

	return m, nil
}

// triangleRect returns the axis-aligned bounding box of pts.
func triangleRect(pts [3]orb.Point) (rtreego.Rect, error) {
	minX, minY := pts[0][0], pts[0][1]
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	return rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
}

// Triangles returns a copy of every triangle, in index order.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, len(m.triangles))
	copy(out, m.triangles)

	return out
}

// Triangle returns the triangle with index idx.
func (m *Mesh) Triangle(idx int) (Triangle, bool) {
	if idx < 0 || idx >= len(m.triangles) {
		return Triangle{}, false
	}

	return m.triangles[idx], true
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Lines returns a copy of every line, in index order.
func (m *Mesh) Lines() []Line {
	out := make([]Line, len(m.lines))
	copy(out, m.lines)

	return out
}

// Line returns the line with index idx.
func (m *Mesh) Line(idx int) (Line, bool) {
	if idx < 0 || idx >= len(m.lines) {
		return Line{}, false
	}

	return m.lines[idx], true
}

// TrianglesFromLineIndex returns the triangles bordering line idx:
// one for a boundary line, two for a shared one, none for an invalid index.
func (m *Mesh) TrianglesFromLineIndex(idx int) []Triangle {
	if idx < 0 || idx >= len(m.lineTris) {
		return nil
	}
	out := make([]Triangle, 0, len(m.lineTris[idx]))
	for _, ti := range m.lineTris[idx] {
		out = append(out, m.triangles[ti])
	}

	return out
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() orb.Bound {
	return m.bound
}

// TriangleFromPosition returns the triangle containing p. Points on a shared
// edge belong to the lowest-indexed triangle touching it.
// Complexity: O(log T) expected.
func (m *Mesh) TriangleFromPosition(p orb.Point) (Triangle, bool) {
	query, err := rtreego.NewRect(
		rtreego.Point{p[0] - m.eps, p[1] - m.eps},
		[]float64{2 * m.eps, 2 * m.eps},
	)
	if err != nil {
		return Triangle{}, false
	}

	hits := m.tree.SearchIntersect(query)
	candidates := make([]int, 0, len(hits))
	for _, h := range hits {
		candidates = append(candidates, h.(*triEntry).idx)
	}
	sort.Ints(candidates)

	for _, ti := range candidates {
		if m.contains(m.triangles[ti], p) {
			return m.triangles[ti], true
		}
	}

	return Triangle{}, false
}

// contains tests p against the three edges of a counter-clockwise triangle,
// accepting points within eps of an edge.
func (m *Mesh) contains(t Triangle, p orb.Point) bool {
	for k := 0; k < 3; k++ {
		a, b := t.Points[k], t.Points[(k+1)%3]
		length := math.Hypot(b[0]-a[0], b[1]-a[1])
		if cross(a, b, p)/length < -m.eps {
			return false
		}
	}

	return true
}
