// File: types.go
// Role: Mesh primitives, sentinel errors and construction options.

package navmesh

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for mesh construction and scene loading.
var (
	// ErrEmptyMesh is returned when a mesh would contain no triangle.
	ErrEmptyMesh = errors.New("navmesh: no triangles")

	// ErrDegenerateTriangle is returned for triangles with (near) zero area.
	ErrDegenerateTriangle = errors.New("navmesh: degenerate triangle")

	// ErrInvalidRing is returned for rings with fewer than three distinct points.
	ErrInvalidRing = errors.New("navmesh: invalid ring")

	// ErrTriangulationFailed is returned when ear clipping gets stuck,
	// typically on self-intersecting or overlapping input.
	ErrTriangulationFailed = errors.New("navmesh: triangulation failed")

	// ErrInvalidScene is returned when a scene description fails validation.
	ErrInvalidScene = errors.New("navmesh: invalid scene")
)

const (
	// DefaultEpsilon is the geometric tolerance used for area, orientation
	// and point-in-triangle tests.
	DefaultEpsilon = 1e-9

	// rtree node fan-out, as used for polygon indexes.
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// Line is a mesh edge. Index is stable for the lifetime of the mesh and is
// shared by every triangle bordering the edge.
type Line struct {
	Index int
	P1    orb.Point
	P2    orb.Point
}

// Center returns the midpoint of the line.
func (l Line) Center() orb.Point {
	return orb.Point{(l.P1[0] + l.P2[0]) / 2, (l.P1[1] + l.P2[1]) / 2}
}

// Triangle is a counter-clockwise mesh triangle. LineIndices[i] is the line
// joining Points[i] and Points[(i+1)%3].
type Triangle struct {
	Index       int
	Points      [3]orb.Point
	LineIndices [3]int
}

// HasLine reports whether the triangle is bounded by line idx.
func (t Triangle) HasLine(idx int) bool {
	return t.LineIndices[0] == idx || t.LineIndices[1] == idx || t.LineIndices[2] == idx
}

// Centroid returns the arithmetic mean of the three corners.
func (t Triangle) Centroid() orb.Point {
	return orb.Point{
		(t.Points[0][0] + t.Points[1][0] + t.Points[2][0]) / 3,
		(t.Points[0][1] + t.Points[1][1] + t.Points[2][1]) / 3,
	}
}

// Option configures mesh construction.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
	eps float64
}

func defaultOptions() options {
	return options{
		log: logrus.StandardLogger(),
		eps: DefaultEpsilon,
	}
}

func newOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes construction diagnostics to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("navmesh: WithLogger(nil)")
	}

	return func(o *options) { o.log = l }
}

// WithEpsilon sets the geometric tolerance. Panics if eps is not positive.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic(fmt.Sprintf("navmesh: WithEpsilon(%g): must be > 0", eps))
	}

	return func(o *options) { o.eps = eps }
}

// cross returns the z component of (b-a)×(c-a). Positive for a
// counter-clockwise turn.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
