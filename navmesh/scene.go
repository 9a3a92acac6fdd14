// File: scene.go
// Role: Declarative world description (YAML) and its conversion to a Mesh.
// Format:
//
//	world: {width: 120, height: 60}   # centred on the origin
//	agent_radius: 1.5                 # obstacles are inflated by this much
//	geojson: obstacles.geojson        # optional, relative to the scene file
//	obstacles:
//	  - box: {center: [25, 12], width: 45, height: 7, angle: 0}
//	  - points: [[-5, -5], [5, -5], [0, 5]]

package navmesh

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scene describes a rectangular world with polygonal obstacles.
type Scene struct {
	World       World      `yaml:"world"`
	AgentRadius float64    `yaml:"agent_radius"`
	GeoJSON     string     `yaml:"geojson,omitempty"`
	Obstacles   []Obstacle `yaml:"obstacles,omitempty"`

	extra []orb.Ring
}

// World is the size of the navigable rectangle, centred on the origin.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacle is either an oriented box or an explicit polygon outline.
type Obstacle struct {
	Box    *Box        `yaml:"box,omitempty"`
	Points [][]float64 `yaml:"points,omitempty"`
}

// Box is a rectangle of the given size centred on Center, rotated
// counter-clockwise by Angle degrees.
type Box struct {
	Center []float64 `yaml:"center"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Angle  float64   `yaml:"angle,omitempty"`
}

// LoadScene decodes and validates a YAML scene. Unknown fields are rejected.
// A geojson reference is not resolved; use LoadSceneFile for that.
func LoadScene(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("navmesh: decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadSceneFile reads a scene from path and, when it names a GeoJSON file,
// loads that file's polygons as additional obstacles.
func LoadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("navmesh: open scene: %w", err)
	}
	defer f.Close()

	s, err := LoadScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.GeoJSON == "" {
		return s, nil
	}

	gj := s.GeoJSON
	if !filepath.IsAbs(gj) {
		gj = filepath.Join(filepath.Dir(path), gj)
	}
	g, err := os.Open(gj)
	if err != nil {
		return nil, fmt.Errorf("navmesh: open obstacles: %w", err)
	}
	defer g.Close()

	rings, err := LoadGeoJSONObstacles(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gj, err)
	}
	s.AddObstacleRings(rings...)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadGeoJSONObstacles reads a FeatureCollection and returns the outer ring
// of every Polygon and MultiPolygon member. Other geometry types are skipped.
func LoadGeoJSONObstacles(r io.Reader) ([]orb.Ring, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("navmesh: read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("navmesh: decode geojson: %w", err)
	}

	var rings []orb.Ring
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if len(g) > 0 {
				rings = append(rings, g[0])
			}
		case orb.MultiPolygon:
			for _, p := range g {
				if len(p) > 0 {
					rings = append(rings, p[0])
				}
			}
		}
	}

	return rings, nil
}

// AddObstacleRings appends obstacles given directly as rings.
func (s *Scene) AddObstacleRings(rings ...orb.Ring) {
	for _, r := range rings {
		s.extra = append(s.extra, append(orb.Ring(nil), r...))
	}
}

// Validate checks sizes, obstacle shapes and that every inflated obstacle
// lies strictly inside the world. Overlap between obstacles is not checked.
func (s *Scene) Validate() error {
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidScene, s.World.Width, s.World.Height)
	}
	if s.AgentRadius < 0 {
		return fmt.Errorf("%w: agent_radius %g < 0", ErrInvalidScene, s.AgentRadius)
	}

	world := s.Boundary().Bound()
	rings, err := s.ObstacleRings()
	if err != nil {
		return err
	}
	for i, r := range rings {
		b := r.Bound()
		if b.Min[0] <= world.Min[0] || b.Min[1] <= world.Min[1] ||
			b.Max[0] >= world.Max[0] || b.Max[1] >= world.Max[1] {
			return fmt.Errorf("%w: obstacle %d leaves the world", ErrInvalidScene, i)
		}
	}

	return nil
}

// Boundary returns the world rectangle as a closed counter-clockwise ring.
func (s *Scene) Boundary() orb.Ring {
	hw, hh := s.World.Width/2, s.World.Height/2

	return orb.Ring{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}, {-hw, -hh}}
}

// ObstacleRings returns every obstacle outline inflated by AgentRadius.
func (s *Scene) ObstacleRings() ([]orb.Ring, error) {
	rings := make([]orb.Ring, 0, len(s.Obstacles)+len(s.extra))
	for i, o := range s.Obstacles {
		r, err := o.Ring()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		rings = append(rings, ExpandRing(r, s.AgentRadius))
	}
	for _, r := range s.extra {
		rings = append(rings, ExpandRing(r, s.AgentRadius))
	}

	return rings, nil
}

// Ring returns the obstacle outline before inflation.
func (o Obstacle) Ring() (orb.Ring, error) {
	switch {
	case o.Box != nil && len(o.Points) > 0:
		return nil, fmt.Errorf("%w: obstacle sets both box and points", ErrInvalidScene)
	case o.Box != nil:
		return o.Box.Ring()
	case len(o.Points) < 3:
		return nil, fmt.Errorf("%w: obstacle needs a box or at least 3 points", ErrInvalidScene)
	}

	r := make(orb.Ring, 0, len(o.Points)+1)
	for i, p := range o.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", ErrInvalidScene, i, len(p))
		}
		r = append(r, orb.Point{p[0], p[1]})
	}

	return append(r, r[0]), nil
}

// Ring returns the box corners as a closed counter-clockwise ring.
func (b Box) Ring() (orb.Ring, error) {
	if len(b.Center) != 2 {
		return nil, fmt.Errorf("%w: box center needs 2 coordinates", ErrInvalidScene)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("%w: box size %gx%g", ErrInvalidScene, b.Width, b.Height)
	}

	sin, cos := math.Sincos(b.Angle * math.Pi / 180)
	hw, hh := b.Width/2, b.Height/2
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	r := make(orb.Ring, 0, 5)
	for _, c := range corners {
		r = append(r, orb.Point{
			b.Center[0] + c[0]*cos - c[1]*sin,
			b.Center[1] + c[0]*sin + c[1]*cos,
		})
	}

	return append(r, r[0]), nil
}

// Build triangulates the world minus the inflated obstacles.
func (s *Scene) Build(opts ...Option) (*Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	holes, err := s.ObstacleRings()
	if err != nil {
		return nil, err
	}
	tris, err := triangulate(o.eps, s.Boundary(), holes...)
	if err != nil {
		return nil, fmt.Errorf("navmesh: build scene: %w", err)
	}

	o.log.WithFields(logrus.Fields{
		"width":     s.World.Width,
		"height":    s.World.Height,
		"obstacles": len(holes),
		"radius":    s.AgentRadius,
	}).Debug("navmesh: scene triangulated")

	return NewMesh(tris, opts...)
}
