// File: types.go
// Role: Sentinel errors, the Smoother contract, query results and options.

package navgraph

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/funnel"
	"github.com/katalvlaran/lvnav/navmesh"
)

// Sentinel errors for NavGraph construction and queries.
var (
	// ErrMeshNil is returned when a NavGraph is built without a mesh.
	ErrMeshNil = errors.New("navgraph: mesh is nil")

	// ErrNavGraphNil is returned when a query receives a nil NavGraph.
	ErrNavGraphNil = errors.New("navgraph: nav graph is nil")

	// ErrOutsideNavMesh is returned when the start or goal position lies in
	// no mesh triangle. It is distinct from "no path", which is an empty
	// result with a nil error.
	ErrOutsideNavMesh = errors.New("navgraph: position outside navmesh")
)

// Smoother turns the raw node path found by A* into the final point path.
type Smoother interface {
	// FindPortals lists the mesh edges crossed by path, oriented along it.
	FindPortals(path []core.Node, mesh *navmesh.Mesh) []funnel.Portal
	// OptimizePortals returns the corner points of a path through portals.
	OptimizePortals(portals []funnel.Portal) []orb.Point
}

// Result is a pathfinding answer together with its intermediate stages.
type Result struct {
	// Path is the smoothed path, start and goal included. Empty when the
	// goal is unreachable.
	Path []orb.Point
	// NodePositions are the positions of the raw A* node path.
	NodePositions []orb.Point
	// Portals are the oriented edges handed to the smoother.
	Portals []funnel.Portal
}

// Option configures NavGraph construction and Pathfinder behaviour.
// Options that do not apply to a constructor are ignored by it.
type Option func(*options)

type options struct {
	ctx       context.Context
	log       logrus.FieldLogger
	heuristic astar.Heuristic
	smoother  Smoother
}

func defaultOptions() options {
	return options{
		ctx:       context.Background(),
		log:       logrus.StandardLogger(),
		heuristic: astar.Chebyshev,
		smoother:  funnel.SSFA{},
	}
}

func newOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets the context carrying telemetry for NavGraph construction.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes diagnostics to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("navgraph: WithLogger(nil)")
	}

	return func(o *options) { o.log = l }
}

// WithHeuristic replaces the default Chebyshev heuristic of a Pathfinder.
// Panics if h is nil.
func WithHeuristic(h astar.Heuristic) Option {
	if h == nil {
		panic("navgraph: WithHeuristic(nil)")
	}

	return func(o *options) { o.heuristic = h }
}

// WithSmoother replaces the default funnel smoother of a Pathfinder.
// Panics if s is nil.
func WithSmoother(s Smoother) Option {
	if s == nil {
		panic("navgraph: WithSmoother(nil)")
	}

	return func(o *options) { o.smoother = s }
}
