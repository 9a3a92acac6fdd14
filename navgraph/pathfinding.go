// File: pathfinding.go
// Role: Point-to-point queries over a NavGraph.
// Steps:
//  1. Locate the start and goal triangles.
//  2. Same triangle: the straight segment is the answer.
//  3. Otherwise clone the graph, inject start and goal nodes linked to the
//     line nodes of their triangles, and run A*.
//  4. Hand the node path to the Smoother.

package navgraph

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/navmesh"
)

// Query outcomes reported to telemetry.
const (
	outcomeFound        = "found"
	outcomeSameTriangle = "same_triangle"
	outcomeNoPath       = "no_path"
	outcomeOutside      = "outside"
	outcomeError        = "error"
)

// Pathfinder answers point-to-point queries. It holds no per-query state
// and may be shared by goroutines as long as the NavGraph is not mutated.
type Pathfinder struct {
	heuristic astar.Heuristic
	smoother  Smoother
	log       logrus.FieldLogger
}

// NewPathfinder returns a Pathfinder. Honors WithHeuristic, WithSmoother
// and WithLogger.
func NewPathfinder(opts ...Option) *Pathfinder {
	o := newOptions(opts...)

	return &Pathfinder{heuristic: o.heuristic, smoother: o.smoother, log: o.log}
}

var defaultPathfinder = NewPathfinder()

// FindPath runs a query with the default Pathfinder.
func FindPath(start, goal orb.Point, ng *NavGraph) ([]orb.Point, error) {
	return defaultPathfinder.FindPath(context.Background(), start, goal, ng)
}

// FindPath returns the smoothed path from start to goal. An unreachable goal
// yields an empty path and a nil error; a position outside the mesh yields
// ErrOutsideNavMesh. ctx only carries telemetry: the search always runs to
// completion.
func (pf *Pathfinder) FindPath(ctx context.Context, start, goal orb.Point, ng *NavGraph) ([]orb.Point, error) {
	res, err := pf.FindPathDebug(ctx, start, goal, ng)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// FindPathDebug behaves like FindPath and also returns the raw node
// positions and the portals passed to the smoother.
func (pf *Pathfinder) FindPathDebug(ctx context.Context, start, goal orb.Point, ng *NavGraph) (*Result, error) {
	if ng == nil {
		return nil, ErrNavGraphNil
	}
	ctx, span := startQuerySpan(ctx, start, goal)
	defer span.End()
	began := time.Now()

	res, outcome, err := pf.find(start, goal, ng)

	setQuerySpanResult(span, outcome, len(res.Path), err)
	recordQueryMetrics(ctx, outcome, time.Since(began), len(res.Path))
	pf.log.WithFields(logrus.Fields{
		"start":   start,
		"goal":    goal,
		"outcome": outcome,
		"points":  len(res.Path),
	}).Debug("navgraph: path query")

	if err != nil {
		return nil, err
	}

	return res, nil
}

// find does the work of FindPathDebug and classifies the outcome.
func (pf *Pathfinder) find(start, goal orb.Point, ng *NavGraph) (*Result, string, error) {
	mesh := ng.Mesh()
	empty := &Result{Path: []orb.Point{}}

	startTri, ok := mesh.TriangleFromPosition(start)
	if !ok {
		return empty, outcomeOutside, fmt.Errorf("%w: start %v", ErrOutsideNavMesh, start)
	}
	goalTri, ok := mesh.TriangleFromPosition(goal)
	if !ok {
		return empty, outcomeOutside, fmt.Errorf("%w: goal %v", ErrOutsideNavMesh, goal)
	}
	if startTri.Index == goalTri.Index {
		return &Result{Path: []orb.Point{start, goal}}, outcomeSameTriangle, nil
	}

	work := ng.Clone()
	from, err := work.inject(start, startTri)
	if err != nil {
		return empty, outcomeError, fmt.Errorf("navgraph: start: %w", err)
	}
	to, err := work.inject(goal, goalTri)
	if err != nil {
		return empty, outcomeError, fmt.Errorf("navgraph: goal: %w", err)
	}
	work.SetConnectionCostsToDistances()

	nodes, err := astar.New(work.Graph, pf.heuristic).FindPath(from, to)
	if err != nil {
		return empty, outcomeError, fmt.Errorf("navgraph: %w", err)
	}
	if len(nodes) == 0 {
		return empty, outcomeNoPath, nil
	}

	positions := make([]orb.Point, len(nodes))
	for i, n := range nodes {
		positions[i] = n.Position
	}
	portals := pf.smoother.FindPortals(nodes, mesh)

	return &Result{
		Path:          pf.smoother.OptimizePortals(portals),
		NodePositions: positions,
		Portals:       portals,
	}, outcomeFound, nil
}

// inject adds a synthetic node at p linked to the line nodes of tri and
// returns its id. Line nodes removed from the graph are skipped.
func (ng *NavGraph) inject(p orb.Point, tri navmesh.Triangle) (int, error) {
	id := ng.AddNode(core.NewNavNode(core.NoLineIndex, p))
	for _, li := range tri.LineIndices {
		n := ng.NodeIDFromLineIndex(li)
		if n == core.InvalidNodeID {
			continue
		}
		if err := ng.AddConnection(core.Connection{From: id, To: n}); err != nil {
			return core.InvalidNodeID, fmt.Errorf("triangle %d line %d: %w", tri.Index, li, err)
		}
	}

	return id, nil
}
