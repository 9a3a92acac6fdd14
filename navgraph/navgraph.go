// File: navgraph.go
// Role: Graph over a navigation mesh: one node per interior mesh line.
// Construction:
//  1. A node is placed at the midpoint of every line bordering two triangles.
//  2. Nodes whose lines bound the same triangle are connected
//     (three lines: pairwise, two lines: the pair).
//  3. Connection costs are the Euclidean distances between midpoints.

package navgraph

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/navmesh"
)

// NavGraph is an undirected graph of mesh line midpoints. The embedded
// Graph may be inspected freely; the mesh is shared and read-only.
type NavGraph struct {
	*core.Graph

	mesh       *navmesh.Mesh
	lineToNode map[int]int
}

// New builds the NavGraph of mesh. Honors WithContext and WithLogger.
// Complexity: O(L + T).
func New(mesh *navmesh.Mesh, opts ...Option) (*NavGraph, error) {
	o := newOptions(opts...)
	if mesh == nil {
		return nil, ErrMeshNil
	}

	ctx, span := startBuildSpan(o.ctx, mesh.TriangleCount())
	defer span.End()
	began := time.Now()

	ng := &NavGraph{
		Graph:      core.NewGraph(),
		mesh:       mesh,
		lineToNode: make(map[int]int),
	}
	for _, l := range mesh.Lines() {
		if len(mesh.TrianglesFromLineIndex(l.Index)) < 2 {
			continue
		}
		ng.lineToNode[l.Index] = ng.AddNode(core.NewNavNode(l.Index, l.Center()))
	}

	for _, t := range mesh.Triangles() {
		ids := make([]int, 0, 3)
		for _, li := range t.LineIndices {
			if id := ng.NodeIDFromLineIndex(li); id != core.InvalidNodeID {
				ids = append(ids, id)
			}
		}

		var pairs [][2]int
		switch len(ids) {
		case 3:
			pairs = [][2]int{{ids[0], ids[1]}, {ids[1], ids[2]}, {ids[2], ids[0]}}
		case 2:
			pairs = [][2]int{{ids[0], ids[1]}}
		}
		for _, p := range pairs {
			err := ng.AddConnection(core.Connection{From: p[0], To: p[1]})
			if err != nil && !errors.Is(err, core.ErrConnectionExists) {
				recordBuildMetrics(ctx, time.Since(began), 0, 0, false)
				return nil, fmt.Errorf("navgraph: triangle %d: %w", t.Index, err)
			}
		}
	}
	ng.SetConnectionCostsToDistances()

	setBuildSpanResult(span, ng.NodeCount(), ng.ConnectionCount())
	recordBuildMetrics(ctx, time.Since(began), ng.NodeCount(), ng.ConnectionCount(), true)
	o.log.WithFields(logrus.Fields{
		"triangles":   mesh.TriangleCount(),
		"nodes":       ng.NodeCount(),
		"connections": ng.ConnectionCount(),
	}).Debug("navgraph: built")

	return ng, nil
}

// FromScene builds the scene's mesh and its NavGraph in one step.
func FromScene(sc *navmesh.Scene, opts ...Option) (*NavGraph, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scene", navmesh.ErrInvalidScene)
	}
	o := newOptions(opts...)
	mesh, err := sc.Build(navmesh.WithLogger(o.log))
	if err != nil {
		return nil, err
	}

	return New(mesh, opts...)
}

// NodeIDFromLineIndex returns the node standing for mesh line idx, or
// core.InvalidNodeID for boundary lines, unknown indices and line nodes
// removed from the graph since construction.
func (ng *NavGraph) NodeIDFromLineIndex(idx int) int {
	id, ok := ng.lineToNode[idx]
	if !ok {
		return core.InvalidNodeID
	}
	// The id may have been recycled by an unrelated node.
	n, ok := ng.Node(id)
	if !ok || n.Kind != core.KindNav || n.LineIndex != idx {
		return core.InvalidNodeID
	}

	return id
}

// Mesh returns the underlying navigation mesh.
func (ng *NavGraph) Mesh() *navmesh.Mesh {
	return ng.mesh
}

// Clone returns an independent copy of the graph sharing the same mesh.
func (ng *NavGraph) Clone() *NavGraph {
	lines := make(map[int]int, len(ng.lineToNode))
	for k, v := range ng.lineToNode {
		lines[k] = v
	}

	return &NavGraph{Graph: ng.Graph.Clone(), mesh: ng.mesh, lineToNode: lines}
}
