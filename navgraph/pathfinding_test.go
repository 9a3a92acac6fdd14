package navgraph_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/funnel"
	"github.com/katalvlaran/lvnav/navgraph"
	"github.com/katalvlaran/lvnav/navmesh"
)

func TestFindPath_SameTriangle(t *testing.T) {
	ng := mustNavGraph(t, mustMesh(t, unitSquare))
	start, goal := orb.Point{0.7, 0.2}, orb.Point{0.9, 0.5}

	res, err := navgraph.NewPathfinder().FindPathDebug(context.Background(), start, goal, ng)
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{start, goal}, res.Path)
	assert.Empty(t, res.Portals)
	assert.Equal(t, 1, ng.NodeCount(), "the shared graph is never modified")
}

func TestFindPath_UnitSquare(t *testing.T) {
	ng := mustNavGraph(t, mustMesh(t, unitSquare))
	start, goal := orb.Point{0.2, 0.8}, orb.Point{0.8, 0.2}

	res, err := navgraph.NewPathfinder().FindPathDebug(context.Background(), start, goal, ng)
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{start, {0.5, 0.5}, goal}, res.NodePositions)
	assert.Equal(t, []orb.Point{start, goal}, res.Path)
	require.Len(t, res.Portals, 3)
	assert.Equal(t, funnel.Portal{Left: orb.Point{1, 1}, Right: orb.Point{0, 0}}, res.Portals[1])

	assert.Equal(t, 1, ng.NodeCount())
	assert.Equal(t, 0, ng.ConnectionCount())
}

func TestFindPath_BendsAroundCorner(t *testing.T) {
	ng := mustNavGraph(t, mustMesh(t, lCorridor))
	start, goal := orb.Point{0.2, 0.8}, orb.Point{1.2, 1.8}

	res, err := navgraph.NewPathfinder().FindPathDebug(context.Background(), start, goal, ng)
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{start, {0.5, 0.5}, {1, 0.5}, {1.5, 1}, {1.5, 1.5}, goal}, res.NodePositions)
	assert.Equal(t, []orb.Point{start, {1, 1}, goal}, res.Path)

	path, err := navgraph.FindPath(start, goal, ng)
	require.NoError(t, err)
	assert.Equal(t, res.Path, path)
}

func TestFindPath_OutsideNavMesh(t *testing.T) {
	ng := mustNavGraph(t, mustMesh(t, unitSquare))
	pf := navgraph.NewPathfinder()
	ctx := context.Background()

	_, err := pf.FindPath(ctx, orb.Point{5, 5}, orb.Point{0.5, 0.5}, ng)
	require.ErrorIs(t, err, navgraph.ErrOutsideNavMesh)
	assert.Contains(t, err.Error(), "start")

	_, err = pf.FindPath(ctx, orb.Point{0.5, 0.5}, orb.Point{-1, 0}, ng)
	require.ErrorIs(t, err, navgraph.ErrOutsideNavMesh)
	assert.Contains(t, err.Error(), "goal")

	_, err = pf.FindPath(ctx, orb.Point{}, orb.Point{}, nil)
	assert.ErrorIs(t, err, navgraph.ErrNavGraphNil)
}

func TestFindPath_NoPathIsEmptyNotError(t *testing.T) {
	islands := append([][3]orb.Point{}, unitSquare...)
	islands = append(islands,
		[3]orb.Point{{3, 0}, {4, 0}, {4, 1}},
		[3]orb.Point{{3, 0}, {4, 1}, {3, 1}},
	)
	ng := mustNavGraph(t, mustMesh(t, islands))

	path, err := navgraph.FindPath(orb.Point{0.2, 0.8}, orb.Point{3.8, 0.2}, ng)
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)
}

func TestFindPath_RemovedLineNodeBlocksPortal(t *testing.T) {
	ng := mustNavGraph(t, mustMesh(t, unitSquare))
	shared := ng.Nodes()[0]
	require.Equal(t, shared.ID, ng.NodeIDFromLineIndex(shared.LineIndex))

	ng.RemoveNode(shared.ID)
	assert.Equal(t, core.InvalidNodeID, ng.NodeIDFromLineIndex(shared.LineIndex))

	// The injected start recycles the removed id inside the working clone;
	// it must not be taken for the line node.
	res, err := navgraph.NewPathfinder().FindPathDebug(context.Background(), orb.Point{0.2, 0.8}, orb.Point{0.8, 0.2}, ng)
	require.NoError(t, err)
	assert.Empty(t, res.Path)

	// An unrelated node reusing the slot is not a line node either.
	ng.AddNode(core.NewNode(orb.Point{0.5, 0.5}))
	assert.Equal(t, core.InvalidNodeID, ng.NodeIDFromLineIndex(shared.LineIndex))
	path, err := navgraph.FindPath(orb.Point{0.2, 0.8}, orb.Point{0.8, 0.2}, ng)
	require.NoError(t, err)
	assert.Empty(t, path)
}

// recorder is a Smoother returning the raw node positions.
type recorder struct {
	calls int
}

func (r *recorder) FindPortals(path []core.Node, _ *navmesh.Mesh) []funnel.Portal {
	r.calls++
	out := make([]funnel.Portal, len(path))
	for i, n := range path {
		out[i] = funnel.Portal{Left: n.Position, Right: n.Position}
	}

	return out
}

func (r *recorder) OptimizePortals(portals []funnel.Portal) []orb.Point {
	out := make([]orb.Point, len(portals))
	for i, p := range portals {
		out[i] = p.Left
	}

	return out
}

func TestPathfinder_Options(t *testing.T) {
	ng := mustNavGraph(t, mustMesh(t, lCorridor))
	start, goal := orb.Point{0.2, 0.8}, orb.Point{1.2, 1.8}

	rec := &recorder{}
	pf := navgraph.NewPathfinder(navgraph.WithSmoother(rec), navgraph.WithHeuristic(astar.Zero))
	path, err := pf.FindPath(context.Background(), start, goal, ng)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, []orb.Point{start, {0.5, 0.5}, {1, 0.5}, {1.5, 1}, {1.5, 1.5}, goal}, path)
}

func TestFindPath_SceneEndToEnd(t *testing.T) {
	sc, err := navmesh.LoadSceneFile("../navmesh/testdata/scene.yaml")
	require.NoError(t, err)
	ng, err := navgraph.FromScene(sc)
	require.NoError(t, err)
	m := ng.Mesh()

	start, goal := orb.Point{-55, -25}, orb.Point{55, 25}
	res, err := navgraph.NewPathfinder().FindPathDebug(context.Background(), start, goal, ng)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Path), 2)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])

	length := func(pts []orb.Point) float64 {
		return planar.Length(orb.LineString(pts))
	}
	assert.LessOrEqual(t, length(res.Path), length(res.NodePositions)+1e-9,
		"smoothing never lengthens the path")

	// Every segment stays on the mesh.
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		for k := 1; k < 10; k++ {
			f := float64(k) / 10
			p := orb.Point{a[0] + (b[0]-a[0])*f, a[1] + (b[1]-a[1])*f}
			_, ok := m.TriangleFromPosition(p)
			assert.Truef(t, ok, "segment %d leaves the mesh at %v", i, p)
		}
	}
}
