package funnel

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/navmesh"
)

// Portal is an edge the path must pass through, seen from the direction of
// travel.
type Portal struct {
	Left  orb.Point
	Right orb.Point
}

// SSFA is the simple stupid funnel smoother.
type SSFA struct{}

// FindPortals implements the navgraph smoother contract; see FindPortals.
func (SSFA) FindPortals(path []core.Node, mesh *navmesh.Mesh) []Portal {
	return FindPortals(path, mesh)
}

// OptimizePortals implements the navgraph smoother contract; see OptimizePortals.
func (SSFA) OptimizePortals(portals []Portal) []orb.Point {
	return OptimizePortals(portals)
}
