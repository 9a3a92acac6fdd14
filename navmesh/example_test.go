package navmesh_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/navmesh"
)

// ExampleNewMesh builds a square from two triangles and locates a point.
func ExampleNewMesh() {
	m, err := navmesh.NewMesh([][3]orb.Point{
		{{0, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 1}, {0, 1}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	t, _ := m.TriangleFromPosition(orb.Point{0.2, 0.8})
	fmt.Println(m.TriangleCount(), len(m.Lines()), t.Index)
	// Output: 2 5 1
}

// ExampleScene_Build turns a world with one inflated obstacle into a mesh.
func ExampleScene_Build() {
	sc := &navmesh.Scene{
		World:       navmesh.World{Width: 20, Height: 10},
		AgentRadius: 1,
		Obstacles: []navmesh.Obstacle{
			{Box: &navmesh.Box{Center: []float64{0, 0}, Width: 2, Height: 2}},
		},
	}
	m, err := sc.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	_, blocked := m.TriangleFromPosition(orb.Point{1.5, 0})
	_, open := m.TriangleFromPosition(orb.Point{5, 0})
	fmt.Println(!blocked, open)
	// Output: true true
}
