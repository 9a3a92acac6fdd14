// Package navmesh holds triangulated navigation meshes: the walkable area
// as counter-clockwise triangles whose shared edges (lines) carry a common
// index.
//
// What:
//
//   - NewMesh: build from raw triangles; orientation is normalized and
//     identical edges are merged into one Line.
//   - NewMeshFromPolygon / Triangulate: ear clipping of a polygon with holes.
//   - Scene: YAML world description (rectangle, agent radius, boxes,
//     outlines, optional GeoJSON obstacles) turned into a Mesh by Build.
//     Obstacles are inflated by the agent radius (ExpandRing) so paths keep
//     clear of walls.
//   - Queries: TriangleFromPosition (R-tree backed), TrianglesFromLineIndex,
//     Line, Triangle, Bounds.
//
// A Mesh is immutable once built and safe for concurrent reads.
//
// Complexity:
//
//   - NewMesh:              O(T log T)
//   - Triangulate:          O(n²)
//   - TriangleFromPosition: O(log T) expected
//
// Example:
//
//	sc, err := navmesh.LoadSceneFile("arena.yaml")
//	if err != nil { ... }
//	m, err := sc.Build(navmesh.WithLogger(log))
//	tri, ok := m.TriangleFromPosition(orb.Point{3, 4})
package navmesh
