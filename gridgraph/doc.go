// Package gridgraph treats a 2D terrain grid as a graph, for tile-based
// pathfinding and map analysis.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of terrain values.
//     Positive values are traversal costs (TerrainGround, TerrainMud, ...);
//     values <= 0, and values at or above ImpassableThreshold when set, are
//     walls.
//   - ToCoreGraph: one node per cell at the cell centre, connections between
//     passable neighbors costing the larger terrain value of the two cells.
//     Node ids are row-major (NodeID, Cell), so any core algorithm (astar,
//     dijkstra, bfs) runs on the result directly.
//   - Regions: contiguous walkable areas.
//   - Breach: fewest wall cells to clear to join two regions (0-1 BFS).
//
// Complexity:
//
//   - ToCoreGraph: O(W×H×d + E), Memory: O(W×H + E)   (d = 4 or 8).
//   - Regions:     O(W×H×d), Memory: O(W×H).
//   - Breach:      O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.CellSize: world size of a cell (node positions).
//   - GridOptions.ImpassableThreshold: terrain value from which cells block.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellSize: CellSize <= 0.
//   - ErrRegionIndex: requested region index out of range.
//   - ErrNoPath: the regions cannot be joined.
package gridgraph
