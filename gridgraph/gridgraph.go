package gridgraph

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrCellSize for CellSize <= 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.CellSize <= 0 {
		return nil, ErrCellSize
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:               w,
		Height:              h,
		CellValues:          cells,
		Conn:                opts.Conn,
		CellSize:            opts.CellSize,
		ImpassableThreshold: opts.ImpassableThreshold,
		neighborOffsets:     offsets,
	}, nil
}

// From2D builds a GridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	v := gg.CellValues[y][x]
	if v <= TerrainWall {
		return false
	}

	return gg.ImpassableThreshold <= 0 || v < gg.ImpassableThreshold
}

// NodeID returns the core node id of cell (x,y), or core.InvalidNodeID
// when out of bounds. Ids are row-major: y*Width + x.
func (gg *GridGraph) NodeID(x, y int) int {
	if !gg.InBounds(x, y) {
		return core.InvalidNodeID
	}

	return gg.index(x, y)
}

// Cell returns the cell behind node id.
func (gg *GridGraph) Cell(id int) (Cell, bool) {
	if id < 0 || id >= gg.Width*gg.Height {
		return Cell{}, false
	}
	x, y := gg.Coordinate(id)

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, true
}

// CellCenter returns the world position of the centre of cell (x,y).
// The grid's origin corner sits at (0,0).
func (gg *GridGraph) CellCenter(x, y int) orb.Point {
	return orb.Point{(float64(x) + 0.5) * gg.CellSize, (float64(y) + 0.5) * gg.CellSize}
}

// ToCoreGraph converts the grid into an undirected *core.Graph.
// Every cell becomes a node at its centre, with id NodeID(x,y). Neighboring
// passable cells are connected; the cost is the larger terrain value of the
// two cells, diagonals included. Walls keep their node but get no connection.
// A connection rejected by core is returned wrapped with its cells.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g.AddNode(core.NewNode(gg.CellCenter(x, y)))
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				v := gg.index(nx, ny)
				if v < u {
					// Added from the other side; the mirror covers it.
					continue
				}
				conn := core.Connection{From: u, To: v, Cost: float64(gg.terrainCost(u, v))}
				if err := g.AddConnection(conn); err != nil {
					return nil, fmt.Errorf("gridgraph: ToCoreGraph: (%d,%d)-(%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	return g, nil
}

// terrainCost is the larger terrain value of cells u and v.
func (gg *GridGraph) terrainCost(u, v int) int {
	ux, uy := gg.Coordinate(u)
	vx, vy := gg.Coordinate(v)

	return max(gg.CellValues[uy][ux], gg.CellValues[vy][vx])
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
