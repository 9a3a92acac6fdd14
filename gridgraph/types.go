// Package gridgraph defines core types, options, and sentinel errors
// for terrain grids.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrRegionIndex indicates a requested region index is out of range.
	ErrRegionIndex = errors.New("gridgraph: region index out of range")
	// ErrNoPath indicates no breach can join the two regions.
	ErrNoPath = errors.New("gridgraph: no path between specified regions")
	// ErrCellSize indicates a non-positive cell size.
	ErrCellSize = errors.New("gridgraph: cell size must be > 0")
)

// Common terrain values. Any positive value is a valid traversal cost;
// values <= 0 are walls.
const (
	TerrainWall   = 0
	TerrainGround = 1
	TerrainMud    = 2
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Cell represents a single grid cell with its coordinates and terrain value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Terrain value at (X, Y)
}

// GridOptions contains tunable parameters for terrain grids.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CellSize is the side length of a cell in world units.
	CellSize float64
	// ImpassableThreshold, when > 0, turns every cell with a value at or
	// above it into a wall.
	ImpassableThreshold int
}

// DefaultGridOptions returns Conn4, CellSize=1 and no impassable threshold.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:     Conn4,
		CellSize: 1,
	}
}

// GridGraph treats a 2D terrain grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the terrain value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height       int
	CellValues          [][]int
	Conn                Connectivity
	CellSize            float64
	ImpassableThreshold int
	neighborOffsets     [][2]int
}
