// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal lattice with 4-neighborhood (right & bottom neighbors per cell).
//   • Nodes are inserted row-major; cell (r,c) sits at origin + (c·spacing, r·spacing).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom if present; mirrored in directed graphs.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) connections.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		pts := make([]orb.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, orb.Point{
					cfg.origin[0] + float64(c)*cfg.spacing,
					cfg.origin[1] + float64(r)*cfg.spacing,
				})
			}
		}
		ids := addNodes(g, pts)
		at := func(r, c int) int { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, at(r, c), at(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, at(r, c), at(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
