// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side first: node i at origin + (0, i·spacing).
//   • Right side next: node j at origin + (spacing, j·spacing).
//   • Emits every cross pair L_i → R_j (i asc, then j asc); mirrored in
//     directed graphs.
//
// Complexity:
//   • Time: O(n1 + n2) nodes + O(n1·n2) connections.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		column := func(x float64, n int) []orb.Point {
			pts := make([]orb.Point, n)
			for i := range pts {
				pts[i] = orb.Point{cfg.origin[0] + x, cfg.origin[1] + float64(i)*cfg.spacing}
			}
			return pts
		}
		left := addNodes(g, column(0, n1))
		right := addNodes(g, column(cfg.spacing, n2))

		for _, u := range left {
			for _, v := range right {
				if err := connect(g, cfg, methodCompleteBipartite, u, v, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
