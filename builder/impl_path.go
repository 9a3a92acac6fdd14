// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node i sits at origin + (i·spacing, 0).
//   • Emits i -> i+1 for i=0..n-2; directed graphs get a one-way chain.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = orb.Point{cfg.origin[0] + float64(i)*cfg.spacing, cfg.origin[1]}
		}
		ids := addNodes(g, pts)

		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, ids[i], ids[i+1], false); err != nil {
				return err
			}
		}

		return nil
	}
}
