// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is inserted first, at cfg.origin; the n-1 leaves follow on a
//     circle of radius spacing.
//   • Emits hub -> leaf in leaf order; mirrored in directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := g.AddNode(core.NewNode(cfg.origin))
		leaves := addNodes(g, circleLayout(cfg.origin, n-1, cfg.spacing))

		for _, leaf := range leaves {
			if err := connect(g, cfg, methodStar, hub, leaf, true); err != nil {
				return err
			}
		}

		return nil
	}
}
