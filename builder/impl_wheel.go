// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub node.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the rim with Cycle(n-1) under the same cfg.
//   • The hub is inserted last, at the ring centre (cfg.origin).
//   • Emits spokes hub -> rim in rim order; mirrored in directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		before := g.NodeIDs()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		rim := newIDs(before, g.NodeIDs())

		hub := g.AddNode(core.NewNode(cfg.origin))
		for _, r := range rim {
			if err := connect(g, cfg, methodWheel, hub, r, true); err != nil {
				return err
			}
		}

		return nil
	}
}

// newIDs returns the ids present in after but not in before, in table order.
func newIDs(before, after []int) []int {
	seen := make(map[int]struct{}, len(before))
	for _, id := range before {
		seen[id] = struct{}{}
	}
	out := make([]int, 0, len(after)-len(before))
	for _, id := range after {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
