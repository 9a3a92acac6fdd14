// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n nodes on a ring (neighbor distance = spacing) around cfg.origin.
//   • Emits connections in stable order i -> (i+1)%n for i=0..n-1.
//     Directed graphs get exactly one arc per step (a directed ring).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n) connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		ids := addNodes(g, ringLayout(cfg.origin, n, cfg.spacing))

		// Close the ring with i = n-1 → 0.
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
