// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Nodes on a ring (neighbor distance = spacing) around cfg.origin.
//   • Emits every unordered pair (i<j) in lexicographic order; mirrored in
//     directed graphs.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := addNodes(g, ringLayout(cfg.origin, n, cfg.spacing))

		return connectAllPairs(g, cfg, methodComplete, ids)
	}
}
