// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Every node receives a position from a documented layout; costs come from cfg.costFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multi-connections).
//   - Preserve determinism for the same config and call order.
//
// Node ids are whatever core.Graph.AddNode assigns; composing several
// constructors on one graph therefore yields consecutive id ranges.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph g.
// It is the in-place counterpart of BuildGraph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes in a stable order with positions from its layout.
//   - Emit connections in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Cycle builds an n-node simple cycle C_n (n ≥ 3) on a circle.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2) along the x axis.
//func Path(n int) Constructor

// Star builds a hub plus n-1 leaves on a circle (n ≥ 2).
//func Star(n int) Constructor

// Wheel builds W_n = C_{n-1} + hub (n ≥ 4).
//func Wheel(n int) Constructor

// Complete builds K_n (n ≥ 1) on a circle.
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2} in two columns.
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds an R×C 4-neighborhood lattice (row-major ids).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse graph with random positions.
//func RandomSparse(n int, p float64) Constructor
