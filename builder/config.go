// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil               (pure/deterministic unless seeded)
//   • costFn  = DistanceCostFn    (cost equals Euclidean length)
//   • spacing = DefaultSpacing
//   • origin  = (0,0)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cost generator for connections.
	costFn CostFn
	// Distance unit of every layout (ring side, grid pitch, path step).
	spacing float64
	// Anchor of every layout.
	origin orb.Point
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		costFn:  DistanceCostFn,
		spacing: DefaultSpacing,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
