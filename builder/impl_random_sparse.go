// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible connection independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//   - Positions: with an RNG, uniform in the square [0, spacing·√n)² offset by
//     cfg.origin (all positions drawn before any connection trial). Without an
//     RNG (p ∈ {0,1}) nodes are laid out on a ring.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (undirected uses j>i).

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent connection probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Place nodes.
		var pts []orb.Point
		if rng != nil {
			side := cfg.spacing * math.Sqrt(float64(n))
			pts = make([]orb.Point, n)
			for i := range pts {
				pts[i] = orb.Point{
					cfg.origin[0] + rng.Float64()*side,
					cfg.origin[1] + rng.Float64()*side,
				}
			}
		} else {
			pts = ringLayout(cfg.origin, n, cfg.spacing)
		}
		ids := addNodes(g, pts)

		// 3) Bernoulli trials in a stable order.
		include := func() bool {
			if rng == nil {
				return p == 1.0
			}
			return rng.Float64() < p
		}
		loops := g.Looped()

		if g.Directed() {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == j && !loops {
						continue
					}
					if !include() {
						continue
					}
					if err := connect(g, cfg, methodRandomSparse, ids[i], ids[j], false); err != nil {
						return err
					}
				}
			}

			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include() {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
