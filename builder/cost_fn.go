// Package builder provides internal helper functions and types
// for configuring connection-cost distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// CostFn produces a connection cost from the endpoint positions and an
// optional *rand.Rand source. It must be deterministic for a given RNG seed.
type CostFn func(from, to orb.Point, rng *rand.Rand) float64

// DistanceCostFn returns the Euclidean distance between the endpoints.
// Every distance-based A* heuristic is admissible on graphs built with it.
func DistanceCostFn(from, to orb.Point, _ *rand.Rand) float64 {
	return planar.Distance(from, to)
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value < 0.
func ConstantCostFn(value float64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %g", value))
	}

	return func(_, _ orb.Point, _ *rand.Rand) float64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. If rng is nil, yields min.
func UniformCostFn(min, max float64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(_, _ orb.Point, rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ScaledDistanceCostFn returns a CostFn yielding distance*k with k drawn
// uniformly from [minFactor, maxFactor). With minFactor ≥ 1 the costs never
// undercut straight-line distance. Panics if minFactor <= 0 or maxFactor < minFactor.
// If rng is nil, yields distance*minFactor.
func ScaledDistanceCostFn(minFactor, maxFactor float64) CostFn {
	if minFactor <= 0 || maxFactor < minFactor {
		panic(fmt.Sprintf("ScaledDistanceCostFn: require 0 < min ≤ max, got min=%g, max=%g", minFactor, maxFactor))
	}

	return func(from, to orb.Point, rng *rand.Rand) float64 {
		d := planar.Distance(from, to)
		if rng == nil || maxFactor == minFactor {
			return d * minFactor
		}

		return d * (minFactor + rng.Float64()*(maxFactor-minFactor))
	}
}

// WithConstantCost sets a fixed connection cost via ConstantCostFn.
func WithConstantCost(c float64) BuilderOption {
	return WithCostFn(ConstantCostFn(c))
}

// WithUniformCost sets costs ∼ U[min,max) via UniformCostFn.
func WithUniformCost(min, max float64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithScaledDistanceCost sets costs to distance scaled by U[min,max).
func WithScaledDistanceCost(minFactor, maxFactor float64) BuilderOption {
	return WithCostFn(ScaledDistanceCostFn(minFactor, maxFactor))
}
