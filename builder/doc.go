// Package builder provides reusable "functional-options"-style fixture
// constructors for positioned graphs. Tests, benchmarks and examples across
// lvnav use it to assemble deterministic topologies with coordinates, so that
// geometric heuristics have something meaningful to work with.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...) creates a graph and applies constructors.
//     – Apply(g, bopts, cons...) applies constructors to an existing graph.
//   - Topologies (Constructor):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand:  RNG for RandomSparse and random costs.
//     – WithCostFn:           connection cost policy (default DistanceCostFn).
//     – WithSpacing:          layout unit.
//     – WithOrigin:           layout anchor.
//   - Cost distributions (CostFn):
//     – DistanceCostFn, ConstantCostFn, UniformCostFn, ScaledDistanceCostFn.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
//   - Determinism: same seed, options and constructor order give identical graphs.
package builder
