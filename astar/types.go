package astar

import (
	"errors"
	"math"
)

// Sentinel errors for A* queries.
var (
	// ErrGraphNil is returned when the searcher was built over a nil graph.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrStartNotFound is returned when the start id is not a live node.
	ErrStartNotFound = errors.New("astar: start node not found")

	// ErrGoalNotFound is returned when the goal id is not a live node.
	ErrGoalNotFound = errors.New("astar: goal node not found")
)

// Heuristic estimates the remaining cost from the absolute axis offsets
// between a node and the goal. It must never overestimate the true cost
// for FindPath to return optimal paths.
type Heuristic func(dx, dy float64) float64

// Manhattan returns dx + dy. Admissible on 4-connected unit grids.
func Manhattan(dx, dy float64) float64 {
	return dx + dy
}

// Euclidean returns the straight-line distance. Admissible whenever
// connection costs are at least the distance between endpoints.
func Euclidean(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// SqrtEuclidean returns the squared distance. It skips the square root and
// overestimates, trading optimality for fewer expansions.
func SqrtEuclidean(dx, dy float64) float64 {
	return dx*dx + dy*dy
}

// Octile returns the 8-connected grid distance with diagonal cost √2.
func Octile(dx, dy float64) float64 {
	const f = 1.0
	return f*(dx+dy) + (math.Sqrt2-2*f)*math.Min(dx, dy)
}

// Chebyshev returns max(dx, dy).
func Chebyshev(dx, dy float64) float64 {
	return math.Max(dx, dy)
}

// Zero always returns 0, reducing A* to Dijkstra.
func Zero(_, _ float64) float64 {
	return 0
}
