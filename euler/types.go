package euler

import (
	"math/rand"
)

// Eulerianity classifies whether a graph admits an Eulerian circuit or trail.
type Eulerianity int

const (
	// NotEulerian: disconnected, empty, or more than two odd-degree nodes.
	NotEulerian Eulerianity = iota
	// SemiEulerian: connected, more than two nodes, exactly two of them of
	// odd degree; a trail exists between them.
	SemiEulerian
	// Eulerian: connected with no odd-degree node, or a connected two-node
	// graph; a circuit exists from any node.
	Eulerian
)

// String returns a readable classification.
func (e Eulerianity) String() string {
	switch e {
	case NotEulerian:
		return "not eulerian"
	case SemiEulerian:
		return "semi-eulerian"
	case Eulerian:
		return "eulerian"
	default:
		return "unknown"
	}
}

// RandSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// defaultSeed is used when no random source is configured, keeping
// trails reproducible by default.
const defaultSeed int64 = 1

// Option configures an EulerianPath.
type Option func(*EulerianPath)

// WithRand sets the random source used for start-node and connection
// selection. Panics if r is nil.
func WithRand(r RandSource) Option {
	if r == nil {
		panic("euler: WithRand(nil)")
	}

	return func(e *EulerianPath) { e.rnd = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
// Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}

	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDirectedConsumption makes the walk delete only the traversed
// direction of a connection. On undirected graphs each edge is then walked
// once in each direction. Without it an undirected edge is consumed
// together with its mirror and appears once in the trail.
func WithDirectedConsumption() Option {
	return func(e *EulerianPath) { e.directedConsumption = true }
}
