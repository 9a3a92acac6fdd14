// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes allows the trivial K_1.
const MinCompleteNodes = 1

// MinPartitionSize is the smallest side of a complete bipartite graph.
const MinPartitionSize = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
const MinGridDim = 1

// MinRandomSparseNodes allows a single isolated node.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Layout defaults and probability bounds
//-----------------------------------------------------------------------------

// DefaultSpacing is the layout unit when WithSpacing is not given.
const DefaultSpacing = 10.0

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
