// Package core defines the central Graph, Node, Connection and Handle types,
// and provides the primitives for building, querying, and cloning graphs.
//
// This file declares the node kinds, Node, Connection, Handle, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound      - an id does not refer to a live node.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrConnectionExists  - parallel connection when multi-connections are disabled.
package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an invalid or removed node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrConnectionExists indicates a parallel connection was attempted when
	// multi-connections are disabled.
	ErrConnectionExists = errors.New("core: connection already exists")
)

const (
	// InvalidNodeID is returned by lookups that found no node.
	InvalidNodeID = -1

	// NoLineIndex tags nav nodes that do not represent a navmesh line
	// (e.g. the start and goal nodes injected by a pathfinding query).
	NoLineIndex = -1

	// DefaultNodeRadius is the hit radius used by NodeAtPosition before the
	// caller's margin is applied.
	DefaultNodeRadius = 3.0
)

// NodeKind tags the variant carried by a Node.
type NodeKind int

const (
	// KindPlain is a positioned graph node without extra data.
	KindPlain NodeKind = iota
	// KindNav is a navmesh node; LineIndex refers to the mesh line it represents.
	KindNav
)

// String returns a readable kind name.
func (k NodeKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindNav:
		return "nav"
	default:
		return "unknown"
	}
}

// Node is a positioned vertex owned by a Graph.
//
// ID is assigned by Graph.AddNode and is stable until the node is removed.
// LineIndex is only meaningful when Kind == KindNav.
type Node struct {
	ID        int
	Position  orb.Point
	Kind      NodeKind
	LineIndex int
}

// NewNode returns a plain node at pos. The id is assigned on insertion.
func NewNode(pos orb.Point) Node {
	return Node{ID: InvalidNodeID, Position: pos, Kind: KindPlain, LineIndex: NoLineIndex}
}

// NewNavNode returns a nav node at pos tagged with the given mesh line index.
// Pass NoLineIndex for synthetic nodes.
func NewNavNode(lineIndex int, pos orb.Point) Node {
	return Node{ID: InvalidNodeID, Position: pos, Kind: KindNav, LineIndex: lineIndex}
}

// Connection is a weighted directed edge between two node ids.
type Connection struct {
	From int
	To   int
	Cost float64
}

// Handle identifies a node slot at a specific generation. A handle taken
// before a node was removed never resolves to a node later stored in the
// same recycled slot.
type Handle struct {
	ID         int
	Generation uint32
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether connections are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (connections from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiConnections permits parallel connections between the same nodes.
func WithMultiConnections() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// slot holds one entry of the sparse node table.
// A slot with live == false is a tombstone; its id is free for reuse.
type slot struct {
	node  Node
	live  bool
	gen   uint32
	conns []Connection
}

// Graph is the core in-memory graph data structure.
//
// Nodes live in a sparse table indexed by id; removed nodes leave a
// tombstone so other ids never shift. Each slot owns the outgoing
// connections of its node. active caches live ids in table order.
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	// Configuration flags
	directed   bool
	allowLoops bool
	allowMulti bool

	// Storage
	slots     []slot
	active    []int
	nextID    int
	connCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-connections.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether connections are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// MultiConnections reports whether parallel connections are permitted.
func (g *Graph) MultiConnections() bool {
	return g.allowMulti
}
