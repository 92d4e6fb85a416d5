// This file declares the Graph and Edge types, GraphOption, sentinel
// errors, and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a vertex was addressed with an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a read-only snapshot of a single edge as returned by Edges.
//
// For undirected graphs each edge appears once with From ≤ To.
type Edge struct {
	// From is the source endpoint (lexicographically smaller endpoint
	// when the edge is undirected).
	From string

	// To is the destination endpoint.
	To string

	// Weight is the edge weight; always 0 on unweighted graphs.
	Weight int64
}

// GraphOption configures capabilities of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets directedness for all edges (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph data structure.
//
// Vertices are identified by non-empty strings. Adjacency stores, for each
// ordered pair of endpoints, the weights of every parallel edge between
// them; undirected edges are mirrored into both directions so neighbor
// lookup is O(1) regardless of insertion order.
type Graph struct {
	mu sync.RWMutex

	// Capability flags, immutable after construction.
	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	// Storage. adjacency[from][to] lists the weights of all parallel
	// edges from→to; an undirected edge appears under both orderings.
	vertices  map[string]struct{}
	adjacency map[string]map[string][]int64
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, a Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string][]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
