package bipartite

import "errors"

// Sentinel errors for bipartition operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bipartite: graph is nil")

	// ErrDirectedGraph is returned when a directed graph is passed;
	// bipartition is defined here for undirected graphs only.
	ErrDirectedGraph = errors.New("bipartite: directed graphs not supported")

	// ErrNotBipartite is returned when no valid two-coloring exists, or a
	// supplied left set fails to split every edge.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")

	// ErrAmbiguousBipartition is returned when the graph is disconnected
	// and no explicit left set was supplied: each component could be
	// assigned to either side, so the bipartition is not unique.
	ErrAmbiguousBipartition = errors.New("bipartite: ambiguous bipartition for disconnected graph")

	// ErrNodeNotFound is returned when a supplied left node does not
	// exist in the graph.
	ErrNodeNotFound = errors.New("bipartite: node not found in graph")
)
