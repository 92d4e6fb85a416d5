// Package core defines the in-memory Graph type shared by every algorithm
// package in bimatch, together with its capability flags and sentinel errors.
//
// A Graph is a set of string-identified vertices plus a set of edges.
// Construction-time options fix its capabilities:
//
//	– WithDirected(true)  : edges are one-way (matching algorithms reject this).
//	– WithWeighted()      : edges may carry non-zero int64 weights.
//	– WithLoops()         : self-loops permitted.
//	– WithMultiEdges()    : parallel edges permitted.
//
// By default a Graph is undirected, unweighted, loop-free and simple — the
// exact shape the bipartite matching stack requires. Algorithm packages use
// the capability getters (Directed, Weighted, Looped, Multigraph) to reject
// unsupported graph shapes before any computation starts.
//
// All iteration orders exposed by this package (Vertices, NeighborIDs,
// Edges) are sorted lexicographically, so every algorithm built on top of
// core is deterministic for a fixed input graph.
//
// Reads and writes are guarded by a single RWMutex; concurrent readers never
// block each other. Mutating a Graph while an algorithm reads it is the
// caller's responsibility to avoid.
//
// # Errors
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
