// Package bipartite provides bipartition inference for core.Graph:
// two-coloring, a bipartiteness predicate, and Sets, which splits a graph
// into its two independent vertex sets.
//
// A graph is bipartite when its vertices can be two-colored so that every
// edge joins differently colored endpoints. Sets either accepts the left
// set explicitly (the caller knows the partition) or infers it by
// two-coloring from the lexicographically smallest vertex of the graph.
//
// Inference is only well-defined on connected graphs: each connected
// component of a disconnected graph could independently land on either
// side, so Sets fails with ErrAmbiguousBipartition unless the left set is
// supplied. This mirrors the contract the matching package relies on.
//
// # Errors
//
//	ErrGraphNil             - nil graph pointer.
//	ErrDirectedGraph        - directed graphs are not supported.
//	ErrNotBipartite         - an odd cycle exists, or a supplied left set
//	                          leaves an edge with both endpoints on one side.
//	ErrAmbiguousBipartition - disconnected graph and no explicit left set.
//	ErrNodeNotFound         - a supplied left node is absent from the graph.
package bipartite
