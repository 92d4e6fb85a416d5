// Package matching implements maximum-cardinality bipartite matching and
// its classical derivatives on graphs represented by *core.Graph.
//
// The entry points are:
//
//   - HopcroftKarp / MaximumMatching
//
//   - Method: phased layered BFS + distance-guided DFS augmentation.
//
//   - Time:   O(E·√V); Memory: O(V+E).
//
//   - Returns the matching as a symmetric node→node map.
//
//   - AlternatingReachable
//
//   - Method: per-node depth-first search with alternating edge parity,
//     run once per starting parity.
//
//   - Computes the node set connected to a target set by paths whose
//     edges alternate between matched and unmatched.
//
//   - ToVertexCover
//
//   - Method: König's constructive proof — alternating reachability from
//     the unmatched left nodes.
//
//   - Produces a minimum vertex cover whose size equals the maximum
//     matching's cardinality.
//
//   - EnvyFreePartition / MaximumEnvyFreeMatching /
//     MinimumWeightEnvyFreeMatching
//
//   - Method: alternating-sequence construction of the unique envy-free
//     partition into good/bad regions; envy-free matchings are maximum
//     matchings restricted to (or re-optimized inside) the good region.
//
//   - MinimumWeightFullMatching
//
//   - Method: ∞-padded biadjacency cost matrix handed to the
//     assignment package's rectangular linear-sum-assignment solver.
//
// # Graph support
//
// All operations require a simple undirected graph: capability flags for
// directed edges, multi-edges or self-loops are rejected up front with
// ErrDirectedGraph, ErrMultiGraph or ErrLoopsGraph. Weighted graphs are
// accepted everywhere; only the minimum-weight routines read the weights.
//
// Every operation takes the Left node set either explicitly via
// WithTopNodes or infers it by two-coloring (bipartite.Sets). Inference
// on a disconnected graph fails with bipartite.ErrAmbiguousBipartition —
// supply the hint instead.
//
// # Matchings at the boundary
//
// A Matching maps each matched node to its partner in both directions.
// Operations accepting a precomputed matching (ToVertexCover,
// EnvyFreePartition via WithMatching) validate well-formedness — node
// membership, symmetry, edge existence — but NOT maximality: feeding a
// non-maximum matching where a maximum one is required yields a
// meaningless result without crashing. That trade-off is deliberate;
// verifying maximality would cost as much as recomputing the matching.
//
// All results are deterministic: vertex and neighbor iteration follows
// core's sorted order, so equal inputs yield equal outputs.
package matching
