package matching

import (
	"math"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/core"
)

const (
	// unmatchedRight is the sentinel distance-map key standing for "any
	// unmatched right node". The empty string can never collide with a
	// real vertex: core rejects empty vertex IDs.
	unmatchedRight = ""

	// infinity marks left nodes not (or no longer) on a shortest
	// alternating path in the current phase.
	infinity = math.MaxInt
)

// HopcroftKarp computes a maximum-cardinality matching of the undirected
// bipartite graph g.
//
// WithTopNodes supplies the Left node set explicitly; without it the
// bipartition is inferred by two-coloring, which fails with
// bipartite.ErrAmbiguousBipartition on disconnected graphs.
//
// Phases repeat until exhausted:
//  1. BFS layering: multi-source BFS from all unmatched left nodes,
//     moving Left→Right along any edge and Right→Left only along matched
//     edges, assigning each left node its shortest alternating distance.
//     The phase succeeds when the unmatched-right sentinel stays
//     reachable.
//  2. DFS augmentation: from each unmatched left node, descend only along
//     steps that increase the distance label by exactly one; a left node
//     proven dead is relabeled infinity, pruning later searches in the
//     same phase. Reaching an unmatched right node flips the path.
//
// The result is deterministic: left nodes and neighbors are always
// scanned in lexicographic order.
//
// Returns ErrGraphNil, ErrDirectedGraph, ErrMultiGraph, ErrLoopsGraph, or
// a bipartite.Sets error. An empty graph yields an empty matching.
//
// Complexity:
//
//	Time:   O(E·√V) — the shortest augmenting-path length grows each
//	        phase, bounding phases by O(√V), and each phase's combined
//	        BFS+DFS cost is O(E).
//	Memory: O(V + E) for the distance map and adjacency snapshot.
func HopcroftKarp(g *core.Graph, opts ...Option) (Matching, error) {
	if err := checkShape(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	left, _, err := bipartite.Sets(g, o.TopNodes)
	if err != nil {
		return nil, err
	}

	// Sorted left order and a one-time adjacency snapshot keep every
	// phase allocation-free and deterministic.
	leftOrder := NodeSet(left).Sorted()
	adj := make(map[string][]string, len(leftOrder))
	for _, v := range leftOrder {
		nbrs, nerr := g.NeighborIDs(v)
		if nerr != nil {
			return nil, nerr
		}
		adj[v] = nbrs
	}

	leftMatch := make(map[string]string, len(leftOrder))
	rightMatch := make(map[string]string, len(leftOrder))
	dist := make(map[string]int, len(leftOrder)+1)
	queue := make([]string, 0, len(leftOrder))

	// bfs builds the layered distance labels for this phase and reports
	// whether some unmatched right node is reachable.
	bfs := func() bool {
		queue = queue[:0]
		for _, v := range leftOrder {
			if _, matched := leftMatch[v]; matched {
				dist[v] = infinity
			} else {
				dist[v] = 0
				queue = append(queue, v)
			}
		}
		dist[unmatchedRight] = infinity

		for i := 0; i < len(queue); i++ {
			v := queue[i]
			if dist[v] >= dist[unmatchedRight] {
				continue
			}
			for _, u := range adj[v] {
				// w is the left node matched to u, or the sentinel
				// when u is unmatched.
				w := rightMatch[u]
				if dist[w] == infinity {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
			}
		}

		return dist[unmatchedRight] != infinity
	}

	// dfs searches for an augmenting path from left node v, following
	// the distance labels, and flips the matching along it on success.
	var dfs func(v string) bool
	dfs = func(v string) bool {
		if v == unmatchedRight {
			return true
		}
		for _, u := range adj[v] {
			w := rightMatch[u]
			if dist[w] == dist[v]+1 && dfs(w) {
				rightMatch[u] = v
				leftMatch[v] = u

				return true
			}
		}
		// v leads nowhere this phase; prune it.
		dist[v] = infinity

		return false
	}

	for bfs() {
		for _, v := range leftOrder {
			if _, matched := leftMatch[v]; !matched {
				dfs(v)
			}
		}
	}

	m := make(Matching, 2*len(leftMatch))
	for v, u := range leftMatch {
		m[v] = u
		m[u] = v
	}

	return m, nil
}

// MaximumMatching computes a maximum-cardinality matching of g.
// It is an alias for HopcroftKarp.
func MaximumMatching(g *core.Graph, opts ...Option) (Matching, error) {
	return HopcroftKarp(g, opts...)
}
