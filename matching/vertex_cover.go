package matching

import (
	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/core"
)

// ToVertexCover derives a minimum vertex cover from a maximum matching m
// of the undirected bipartite graph g, via the constructive proof of
// König's theorem: with U the unmatched left nodes and Z the set of nodes
// alternating-reachable from U, the cover is (Left − Z) ∪ (Right ∩ Z).
// Its size equals m.Len(), which certifies minimality.
//
// Precondition: m must be a MAXIMUM matching of g. This is not verified —
// a non-maximum matching produces a meaningless (but crash-free) result.
//
// Returns the shape errors of HopcroftKarp, Validate errors for a
// malformed matching, or a bipartite.Sets error.
// Complexity: O(V·(V+E)), dominated by the reachability sweep.
func ToVertexCover(g *core.Graph, m Matching, opts ...Option) (NodeSet, error) {
	if err := checkShape(g); err != nil {
		return nil, err
	}
	if err := Validate(g, m); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	left, right, err := bipartite.Sets(g, o.TopNodes)
	if err != nil {
		return nil, err
	}

	// U: unmatched left nodes.
	unmatched := make(NodeSet)
	for v := range left {
		if _, ok := m[v]; !ok {
			unmatched[v] = struct{}{}
		}
	}

	// Z: nodes connected to U by alternating paths (U included).
	reached := alternatingReachable(g, m, unmatched)

	cover := make(NodeSet)
	for v := range left {
		if !reached.Contains(v) {
			cover[v] = struct{}{}
		}
	}
	for v := range right {
		if reached.Contains(v) {
			cover[v] = struct{}{}
		}
	}

	return cover, nil
}
