package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Validate checks that m is a well-formed matching over g: every
// referenced node exists, the mapping is symmetric, and every matched
// pair is joined by an edge. It does NOT check maximality — operations
// requiring a maximum matching document that as a caller precondition.
//
// Returns ErrGraphNil, ErrMatchingNode, ErrAsymmetricMatching or
// ErrMatchingEdge.
// Complexity: O(|m|).
func Validate(g *core.Graph, m Matching) error {
	if g == nil {
		return ErrGraphNil
	}
	for u, v := range m {
		if !g.HasVertex(u) {
			return fmt.Errorf("%w: %q", ErrMatchingNode, u)
		}
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: %q", ErrMatchingNode, v)
		}
		if back, ok := m[v]; !ok || back != u {
			return fmt.Errorf("%w: %q→%q without %q→%q", ErrAsymmetricMatching, u, v, v, u)
		}
		if !g.HasEdge(u, v) {
			return fmt.Errorf("%w: %q–%q", ErrMatchingEdge, u, v)
		}
	}

	return nil
}

// checkShape rejects graph capabilities the matching algorithms do not
// support, before any search begins.
func checkShape(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if g.Multigraph() {
		return ErrMultiGraph
	}
	if g.Looped() {
		return ErrLoopsGraph
	}

	return nil
}
