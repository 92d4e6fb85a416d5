package matching

import (
	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/core"
)

// EnvyFreePartition computes the unique envy-free partition of the undirected
// bipartite graph g: the split of (Left, Right) into good and bad regions
// such that every envy-free matching is contained in the good region, and
// every matching saturating XGood inside it is envy-free.
//
// The partition is built by the alternating-sequence construction:
//
//	X₀ = unmatched left nodes
//	Yᵢ = neighbors of Xᵢ₋₁ along non-matching edges, minus all prior Y-sets
//	Xᵢ = neighbors of Yᵢ along matching edges
//
// stopping when either set comes up empty. The bad regions are the unions
// of the Xᵢ (i ≥ 0) and Yᵢ; the good regions are their complements within
// Left and Right. Termination is guaranteed: each Yᵢ is disjoint from all
// earlier Y-sets, so the Y-side is exhausted in at most |Right| rounds.
//
// WithMatching supplies a precomputed MAXIMUM matching (maximality is a
// documented precondition, not verified); otherwise HopcroftKarp runs
// first. WithTopNodes disambiguates disconnected graphs.
//
// Returns the shape errors of HopcroftKarp, Validate errors for a
// malformed supplied matching, or a bipartite.Sets error.
// Complexity: O(V + E) beyond the matching computation.
func EnvyFreePartition(g *core.Graph, opts ...Option) (*Partition, error) {
	if err := checkShape(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	m := o.Matching
	if m == nil {
		var err error
		if m, err = HopcroftKarp(g, opts...); err != nil {
			return nil, err
		}
	} else if err := Validate(g, m); err != nil {
		return nil, err
	}

	left, right, err := bipartite.Sets(g, o.TopNodes)
	if err != nil {
		return nil, err
	}

	xBad, yBad, err := alternatingSequence(g, m, left)
	if err != nil {
		return nil, err
	}

	p := &Partition{
		XGood: make(NodeSet, len(left)-len(xBad)),
		XBad:  xBad,
		YGood: make(NodeSet, len(right)-len(yBad)),
		YBad:  yBad,
	}
	for v := range left {
		if !xBad.Contains(v) {
			p.XGood[v] = struct{}{}
		}
	}
	for v := range right {
		if !yBad.Contains(v) {
			p.YGood[v] = struct{}{}
		}
	}

	return p, nil
}

// alternatingSequence accumulates the unions of the Xᵢ and Yᵢ sets of the
// alternating-sequence construction with respect to matching m.
func alternatingSequence(g *core.Graph, m Matching, left NodeSet) (NodeSet, NodeSet, error) {
	xAcc := make(NodeSet)
	yAcc := make(NodeSet)

	// X₀: left nodes unmatched by m.
	xCurrent := make(NodeSet)
	for v := range left {
		if _, matched := m[v]; !matched {
			xCurrent[v] = struct{}{}
			xAcc[v] = struct{}{}
		}
	}
	if len(xCurrent) == 0 {
		return NodeSet{}, NodeSet{}, nil
	}

	for {
		// Yᵢ: fresh neighbors of Xᵢ₋₁ along non-matching edges.
		yCurrent := make(NodeSet)
		for n := range xCurrent {
			nbrs, err := g.NeighborIDs(n)
			if err != nil {
				return nil, nil, err
			}
			for _, nbr := range nbrs {
				if yAcc.Contains(nbr) || m[n] == nbr {
					continue
				}
				yCurrent[nbr] = struct{}{}
			}
		}
		if len(yCurrent) == 0 {
			break
		}

		// Xᵢ: neighbors of Yᵢ along matching edges.
		xCurrent = make(NodeSet)
		for n := range yCurrent {
			if partner, matched := m[n]; matched {
				xCurrent[partner] = struct{}{}
			}
		}
		if len(xCurrent) == 0 {
			break
		}

		for v := range yCurrent {
			yAcc[v] = struct{}{}
		}
		for v := range xCurrent {
			xAcc[v] = struct{}{}
		}
	}

	return xAcc, yAcc, nil
}

// MaximumEnvyFreeMatching returns an envy-free matching of maximum
// cardinality: a maximum matching restricted to the good region of the
// envy-free partition. No unmatched left node of the result is adjacent to any
// matched right node. The result may be empty — some graphs admit no
// non-empty envy-free matching.
//
// Returns the errors of EnvyFreePartition.
// Complexity: O(E·√V) for the underlying maximum matching.
func MaximumEnvyFreeMatching(g *core.Graph, opts ...Option) (Matching, error) {
	if err := checkShape(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	m := o.Matching
	if m == nil {
		var err error
		if m, err = HopcroftKarp(g, opts...); err != nil {
			return nil, err
		}
	}

	popts := append(append(make([]Option, 0, len(opts)+1), opts...), WithMatching(m))
	p, err := EnvyFreePartition(g, popts...)
	if err != nil {
		return nil, err
	}

	out := make(Matching)
	for u, v := range m {
		if p.XBad.Contains(u) || p.YBad.Contains(u) ||
			p.XBad.Contains(v) || p.YBad.Contains(v) {
			continue
		}
		out[u] = v
	}

	return out, nil
}

// MinimumWeightEnvyFreeMatching returns, among envy-free matchings of
// maximum cardinality, one of minimum total weight: the graph is restricted
// to the good region of the envy-free partition and handed to the minimum-weight
// full matching solver.
//
// Returns the errors of EnvyFreePartition and MinimumWeightFullMatching.
// Complexity: O(E·√V) for the matching plus O(n³) for the assignment
// solve over the good region.
func MinimumWeightEnvyFreeMatching(g *core.Graph, opts ...Option) (Matching, error) {
	p, err := EnvyFreePartition(g, opts...)
	if err != nil {
		return nil, err
	}

	if len(p.XGood) == 0 || len(p.YGood) == 0 {
		return Matching{}, nil
	}
	good := append(p.XGood.Sorted(), p.YGood.Sorted()...)
	sub, err := g.Subgraph(good)
	if err != nil {
		return nil, err
	}

	return MinimumWeightFullMatching(sub, WithTopNodes(p.XGood.Sorted()...))
}
