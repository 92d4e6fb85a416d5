package matching

import (
	"errors"
	"math"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/core"
)

// MinimumWeightFullMatching returns a full matching of the undirected
// bipartite graph g — one saturating the smaller of (Left, Right) — of
// minimum total edge weight. Missing edges are modeled as infinite cost,
// so the result only uses real edges; if no full matching exists the call
// fails with ErrNoFullMatching. On unweighted graphs every edge costs 0
// and any full matching is returned.
//
// The weight optimization itself is delegated to the rectangular
// linear-sum-assignment solver in the assignment package.
//
// Returns the shape errors of HopcroftKarp, a bipartite.Sets error, or
// ErrNoFullMatching.
// Complexity: O(L·R·min(L,R)) for the assignment solve, O(V+E) setup.
func MinimumWeightFullMatching(g *core.Graph, opts ...Option) (Matching, error) {
	if err := checkShape(g); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	left, right, err := bipartite.Sets(g, o.TopNodes)
	if err != nil {
		return nil, err
	}
	if len(left) == 0 || len(right) == 0 {
		return Matching{}, nil
	}

	rows := NodeSet(left).Sorted()
	cols := NodeSet(right).Sorted()
	colIndex := make(map[string]int, len(cols))
	for j, v := range cols {
		colIndex[v] = j
	}

	// Biadjacency cost matrix, +Inf where no edge exists.
	cost := make([][]float64, len(rows))
	for i, u := range rows {
		cost[i] = make([]float64, len(cols))
		for j := range cost[i] {
			cost[i][j] = math.Inf(1)
		}
		nbrs, nerr := g.NeighborIDs(u)
		if nerr != nil {
			return nil, nerr
		}
		for _, v := range nbrs {
			if w, ok := g.EdgeWeight(u, v); ok {
				cost[i][colIndex[v]] = float64(w)
			}
		}
	}

	ri, ci, err := assignment.Solve(cost)
	if err != nil {
		if errors.Is(err, assignment.ErrInfeasible) {
			return nil, ErrNoFullMatching
		}

		return nil, err
	}

	m := make(Matching, 2*len(ri))
	for k := range ri {
		u, v := rows[ri[k]], cols[ci[k]]
		m[u] = v
		m[v] = u
	}

	return m, nil
}
