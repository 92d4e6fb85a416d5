package bipartite

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Color two-colors g, returning a map from vertex ID to its color
// (false/true). Coloring starts from the lexicographically smallest vertex
// of each component, which always receives color false, so the result is
// deterministic for a fixed graph.
//
// Returns ErrGraphNil, ErrDirectedGraph, or ErrNotBipartite if an odd
// cycle exists.
// Complexity: O(V + E).
func Color(g *core.Graph) (map[string]bool, error) {
	colors, _, err := twoColor(g)

	return colors, err
}

// IsBipartite reports whether g admits a two-coloring. A nil or directed
// graph is reported as not bipartite.
// Complexity: O(V + E).
func IsBipartite(g *core.Graph) bool {
	_, _, err := twoColor(g)

	return err == nil
}

// Sets splits the vertices of g into its two independent sets
// (left, right).
//
// If left is non-empty it is taken as the explicit left set: the right set
// is every remaining vertex, and every edge must cross the split
// (ErrNotBipartite otherwise). If left is empty the split is inferred by
// two-coloring, which requires a connected graph: a disconnected graph
// fails with ErrAmbiguousBipartition since each component could land on
// either side. The empty graph yields two empty sets.
//
// Returns ErrGraphNil, ErrDirectedGraph, ErrNodeNotFound (explicit left
// node absent), ErrNotBipartite, or ErrAmbiguousBipartition.
// Complexity: O(V + E).
func Sets(g *core.Graph, left []string) (map[string]struct{}, map[string]struct{}, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, nil, ErrDirectedGraph
	}

	if len(left) > 0 {
		return splitByHint(g, left)
	}

	colors, components, err := twoColor(g)
	if err != nil {
		return nil, nil, err
	}
	if components > 1 {
		return nil, nil, ErrAmbiguousBipartition
	}

	l := make(map[string]struct{}, len(colors))
	r := make(map[string]struct{}, len(colors))
	for v, c := range colors {
		if c {
			r[v] = struct{}{}
		} else {
			l[v] = struct{}{}
		}
	}

	return l, r, nil
}

// splitByHint builds (left, right) from an explicit left set and verifies
// that every edge crosses the split.
func splitByHint(g *core.Graph, left []string) (map[string]struct{}, map[string]struct{}, error) {
	l := make(map[string]struct{}, len(left))
	for _, id := range left {
		if !g.HasVertex(id) {
			return nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
		l[id] = struct{}{}
	}

	vertices := g.Vertices()
	r := make(map[string]struct{}, len(vertices)-len(l))
	for _, v := range vertices {
		if _, inLeft := l[v]; !inLeft {
			r[v] = struct{}{}
		}
	}

	// Every edge must have exactly one endpoint in the left set.
	for _, e := range g.Edges() {
		_, fromLeft := l[e.From]
		_, toLeft := l[e.To]
		if fromLeft == toLeft {
			return nil, nil, fmt.Errorf("%w: edge %q–%q does not cross the supplied split",
				ErrNotBipartite, e.From, e.To)
		}
	}

	return l, r, nil
}

// twoColor runs the breadth-first two-coloring over every component,
// returning vertex colors and the number of connected components.
func twoColor(g *core.Graph) (map[string]bool, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}

	vertices := g.Vertices()
	colors := make(map[string]bool, len(vertices))
	components := 0
	queue := make([]string, 0, len(vertices))

	for _, root := range vertices {
		if _, seen := colors[root]; seen {
			continue
		}
		components++
		colors[root] = false
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			nbrs, err := g.NeighborIDs(v)
			if err != nil {
				return nil, 0, err
			}
			for _, u := range nbrs {
				if u == v {
					// A self-loop can never be two-colored.
					return nil, 0, fmt.Errorf("%w: self-loop at %q", ErrNotBipartite, v)
				}
				c, seen := colors[u]
				if !seen {
					colors[u] = !colors[v]
					queue = append(queue, u)
					continue
				}
				if c == colors[v] {
					return nil, 0, fmt.Errorf("%w: odd cycle through %q–%q", ErrNotBipartite, v, u)
				}
			}
		}
	}

	return colors, components, nil
}
