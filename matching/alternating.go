package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// AlternatingReachable computes the set of nodes connected to any target
// by an alternating path: a path whose edges strictly alternate between
// "in m" and "not in m", starting with either edge parity. Targets are
// always included in the result.
//
// Returns ErrGraphNil, a Validate error for a malformed matching, or
// ErrTargetNotFound.
// Complexity: O(V·(V+E)) worst case — two depth-first sweeps per node,
// each O(V+E).
func AlternatingReachable(g *core.Graph, m Matching, targets []string) (NodeSet, error) {
	if err := Validate(g, m); err != nil {
		return nil, err
	}
	goal := make(NodeSet, len(targets))
	for _, t := range targets {
		if !g.HasVertex(t) {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, t)
		}
		goal[t] = struct{}{}
	}

	return alternatingReachable(g, m, goal), nil
}

// alternatingReachable is the validated worker behind AlternatingReachable
// and the vertex-cover construction.
func alternatingReachable(g *core.Graph, m Matching, targets NodeSet) NodeSet {
	reached := make(NodeSet, len(targets))
	for _, v := range g.Vertices() {
		if targets.Contains(v) ||
			alternatingDFS(g, m, v, targets, true) ||
			alternatingDFS(g, m, v, targets, false) {
			reached[v] = struct{}{}
		}
	}

	return reached
}

// dfsFrame is one level of the explicit alternating-path DFS stack.
type dfsFrame struct {
	node        string
	nbrs        []string
	next        int
	wantMatched bool // parity required of the next edge taken
}

// alternatingDFS reports whether some target is reachable from start via
// a path whose first edge is matched (wantMatched=true) or unmatched
// (wantMatched=false) and whose edges alternate from there on.
//
// The stack is explicit: alternating paths can span the whole graph, and
// unbounded recursion over user-supplied graphs is not acceptable here.
func alternatingDFS(g *core.Graph, m Matching, start string, targets NodeSet, wantMatched bool) bool {
	startNbrs, err := g.NeighborIDs(start)
	if err != nil {
		return false
	}

	visited := make(NodeSet)
	stack := []dfsFrame{{node: start, nbrs: startNbrs, wantMatched: wantMatched}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.nbrs[top.next]
		top.next++

		if visited.Contains(child) {
			continue
		}
		if (m[top.node] == child) != top.wantMatched {
			continue
		}
		if targets.Contains(child) {
			return true
		}
		visited[child] = struct{}{}

		childNbrs, nerr := g.NeighborIDs(child)
		if nerr != nil {
			return false
		}
		stack = append(stack, dfsFrame{node: child, nbrs: childNbrs, wantMatched: !top.wantMatched})
	}

	return false
}
