// Package core: Graph method implementations.
//
// This file provides thread-safe operations for vertex and edge management
// on the Graph type defined in types.go. Adjacency is stored as a nested
// map adjacency[from][to] = []weights, mirrored for undirected edges, so
// existence checks and neighbor lookups run in constant time.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates an edge from→to with the given weight, inserting missing
// endpoints automatically. Undirected edges are mirrored into both
// adjacency directions.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Parallel-edge constraint
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return ErrMultiEdgeNotAllowed
	}

	// 5) Ensure endpoints and adjacency buckets exist
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string][]int64)
	}
	if g.adjacency[to] == nil {
		g.adjacency[to] = make(map[string][]int64)
	}

	// 6) Record the edge; mirror for undirected non-loop edges
	g.adjacency[from][to] = append(g.adjacency[from][to], weight)
	if !g.directed && from != to {
		g.adjacency[to][from] = append(g.adjacency[to][from], weight)
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the endpoint order is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// EdgeWeight returns the weight of an edge from→to and whether such an
// edge exists. When parallel edges exist, the minimum weight is returned.
// Complexity: O(k) over k parallel edges.
func (g *Graph) EdgeWeight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	weights := g.adjacency[from][to]
	if len(weights) == 0 {
		return 0, false
	}
	minW := weights[0]
	for _, w := range weights[1:] {
		if w < minW {
			minW = w
		}
	}

	return minW, true
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. For directed graphs only outgoing neighbors
// are included.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d) where d is the number of distinct neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.vertices[id]; !exists {
		return nil, ErrVertexNotFound
	}
	bucket := g.adjacency[id]
	ids := make([]string, 0, len(bucket))
	for v := range bucket {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs, sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a snapshot of all edges, one Edge per stored edge
// (undirected edges appear once, with From ≤ To), sorted by (From, To,
// Weight) for deterministic enumeration.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, weights := range bucket {
			// Skip the mirrored direction of undirected edges.
			if !g.directed && from > to {
				continue
			}
			for _, w := range weights {
				out = append(out, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}

// Subgraph returns a new Graph with the same capability flags, containing
// exactly the given vertices and every edge whose endpoints both belong to
// the set. Returns ErrVertexNotFound if any requested vertex is absent.
// Complexity: O(V' + E).
func (g *Graph) Subgraph(ids []string) (*Graph, error) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !g.HasVertex(id) {
			return nil, ErrVertexNotFound
		}
		keep[id] = struct{}{}
	}

	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, WithWeighted())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	sub := NewGraph(opts...)

	for id := range keep {
		_ = sub.AddVertex(id)
	}
	for _, e := range g.Edges() {
		if _, okF := keep[e.From]; !okF {
			continue
		}
		if _, okT := keep[e.To]; !okT {
			continue
		}
		if err := sub.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return sub, nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges (undirected edges counted
// once). Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether edges are one-way. Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted. Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted. Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
