package matching

import (
	"errors"
	"sort"
)

// Sentinel errors for matching operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrDirectedGraph is returned for graphs constructed with directed
	// edges; matching is defined over undirected bipartite graphs.
	ErrDirectedGraph = errors.New("matching: directed graphs not supported")

	// ErrMultiGraph is returned for graphs allowing parallel edges.
	ErrMultiGraph = errors.New("matching: multigraphs not supported")

	// ErrLoopsGraph is returned for graphs allowing self-loops; a
	// self-loop can never participate in a matching.
	ErrLoopsGraph = errors.New("matching: graphs with self-loops not supported")

	// ErrAsymmetricMatching is returned when a supplied matching maps
	// u→v without the mirror entry v→u.
	ErrAsymmetricMatching = errors.New("matching: matching is not symmetric")

	// ErrMatchingNode is returned when a supplied matching references a
	// node absent from the graph.
	ErrMatchingNode = errors.New("matching: matching references unknown node")

	// ErrMatchingEdge is returned when a supplied matching pairs two
	// nodes with no edge between them.
	ErrMatchingEdge = errors.New("matching: matched pair is not an edge")

	// ErrTargetNotFound is returned when a reachability target is absent
	// from the graph.
	ErrTargetNotFound = errors.New("matching: target node not found in graph")

	// ErrNoFullMatching is returned by MinimumWeightFullMatching when the
	// graph admits no matching saturating the smaller side.
	ErrNoFullMatching = errors.New("matching: no full matching exists")
)

// Matching is a symmetric node-to-node mapping: if m[u] == v then
// m[v] == u. Unmatched nodes are absent from the map.
type Matching map[string]string

// Len returns the number of matched pairs (half the entry count of a
// valid, symmetric matching).
func (m Matching) Len() int { return len(m) / 2 }

// Partner returns the node matched to v, if any.
func (m Matching) Partner(v string) (string, bool) {
	u, ok := m[v]

	return u, ok
}

// Clone returns an independent copy of the matching.
func (m Matching) Clone() Matching {
	out := make(Matching, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// NodeSet is an unordered set of vertex IDs.
type NodeSet map[string]struct{}

// Contains reports whether v belongs to the set.
func (s NodeSet) Contains(v string) bool {
	_, ok := s[v]

	return ok
}

// Sorted returns the members in lexicographic order.
func (s NodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Partition is the envy-free partition of a bipartite graph: the unique split
// of (Left, Right) into good and bad regions such that every envy-free
// matching lives inside the good region, and every matching saturating
// XGood inside it is envy-free.
type Partition struct {
	XGood NodeSet
	XBad  NodeSet
	YGood NodeSet
	YBad  NodeSet
}

// Option configures matching operations via functional arguments.
type Option func(*Options)

// Options holds the shared knobs of the matching operations.
type Options struct {
	// TopNodes, when non-empty, is the explicit Left node set. Required
	// for disconnected graphs, where bipartition inference is ambiguous.
	TopNodes []string

	// Matching, when non-nil, is a caller-supplied maximum matching to
	// reuse instead of recomputing one (EnvyFreePartition only).
	Matching Matching
}

// DefaultOptions returns the zero configuration: bipartition inferred by
// two-coloring, matching computed on demand.
func DefaultOptions() Options { return Options{} }

// WithTopNodes supplies the explicit Left node set.
func WithTopNodes(nodes ...string) Option {
	return func(o *Options) { o.TopNodes = nodes }
}

// WithMatching supplies a precomputed maximum matching. The caller is
// responsible for its maximality: a non-maximum matching yields a
// meaningless (but crash-free) result.
func WithMatching(m Matching) Option {
	return func(o *Options) { o.Matching = m }
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
