package matching_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// EnvyFreeSuite exercises the envy-free partition and the matchings
// derived from it.
type EnvyFreeSuite struct {
	suite.Suite
}

// starGraph builds 0–3, 0–4, 1–4, 2–4: node 4 is contested.
func starGraph() *core.Graph {
	g := core.NewGraph()
	_ = g.AddEdge("0", "3", 0)
	_ = g.AddEdge("0", "4", 0)
	_ = g.AddEdge("1", "4", 0)
	_ = g.AddEdge("2", "4", 0)

	return g
}

// TestPartitionStar checks the canonical partition of the star graph:
// 0 can be matched without envy, 1 and 2 compete for node 4.
func (s *EnvyFreeSuite) TestPartitionStar() {
	g := starGraph()
	p, err := matching.EnvyFreePartition(g, matching.WithTopNodes("0", "1", "2"))
	require.NoError(s.T(), err)

	require.Equal(s.T(), []string{"0"}, p.XGood.Sorted())
	require.Equal(s.T(), []string{"1", "2"}, p.XBad.Sorted())
	require.Equal(s.T(), []string{"3"}, p.YGood.Sorted())
	require.Equal(s.T(), []string{"4"}, p.YBad.Sorted())
}

// TestPartitionDisjoint verifies the four parts tile the two sides.
func (s *EnvyFreeSuite) TestPartitionDisjoint() {
	g, left := randomBipartite(10, 12, 0.3, 7)
	p, err := matching.EnvyFreePartition(g, matching.WithTopNodes(left...))
	require.NoError(s.T(), err)

	seen := make(map[string]int)
	for _, part := range []matching.NodeSet{p.XGood, p.XBad, p.YGood, p.YBad} {
		for id := range part {
			seen[id]++
		}
	}
	require.Len(s.T(), seen, g.VertexCount())
	for id, n := range seen {
		require.Equal(s.T(), 1, n, "node %s in %d parts", id, n)
	}
}

// TestMaximumEnvyFreeStar checks the derived matching drops the
// contested pair: only {0:3} survives.
func (s *EnvyFreeSuite) TestMaximumEnvyFreeStar() {
	g := starGraph()
	m, err := matching.MaximumEnvyFreeMatching(g, matching.WithTopNodes("0", "1", "2"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), matching.Matching{"0": "3", "3": "0"}, m)
}

// TestPerfectMatchingIsEnvyFree verifies a perfect matching of K(3,3)
// survives intact: no bad region exists.
func (s *EnvyFreeSuite) TestPerfectMatchingIsEnvyFree() {
	g := completeBipartite(3, 3)
	m, err := matching.MaximumEnvyFreeMatching(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, m.Len())

	p, err := matching.EnvyFreePartition(g)
	require.NoError(s.T(), err)
	require.Empty(s.T(), p.XBad)
	require.Empty(s.T(), p.YBad)
}

// TestOddPathAllBad checks the path 0–3–1–4–2: no nonempty envy-free
// matching exists, every node lands in a bad region.
func (s *EnvyFreeSuite) TestOddPathAllBad() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "3", 0)
	_ = g.AddEdge("1", "3", 0)
	_ = g.AddEdge("1", "4", 0)
	_ = g.AddEdge("2", "4", 0)

	m, err := matching.MaximumEnvyFreeMatching(g, matching.WithTopNodes("0", "1", "2"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), m)

	p, err := matching.EnvyFreePartition(g, matching.WithTopNodes("0", "1", "2"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), p.XGood)
	require.Empty(s.T(), p.YGood)
}

// TestSaturatedRightSide covers the case where the alternating
// sequence sweeps the whole graph through saturated right nodes.
func (s *EnvyFreeSuite) TestSaturatedRightSide() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"0", "6"}, {"1", "6"}, {"1", "7"}, {"2", "6"}, {"2", "8"},
		{"3", "9"}, {"3", "6"}, {"4", "8"}, {"4", "7"}, {"5", "9"},
	} {
		_ = g.AddEdge(e[0], e[1], 0)
	}

	m, err := matching.MaximumEnvyFreeMatching(g,
		matching.WithTopNodes("0", "1", "2", "3", "4", "5"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), m)
}

// TestSuppliedMatching verifies a caller-provided matching is used
// as-is and validated first.
func (s *EnvyFreeSuite) TestSuppliedMatching() {
	g := starGraph()
	given := matching.Matching{"0": "3", "3": "0", "1": "4", "4": "1"}

	p, err := matching.EnvyFreePartition(g,
		matching.WithTopNodes("0", "1", "2"),
		matching.WithMatching(given))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"0"}, p.XGood.Sorted())

	_, err = matching.EnvyFreePartition(g,
		matching.WithTopNodes("0", "1", "2"),
		matching.WithMatching(matching.Matching{"0": "3"}))
	require.True(s.T(), errors.Is(err, matching.ErrAsymmetricMatching))
}

// TestMinWeightEnvyFree checks weights steer the envy-free matching:
// 0 prefers its cheaper private neighbor.
func (s *EnvyFreeSuite) TestMinWeightEnvyFree() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("0", "3", 9)
	_ = g.AddEdge("0", "5", 2)
	_ = g.AddEdge("1", "4", 4)
	_ = g.AddEdge("1", "3", 1)

	m, err := matching.MinimumWeightEnvyFreeMatching(g,
		matching.WithTopNodes("0", "1"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.Len())
	require.Equal(s.T(), "5", m["0"])
	require.Equal(s.T(), "3", m["1"])
}

// TestMinWeightEnvyFreeEmptyGood verifies the empty result when no
// good region exists.
func (s *EnvyFreeSuite) TestMinWeightEnvyFreeEmptyGood() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("0", "2", 3)
	_ = g.AddEdge("1", "2", 5)

	m, err := matching.MinimumWeightEnvyFreeMatching(g,
		matching.WithTopNodes("0", "1"))
	require.NoError(s.T(), err)
	require.Empty(s.T(), m)
}

// Entry point for running the suite.
func TestEnvyFreeSuite(t *testing.T) {
	suite.Run(t, new(EnvyFreeSuite))
}
