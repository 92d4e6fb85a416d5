package matching_test

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// ExampleHopcroftKarp finds a maximum matching of K(2,3).
func ExampleHopcroftKarp() {
	g := core.NewGraph()
	for _, u := range []string{"0", "1"} {
		for _, v := range []string{"2", "3", "4"} {
			_ = g.AddEdge(u, v, 0)
		}
	}

	m, _ := matching.HopcroftKarp(g)
	fmt.Println(m)
	// Output: map[0:2 1:3 2:0 3:1]
}

// ExampleToVertexCover turns the matching of K(2,3) into a minimum
// vertex cover of the same size.
func ExampleToVertexCover() {
	g := core.NewGraph()
	for _, u := range []string{"0", "1"} {
		for _, v := range []string{"2", "3", "4"} {
			_ = g.AddEdge(u, v, 0)
		}
	}

	m, _ := matching.HopcroftKarp(g)
	cover, _ := matching.ToVertexCover(g, m)
	fmt.Println(cover.Sorted())
	// Output: [0 1]
}

// ExampleMaximumEnvyFreeMatching drops the contested node of a small
// star: 1 and 2 both compete for 4, so only the private pair survives.
func ExampleMaximumEnvyFreeMatching() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "3", 0)
	_ = g.AddEdge("0", "4", 0)
	_ = g.AddEdge("1", "4", 0)
	_ = g.AddEdge("2", "4", 0)

	m, _ := matching.MaximumEnvyFreeMatching(g, matching.WithTopNodes("0", "1", "2"))
	fmt.Println(m)
	// Output: map[0:3 3:0]
}

// ExampleMinimumWeightFullMatching matches the cheaper pairs.
func ExampleMinimumWeightFullMatching() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("a", "x", 2)
	_ = g.AddEdge("a", "y", 9)
	_ = g.AddEdge("b", "x", 9)
	_ = g.AddEdge("b", "y", 1)

	m, _ := matching.MinimumWeightFullMatching(g)
	fmt.Println(m)
	// Output: map[a:x b:y x:a y:b]
}
