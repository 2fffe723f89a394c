package core_test

import (
	"fmt"

	"github.com/prestonraab/cs-575/core"
)

// ExampleFromSets builds the path 1-2-3 from a vertex/edge description and
// inspects it. The enumeration order is the insertion order of the input.
func ExampleFromSets() {
	g, err := core.FromSets(
		[]string{"1", "2", "3"},
		[]core.Edge{{From: "1", To: "2"}, {From: "2", To: "3"}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount(), g.HasEdge("2", "1"), g.HasEdge("1", "3"))
	// Output:
	// [1 2 3]
	// 2 true false
}

// ExampleGraph_InducedSubgraph extracts the subgraph of a square induced by
// three of its corners.
func ExampleGraph_InducedSubgraph() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")

	sub, _ := g.InducedSubgraph([]string{"A", "B", "C"})
	for _, e := range sub.Edges() {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}
	// Output:
	// A-B
	// B-C
}
