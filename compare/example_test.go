// Package compare_test provides runnable examples for the comparator.
package compare_test

import (
	"fmt"

	"github.com/katalvlaran/routesim/compare"
	"github.com/katalvlaran/routesim/core"
)

// ExampleCompare runs both engines on the triangle topology and prints
// the combined report (timings omitted — they vary run to run).
func ExampleCompare() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)

	rep, err := compare.Compare(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s: %v cost=%d (%s)\n",
		rep.Dijkstra.Algorithm, rep.Dijkstra.Path, rep.Dijkstra.Cost, rep.Dijkstra.Status)
	fmt.Printf("%s: %v cost=%d (%s)\n",
		rep.BellmanFord.Algorithm, rep.BellmanFord.Path, rep.BellmanFord.Cost, rep.BellmanFord.Status)
	fmt.Println("agree:", rep.Agree())
	// Output:
	// dijkstra: [A B C] cost=3 (ok)
	// bellman-ford: [A B C] cost=3 (ok)
	// agree: true
}

// ExampleCompare_negativeWeights shows the comparator refusing to run
// Dijkstra when the snapshot carries a negative link.
func ExampleCompare_negativeWeights() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", -3)
	_ = g.AddEdge("A", "C", 10)

	rep, _ := compare.Compare(g, "A", "C")
	fmt.Printf("dijkstra: %s\n", rep.Dijkstra.Status)
	fmt.Printf("bellman-ford: %v cost=%d\n", rep.BellmanFord.Path, rep.BellmanFord.Cost)
	// Output:
	// dijkstra: negative weights not supported
	// bellman-ford: [A B C] cost=-2
}
