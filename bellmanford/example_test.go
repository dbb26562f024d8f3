// Package bellmanford_test provides runnable examples for the
// Bellman-Ford engine.
package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/routesim/bellmanford"
	"github.com/katalvlaran/routesim/core"
)

// ExampleBellmanFord demonstrates a shortest path through a negative link,
// which Dijkstra would refuse to compute.
func ExampleBellmanFord() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", -3)
	_ = g.AddEdge("A", "C", 10)

	res, err := bellmanford.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("C")
	fmt.Printf("path=%v cost=%d\n", path.Nodes, path.Cost)
	// Output: path=[A B C] cost=-2
}

// ExampleBellmanFord_negativeCycle shows detection of a cycle whose weight
// sum is negative: the run reports the outcome instead of a bogus path.
func ExampleBellmanFord_negativeCycle() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", -1)
	_ = g.AddEdge("C", "A", -1)

	res, err := bellmanford.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("negative cycle:", res.NegativeCycle)
	// Output: negative cycle: true
}
