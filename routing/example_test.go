// Package routing_test provides runnable examples for routing tables.
package routing_test

import (
	"fmt"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/routing"
)

// ExampleBuild derives one router's table on a simple chain: everything
// behind the first hop funnels through it.
func ExampleBuild() {
	g, _ := builder.Path([]string{"A", "B", "C", "D"})

	table, _ := routing.Build(g, routing.AlgoDijkstra, "A")
	for _, dest := range []string{"B", "C", "D"} {
		r := table.Routes[dest]
		fmt.Printf("%s via %s cost=%d\n", dest, r.NextHop, r.Cost)
	}
	// Output:
	// B via B cost=1
	// C via B cost=2
	// D via B cost=3
}

// ExampleTableSet_String renders all tables in the lab's fixed layout.
func ExampleTableSet_String() {
	g, _ := builder.Path([]string{"A", "B"})

	set, _ := routing.BuildAll(g, routing.AlgoDijkstra)
	fmt.Print(set.String())
	// Output:
	// ======= Router: A =======
	// Destination | Next Hop | Cost
	// -----------------------------
	// A           | A        | 0
	// B           | B        | 1
	// ======= Router: B =======
	// Destination | Next Hop | Cost
	// -----------------------------
	// B           | B        | 0
}
