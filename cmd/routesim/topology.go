package main

import (
	"fmt"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/core"
)

// Named demo topologies selectable via --topology.
const (
	topoLab      = "lab"      // six-router teaching network, mirrored links
	topoTriangle = "triangle" // A→B(1), B→C(2), A→C(4)
	topoNegative = "negative" // A→B(1), B→C(-3), A→C(10)
	topoCycle    = "cycle"    // A→B(1), B→C(-1), C→A(-1): negative cycle
)

// demoTopology builds one of the named demo graphs.
func demoTopology(name string) (*core.Graph, error) {
	switch name {
	case topoLab:
		return builder.Lab(), nil

	case topoTriangle:
		weights := []int64{1, 2, 4}
		return buildTriple(weights)

	case topoNegative:
		weights := []int64{1, -3, 10}
		return buildTriple(weights)

	case topoCycle:
		weights := []int64{1, -1, -1}
		return builder.Cycle([]string{"A", "B", "C"},
			builder.WithWeightFn(func(i int) int64 { return weights[i] }))

	default:
		return nil, fmt.Errorf("unknown topology %q (want %s|%s|%s|%s)",
			name, topoLab, topoTriangle, topoNegative, topoCycle)
	}
}

// buildTriple wires A→B, B→C, A→C with the given weights.
func buildTriple(weights []int64) (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	links := [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}
	for i, l := range links {
		if err := g.AddEdge(l[0], l[1], weights[i]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
