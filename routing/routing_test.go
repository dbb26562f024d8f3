// Package routing_test contains unit tests for routing-table derivation:
// next-hop correctness, unreachable handling, the negative-weight and
// negative-cycle guards, and engine agreement on full sweeps.
package routing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/routing"
)

func TestBuild_NextHops(t *testing.T) {
	// Chain A→B→C→D: every destination behind B funnels through B.
	g, err := builder.Path([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	table, err := routing.Build(g, routing.AlgoDijkstra, "A")
	require.NoError(t, err)

	assert.Equal(t, routing.Route{NextHop: "A", Cost: 0}, table.Routes["A"], "self-route")
	assert.Equal(t, routing.Route{NextHop: "B", Cost: 1}, table.Routes["B"])
	assert.Equal(t, routing.Route{NextHop: "B", Cost: 2}, table.Routes["C"])
	assert.Equal(t, routing.Route{NextHop: "B", Cost: 3}, table.Routes["D"])
}

func TestBuild_UnreachableOmitted(t *testing.T) {
	// D has no incoming links from A's side of the one-way chain.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "D"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))

	table, err := routing.Build(g, routing.AlgoBellmanFord, "A")
	require.NoError(t, err)

	_, ok := table.Routes["D"]
	assert.False(t, ok, "unreachable destinations carry no row")
	assert.Len(t, table.Routes, 2)
}

func TestBuild_Guards(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "B", -1))

	// Dijkstra tables refuse negative links...
	_, err := routing.Build(g, routing.AlgoDijkstra, "A")
	assert.ErrorIs(t, err, routing.ErrNegativeWeight)

	// ...Bellman-Ford handles them.
	table, err := routing.Build(g, routing.AlgoBellmanFord, "A")
	require.NoError(t, err)
	assert.Equal(t, routing.Route{NextHop: "B", Cost: -1}, table.Routes["B"])

	// Unknown algorithm names are rejected.
	_, err = routing.Build(g, routing.Algorithm("spf"), "A")
	assert.ErrorIs(t, err, routing.ErrUnknownAlgorithm)
}

func TestBuild_NegativeCycle(t *testing.T) {
	weights := []int64{1, -1, -1}
	g, err := builder.Cycle([]string{"A", "B", "C"},
		builder.WithWeightFn(func(i int) int64 { return weights[i] }))
	require.NoError(t, err)

	_, err = routing.Build(g, routing.AlgoBellmanFord, "A")
	assert.ErrorIs(t, err, routing.ErrNegativeCycle)
}

func TestBuildAll_EnginesAgree(t *testing.T) {
	g := builder.Lab()

	dij, err := routing.BuildAll(g, routing.AlgoDijkstra)
	require.NoError(t, err)
	bf, err := routing.BuildAll(g, routing.AlgoBellmanFord)
	require.NoError(t, err)

	require.Len(t, dij.Tables, 6)
	require.Len(t, bf.Tables, 6)

	// Costs must match for every (router, destination) pair; next hops are
	// compared only loosely since equal-cost routes may tie-break apart.
	for id, dt := range dij.Tables {
		bt := bf.Tables[id]
		require.NotNil(t, bt)
		require.Len(t, bt.Routes, len(dt.Routes), "router %s", id)
		for dest, dr := range dt.Routes {
			br, ok := bt.Routes[dest]
			require.True(t, ok, "router %s dest %s", id, dest)
			assert.Equal(t, dr.Cost, br.Cost, "router %s dest %s", id, dest)
		}
	}
}

func TestBuildAll_FailsFastOnCycle(t *testing.T) {
	weights := []int64{1, -1, -1}
	g, err := builder.Cycle([]string{"A", "B", "C"},
		builder.WithWeightFn(func(i int) int64 { return weights[i] }))
	require.NoError(t, err)

	_, err = routing.BuildAll(g, routing.AlgoBellmanFord)
	assert.ErrorIs(t, err, routing.ErrNegativeCycle)
}

func TestTableSet_String(t *testing.T) {
	g, err := builder.Path([]string{"A", "B"})
	require.NoError(t, err)

	set, err := routing.BuildAll(g, routing.AlgoDijkstra)
	require.NoError(t, err)

	out := set.String()
	assert.Contains(t, out, "======= Router: A =======")
	assert.Contains(t, out, "======= Router: B =======")
	assert.Contains(t, out, "Destination | Next Hop | Cost")
	// A reaches B through B at cost 1; B only knows itself.
	assert.Contains(t, out, "B           | B        | 1")
	idxA := strings.Index(out, "Router: A")
	idxB := strings.Index(out, "Router: B")
	assert.Less(t, idxA, idxB, "routers rendered in sorted order")
}
