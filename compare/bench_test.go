// Package compare_test benchmarks both engines on the same topology, the
// measurement the comparator surfaces to users interactively.
package compare_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/routesim/bellmanford"
	"github.com/katalvlaran/routesim/compare"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/dijkstra"
)

// buildChain creates a linear chain V0→V1→...→Vn of unit-weight links.
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i <= n; i++ {
		_ = g.AddNode(fmt.Sprintf("V%04d", i))
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%04d", i), fmt.Sprintf("V%04d", i+1), 1)
	}

	return g
}

// BenchmarkDijkstra_Chain measures the O((V+E) log V) engine alone.
func BenchmarkDijkstra_Chain(b *testing.B) {
	const n = 500
	g := buildChain(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, "V0000")
	}
}

// BenchmarkBellmanFord_Chain measures the O(V·E) engine alone; the chain
// is its worst case without the early-fixpoint cutoff.
func BenchmarkBellmanFord_Chain(b *testing.B) {
	const n = 500
	g := buildChain(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bellmanford.BellmanFord(g, "V0000")
	}
}

// BenchmarkCompare_Chain measures a full comparator invocation including
// the snapshot copy.
func BenchmarkCompare_Chain(b *testing.B) {
	const n = 500
	g := buildChain(n)
	last := fmt.Sprintf("V%04d", n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = compare.Compare(g, "V0000", last)
	}
}
