// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on a core.Graph, tolerating negative link
// weights and detecting negative cycles reachable from the source.
//
// Notes on implementation choices:
//
//   - Relaxation sweeps iterate core.Edges() in its sorted (From,To) order,
//     so equal-cost ties resolve identically on every run.
//   - Relaxation only proceeds from finite distances, which both matches
//     the textbook guard and prevents int64 overflow on Inf + weight.
//   - A pass that relaxes nothing ends the sweep early; the fixpoint has
//     been reached and further passes cannot change any distance.
package bellmanford

import (
	"fmt"
	"time"

	"github.com/katalvlaran/routesim/core"
)

// BellmanFord computes shortest distances from source to all routers in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//
// There is no precondition on weight sign. When a negative cycle reachable
// from the source exists, BellmanFord still returns a Result — with
// NegativeCycle set and Witness naming an edge of the offending cycle —
// and a nil error: cycle detection is an informational outcome, not a
// fault. Use Result.PathTo to reconstruct a concrete route; it refuses to
// produce paths from a negative-cycle result.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V)
func BellmanFord(g *core.Graph, source string) (*Result, error) {
	// 1) Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 2) Initialize per-run state: dist[v] = +∞ except the source.
	nodes := g.Nodes()
	edges := g.Edges()
	res := &Result{
		Source: source,
		Dist:   make(map[string]int64, len(nodes)),
		Prev:   make(map[string]string, len(nodes)),
	}
	for _, id := range nodes {
		res.Dist[id] = Inf
		res.Prev[id] = ""
	}
	res.Dist[source] = 0

	// 3) Relaxation passes. Timing wraps the passes only, so Elapsed is a
	//    meaningful algorithm-time metric.
	start := time.Now()
	for pass := 1; pass < len(nodes); pass++ {
		changed := false
		for _, e := range edges {
			du := res.Dist[e.From]
			if du == Inf {
				continue // never relax from an unreached router
			}
			if next := du + e.Weight; next < res.Dist[e.To] {
				res.Dist[e.To] = next
				res.Prev[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			break // fixpoint: remaining passes would be no-ops
		}
	}

	// 4) Detection pass: any edge that still relaxes witnesses a negative
	//    cycle reachable from the source.
	for _, e := range edges {
		du := res.Dist[e.From]
		if du == Inf {
			continue
		}
		if du+e.Weight < res.Dist[e.To] {
			res.NegativeCycle = true
			res.Witness = e
			break
		}
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
