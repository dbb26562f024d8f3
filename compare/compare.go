// Package compare runs the Dijkstra and Bellman-Ford engines against the
// same snapshot of a core.Graph and the same source/destination pair,
// recording each engine's path, total cost, and wall-clock execution time.
//
// Compare is a pure function of (graph state, source, destination): it
// never mutates the graph it is given, and both engines observe the same
// point-in-time Clone even if the caller keeps editing the original.
package compare

import (
	"fmt"

	"github.com/katalvlaran/routesim/bellmanford"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/dijkstra"
)

// Compare runs both engines on a snapshot of g for the source→dest pair
// and produces the combined Report.
//
// Validation errors (nil graph, empty or unknown node IDs) are returned as
// errors — they are caller misuse. Everything an engine can legitimately
// conclude (a path, an unreachable destination, an inapplicable algorithm,
// a negative cycle) is encoded in the per-engine Outcome Status instead.
//
// When the snapshot carries a negative link weight, Dijkstra is reported
// as StatusNegativeWeight without being run; its answer would be wrong and
// must not appear alongside Bellman-Ford's correct one.
//
// Complexity: O(V · E) — dominated by Bellman-Ford.
func Compare(g *core.Graph, source, dest string) (*Report, error) {
	// 1) Validate caller input against the live graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" || dest == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, dest)
	}

	// 2) Take the snapshot once; both engines see identical topology.
	snap := g.Clone()
	report := &Report{Source: source, Dest: dest}

	// 3) Dijkstra — only applicable when every weight is non-negative.
	if snap.HasNegativeEdge() {
		report.Dijkstra = Outcome{Algorithm: AlgoDijkstra, Status: StatusNegativeWeight}
	} else {
		dres, err := dijkstra.Dijkstra(snap, source, dijkstra.WithTarget(dest))
		if err != nil {
			// Unreachable here after validation; surface it rather than hide it.
			return nil, fmt.Errorf("compare: dijkstra: %w", err)
		}
		report.Dijkstra = dijkstraOutcome(dres, dest)
	}

	// 4) Bellman-Ford — always applicable.
	bres, err := bellmanford.BellmanFord(snap, source)
	if err != nil {
		return nil, fmt.Errorf("compare: bellman-ford: %w", err)
	}
	report.BellmanFord = bellmanFordOutcome(bres, dest)

	return report, nil
}

// dijkstraOutcome folds a Dijkstra result into an Outcome for dest.
func dijkstraOutcome(res *dijkstra.Result, dest string) Outcome {
	out := Outcome{Algorithm: AlgoDijkstra, Elapsed: res.Elapsed}
	path, err := res.PathTo(dest)
	if err != nil {
		out.Status = StatusUnreachable
		return out
	}
	out.Status = StatusOK
	out.Path = path.Nodes
	out.Cost = path.Cost

	return out
}

// bellmanFordOutcome folds a Bellman-Ford result into an Outcome for dest.
func bellmanFordOutcome(res *bellmanford.Result, dest string) Outcome {
	out := Outcome{Algorithm: AlgoBellmanFord, Elapsed: res.Elapsed}
	if res.NegativeCycle {
		out.Status = StatusNegativeCycle
		return out
	}
	path, err := res.PathTo(dest)
	if err != nil {
		out.Status = StatusUnreachable
		return out
	}
	out.Status = StatusOK
	out.Path = path.Nodes
	out.Cost = path.Cost

	return out
}
