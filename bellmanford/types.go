// Package bellmanford defines the result types and sentinel errors for
// the Bellman-Ford shortest-path algorithm over a core.Graph.
//
// Bellman-Ford computes minimum-cost paths from a single source router and,
// unlike Dijkstra, tolerates negative link weights. After the relaxation
// passes it performs one extra pass: if any edge can still be relaxed, a
// negative cycle reachable from the source exists and no finite shortest
// path is defined for the routers it taints.
//
// Complexity:
//
//	– Time:  O(V · E)   where V = |nodes|, E = |edges|
//	   • Up to V−1 full relaxation passes over the edge list.
//	   • One additional pass for negative-cycle detection.
//	– Space: O(V) for the distance and predecessor maps.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrSourceNotFound if the source node does not exist in the graph.
//	– ErrTargetNotFound if PathTo is asked for an unknown node.
//	– ErrNegativeCycle  if PathTo is asked on a negative-cycle result.
//	– ErrUnreachable    if PathTo is asked for a node the source cannot reach.
package bellmanford

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/routesim/core"
)

// Inf is the distance assigned to routers the source cannot reach.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("bellmanford: source node ID is empty")

	// ErrSourceNotFound indicates the source node is absent from the graph.
	ErrSourceNotFound = errors.New("bellmanford: source node not found")

	// ErrTargetNotFound indicates the requested target node is absent.
	ErrTargetNotFound = errors.New("bellmanford: target node not found")

	// ErrNegativeCycle indicates a negative cycle reachable from the source.
	// It is an outcome, not a fault: Run still returns a Result with the
	// NegativeCycle flag set, and PathTo refuses to fabricate a "shortest"
	// path whose cost is unbounded below.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrUnreachable indicates the destination is not reachable from the source.
	ErrUnreachable = errors.New("bellmanford: destination unreachable")
)

// Result holds the outcome of one Bellman-Ford run.
//
// When NegativeCycle is true, Dist and Prev are unreliable for every router
// downstream of the cycle and PathTo returns ErrNegativeCycle; Witness names
// the edge that still relaxed during the detection pass. Elapsed covers the
// relaxation passes only.
type Result struct {
	Source        string
	Dist          map[string]int64
	Prev          map[string]string
	NegativeCycle bool
	Witness       core.Edge
	Elapsed       time.Duration
}

// Path is an ordered route from a source to a destination.
type Path struct {
	// Nodes lists the route from source to destination inclusive.
	Nodes []string

	// Cost is the total accumulated weight along Nodes (may be negative).
	Cost int64
}

// Edges returns the (from,to) pairs composing the path, in order.
func (p Path) Edges() [][2]string {
	if len(p.Nodes) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(p.Nodes)-1)
	for i := 1; i < len(p.Nodes); i++ {
		out = append(out, [2]string{p.Nodes[i-1], p.Nodes[i]})
	}

	return out
}

// PathTo reconstructs the shortest path from the run's source to dest by
// walking predecessor links backward.
//
// Errors:
//   - ErrNegativeCycle: the run detected a negative cycle; no path is defined.
//   - ErrTargetNotFound: dest was not part of the computed graph.
//   - ErrUnreachable: dest exists but no path from the source reaches it.
func (r *Result) PathTo(dest string) (Path, error) {
	if r.NegativeCycle {
		return Path{}, fmt.Errorf("%w: witness edge %s→%s", ErrNegativeCycle, r.Witness.From, r.Witness.To)
	}
	d, ok := r.Dist[dest]
	if !ok {
		return Path{}, ErrTargetNotFound
	}
	if d == Inf {
		return Path{}, ErrUnreachable
	}

	// Walk backward from dest to source, then reverse.
	nodes := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		nodes = append(nodes, cur)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Cost: d}, nil
}
