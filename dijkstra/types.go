// Package dijkstra defines the result types and configuration options
// for Dijkstra's shortest-path algorithm over a core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source router to
// all other reachable routers in a graph with non-negative link weights.
// The algorithm maintains a priority queue of routers to explore and
// relaxes outgoing links in increasing order of distance from the source.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	   • Each heap operation costs O(log (V+E)), simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor maps.
//	   • O(E) worst case in the priority queue (lazy decrease-key).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrSourceNotFound  if the source node does not exist in the graph.
//	– ErrTargetNotFound  if a requested target node does not exist.
//	– ErrNegativeWeight  if any edge weight is negative (precondition violation).
//	– ErrUnreachable     if PathTo is asked for a node the source cannot reach.
package dijkstra

import (
	"errors"
	"math"
	"time"
)

// Inf is the distance assigned to routers the source cannot reach.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrSourceNotFound indicates the source node is absent from the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found")

	// ErrTargetNotFound indicates the requested target node is absent.
	ErrTargetNotFound = errors.New("dijkstra: target node not found")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Dijkstra's correctness requires non-negative weights, so the engine
	// refuses to run rather than produce a wrong answer.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates the destination is not reachable from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures a single Dijkstra run.
//
// Target – optional early-exit node ID: once the target's distance is
// finalized the frontier loop stops. All nodes closer than the target are
// still processed first, so reported costs are unaffected.
type Options struct {
	Target string
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the search once the given node's distance is final.
// Distances of nodes farther than the target remain Inf in the result.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// DefaultOptions returns an Options struct with no target (full exploration).
func DefaultOptions() Options {
	return Options{Target: ""}
}

// Result holds the outcome of one Dijkstra run.
//
// Dist maps every node ID to its minimum distance from Source (Inf if
// unreachable). Prev maps each node to its predecessor on the shortest
// path ("" for the source and for unreached nodes). Elapsed covers the
// frontier loop only — snapshot copying and validation are excluded, so
// the figure is a meaningful algorithm-time metric.
type Result struct {
	Source  string
	Dist    map[string]int64
	Prev    map[string]string
	Elapsed time.Duration
}

// Path is an ordered route from a source to a destination.
type Path struct {
	// Nodes lists the route from source to destination inclusive.
	Nodes []string

	// Cost is the total accumulated weight along Nodes.
	Cost int64
}

// Edges returns the (from,to) pairs composing the path, in order.
// Renderers use this to highlight the route distinctly.
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
//   - ErrTargetNotFound: dest was not part of the computed graph.
//   - ErrUnreachable: dest exists but no path from the source reaches it.
func (r *Result) PathTo(dest string) (Path, error) {
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
