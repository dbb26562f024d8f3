// Package compare defines the ComparisonReport produced by running both
// shortest-path engines against the same graph snapshot.
package compare

import (
	"errors"
	"time"
)

// Algorithm display names used in reports and by the CLI.
const (
	AlgoDijkstra    = "dijkstra"
	AlgoBellmanFord = "bellman-ford"
)

// Sentinel errors for comparator misuse. Engine-level conditions
// (unreachable, negative weight, negative cycle) are Statuses, not errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("compare: graph is nil")

	// ErrEmptyNodeID indicates an empty source or destination ID.
	ErrEmptyNodeID = errors.New("compare: node ID is empty")

	// ErrNodeNotFound indicates the source or destination is absent.
	ErrNodeNotFound = errors.New("compare: node not found")
)

// Status classifies the outcome of one engine run.
type Status int

const (
	// StatusOK means the engine produced a shortest path.
	StatusOK Status = iota

	// StatusUnreachable means the destination cannot be reached from the
	// source. This is a result, not an error.
	StatusUnreachable

	// StatusNegativeWeight means the engine is inapplicable because the
	// snapshot contains a negative link weight (Dijkstra only). The engine
	// was not run at all: presenting its answer next to a correct one
	// would be misleading.
	StatusNegativeWeight

	// StatusNegativeCycle means a negative cycle reachable from the source
	// was detected (Bellman-Ford only); no finite shortest path exists.
	StatusNegativeCycle
)

// String renders the status for reports and logs.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnreachable:
		return "unreachable"
	case StatusNegativeWeight:
		return "negative weights not supported"
	case StatusNegativeCycle:
		return "negative cycle detected"
	default:
		return "unknown"
	}
}

// Outcome is one engine's contribution to a ComparisonReport.
//
// Path and Cost are meaningful only when Status == StatusOK. Elapsed is
// the engine's core-loop wall-clock time; it is zero when the engine was
// not run (StatusNegativeWeight).
type Outcome struct {
	Algorithm string
	Status    Status
	Path      []string
	Cost      int64
	Elapsed   time.Duration
}

// PathEdges returns the ordered (from,to) pairs of the outcome's path,
// the renderer's input for highlighting the route distinctly.
// Nil when the outcome carries no path.
func (o Outcome) PathEdges() [][2]string {
	if len(o.Path) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(o.Path)-1)
	for i := 1; i < len(o.Path); i++ {
		out = append(out, [2]string{o.Path[i-1], o.Path[i]})
	}

	return out
}

// Report is the combined result of one Compare invocation: both engines'
// outcomes for the same (snapshot, source, destination) triple.
type Report struct {
	Source      string
	Dest        string
	Dijkstra    Outcome
	BellmanFord Outcome
}

// Agree reports whether both engines produced a path and settled on the
// same total cost — the cross-validation property for graphs with only
// non-negative weights. Engines may still disagree on which of several
// equal-cost routes they report.
func (r *Report) Agree() bool {
	return r.Dijkstra.Status == StatusOK &&
		r.BellmanFord.Status == StatusOK &&
		r.Dijkstra.Cost == r.BellmanFord.Cost
}

// Faster names the algorithm with the smaller elapsed time, or "" when
// either engine did not run to completion.
func (r *Report) Faster() string {
	if r.Dijkstra.Status == StatusNegativeWeight {
		return ""
	}
	if r.Dijkstra.Elapsed <= r.BellmanFord.Elapsed {
		return r.Dijkstra.Algorithm
	}

	return r.BellmanFord.Algorithm
}
