// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative link weights.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan detects negative weights and fails fast with
//     ErrNegativeWeight instead of silently producing wrong distances.
//   - A "lazy" decrease-key strategy is used: shorter rediscoveries push
//     duplicate heap entries, and stale entries are skipped when popped.
//   - Neighbor iteration follows core.Neighbors' sorted order, so ties
//     between equal-cost paths break deterministically toward the
//     lexicographically first discovery.
package dijkstra

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/routesim/core"
)

// Dijkstra computes shortest distances from source to all routers in g,
// or up to an optional target (WithTarget) for early exit.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//  4. A requested target must exist in g (ErrTargetNotFound).
//  5. No edge in g may have negative weight (ErrNegativeWeight).
//
// The returned Result carries the distance and predecessor maps plus the
// elapsed wall-clock time of the frontier loop; use Result.PathTo to
// reconstruct a concrete route.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
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

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	// 3) Pre-scan all edges to reject negative weights. Fail fast: running
	//    anyway would finalize distances too early and report wrong costs.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Initialize per-run state. Let V = number of nodes.
	nodes := g.Nodes()
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

	visited := make(map[string]bool, len(nodes))
	pq := make(nodePQ, 0, len(nodes))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	// 5) Frontier loop. Timing wraps the loop only, so Elapsed measures
	//    the algorithm rather than snapshot or validation overhead.
	start := time.Now()
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries left behind by lazy decrease-key.
		if visited[u] {
			continue
		}
		visited[u] = true

		// Early exit: the target's distance is final once it is extracted;
		// every node with a smaller distance has already been processed.
		if cfg.Target != "" && u == cfg.Target {
			break
		}

		// Relax all outgoing links of u (sorted by destination ID).
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range nbrs {
			next := res.Dist[u] + e.Weight
			if next >= res.Dist[e.To] {
				continue
			}
			res.Dist[e.To] = next
			res.Prev[e.To] = u
			heap.Push(&pq, &nodeItem{id: e.To, dist: next})
		}
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// nodeItem pairs a router with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Under lazy decrease-key, outdated entries remain in the heap and are
// discarded on extraction via the visited set.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders the heap: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
