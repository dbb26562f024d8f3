// Package routing derives per-router routing tables from the shortest-path
// engines: for every destination, the next hop to forward to and the total
// cost of the route.
//
// A Table answers the question a real router asks ("where do I send a
// packet for D?") without storing whole paths: only the first hop after
// the source is kept, exactly as a distance-vector or link-state table
// would. BuildAll recomputes the table of every router in the topology and
// records the wall-clock time of the sweep, which is the figure the lab
// uses to contrast the two algorithms at scale.
package routing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/routesim/bellmanford"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/dijkstra"
)

// Algorithm selects the engine used to populate routing tables.
type Algorithm string

// Engines available to Build/BuildAll.
const (
	AlgoDijkstra    Algorithm = "dijkstra"
	AlgoBellmanFord Algorithm = "bellman-ford"
)

// Sentinel errors for table construction.
var (
	// ErrUnknownAlgorithm indicates an Algorithm value outside the two engines.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")

	// ErrNegativeWeight indicates Dijkstra tables were requested on a
	// topology with a negative link weight.
	ErrNegativeWeight = errors.New("routing: negative weights require bellman-ford")

	// ErrNegativeCycle indicates the topology contains a negative cycle
	// reachable from some router; no consistent tables exist.
	ErrNegativeCycle = errors.New("routing: negative cycle in topology")
)

// Route is one table row: the next hop toward a destination and the total
// cost of the shortest route there.
type Route struct {
	// NextHop is the neighbor to forward to; the router's own ID for the
	// self-route.
	NextHop string

	// Cost is the total weight of the shortest route to the destination.
	Cost int64
}

// Table holds one router's routes keyed by destination ID. Destinations
// the router cannot reach are absent.
type Table struct {
	// Router is the table's owner (the source of every route).
	Router string

	// Routes maps destination ID → Route.
	Routes map[string]Route
}

// TableSet holds the tables of every router in a topology, plus the
// wall-clock duration of the full recomputation sweep.
type TableSet struct {
	// Algorithm names the engine that populated the set.
	Algorithm Algorithm

	// Tables maps router ID → its Table.
	Tables map[string]*Table

	// Elapsed is the total engine time of the sweep (per-run core-loop
	// times summed; table assembly is excluded).
	Elapsed time.Duration
}

// Build computes the routing table of a single router using the selected
// algorithm.
//
// Errors:
//   - ErrUnknownAlgorithm: algo is not one of the two engines.
//   - ErrNegativeWeight: algo is AlgoDijkstra and g has a negative link.
//   - ErrNegativeCycle: algo is AlgoBellmanFord and a negative cycle is
//     reachable from source.
//   - Engine validation errors (nil graph, unknown source) pass through.
//
// Complexity: O((V+E) log V) for Dijkstra, O(V·E) for Bellman-Ford.
func Build(g *core.Graph, algo Algorithm, source string) (*Table, error) {
	dist, prev, _, err := distances(g, algo, source)
	if err != nil {
		return nil, err
	}

	return assemble(source, dist, prev), nil
}

// BuildAll recomputes the routing tables of every router in g.
// The sweep fails fast on the first router whose run is inapplicable
// (negative weight for Dijkstra) or tainted (negative cycle).
//
// Complexity: V engine runs — O(V·(V+E) log V) or O(V²·E).
func BuildAll(g *core.Graph, algo Algorithm) (*TableSet, error) {
	if g == nil {
		return nil, fmt.Errorf("routing: %w", bellmanford.ErrNilGraph)
	}

	set := &TableSet{
		Algorithm: algo,
		Tables:    make(map[string]*Table, g.NodeCount()),
	}
	for _, source := range g.Nodes() {
		dist, prev, elapsed, err := distances(g, algo, source)
		if err != nil {
			return nil, fmt.Errorf("routing: tables for %q: %w", source, err)
		}
		set.Tables[source] = assemble(source, dist, prev)
		set.Elapsed += elapsed
	}

	return set, nil
}

// distances runs the selected engine and normalizes its outputs.
func distances(g *core.Graph, algo Algorithm, source string) (map[string]int64, map[string]string, time.Duration, error) {
	switch algo {
	case AlgoDijkstra:
		if g != nil && g.HasNegativeEdge() {
			return nil, nil, 0, ErrNegativeWeight
		}
		res, err := dijkstra.Dijkstra(g, source)
		if err != nil {
			return nil, nil, 0, err
		}

		return res.Dist, res.Prev, res.Elapsed, nil

	case AlgoBellmanFord:
		res, err := bellmanford.BellmanFord(g, source)
		if err != nil {
			return nil, nil, 0, err
		}
		if res.NegativeCycle {
			return nil, nil, 0, fmt.Errorf("%w: witness edge %s→%s",
				ErrNegativeCycle, res.Witness.From, res.Witness.To)
		}

		return res.Dist, res.Prev, res.Elapsed, nil

	default:
		return nil, nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// assemble folds dist/prev maps into a Table, deriving each destination's
// next hop by walking predecessors back until the router's direct neighbor.
func assemble(source string, dist map[string]int64, prev map[string]string) *Table {
	t := &Table{
		Router: source,
		Routes: make(map[string]Route, len(dist)),
	}
	for dest, d := range dist {
		if d == dijkstra.Inf { // both engines share the same Inf value
			continue // unreachable: no row
		}
		t.Routes[dest] = Route{NextHop: nextHop(source, dest, prev), Cost: d}
	}

	return t
}

// nextHop returns the first hop after source on the path to dest
// (dest's own ID when directly adjacent, source's for the self-route).
func nextHop(source, dest string, prev map[string]string) string {
	if dest == source {
		return source
	}
	hop := dest
	for prev[hop] != source {
		hop = prev[hop]
	}

	return hop
}

// String renders every table in the set, routers and destinations sorted,
// in the lab's fixed-width "Destination | Next Hop | Cost" layout.
func (s *TableSet) String() string {
	var b strings.Builder

	routers := make([]string, 0, len(s.Tables))
	for id := range s.Tables {
		routers = append(routers, id)
	}
	sort.Strings(routers)

	for _, id := range routers {
		t := s.Tables[id]
		fmt.Fprintf(&b, "======= Router: %s =======\n", id)
		b.WriteString("Destination | Next Hop | Cost\n")
		b.WriteString("-----------------------------\n")

		dests := make([]string, 0, len(t.Routes))
		for dest := range t.Routes {
			dests = append(dests, dest)
		}
		sort.Strings(dests)
		for _, dest := range dests {
			r := t.Routes[dest]
			fmt.Fprintf(&b, "%-12s| %-9s| %d\n", dest, r.NextHop, r.Cost)
		}
	}

	return b.String()
}
