// Package builder provides deterministic topology constructors for the
// routesim laboratory: canonical shapes (path, cycle, star) plus the
// six-router teaching network, ready to feed the engines, the comparator,
// tests, and benchmarks.
//
// Contract shared by all constructors:
//   - Node IDs are inserted and linked in the order given; edge emission
//     order is stable, so two invocations produce identical graphs.
//   - Weight policy: cfg.weightFn(i) per emitted edge index, default
//     constant 1. Weights may be negative to stage Bellman-Ford scenarios.
//   - Only sentinel errors are returned; constructors never panic.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routesim/core"
)

// DefaultEdgeWeight is assigned to each link when no WeightFn is supplied.
const DefaultEdgeWeight int64 = 1

// Sentinel errors for topology construction.
var (
	// ErrTooFewNodes indicates a shape was requested with fewer node IDs
	// than it needs (path/cycle: 2, star: a center plus one leaf).
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrDuplicateID indicates the same node ID was supplied twice.
	ErrDuplicateID = errors.New("builder: duplicate node ID")
)

// WeightFn produces the weight for the i-th emitted edge (0-based).
// It must be deterministic for reproducible topologies.
type WeightFn func(i int) int64

// Option configures topology construction.
type Option func(*config)

// config carries the construction policy shared by all shapes.
type config struct {
	weightFn WeightFn
	mirrored bool
}

// WithWeightFn overrides the per-edge weight policy.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithMirrored emits every link in both directions, modeling a two-way
// connection in the directed graph (the i-th pair shares one weight).
func WithMirrored() Option {
	return func(c *config) { c.mirrored = true }
}

// defaultConfig returns the baseline policy: constant weight 1, one-way links.
func defaultConfig() config {
	return config{
		weightFn: func(int) int64 { return DefaultEdgeWeight },
		mirrored: false,
	}
}

// Path builds the simple path ids[0]→ids[1]→...→ids[n-1].
// Complexity: O(n).
func Path(ids []string, opts ...Option) (*core.Graph, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("Path: n=%d: %w", len(ids), ErrTooFewNodes)
	}
	g, cfg, err := seed(ids, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(ids); i++ {
		if err = link(g, cfg, i-1, ids[i-1], ids[i]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the closed ring ids[0]→ids[1]→...→ids[n-1]→ids[0].
// With a negative-sum WeightFn this is the canonical negative-cycle stage.
// Complexity: O(n).
func Cycle(ids []string, opts ...Option) (*core.Graph, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", len(ids), ErrTooFewNodes)
	}
	g, cfg, err := seed(ids, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(ids); i++ {
		if err = link(g, cfg, i, ids[i], ids[(i+1)%len(ids)]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds links from the center to every leaf: center→leaf[i].
// Complexity: O(n).
func Star(center string, leaves []string, opts ...Option) (*core.Graph, error) {
	if len(leaves) < 1 {
		return nil, fmt.Errorf("Star: leaves=%d: %w", len(leaves), ErrTooFewNodes)
	}
	g, cfg, err := seed(append([]string{center}, leaves...), opts)
	if err != nil {
		return nil, err
	}
	for i, leaf := range leaves {
		if err = link(g, cfg, i, center, leaf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Lab builds the six-router teaching network used by the interactive
// simulator: routers A..F with mirrored links
//
//	A—B(4), A—C(2), B—C(1), B—D(5), C—D(8), C—E(10), D—E(2), D—F(6), E—F(3).
//
// Complexity: O(1) — fixed topology.
func Lab() *core.Graph {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		// Fixed distinct IDs: AddNode cannot fail here.
		_ = g.AddNode(id)
	}
	pairs := []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1},
		{"B", "D", 5}, {"C", "D", 8}, {"C", "E", 10},
		{"D", "E", 2}, {"D", "F", 6}, {"E", "F", 3},
	}
	for _, p := range pairs {
		_ = g.AddEdge(p.u, p.v, p.w)
		_ = g.AddEdge(p.v, p.u, p.w)
	}

	return g
}

// seed applies options and registers all node IDs on a fresh graph.
func seed(ids []string, opts []Option) (*core.Graph, config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph()
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			if errors.Is(err, core.ErrDuplicateNode) {
				return nil, cfg, fmt.Errorf("%w: %q", ErrDuplicateID, id)
			}
			return nil, cfg, err
		}
	}

	return g, cfg, nil
}

// link emits the i-th edge u→v (and the mirror v→u when configured).
func link(g *core.Graph, cfg config, i int, u, v string) error {
	w := cfg.weightFn(i)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("builder: AddEdge(%s→%s): %w", u, v, err)
	}
	if cfg.mirrored {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("builder: AddEdge(%s→%s): %w", v, u, err)
		}
	}

	return nil
}
