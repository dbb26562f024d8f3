// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/HasEdge/Weight/
//       Neighbors/Edges/EdgeCount/HasNegativeEdge.
// Determinism:
//   - Edges() is sorted by (From, To) asc; Neighbors() by To asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts a one-way link from → to with the given weight.
// Both endpoints must already exist; edges never auto-create nodes.
//
// Errors:
//   - ErrEmptyNodeID: if either endpoint ID is empty.
//   - ErrNodeNotFound: if either endpoint is absent (wrapped with the ID).
//   - ErrDuplicateEdge: if an edge from → to already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	if _, ok := g.adjacency[from][to]; ok {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}

	g.adjacency[from][to] = weight
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the one-way link from → to.
// Removing a link in one direction never touches its mirror.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists (graph unchanged).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	delete(g.adjacency[from], to)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the one-way link from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge from → to.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Neighbors returns the outgoing edges of the given node, sorted by
// destination ID ascending. Directed semantics: only edges leaving id are
// reported; an incoming edge never appears in its target's neighbor list.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	out := make([]Edge, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Edges returns every edge in the graph sorted by (From, To) ascending.
// The stable order makes relaxation sweeps and test assertions reproducible.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, w := range bucket {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasNegativeEdge reports whether any edge carries a negative weight.
// Dijkstra callers use this as a cheap admission check.
// Complexity: O(E).
func (g *Graph) HasNegativeEdge() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, bucket := range g.adjacency {
		for _, w := range bucket {
			if w < 0 {
				return true
			}
		}
	}

	return false
}
