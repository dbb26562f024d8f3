// File: methods_nodes.go
// Role: Node lifecycle and queries: AddNode/HasNode/RemoveNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "sort"

// AddNode inserts a new router with the given ID and no edges.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrDuplicateNode: if a node with this ID already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}

	g.nodes[id] = &Node{ID: id}
	// Bootstrap the adjacency bucket so edge methods can rely on its presence.
	g.adjacency[id] = make(map[string]int64)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes a router and every edge referencing it, incoming and
// outgoing, in a single atomic operation. After RemoveNode returns, no
// Neighbors() call on any remaining node mentions the removed ID.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist (graph unchanged).
//
// Complexity: O(V) to scan the per-source buckets for incoming edges.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	// Outgoing edges vanish with the node's own bucket.
	g.edgeCount -= len(g.adjacency[id])
	delete(g.adjacency, id)
	delete(g.nodes, id)

	// Incoming edges: drop id from every remaining bucket.
	for _, bucket := range g.adjacency {
		if _, ok := bucket[id]; ok {
			delete(bucket, id)
			g.edgeCount--
		}
	}

	return nil
}

// Nodes returns all node IDs in lexicographic ascending order.
// Algorithms rely on this stable enumeration for deterministic results.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of routers.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
