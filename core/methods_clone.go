// File: methods_clone.go
// Role: Snapshotting and resetting graph instances.
// Concurrency:
//   - Clone holds the read lock for the full copy, so the snapshot is a
//     consistent point-in-time view even under concurrent mutation.

package core

// Clone returns a deep copy of the Graph: nodes, edges, and weights.
//
// Engines take a Clone() at invocation time and run against it, so a graph
// edit made mid-computation is never observed by an in-flight run.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.edgeCount = g.edgeCount
	for id := range g.nodes {
		clone.nodes[id] = &Node{ID: id}
		clone.adjacency[id] = make(map[string]int64, len(g.adjacency[id]))
	}
	for from, bucket := range g.adjacency {
		for to, w := range bucket {
			clone.adjacency[from][to] = w
		}
	}

	return clone
}

// Clear resets the graph to an empty state.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.adjacency = make(map[string]map[string]int64)
	g.edgeCount = 0
}
