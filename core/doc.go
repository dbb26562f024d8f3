// Package core defines the central Graph, Node, and Edge types of routesim:
// an in-memory network topology of routers joined by weighted one-way links.
//
// The Graph is the single source of truth for every algorithm and renderer.
// All links are directed; to model a two-way connection, add both the A→B
// and the B→A edge explicitly. Weights are int64 and may be negative, so
// the same topology can exercise both Dijkstra (which rejects negative
// weights) and Bellman-Ford (which tolerates them).
//
// Guarantees:
//
//   - Every mutation is atomic: it either fully applies or leaves the graph
//     untouched, and it returns a sentinel error on misuse.
//   - Edge endpoints always exist as nodes; removing a node removes every
//     incident edge, incoming and outgoing, in the same operation.
//   - Enumerations (Nodes, Edges, Neighbors) are sorted, giving algorithms
//     a deterministic iteration surface.
//   - A sync.RWMutex guards all state, so a Graph may be shared across
//     goroutines; engines work on a Clone() snapshot and never observe
//     edits made mid-computation.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - AddNode with an ID that is already present.
//	ErrNodeNotFound  - operation referenced a non-existent node.
//	ErrDuplicateEdge - AddEdge for a (from,to) pair that already exists.
//	ErrEdgeNotFound  - operation referenced a non-existent edge.
package core
