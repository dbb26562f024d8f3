// Package core declares the Node, Edge, and Graph types, the sentinel
// errors for graph mutation, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates AddEdge was called for a (from,to) pair
	// that already carries an edge. Weights are never updated silently;
	// remove the edge first to change its weight.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Node represents a router in the topology.
//
// ID uniquely identifies the Node within its Graph; it is chosen by the
// caller (typically a short label such as "A" or "R1") and never changes.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string
}

// Edge represents a one-way link between two routers.
//
// Edge is a value type: the Graph hands out copies, so callers can hold
// on to Edges without observing later mutations.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the cost of traversing the link. Negative weights are
	// legal at the model level; individual engines decide whether they
	// can honor them.
	Weight int64
}

// Graph is the mutable in-memory network topology.
//
// It owns its Nodes and Edges and enforces the endpoint-existence
// invariant on every edge insertion. At most one edge exists per ordered
// (from,to) pair. mu guards nodes and adjacency together; every exported
// method takes the appropriate lock, so a Graph is safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	// nodes is the node catalog: node ID → Node.
	nodes map[string]*Node

	// adjacency[from][to] = weight. The outer map has a bucket for every
	// node (possibly empty), which lets Neighbors distinguish "no edges"
	// from "no such node" without consulting the catalog twice.
	adjacency map[string]map[string]int64

	// edgeCount caches the total number of edges so EdgeCount is O(1).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]int64),
	}
}
