// Package routesim is an educational network-routing simulator: a mutable
// topology of routers connected by weighted one-way links, two classic
// single-source shortest-path engines, and a comparator that runs them
// side by side.
//
// 🚀 What is routesim?
//
//	A small, thread-safe teaching library that brings together:
//		• Core primitives: add/remove routers & links safely under locks
//		• Dijkstra: priority-frontier search for non-negative weights
//		• Bellman-Ford: edge relaxation with negative-cycle detection
//		• Comparator: both engines on one snapshot, with core-loop timing
//		• Routing tables: per-router next-hop/cost views of the topology
//		• Builders: chains, cycles, stars and the six-router lab network
//
// ✨ Why routesim?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contrast – an engine that cannot answer is marked
//     inapplicable instead of guessing
//   - Deterministic – sorted enumeration, stable tie-breaks, repeatable runs
//
// Everything is organized under focused subpackages:
//
//	core/        — Graph, Node, Edge types & thread-safe mutation
//	dijkstra/    — shortest paths on non-negative weights
//	bellmanford/ — shortest paths with negative weights & cycle detection
//	compare/     — side-by-side engine reports
//	routing/     — per-router routing tables
//	builder/     — demo topology constructors
//	cmd/routesim — the interactive terminal front-end
//
// Quick ASCII example (one-way links; add both directions for two-way):
//
//	    A──4──B
//	    │    ╱│
//	    2   1 5
//	    │ ╱   │
//	    C──8──D
//
//	go get github.com/katalvlaran/routesim
package routesim
