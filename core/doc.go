// Package core defines LabeledGraph, the labeled directed multigraph that
// every solver package in this module (automaton, bmauto, cfpq, rpq, cyk)
// consumes as its data source.
//
// A LabeledGraph is a multidigraph G = (V, E): vertices are opaque string
// identifiers, edges carry a string Label (the empty label denotes an
// ε-edge), self-loops and parallel edges are always permitted. Vertices may
// additionally be marked Start/Final for convenience when building default
// start/final sets for queries.
//
// Concurrency: two separate sync.RWMutex locks guard state — muVert for the
// vertex catalog, muEdge for the edge catalog and adjacency index — so that
// callers may mutate a graph from one goroutine while another reads it via
// Vertices()/Edges()/NeighborIDs(), mirroring the locking discipline of the
// graph library this package is adapted from. Once handed to a solver,
// however, a LabeledGraph is treated as built-once/read-many: no solver in
// this module ever calls a mutating method.
//
// Determinism: Vertices() and Edges() return results sorted by ID so that
// downstream index assignment (bmauto.FromNFA's stateIdx) is reproducible
// across runs for the same graph.
package core

// Sentinel errors and construction live in types.go; mutating/query methods are split across methods_vertices.go,
// methods_edges.go and methods_adjacent.go; Clone lives in methods_clone.go.
