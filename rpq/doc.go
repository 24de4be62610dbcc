// Package rpq answers regular-path queries over a labeled multigraph: does
// a path from u to v exist whose edge-label sequence matches a regex,
// subject to an optional start/final vertex restriction? Two solvers are
// offered — Tensor (product automaton + transitive closure) and BFS
// (multi-source synchronous BFS) — per §4.J.
package rpq
