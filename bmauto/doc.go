// Package bmauto implements BoolMatrixAutomaton, the index-based view of an
// automaton that backs every CFPQ/RPQ solver: one sparse boolean matrix
// (package matrix) per label, a state-index bijection, and start/final sets.
//
// Intersection is a Kronecker product, transitive closure is an iterated
// self-product under OR, direct sum is a block-diagonal union, and
// synchronous BFS drives the RPQ solvers without ever materializing a full
// product automaton. All four operations return freshly allocated objects
// and leave their operands untouched.
package bmauto
