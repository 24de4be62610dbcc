// Package cfpq evaluates formal-language-constrained reachability over
// labeled directed multigraphs: regular-path queries (a path whose edge
// labels match a regex) and context-free-path queries (a path whose edge
// labels match a context-free grammar).
//
// The root package holds no exported API; it is organized under
// subpackages, one per component:
//
//	core/      — LabeledGraph, the labeled directed multigraph data model
//	automaton/ — regex -> DFA, graph -> ε-NFA, DFA minimization
//	matrix/    — sparse boolean matrix
//	bmauto/    — boolean-matrix automaton: intersect, transitive closure, sync BFS
//	grammar/   — CFG normalization (WCNF, strict CNF, unit/useless elimination)
//	ecfg/      — extended CFGs and recursive state machines
//	cfpq/      — Hellings, Matrix, and Tensor CFPQ solvers
//	rpq/       — Tensor and synchronous-BFS RPQ solvers
//	cyk/       — CYK context-free membership
//	apperr/    — shared error categories (parse, unsupported, shape, empty input)
//	testgraphs/ — deterministic graph constructors for tests and benchmarks
package cfpq
