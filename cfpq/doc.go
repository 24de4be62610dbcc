// Package cfpq implements the three context-free path-query solvers —
// Hellings (worklist fixpoint over CFG triples), Matrix (per-nonterminal
// matrix fixpoint over WCNF), and Tensor (Kronecker of an RSM matrix with
// the graph matrix) — sharing a WCNF partition helper that splits a
// normalized grammar's productions into ε-heads, term-heads, and
// pair-heads.
package cfpq
