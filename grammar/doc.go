// Package grammar implements context-free grammars and their
// normalization pipeline: remove useless symbols, eliminate unit
// productions, remove useless symbols again, then decompose bodies to
// Weak Chomsky Normal Form (WCNF) — bodies of length 0 (ε), 1 (a single
// terminal), or 2 (two nonterminals), with ε permitted on non-start
// nonterminals.
package grammar
