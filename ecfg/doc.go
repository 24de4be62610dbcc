// Package ecfg implements Extended CFGs (one regex per nonterminal) and
// Recursive State Machines (one minimized-DFA "box" per nonterminal), plus
// the conversions between a grammar.CFG and either form.
package ecfg
