// Package automaton implements finite automata over string alphabets: an
// ε-NFA type used as the common currency between regex parsing (ParseRegex),
// graph lifting (FromGraph), and the deterministic views built from either
// (ToDFA, Minimize).
//
// States are values, not references: State wraps an opaque payload plus a
// Kind discriminator so states minted by unrelated constructions (a regex
// NFA's integer states, a graph's vertex-ID states, a product automaton's
// pair states) are never confused with each other, and so pair states
// remain comparable and map-keyable for package bmauto's StateIdx.
package automaton
