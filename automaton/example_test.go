package automaton_test

import (
	"fmt"

	"github.com/yarovoy/cfpq/automaton"
)

// ExampleParseRegex builds a minimal DFA for "a (b|c)*" and checks a few
// words against it.
func ExampleParseRegex() {
	nfa, err := automaton.ParseRegex("a (b|c)*")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dfa := automaton.Minimize(automaton.ToDFA(nfa))

	for _, w := range [][]string{
		{"a"},
		{"a", "b", "c", "b"},
		{"b"},
		{},
	} {
		fmt.Println(dfa.Accepts(w))
	}

	// Output:
	// true
	// true
	// false
	// false
}
