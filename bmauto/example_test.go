package bmauto_test

import (
	"fmt"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/bmauto"
)

// ExampleBoolMatrixAutomaton_Intersect builds the product of the Thompson
// NFAs of "a*" and "a a" and prints its state count (4 x 4) and the labels
// it keeps (ε and "a").
func ExampleBoolMatrixAutomaton_Intersect() {
	starNFA, err := automaton.ParseRegex("a*")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pairNFA, err := automaton.ParseRegex("a a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	star := bmauto.FromNFA(starNFA)
	pair := bmauto.FromNFA(pairNFA)

	prod, err := star.Intersect(pair)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("product states:", prod.N())
	fmt.Println("labels:", prod.Labels())

	// Output:
	// product states: 16
	// labels: [ a]
}
