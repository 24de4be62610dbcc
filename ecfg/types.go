package ecfg

import (
	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/grammar"
)

// ECFG is (S0, V, R): R maps each nonterminal to the regex (over V ∪ T)
// describing its right-hand side. Each head appears exactly once.
type ECFG struct {
	Start grammar.Nonterminal
	Rules map[grammar.Nonterminal]string
}

// RSM is (S0, B): B maps each nonterminal to its DFA box (minimal once
// MinimizeRSM has run; ECFGToRSM alone leaves boxes unminimized). Box
// states are considered unique across boxes (conceptually labeled (v, q));
// BoxState below is the concrete State wrapper enforcing that.
type RSM struct {
	Start grammar.Nonterminal
	Boxes map[grammar.Nonterminal]*automaton.DFA
}

// BoxState wraps an inner DFA state with its owning nonterminal so that
// states from different boxes never collide when an RSM is flattened into
// a single automaton (package bmauto's FromRSM).
func BoxState(nt grammar.Nonterminal, inner automaton.State) automaton.State {
	return automaton.State{Value: [2]any{string(nt), inner}, Kind: "rsm-box"}
}
