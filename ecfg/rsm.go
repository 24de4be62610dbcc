package ecfg

import (
	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/grammar"
)

// ECFGToRSM parses each head's regex into an ε-NFA (Thompson construction)
// and determinizes it (subset construction); the result is that head's
// box. Boxes are not minimized here — MinimizeRSM is a separate step.
func ECFGToRSM(e *ECFG) (*RSM, error) {
	out := &RSM{Start: e.Start, Boxes: map[grammar.Nonterminal]*automaton.DFA{}}
	for nt, regexText := range e.Rules {
		nfa, err := automaton.ParseRegex(regexText)
		if err != nil {
			return nil, err
		}
		out.Boxes[nt] = automaton.ToDFA(nfa)
	}

	return out, nil
}

// MinimizeRSM replaces each box with its minimal DFA, preserving the
// language of every nonterminal.
func MinimizeRSM(rsm *RSM) *RSM {
	out := &RSM{Start: rsm.Start, Boxes: map[grammar.Nonterminal]*automaton.DFA{}}
	for nt, box := range rsm.Boxes {
		out.Boxes[nt] = automaton.Minimize(box)
	}

	return out
}
