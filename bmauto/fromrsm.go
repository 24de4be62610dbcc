package bmauto

import (
	"sort"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/ecfg"
	"github.com/yarovoy/cfpq/grammar"
)

// FromRSM flattens rsm's per-nonterminal boxes into a single
// BoolMatrixAutomaton: every box's states are prefixed by their owning
// nonterminal via ecfg.BoxState, every box's start states become overall
// start states, every box's final states become overall final states (not
// just the top-level start symbol's box — the Tensor solver, package
// cfpq, needs every nonterminal's box start/final tracked so pair
// productions of any nonterminal can fire).
//
// The second return value maps each box-start State to the nonterminal it
// starts, letting the Tensor solver decode "the nonterminal tag of sf" in
// §4.I step 3.
func FromRSM(rsm *ecfg.RSM) (*BoolMatrixAutomaton, map[automaton.State]grammar.Nonterminal) {
	nts := make([]grammar.Nonterminal, 0, len(rsm.Boxes))
	for nt := range rsm.Boxes {
		nts = append(nts, nt)
	}
	sort.Slice(nts, func(i, j int) bool { return nts[i] < nts[j] })

	n := &automaton.NFA{}
	startOwner := map[automaton.State]grammar.Nonterminal{}

	for _, nt := range nts {
		box := rsm.Boxes[nt]
		for _, s := range box.States {
			n.States = append(n.States, ecfg.BoxState(nt, s))
		}
		startState := ecfg.BoxState(nt, box.Start)
		n.Start = append(n.Start, startState)
		startOwner[startState] = nt

		for s := range box.Final {
			n.Final = append(n.Final, ecfg.BoxState(nt, s))
		}
		for from, row := range box.Delta {
			for label, to := range row {
				n.Delta = append(n.Delta, automaton.Transition{From: ecfg.BoxState(nt, from), Label: label, To: ecfg.BoxState(nt, to)})
			}
		}
	}

	return FromNFA(n), startOwner
}
