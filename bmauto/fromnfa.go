package bmauto

import (
	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/matrix"
)

// FromNFA assigns indices to n.States in the order they appear and builds
// one (n,n) matrix per label (including automaton.Eps), per §4.B.
func FromNFA(n *automaton.NFA) *BoolMatrixAutomaton {
	size := len(n.States)
	idx := make(map[automaton.State]int, size)
	for i, s := range n.States {
		idx[s] = i
	}

	b := &BoolMatrixAutomaton{
		StateIdx: idx,
		States:   append([]automaton.State(nil), n.States...),
		Start:    make(map[int]struct{}),
		Final:    make(map[int]struct{}),
		Mats:     make(map[string]*matrix.Bool),
	}
	for _, s := range n.Start {
		b.Start[idx[s]] = struct{}{}
	}
	for _, s := range n.Final {
		b.Final[idx[s]] = struct{}{}
	}

	for _, t := range n.Delta {
		m, ok := b.Mats[t.Label]
		if !ok {
			m, _ = matrix.NewBool(size, size)
			b.Mats[t.Label] = m
		}
		_ = m.Set(idx[t.From], idx[t.To])
	}

	return b
}

// ToNFA is the inverse of FromNFA: it enumerates every matrix's nonzeros
// back into Transitions.
func (b *BoolMatrixAutomaton) ToNFA() *automaton.NFA {
	n := &automaton.NFA{States: append([]automaton.State(nil), b.States...)}
	for i := range b.States {
		if _, ok := b.Start[i]; ok {
			n.Start = append(n.Start, b.States[i])
		}
		if _, ok := b.Final[i]; ok {
			n.Final = append(n.Final, b.States[i])
		}
	}

	for _, label := range b.Labels() {
		m := b.Mats[label]
		for _, c := range m.Nonzeros() {
			n.Delta = append(n.Delta, automaton.Transition{From: b.States[c.Row], Label: label, To: b.States[c.Col]})
		}
	}

	return n
}
