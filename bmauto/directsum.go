package bmauto

import (
	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/matrix"
)

// DirectSum computes the block-diagonal union a ⊎ b: Q' = Qa ⊎ Qb with b's
// indices shifted by |Qa|. For each label present in either automaton,
// a.Mats[label] occupies the top-left block and b.Mats[label] the
// bottom-right; off-diagonal blocks are all zero.
func (a *BoolMatrixAutomaton) DirectSum(b *BoolMatrixAutomaton) *BoolMatrixAutomaton {
	qa, qb := a.N(), b.N()
	n := qa + qb

	states := make([]automaton.State, 0, n)
	states = append(states, a.States...)
	states = append(states, b.States...)
	idx := make(map[automaton.State]int, n)
	for i, s := range states {
		idx[s] = i
	}

	out := &BoolMatrixAutomaton{
		StateIdx: idx,
		States:   states,
		Start:    make(map[int]struct{}),
		Final:    make(map[int]struct{}),
		Mats:     make(map[string]*matrix.Bool),
	}
	for i := range a.Start {
		out.Start[i] = struct{}{}
	}
	for i := range b.Start {
		out.Start[qa+i] = struct{}{}
	}
	for i := range a.Final {
		out.Final[i] = struct{}{}
	}
	for i := range b.Final {
		out.Final[qa+i] = struct{}{}
	}

	for _, label := range unionOfLabels(a, b) {
		m, _ := matrix.NewBool(n, n)
		if am, ok := a.Mats[label]; ok {
			for _, c := range am.Nonzeros() {
				_ = m.Set(c.Row, c.Col)
			}
		}
		if bm, ok := b.Mats[label]; ok {
			for _, c := range bm.Nonzeros() {
				_ = m.Set(qa+c.Row, qa+c.Col)
			}
		}
		out.Mats[label] = m
	}

	return out
}
