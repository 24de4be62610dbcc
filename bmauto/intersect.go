package bmauto

import (
	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/matrix"
)

// Intersect computes the product automaton a & b. Q' = Qa x Qb with index
// (i,j) -> i*|Qb|+j — this numbering is normative: the Tensor solver
// (package cfpq) and the Tensor-RPQ solver decode product indices using
// exactly this convention.
//
// mats'[label] = kron(a.Mats[label], b.Mats[label]) for every label common
// to both alphabets. automaton.Eps is additionally propagated
// asynchronously in either factor (kron with the identity on the other
// factor), since an ε-move in one automaton does not require a
// simultaneous move in the other.
func (a *BoolMatrixAutomaton) Intersect(b *BoolMatrixAutomaton) (*BoolMatrixAutomaton, error) {
	qa, qb := a.N(), b.N()
	n := qa * qb

	states := make([]automaton.State, n)
	idx := make(map[automaton.State]int, n)
	for i := 0; i < qa; i++ {
		for j := 0; j < qb; j++ {
			st := automaton.NewPairState(a.States[i], b.States[j])
			k := i*qb + j
			states[k] = st
			idx[st] = k
		}
	}

	out := &BoolMatrixAutomaton{
		StateIdx: idx,
		States:   states,
		Start:    make(map[int]struct{}),
		Final:    make(map[int]struct{}),
		Mats:     make(map[string]*matrix.Bool),
	}
	for i := range a.Start {
		for j := range b.Start {
			out.Start[i*qb+j] = struct{}{}
		}
	}
	for i := range a.Final {
		for j := range b.Final {
			out.Final[i*qb+j] = struct{}{}
		}
	}

	idA := identity(qa)
	idB := identity(qb)

	for _, label := range intersectLabels(a, b) {
		if label == automaton.Eps {
			continue
		}
		prod, err := matrix.Kron(a.Mats[label], b.Mats[label])
		if err != nil {
			return nil, err
		}
		out.Mats[label] = prod
	}

	aEps, aHasEps := a.Mats[automaton.Eps]
	bEps, bHasEps := b.Mats[automaton.Eps]
	if aHasEps || bHasEps {
		acc, _ := matrix.NewBool(n, n)
		if aHasEps {
			left, err := matrix.Kron(aEps, idB)
			if err != nil {
				return nil, err
			}
			acc, err = matrix.Or(acc, left)
			if err != nil {
				return nil, err
			}
		}
		if bHasEps {
			right, err := matrix.Kron(idA, bEps)
			if err != nil {
				return nil, err
			}
			acc, err = matrix.Or(acc, right)
			if err != nil {
				return nil, err
			}
		}
		out.Mats[automaton.Eps] = acc
	}

	return out, nil
}

func identity(n int) *matrix.Bool {
	m, _ := matrix.NewBool(n, n)
	m.SetDiagonal()

	return m
}
