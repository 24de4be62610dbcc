package bmauto

import "github.com/yarovoy/cfpq/matrix"

// TransitiveClosure returns C[i,j] = 1 iff some nonempty edge sequence,
// regardless of label, connects i to j (reflexive closure is not
// included). Algorithm: M := OR over all labels' matrices; repeat M := M OR
// (M * M) until nnz stops changing.
func (a *BoolMatrixAutomaton) TransitiveClosure() (*matrix.Bool, error) {
	n := a.N()
	m, _ := matrix.NewBool(n, n)
	for _, label := range a.Labels() {
		next, err := matrix.Or(m, a.Mats[label])
		if err != nil {
			return nil, err
		}
		m = next
	}

	for {
		sq, err := matrix.Mul(m, m)
		if err != nil {
			return nil, err
		}
		next, err := matrix.Or(m, sq)
		if err != nil {
			return nil, err
		}
		if next.Nnz() == m.Nnz() {
			return next, nil
		}
		m = next
	}
}
