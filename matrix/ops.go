package matrix

// Or computes the elementwise boolean OR of a and b. Both must share the
// same shape. Complexity: O(r) bitset unions.
func Or(a, b *Bool) (*Bool, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}

	out, _ := NewBool(a.r, a.c)
	for i := 0; i < a.r; i++ {
		switch {
		case a.rows[i] == nil && b.rows[i] == nil:
			continue
		case a.rows[i] == nil:
			out.rows[i] = b.rows[i].Clone()
		case b.rows[i] == nil:
			out.rows[i] = a.rows[i].Clone()
		default:
			out.rows[i] = a.rows[i].Union(b.rows[i])
		}
	}

	return out, nil
}

// Mul computes the boolean-semiring product a·b: result[i,k] = ⋁_j a[i,j] ∧
// b[j,k]. Requires a.Cols() == b.Rows().
//
// Implementation: for each row i of a, OR together the rows of b indexed by
// a's nonzero columns in that row. Complexity: O(Σ_i nnz(a row i) · words(c)).
func Mul(a, b *Bool) (*Bool, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}

	out, _ := NewBool(a.r, b.c)
	for i := 0; i < a.r; i++ {
		ar := a.rows[i]
		if ar == nil {
			continue
		}
		for j, ok := ar.NextSet(0); ok; j, ok = ar.NextSet(j + 1) {
			br := b.rows[j]
			if br == nil || br.Count() == 0 {
				continue
			}
			if out.rows[i] == nil {
				out.rows[i] = br.Clone()
			} else {
				out.rows[i].InPlaceUnion(br)
			}
		}
	}

	return out, nil
}

// Kron computes the Kronecker product of a (ra×ca) and b (rb×cb): the
// result has shape (ra·rb, ca·cb) and
//
//	result[i·rb+k, j·cb+l] = a[i,j] ∧ b[k,l].
//
// This index mapping is normative: package bmauto's Intersect decodes
// product states using the same (i·rb+k) convention.
// Complexity: O(nnz(a) · nnz(b)) in the worst case.
func Kron(a, b *Bool) (*Bool, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}

	rb, cb := b.r, b.c
	out, _ := NewBool(a.r*rb, a.c*cb)
	if rb == 0 || cb == 0 {
		return out, nil
	}

	for _, ac := range a.Nonzeros() {
		for _, bc := range b.Nonzeros() {
			row := ac.Row*rb + bc.Row
			col := ac.Col*cb + bc.Col
			out.row(row).Set(uint(col))
		}
	}

	return out, nil
}
