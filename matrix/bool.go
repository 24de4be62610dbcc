package matrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Bool is a sparse r×c boolean matrix, one *bitset.BitSet per row.
//
// The (0, 0) shape is legal (the empty automaton's matrix, per §3): Rows()
// and Cols() both report 0 and every operation on it degenerates to a
// no-op or another (0, 0)/zero-shaped matrix.
type Bool struct {
	r, c int
	rows []*bitset.BitSet
}

// NewBool allocates a fresh r×c all-zero Bool matrix.
// Complexity: O(r) — rows are allocated lazily on first Set.
func NewBool(r, c int) (*Bool, error) {
	if r < 0 || c < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Bool{r: r, c: c, rows: make([]*bitset.BitSet, r)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Bool) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Bool) Cols() int { return m.c }

func (m *Bool) boundsCheck(method string, i, j int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Bool.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return nil
}

// row returns (allocating if necessary) the bitset backing row i. Callers
// must have already bounds-checked i.
func (m *Bool) row(i int) *bitset.BitSet {
	if m.rows[i] == nil {
		m.rows[i] = bitset.New(uint(m.c))
	}

	return m.rows[i]
}

// Set sets entry (i, j) to 1. Complexity: O(1) amortized.
func (m *Bool) Set(i, j int) error {
	if err := m.boundsCheck("Set", i, j); err != nil {
		return err
	}
	m.row(i).Set(uint(j))

	return nil
}

// Clear sets entry (i, j) to 0. Complexity: O(1).
func (m *Bool) Clear(i, j int) error {
	if err := m.boundsCheck("Clear", i, j); err != nil {
		return err
	}
	if m.rows[i] != nil {
		m.rows[i].Clear(uint(j))
	}

	return nil
}

// Get reports whether entry (i, j) is 1. Complexity: O(1).
func (m *Bool) Get(i, j int) (bool, error) {
	if err := m.boundsCheck("Get", i, j); err != nil {
		return false, err
	}
	if m.rows[i] == nil {
		return false, nil
	}

	return m.rows[i].Test(uint(j)), nil
}

// SetDiagonal sets every (i, i) entry to 1, for i in [0, min(r,c)). Used to
// materialize reflexive-closure matrices (nullable nonterminals in Tensor
// CFPQ, ε-heads in Matrix CFPQ, the identity factors of bmauto.Intersect's
// ε propagation).
func (m *Bool) SetDiagonal() {
	n := m.r
	if m.c < n {
		n = m.c
	}
	for i := 0; i < n; i++ {
		m.row(i).Set(uint(i))
	}
}

// Nnz returns the number of set entries. Complexity: O(r) popcounts.
func (m *Bool) Nnz() int {
	if m == nil {
		return 0
	}
	total := uint(0)
	for _, row := range m.rows {
		if row != nil {
			total += row.Count()
		}
	}

	return int(total)
}

// Coord is a (row, col) coordinate of a nonzero entry.
type Coord struct{ Row, Col int }

// Nonzeros returns every set (i, j) coordinate in row-major order.
// Complexity: O(r + nnz).
func (m *Bool) Nonzeros() []Coord {
	if m == nil {
		return nil
	}
	var out []Coord
	for i, row := range m.rows {
		if row == nil {
			continue
		}
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out = append(out, Coord{Row: i, Col: int(j)})
		}
	}

	return out
}

// NonzeroCols returns the sorted set of columns with a 1 in row i.
// Complexity: O(nnz(row i)).
func (m *Bool) NonzeroCols(i int) []int {
	if m == nil || i < 0 || i >= m.r || m.rows[i] == nil {
		return nil
	}
	var out []int
	row := m.rows[i]
	for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}

// Clone returns a deep, independent copy of m.
func (m *Bool) Clone() *Bool {
	out := &Bool{r: m.r, c: m.c, rows: make([]*bitset.BitSet, m.r)}
	for i, row := range m.rows {
		if row != nil {
			out.rows[i] = row.Clone()
		}
	}

	return out
}

// Equal reports whether m and other have the same shape and the same set
// entries.
func (m *Bool) Equal(other *Bool) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		a, b := m.rows[i], other.rows[i]
		switch {
		case a == nil && b == nil:
			continue
		case a == nil:
			if b.Count() != 0 {
				return false
			}
		case b == nil:
			if a.Count() != 0 {
				return false
			}
		default:
			if !a.Equal(b) {
				return false
			}
		}
	}

	return true
}
