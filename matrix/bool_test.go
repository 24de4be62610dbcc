package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/matrix"
)

func TestNewBool_RejectsNegativeDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewBool(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSetGetClear(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewBool(3, 3)
	require.NoError(t, err)

	ok, err := m.Get(1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(1, 1))
	ok, err = m.Get(1, 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.Clear(1, 1))
	ok, err = m.Get(1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewBool(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(5, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1), matrix.ErrOutOfRange)
	_, err = m.Get(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetDiagonal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewBool(2, 3)
	require.NoError(t, err)
	m.SetDiagonal()

	for i := 0; i < 2; i++ {
		ok, err := m.Get(i, i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := m.Get(0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNnzAndNonzeros(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewBool(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, m.Nnz())

	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 0))
	require.Equal(t, 2, m.Nnz())
	require.Equal(t, []matrix.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, m.Nonzeros())
	require.Equal(t, []int{1}, m.NonzeroCols(0))
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewBool(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0))

	clone := m.Clone()
	require.NoError(t, clone.Set(1, 1))

	require.Equal(t, 1, m.Nnz())
	require.Equal(t, 2, clone.Nnz())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewBool(2, 2)
	b, _ := matrix.NewBool(2, 2)
	require.True(t, a.Equal(b))

	require.NoError(t, a.Set(0, 1))
	require.False(t, a.Equal(b))

	require.NoError(t, b.Set(0, 1))
	require.True(t, a.Equal(b))

	c, _ := matrix.NewBool(3, 2)
	require.False(t, a.Equal(c))
}

func TestOr(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewBool(2, 2)
	_ = a.Set(0, 0)
	b, _ := matrix.NewBool(2, 2)
	_ = b.Set(0, 1)
	_ = b.Set(1, 1)

	out, err := matrix.Or(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, out.Nnz())

	// inputs untouched
	require.Equal(t, 1, a.Nnz())
	require.Equal(t, 2, b.Nnz())

	_, err = matrix.Or(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	c, _ := matrix.NewBool(3, 2)
	_, err = matrix.Or(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul(t *testing.T) {
	t.Parallel()

	// a: 2x3, b: 3x2
	a, _ := matrix.NewBool(2, 3)
	_ = a.Set(0, 0)
	_ = a.Set(0, 2)
	_ = a.Set(1, 1)

	b, _ := matrix.NewBool(3, 2)
	_ = b.Set(0, 0)
	_ = b.Set(2, 1)
	_ = b.Set(1, 0)

	out, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())

	// row0 = a[0,0]*b[0,:] | a[0,2]*b[2,:] = {0,0}∪{2,1}-cols -> b row0={0}, row2={1}
	ok, _ := out.Get(0, 0)
	require.True(t, ok)
	ok, _ = out.Get(0, 1)
	require.True(t, ok)

	// row1 = a[1,1]*b[1,:] = b row1 = {0}
	ok, _ = out.Get(1, 0)
	require.True(t, ok)
	ok, _ = out.Get(1, 1)
	require.False(t, ok)

	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	mismatched, _ := matrix.NewBool(2, 2)
	_, err = matrix.Mul(a, mismatched)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestKron(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewBool(2, 2)
	_ = a.Set(0, 1)

	b, _ := matrix.NewBool(2, 2)
	_ = b.Set(1, 0)

	out, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 4, out.Cols())

	// a[0,1]=1, b[1,0]=1 => result[0*2+1, 1*2+0] = result[1,2] = 1
	ok, err := out.Get(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, out.Nnz())
}

func TestKron_ZeroShapeOperand(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewBool(2, 2)
	b, _ := matrix.NewBool(0, 0)

	out, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, out.Rows())
	require.Equal(t, 0, out.Cols())
}

func TestKron_NilOperand(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewBool(2, 2)
	_, err := matrix.Kron(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
