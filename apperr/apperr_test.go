package apperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/apperr"
)

func TestCategoryString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ParseError", apperr.CategoryParse.String())
	require.Equal(t, "UnsupportedError", apperr.CategoryUnsupported.String())
	require.Equal(t, "ShapeError", apperr.CategoryShape.String())
}

func TestIsMatchesByCategory(t *testing.T) {
	t.Parallel()

	err := apperr.Parse("line %d lacks ->", 3)
	require.True(t, errors.Is(err, apperr.Parse("anything")))
	require.False(t, errors.Is(err, apperr.Shape("anything")))
}

func TestWrapPreservesCategoryAndUnwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := apperr.Wrap(apperr.Unsupported("gpu backend"), cause)

	require.ErrorIs(t, err, cause)
	require.True(t, errors.Is(err, apperr.Unsupported("x")))
	require.Contains(t, err.Error(), "boom")
}

func TestEmptyInputSentinel(t *testing.T) {
	t.Parallel()

	require.True(t, errors.Is(apperr.EmptyInput, apperr.EmptyInput))
}
