package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/grammar"
)

func TestNullable_DirectEpsilon(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> \nS -> a S a\n", "S")
	require.NoError(t, err)

	null := grammar.Nullable(cfg)
	require.True(t, null["S"])
}

func TestNullable_TransitiveThroughNonterminals(t *testing.T) {
	t.Parallel()

	cfg := &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.NT("A"), grammar.NT("B")}},
			{Head: "A", Body: nil},
			{Head: "B", Body: nil},
		},
	}

	null := grammar.Nullable(cfg)
	require.True(t, null["A"])
	require.True(t, null["B"])
	require.True(t, null["S"])
}

func TestNullable_NeverNullable(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> a S\nS -> a\n", "S")
	require.NoError(t, err)

	null := grammar.Nullable(cfg)
	require.False(t, null["S"])
}
