package cyk_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/cyk"
	"github.com/yarovoy/cfpq/grammar"
)

// TestAccepts_S4 exercises spec scenario S4: S -> a S b | a b;
// cyk("ab")=true, cyk("aabb")=true, cyk("abab")=false, cyk("")=false.
func TestAccepts_S4(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> a S b\nS -> a b\n", "S")
	require.NoError(t, err)

	require.True(t, cyk.Accepts([]string{"a", "b"}, cfg))
	require.True(t, cyk.Accepts([]string{"a", "a", "b", "b"}, cfg))
	require.False(t, cyk.Accepts([]string{"a", "b", "a", "b"}, cfg))
	require.False(t, cyk.Accepts(nil, cfg))
}

func TestAccepts_EmptyWordNullableStart(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> \nS -> a S a\n", "S")
	require.NoError(t, err)

	require.True(t, cyk.Accepts(nil, cfg))
	require.True(t, cyk.Accepts([]string{"a", "a"}, cfg))
	require.False(t, cyk.Accepts([]string{"a"}, cfg))
}

func TestAccepts_EpsilonOnlyGrammar(t *testing.T) {
	t.Parallel()

	cfg := &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: nil},
		},
	}

	require.True(t, cyk.Accepts(nil, cfg))
	require.False(t, cyk.Accepts([]string{"a"}, cfg))
}

func TestAccepts_NoGeneratingDerivation(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> a A\nA -> A b\n", "S")
	require.NoError(t, err)

	require.False(t, cyk.Accepts([]string{"a"}, cfg))
	require.False(t, cyk.Accepts([]string{"a", "b"}, cfg))
}

// TestAccepts_UnitProductionFromEpsilonElimination covers S -> A B,
// A -> a, B -> b | ε: dropping B's nullable position from "S -> A B"
// leaves the unit production "S -> A", which must itself be eliminated
// before CNF decomposition so "a" is still recognized as S ⇒ A B ⇒ a B ⇒ a.
func TestAccepts_UnitProductionFromEpsilonElimination(t *testing.T) {
	t.Parallel()

	cfg := &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.NT("A"), grammar.NT("B")}},
			{Head: "A", Body: []grammar.Symbol{grammar.Term("a")}},
			{Head: "B", Body: []grammar.Symbol{grammar.Term("b")}},
			{Head: "B", Body: nil},
		},
	}

	require.True(t, cyk.Accepts([]string{"a"}, cfg))
	require.True(t, cyk.Accepts([]string{"a", "b"}, cfg))
	require.False(t, cyk.Accepts([]string{"b"}, cfg))
}
