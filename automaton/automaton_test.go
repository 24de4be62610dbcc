package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/core"
)

func acceptsViaDFA(t *testing.T, regex string, word []string) bool {
	t.Helper()
	nfa, err := automaton.ParseRegex(regex)
	require.NoError(t, err)
	dfa := automaton.Minimize(automaton.ToDFA(nfa))

	return dfa.Accepts(word)
}

func TestParseRegex_LiteralConcat(t *testing.T) {
	t.Parallel()

	require.True(t, acceptsViaDFA(t, "a b", []string{"a", "b"}))
	require.False(t, acceptsViaDFA(t, "a b", []string{"a"}))
	require.False(t, acceptsViaDFA(t, "a b", []string{"b", "a"}))
}

func TestParseRegex_Alternation(t *testing.T) {
	t.Parallel()

	require.True(t, acceptsViaDFA(t, "a | b", []string{"a"}))
	require.True(t, acceptsViaDFA(t, "a | b", []string{"b"}))
	require.False(t, acceptsViaDFA(t, "a | b", []string{"c"}))
}

func TestParseRegex_Star(t *testing.T) {
	t.Parallel()

	require.True(t, acceptsViaDFA(t, "a*", nil))
	require.True(t, acceptsViaDFA(t, "a*", []string{"a", "a", "a"}))
	require.False(t, acceptsViaDFA(t, "a*", []string{"a", "b"}))
}

func TestParseRegex_Optional(t *testing.T) {
	t.Parallel()

	require.True(t, acceptsViaDFA(t, "a?", nil))
	require.True(t, acceptsViaDFA(t, "a?", []string{"a"}))
	require.False(t, acceptsViaDFA(t, "a?", []string{"a", "a"}))
}

func TestParseRegex_AABStarAndS5Scenario(t *testing.T) {
	t.Parallel()

	// S5: "(a | b)* | c" accepts ε via the star branch.
	require.True(t, acceptsViaDFA(t, "(a | b)* | c", nil))
	require.True(t, acceptsViaDFA(t, "(a | b)* | c", []string{"a", "b", "a"}))
	require.True(t, acceptsViaDFA(t, "(a | b)* | c", []string{"c"}))
	require.False(t, acceptsViaDFA(t, "(a | b)* | c", []string{"c", "c"}))
}

func TestParseRegex_S1AAStar(t *testing.T) {
	t.Parallel()

	require.True(t, acceptsViaDFA(t, "a a*", []string{"a"}))
	require.True(t, acceptsViaDFA(t, "a a*", []string{"a", "a", "a"}))
	require.False(t, acceptsViaDFA(t, "a a*", nil))
}

func TestParseRegex_MalformedTrailingToken(t *testing.T) {
	t.Parallel()

	_, err := automaton.ParseRegex("a )")
	require.Error(t, err)
}

func TestFromGraph_DefaultsToAllVertices(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("u", "v", "a")
	_, _ = g.AddEdge("v", "w", "")

	n := automaton.FromGraph(g, nil, nil)
	require.Len(t, n.States, 3)
	require.Len(t, n.Start, 3)
	require.Len(t, n.Final, 3)
	require.Len(t, n.Delta, 2)

	hasEps := false
	for _, tr := range n.Delta {
		if tr.Label == automaton.Eps {
			hasEps = true
		}
	}
	require.True(t, hasEps)
}

func TestFromGraph_RestrictedStartFinal(t *testing.T) {
	t.Parallel()

	g := core.NewLabeledGraph()
	_, _ = g.AddEdge("u", "v", "a")

	n := automaton.FromGraph(g, []string{"u"}, []string{"v"})
	require.Len(t, n.Start, 1)
	require.Len(t, n.Final, 1)
	require.Equal(t, automaton.NewVertexState("u"), n.Start[0])
	require.Equal(t, automaton.NewVertexState("v"), n.Final[0])
}

func TestToDFA_SubsetConstructionDeterminizes(t *testing.T) {
	t.Parallel()

	nfa, err := automaton.ParseRegex("a | a b")
	require.NoError(t, err)
	dfa := automaton.ToDFA(nfa)

	require.True(t, dfa.Accepts([]string{"a"}))
	require.True(t, dfa.Accepts([]string{"a", "b"}))
	require.False(t, dfa.Accepts([]string{"a", "c"}))
}

func TestMinimize_PreservesLanguage(t *testing.T) {
	t.Parallel()

	nfa, err := automaton.ParseRegex("(a | a) b")
	require.NoError(t, err)
	before := automaton.ToDFA(nfa)
	after := automaton.Minimize(before)

	require.True(t, after.Accepts([]string{"a", "b"}))
	require.False(t, after.Accepts([]string{"a"}))
	require.LessOrEqual(t, len(after.States), len(before.States))
}
