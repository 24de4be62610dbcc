package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yarovoy/cfpq/grammar"
)

func TestToCNF_NoEpsilonProductions(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> \nS -> a S a\n", "S")
	require.NoError(t, err)

	cnf := grammar.ToCNF(cfg)
	for _, p := range cnf.Productions {
		require.NotEmpty(t, p.Body, "strict CNF must not contain epsilon productions")
	}
}

func TestToCNF_BodyShapes(t *testing.T) {
	t.Parallel()

	cfg, err := grammar.ParseCFG("S -> a S b\nS -> a b\n", "S")
	require.NoError(t, err)

	cnf := grammar.ToCNF(cfg)
	for _, p := range cnf.Productions {
		switch len(p.Body) {
		case 1:
			require.True(t, p.Body[0].Terminal)
		case 2:
			require.False(t, p.Body[0].Terminal)
			require.False(t, p.Body[1].Terminal)
		default:
			t.Fatalf("production %+v has body length %d, want 1 or 2", p, len(p.Body))
		}
	}
}

func TestToCNF_DropsNullableButStrandedStart(t *testing.T) {
	t.Parallel()

	cfg := &grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: nil},
		},
	}

	cnf := grammar.ToCNF(cfg)
	require.Empty(t, cnf.Productions)
}
