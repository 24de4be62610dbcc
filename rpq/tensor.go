package rpq

import (
	"context"
	"sort"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/bmauto"
	"github.com/yarovoy/cfpq/core"
)

// Tensor runs the product-automaton RPQ algorithm of §4.J: Cᴴ is the
// graph's ε-NFA view restricted to opts' start/final vertices, Cᴰ is
// regex's minimized DFA. X = Cᴴ & Cᴰ (graph first, so the normative
// Intersect index decodes back to a graph vertex via integer division by
// Cᴰ's state count); C is X's transitive closure. A nonzero (i,j) in C
// contributes (u, v) when i is one of X's start states and j one of its
// final states. TransitiveClosure is not reflexive, so when the regex
// accepts ε every v in cH's start-and-final vertices is seeded directly as
// (v, v), matching the zero-edge path that satisfies both.
func Tensor(ctx context.Context, g *core.LabeledGraph, regex string, opts Options) ([]Pair, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cH := bmauto.FromNFA(automaton.FromGraph(g, opts.StartNodes, opts.FinalNodes))

	nfa, err := automaton.ParseRegex(regex)
	if err != nil {
		return nil, err
	}
	dfa := automaton.Minimize(automaton.ToDFA(nfa))
	cD := bmauto.FromNFA(automaton.DFAToNFA(dfa))
	qD := cD.N()

	x, err := cH.Intersect(cD)
	if err != nil {
		return nil, err
	}
	c, err := x.TransitiveClosure()
	if err != nil {
		return nil, err
	}

	seen := map[Pair]struct{}{}
	var pairs []Pair
	add := func(p Pair) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	if dfa.Accepts(nil) {
		for i := range cH.Start {
			if _, ok := cH.Final[i]; !ok {
				continue
			}
			v := cH.States[i].Value.(string)
			add(Pair{From: v, To: v})
		}
	}

	for _, coord := range c.Nonzeros() {
		if _, ok := x.Start[coord.Row]; !ok {
			continue
		}
		if _, ok := x.Final[coord.Col]; !ok {
			continue
		}
		u := cH.States[coord.Row/qD].Value.(string)
		v := cH.States[coord.Col/qD].Value.(string)
		add(Pair{From: u, To: v})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})

	return pairs, nil
}
