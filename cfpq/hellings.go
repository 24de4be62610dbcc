package cfpq

import (
	"context"

	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
	"github.com/yarovoy/cfpq/core"
	"github.com/yarovoy/cfpq/grammar"
)

// Hellings runs the worklist-fixpoint CFPQ algorithm of §4.G: cfg is
// normalized to WCNF, seeded with ε-head self-loops and term-head edges,
// then closed under the pair-head composition rule until the worklist
// empties. ctx is checked cooperatively between worklist pops, never
// mid-composition.
func Hellings(ctx context.Context, g *core.LabeledGraph, cfg *grammar.CFG, opts Options) ([]Pair, error) {
	wcnf := grammar.ToWCNF(cfg)
	part := partitionWCNF(wcnf)

	triplesByFrom := map[string][]Triple{}
	triplesByTo := map[string][]Triple{}
	seen := map[tripleKey]struct{}{}
	var all []Triple

	add := func(t Triple) bool {
		k := tripleKey{From: t.From, N: t.Nonterminal, To: t.To}
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		all = append(all, t)
		triplesByFrom[t.From] = append(triplesByFrom[t.From], t)
		triplesByTo[t.To] = append(triplesByTo[t.To], t)

		return true
	}

	worklist := linkedlistqueue.New[Triple]()
	for _, v := range g.Vertices() {
		for n := range part.epsHeads {
			t := Triple{From: v, Nonterminal: n, To: v}
			if add(t) {
				worklist.Enqueue(t)
			}
		}
	}
	for _, e := range g.Edges() {
		for _, n := range part.termHeadsFor(e.Label) {
			t := Triple{From: e.From, Nonterminal: n, To: e.To}
			if add(t) {
				worklist.Enqueue(t)
			}
		}
	}

	for !worklist.Empty() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		popped, _ := worklist.Dequeue()
		i, n1, j := popped.From, popped.Nonterminal, popped.To

		for _, existing := range snapshot(triplesByTo[i]) {
			k, n2 := existing.From, existing.Nonterminal
			for _, m := range part.headsFor(n2, n1) {
				t := Triple{From: k, Nonterminal: m, To: j}
				if add(t) {
					worklist.Enqueue(t)
				}
			}
		}
		for _, existing := range snapshot(triplesByFrom[j]) {
			n2, l := existing.Nonterminal, existing.To
			for _, m := range part.headsFor(n1, n2) {
				t := Triple{From: i, Nonterminal: m, To: l}
				if add(t) {
					worklist.Enqueue(t)
				}
			}
		}
	}

	return FilterByOptions(all, opts), nil
}

type tripleKey struct {
	From string
	N    grammar.Nonterminal
	To   string
}

// snapshot copies s so that mutating the backing slice (add() may append
// to the very slices this loop ranges over, since i or j can equal the
// popped triple's own endpoints) never reorders or skips an iteration.
func snapshot[T any](s []T) []T {
	return append([]T(nil), s...)
}
