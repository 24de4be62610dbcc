package cfpq

import (
	"context"
	"sort"

	"github.com/yarovoy/cfpq/core"
	"github.com/yarovoy/cfpq/grammar"
	"github.com/yarovoy/cfpq/matrix"
)

// pairProduction is one WCNF production M -> N1 N2, kept as a flat list so
// the Matrix solver's inner sweep doesn't need to re-derive it from the
// partition's inverted pairHeads index every round.
type pairProduction struct {
	M, N1, N2 grammar.Nonterminal
}

// Matrix runs the per-nonterminal matrix-fixpoint CFPQ algorithm of §4.H:
// one (n,n) boolean matrix per WCNF nonterminal, seeded with identity on
// ε-heads and edges on term-heads, closed by repeated M[M] |= M[N1]*M[N2]
// sweeps over every pair production until no matrix's nnz changes.
func Matrix(ctx context.Context, g *core.LabeledGraph, cfg *grammar.CFG, opts Options) ([]Pair, error) {
	wcnf := grammar.ToWCNF(cfg)
	part := partitionWCNF(wcnf)

	vertices := g.Vertices()
	n := len(vertices)
	idx := make(map[string]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	mats := map[grammar.Nonterminal]*matrix.Bool{}
	matFor := func(nt grammar.Nonterminal) *matrix.Bool {
		m, ok := mats[nt]
		if !ok {
			m, _ = matrix.NewBool(n, n)
			mats[nt] = m
		}

		return m
	}

	for nt := range part.epsHeads {
		matFor(nt).SetDiagonal()
	}
	for _, e := range g.Edges() {
		for _, nt := range part.termHeadsFor(e.Label) {
			_ = matFor(nt).Set(idx[e.From], idx[e.To])
		}
	}

	var pairProds []pairProduction
	for key, heads := range part.pairHeads {
		for _, m := range heads {
			pairProds = append(pairProds, pairProduction{M: m, N1: key.N1, N2: key.N2})
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		changed := false
		for _, pp := range pairProds {
			before := matFor(pp.M).Nnz()
			prod, err := matrix.Mul(matFor(pp.N1), matFor(pp.N2))
			if err != nil {
				return nil, err
			}
			next, err := matrix.Or(matFor(pp.M), prod)
			if err != nil {
				return nil, err
			}
			mats[pp.M] = next
			if next.Nnz() != before {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	var triples []Triple
	for nt, m := range mats {
		for _, c := range m.Nonzeros() {
			triples = append(triples, Triple{From: vertices[c.Row], Nonterminal: nt, To: vertices[c.Col]})
		}
	}
	sort.Slice(triples, func(i, j int) bool {
		if triples[i].From != triples[j].From {
			return triples[i].From < triples[j].From
		}
		if triples[i].Nonterminal != triples[j].Nonterminal {
			return triples[i].Nonterminal < triples[j].Nonterminal
		}
		return triples[i].To < triples[j].To
	})

	return FilterByOptions(triples, opts), nil
}
