package cfpq

import (
	"context"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/bmauto"
	"github.com/yarovoy/cfpq/core"
	"github.com/yarovoy/cfpq/ecfg"
	"github.com/yarovoy/cfpq/grammar"
	"github.com/yarovoy/cfpq/matrix"
)

// Tensor runs the RSM-matrix CFPQ algorithm of §4.I: Cᴹ is the flattened,
// minimized RSM of cfg; Cᴴ is the graph's own automaton view, seeded with a
// reflexive diagonal on every nullable nonterminal's matrix. Each round
// intersects Cᴹ with Cᴴ, closes the product transitively, and promotes any
// closure edge between a box start and a box final back into Cᴴ under that
// box's nonterminal label — until the closure's nnz stops growing.
func Tensor(ctx context.Context, g *core.LabeledGraph, cfg *grammar.CFG, opts Options) ([]Pair, error) {
	e := ecfg.CFGToECFG(cfg)
	rawRSM, err := ecfg.ECFGToRSM(e)
	if err != nil {
		return nil, err
	}
	rsm := ecfg.MinimizeRSM(rawRSM)
	cM, startOwner := bmauto.FromRSM(rsm)

	cH := bmauto.FromNFA(automaton.FromGraph(g, nil, nil))
	qH := cH.N()

	for nt := range grammar.Nullable(cfg) {
		label := string(nt)
		m, ok := cH.Mats[label]
		if !ok {
			m, _ = matrix.NewBool(qH, qH)
			cH.Mats[label] = m
		}
		m.SetDiagonal()
	}

	prevNnz := -1
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		x, err := cM.Intersect(cH)
		if err != nil {
			return nil, err
		}
		c, err := x.TransitiveClosure()
		if err != nil {
			return nil, err
		}

		for _, coord := range c.Nonzeros() {
			cfgI, graphI := coord.Row/qH, coord.Row%qH
			cfgJ, graphJ := coord.Col/qH, coord.Col%qH

			if _, ok := cM.Start[cfgI]; !ok {
				continue
			}
			if _, ok := cM.Final[cfgJ]; !ok {
				continue
			}
			nt, ok := startOwner[cM.States[cfgI]]
			if !ok {
				continue
			}
			label := string(nt)
			m, ok := cH.Mats[label]
			if !ok {
				m, _ = matrix.NewBool(qH, qH)
				cH.Mats[label] = m
			}
			_ = m.Set(graphI, graphJ)
		}

		if c.Nnz() == prevNnz {
			break
		}
		prevNnz = c.Nnz()
	}

	ntNames := map[string]struct{}{}
	for _, nt := range cfg.Nonterminals() {
		ntNames[string(nt)] = struct{}{}
	}

	var triples []Triple
	for label, m := range cH.Mats {
		if _, ok := ntNames[label]; !ok {
			continue
		}
		for _, coord := range m.Nonzeros() {
			triples = append(triples, Triple{
				From:        cH.States[coord.Row].Value.(string),
				Nonterminal: grammar.Nonterminal(label),
				To:          cH.States[coord.Col].Value.(string),
			})
		}
	}

	return FilterByOptions(triples, opts), nil
}
