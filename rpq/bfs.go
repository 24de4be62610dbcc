package rpq

import (
	"context"
	"sort"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/bmauto"
	"github.com/yarovoy/cfpq/core"
)

// BFSAggregate runs synchronous BFS (§4.B) with regex's minimized DFA as
// the query (self, p states) and the graph as other (q states, restricted
// to opts' start/final vertices), ALL mode: the flat set of graph vertices
// reachable from any start along a regex-matching path, source identity
// discarded.
func BFSAggregate(ctx context.Context, g *core.LabeledGraph, regex string, opts Options) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cD, cH, err := buildQueryAndGraph(g, regex, opts)
	if err != nil {
		return nil, err
	}

	res, err := cD.SyncBFS(cH, false)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(res.Aggregate))
	for _, s := range res.Aggregate {
		out = append(out, s.Value.(string))
	}
	sort.Strings(out)

	return out, nil
}

// BFSPerNode runs the same synchronous BFS in PER_NODE mode: every (start,
// reachable) vertex pair, source identity kept. This is the mode §8's RPQ
// equivalence property compares against Tensor, since Tensor's harvest is
// inherently source-tagged.
func BFSPerNode(ctx context.Context, g *core.LabeledGraph, regex string, opts Options) ([]Pair, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cD, cH, err := buildQueryAndGraph(g, regex, opts)
	if err != nil {
		return nil, err
	}

	res, err := cD.SyncBFS(cH, true)
	if err != nil {
		return nil, err
	}

	seen := map[Pair]struct{}{}
	var pairs []Pair
	for start, reached := range res.PerNode {
		u := start.Value.(string)
		for _, st := range reached {
			p := Pair{From: u, To: st.Value.(string)}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})

	return pairs, nil
}

func buildQueryAndGraph(g *core.LabeledGraph, regex string, opts Options) (*bmauto.BoolMatrixAutomaton, *bmauto.BoolMatrixAutomaton, error) {
	nfa, err := automaton.ParseRegex(regex)
	if err != nil {
		return nil, nil, err
	}
	dfa := automaton.Minimize(automaton.ToDFA(nfa))
	cD := bmauto.FromNFA(automaton.DFAToNFA(dfa))
	cH := bmauto.FromNFA(automaton.FromGraph(g, opts.StartNodes, opts.FinalNodes))

	return cD, cH, nil
}
