package cfpq

import "github.com/yarovoy/cfpq/grammar"

// Pair is one result triple's vertex pair, stripped of its nonterminal tag
// for the CFPQ-equivalence comparisons in §8 property 3 (Hellings, Matrix,
// and Tensor must agree on the pair set, not on which algorithm happened to
// derive each pair).
type Pair struct {
	From, To string
}

// Triple is one raw (u, N, v) result: node u, nonterminal N, node v.
type Triple struct {
	From string
	Nonterminal grammar.Nonterminal
	To string
}

// Options configures a CFPQ run. A nil StartNodes/FinalNodes defaults to
// "every vertex," per §6. StartSymbol defaults to "S" if empty.
type Options struct {
	StartNodes  []string
	FinalNodes  []string
	StartSymbol grammar.Nonterminal
}

func (o Options) startSymbolOr(def grammar.Nonterminal) grammar.Nonterminal {
	if o.StartSymbol == "" {
		return def
	}

	return o.StartSymbol
}

// FilterByOptions keeps only triples whose nonterminal is opts' start
// symbol and whose endpoints lie in the (optional) start/final node sets,
// then projects to Pair, deduplicated.
func FilterByOptions(triples []Triple, opts Options) []Pair {
	startSym := opts.startSymbolOr("S")

	var startSet, finalSet map[string]struct{}
	if opts.StartNodes != nil {
		startSet = toSet(opts.StartNodes)
	}
	if opts.FinalNodes != nil {
		finalSet = toSet(opts.FinalNodes)
	}

	seen := map[Pair]struct{}{}
	var out []Pair
	for _, t := range triples {
		if t.Nonterminal != startSym {
			continue
		}
		if startSet != nil {
			if _, ok := startSet[t.From]; !ok {
				continue
			}
		}
		if finalSet != nil {
			if _, ok := finalSet[t.To]; !ok {
				continue
			}
		}
		p := Pair{From: t.From, To: t.To}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}
