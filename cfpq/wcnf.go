package cfpq

import "github.com/yarovoy/cfpq/grammar"

// pairTarget is one (N1, N2) pair appearing in a pair-head production
// M -> N1 N2.
type pairTarget struct {
	N1, N2 grammar.Nonterminal
}

// wcnfPartition splits a WCNF grammar's productions into the three shapes
// §4.G/H need: ε-heads (body ε), term-heads (body a single terminal,
// mapping nonterminal -> set of terminals), and pair-heads (body two
// nonterminals, mapping the ordered pair to the set of heads deriving it).
type wcnfPartition struct {
	epsHeads  map[grammar.Nonterminal]struct{}
	termHeads map[grammar.Nonterminal]map[string]struct{}
	pairHeads map[pairTarget][]grammar.Nonterminal
}

func partitionWCNF(wcnf *grammar.CFG) *wcnfPartition {
	p := &wcnfPartition{
		epsHeads:  map[grammar.Nonterminal]struct{}{},
		termHeads: map[grammar.Nonterminal]map[string]struct{}{},
		pairHeads: map[pairTarget][]grammar.Nonterminal{},
	}
	for _, prod := range wcnf.Productions {
		switch len(prod.Body) {
		case 0:
			p.epsHeads[prod.Head] = struct{}{}
		case 1:
			row, ok := p.termHeads[prod.Head]
			if !ok {
				row = map[string]struct{}{}
				p.termHeads[prod.Head] = row
			}
			row[prod.Body[0].Name] = struct{}{}
		case 2:
			key := pairTarget{N1: grammar.Nonterminal(prod.Body[0].Name), N2: grammar.Nonterminal(prod.Body[1].Name)}
			p.pairHeads[key] = append(p.pairHeads[key], prod.Head)
		}
	}

	return p
}

// termHeadsFor returns every nonterminal whose term-head set contains
// label.
func (p *wcnfPartition) termHeadsFor(label string) []grammar.Nonterminal {
	var out []grammar.Nonterminal
	for head, set := range p.termHeads {
		if _, ok := set[label]; ok {
			out = append(out, head)
		}
	}

	return out
}

// headsFor returns the heads M with a production M -> n1 n2.
func (p *wcnfPartition) headsFor(n1, n2 grammar.Nonterminal) []grammar.Nonterminal {
	return p.pairHeads[pairTarget{N1: n1, N2: n2}]
}
