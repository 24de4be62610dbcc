package grammar

import "fmt"

// DecomposeToWCNF rewrites every production body to length 0 (ε), 1 (a
// single terminal), or 2 (two nonterminals): terminals inside a
// length->=2 body are wrapped behind a fresh single-terminal nonterminal,
// then a body of more than two (now-nonterminal) symbols is right-branch
// binarized through fresh pairing nonterminals.
func DecomposeToWCNF(cfg *CFG) *CFG {
	out := &CFG{Start: cfg.Start}
	termWrapper := map[string]Nonterminal{}
	termCounter, pairCounter := 0, 0

	ensureTermNT := func(symbol string) Nonterminal {
		if nt, ok := termWrapper[symbol]; ok {
			return nt
		}
		termCounter++
		nt := Nonterminal(fmt.Sprintf("#T%d", termCounter))
		termWrapper[symbol] = nt
		out.Productions = append(out.Productions, Production{Head: nt, Body: []Symbol{Term(symbol)}})

		return nt
	}
	freshPairNT := func() Nonterminal {
		pairCounter++
		return Nonterminal(fmt.Sprintf("#P%d", pairCounter))
	}

	for _, p := range cfg.Productions {
		switch len(p.Body) {
		case 0, 1:
			out.Productions = append(out.Productions, p)
		default:
			nts := make([]Nonterminal, len(p.Body))
			for i, s := range p.Body {
				if s.Terminal {
					nts[i] = ensureTermNT(s.Name)
				} else {
					nts[i] = Nonterminal(s.Name)
				}
			}

			head := p.Head
			for len(nts) > 2 {
				mid := freshPairNT()
				out.Productions = append(out.Productions, Production{Head: head, Body: []Symbol{NT(nts[0]), NT(mid)}})
				head = mid
				nts = nts[1:]
			}
			out.Productions = append(out.Productions, Production{Head: head, Body: []Symbol{NT(nts[0]), NT(nts[1])}})
		}
	}

	return out
}

// ToWCNF runs the full normalization pipeline: remove useless symbols,
// eliminate unit productions, remove useless symbols again (unit
// elimination can orphan nonterminals), then decompose to WCNF.
func ToWCNF(cfg *CFG) *CFG {
	cfg = RemoveUseless(cfg)
	cfg = EliminateUnitProductions(cfg)
	cfg = RemoveUseless(cfg)

	return DecomposeToWCNF(cfg)
}
