package cyk

import "github.com/yarovoy/cfpq/grammar"

// Accepts reports whether cfg generates word (a sequence of terminal
// labels), per §4.K. The empty word is answered directly via nullability;
// otherwise cfg is normalized to CNF and the standard O(n³|P|) table-fill
// runs over it.
func Accepts(word []string, cfg *grammar.CFG) bool {
	if len(word) == 0 {
		return grammar.Nullable(cfg)[cfg.Start]
	}

	cnf := grammar.ToCNF(cfg)
	termHeads, pairHeads := partition(cnf)

	n := len(word)
	dp := make([][]map[grammar.Nonterminal]struct{}, n)
	for i := range dp {
		dp[i] = make([]map[grammar.Nonterminal]struct{}, n)
		for j := range dp[i] {
			dp[i][j] = map[grammar.Nonterminal]struct{}{}
		}
	}

	for i, sym := range word {
		for _, head := range termHeads[sym] {
			dp[i][i][head] = struct{}{}
		}
	}

	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			for k := i; k < j; k++ {
				for b := range dp[i][k] {
					for c := range dp[k+1][j] {
						for _, head := range pairHeads[pairKey{B: b, C: c}] {
							dp[i][j][head] = struct{}{}
						}
					}
				}
			}
		}
	}

	_, ok := dp[0][n-1][cnf.Start]

	return ok
}

type pairKey struct {
	B, C grammar.Nonterminal
}

// partition splits a CNF grammar's productions into term-heads (terminal
// -> nonterminals deriving it directly) and pair-heads (ordered nonterminal
// pair -> heads producing it).
func partition(cnf *grammar.CFG) (map[string][]grammar.Nonterminal, map[pairKey][]grammar.Nonterminal) {
	termHeads := map[string][]grammar.Nonterminal{}
	pairHeads := map[pairKey][]grammar.Nonterminal{}

	for _, p := range cnf.Productions {
		switch len(p.Body) {
		case 1:
			termHeads[p.Body[0].Name] = append(termHeads[p.Body[0].Name], p.Head)
		case 2:
			key := pairKey{B: grammar.Nonterminal(p.Body[0].Name), C: grammar.Nonterminal(p.Body[1].Name)}
			pairHeads[key] = append(pairHeads[key], p.Head)
		}
	}

	return termHeads, pairHeads
}
