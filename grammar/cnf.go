package grammar

// eliminateEpsilonProductions rewrites cfg so no production has an empty
// body: every ε-production is dropped, and every production with a
// nullable symbol in its body is replaced by every non-empty variant
// obtained by omitting some subset of its nullable positions. The result
// generates L(cfg) \ {ε} exactly; the CYK DP in package cyk only consults
// it for non-empty words and checks ε-membership separately via Nullable.
func eliminateEpsilonProductions(cfg *CFG) *CFG {
	nullable := Nullable(cfg)

	out := &CFG{Start: cfg.Start}
	seen := map[string]struct{}{}
	add := func(p Production) {
		key := productionKey(p)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out.Productions = append(out.Productions, p)
	}

	for _, p := range cfg.Productions {
		if len(p.Body) == 0 {
			continue
		}

		var nullablePos []int
		for i, s := range p.Body {
			if !s.Terminal && nullable[Nonterminal(s.Name)] {
				nullablePos = append(nullablePos, i)
			}
		}

		for mask := 0; mask < 1<<len(nullablePos); mask++ {
			drop := make(map[int]struct{}, len(nullablePos))
			for bit, pos := range nullablePos {
				if mask&(1<<bit) != 0 {
					drop[pos] = struct{}{}
				}
			}

			var body []Symbol
			for i, s := range p.Body {
				if _, ok := drop[i]; ok {
					continue
				}
				body = append(body, s)
			}
			if len(body) == 0 {
				continue
			}
			add(Production{Head: p.Head, Body: body})
		}
	}

	return out
}

// ToCNF normalizes cfg into strict Chomsky normal form for the words it
// generates other than ε (§4.K): remove useless symbols, eliminate every
// ε-production, then eliminate unit productions (dropping a nullable
// symbol from a body can leave a bare single-nonterminal body behind, so
// unit-elimination must run after DEL, not before), remove useless symbols
// a final time (either pass can strand a nonterminal whose only
// production was ε or a unit body), then decompose to CNF shape via the
// same terminal-wrapping/binarization DecomposeToWCNF uses.
func ToCNF(cfg *CFG) *CFG {
	cfg = RemoveUseless(cfg)
	cfg = eliminateEpsilonProductions(cfg)
	cfg = EliminateUnitProductions(cfg)
	cfg = RemoveUseless(cfg)

	return DecomposeToWCNF(cfg)
}
