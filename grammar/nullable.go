package grammar

// Nullable computes, by bottom-up fixpoint over cfg's productions, the set
// of nonterminals that derive ε. A production with an empty body makes its
// head nullable directly; a production whose body is all nonterminals,
// every one of them already nullable, makes its head nullable too.
func Nullable(cfg *CFG) map[Nonterminal]bool {
	nullable := map[Nonterminal]bool{}
	for {
		changed := false
		for _, p := range cfg.Productions {
			if nullable[p.Head] {
				continue
			}
			allNullable := true
			for _, s := range p.Body {
				if s.Terminal || !nullable[Nonterminal(s.Name)] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.Head] = true
				changed = true
			}
		}
		if !changed {
			return nullable
		}
	}
}
