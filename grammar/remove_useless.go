package grammar

// RemoveUseless strips symbols that can never appear in any derivation of a
// terminal string reachable from Start. Two reachability sweeps over the
// grammar's nonterminal-dependency graph, in the classical order:
//
//  1. generating: bottom-up fixpoint — a nonterminal is generating if some
//     production's body is entirely terminals and already-generating
//     nonterminals (ε bodies generate trivially).
//  2. reachable: top-down traversal from Start over the productions that
//     survived step 1, a breadth-first worklist sweep over the
//     head -> body-nonterminal dependency edges.
//
// The result preserves Start and the exact language of cfg.
func RemoveUseless(cfg *CFG) *CFG {
	generating := computeGenerating(cfg)

	var afterGenerating []Production
	for _, p := range cfg.Productions {
		if !generating[p.Head] {
			continue
		}
		if allSymbolsOK(p.Body, generating) {
			afterGenerating = append(afterGenerating, p)
		}
	}

	reachable := computeReachable(cfg.Start, afterGenerating)

	out := &CFG{Start: cfg.Start}
	for _, p := range afterGenerating {
		if reachable[p.Head] {
			out.Productions = append(out.Productions, p)
		}
	}

	return out
}

func allSymbolsOK(body []Symbol, generating map[Nonterminal]bool) bool {
	for _, s := range body {
		if !s.Terminal && !generating[Nonterminal(s.Name)] {
			return false
		}
	}

	return true
}

func computeGenerating(cfg *CFG) map[Nonterminal]bool {
	generating := make(map[Nonterminal]bool)
	for {
		changed := false
		for _, p := range cfg.Productions {
			if generating[p.Head] {
				continue
			}
			if allSymbolsOK(p.Body, generating) {
				generating[p.Head] = true
				changed = true
			}
		}
		if !changed {
			return generating
		}
	}
}

// computeReachable performs a worklist traversal (white/gray/black in
// spirit: unvisited, queued, expanded) over the head -> body-nonterminal
// dependency edges of prods, starting from start.
func computeReachable(start Nonterminal, prods []Production) map[Nonterminal]bool {
	byHead := map[Nonterminal][]Production{}
	for _, p := range prods {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	reachable := map[Nonterminal]bool{start: true}
	queue := []Nonterminal{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range byHead[cur] {
			for _, s := range p.Body {
				if s.Terminal {
					continue
				}
				nt := Nonterminal(s.Name)
				if !reachable[nt] {
					reachable[nt] = true
					queue = append(queue, nt)
				}
			}
		}
	}

	return reachable
}
