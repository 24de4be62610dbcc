package grammar

import "strings"

// EliminateUnitProductions replaces every unit production (a body that is
// exactly one nonterminal) by the non-unit productions reachable through
// the closure of unit chains: if A =>* B by unit productions alone and
// B -> α is non-unit, the result gets A -> α directly. Cycles in the unit
// graph are handled by the closure's visited-set guard.
func EliminateUnitProductions(cfg *CFG) *CFG {
	unitTargets := map[Nonterminal][]Nonterminal{}
	nonUnit := map[Nonterminal][]Production{}
	for _, p := range cfg.Productions {
		if len(p.Body) == 1 && !p.Body[0].Terminal {
			unitTargets[p.Head] = append(unitTargets[p.Head], Nonterminal(p.Body[0].Name))
			continue
		}
		nonUnit[p.Head] = append(nonUnit[p.Head], p)
	}

	out := &CFG{Start: cfg.Start}
	seen := map[string]struct{}{}
	for _, head := range cfg.Nonterminals() {
		for _, b := range unitClosure(head, unitTargets) {
			for _, p := range nonUnit[b] {
				np := Production{Head: head, Body: p.Body}
				key := productionKey(np)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out.Productions = append(out.Productions, np)
			}
		}
	}

	return out
}

// unitClosure returns start plus every nonterminal reachable from it via
// the unit-production graph edges.
func unitClosure(start Nonterminal, edges map[Nonterminal][]Nonterminal) []Nonterminal {
	visited := map[Nonterminal]bool{start: true}
	order := []Nonterminal{start}
	queue := []Nonterminal{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range edges[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			order = append(order, next)
			queue = append(queue, next)
		}
	}

	return order
}

func productionKey(p Production) string {
	parts := make([]string, 0, len(p.Body)*2+2)
	parts = append(parts, string(p.Head), "->")
	for _, s := range p.Body {
		tag := "N"
		if s.Terminal {
			tag = "T"
		}
		parts = append(parts, tag+":"+s.Name)
	}

	return strings.Join(parts, "|")
}
