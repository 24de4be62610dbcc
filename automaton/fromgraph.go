package automaton

import "github.com/yarovoy/cfpq/core"

// FromGraph lifts g into an ε-NFA: every edge (u, label, v) becomes a
// transition u--label-->v, with an empty label becoming an ε-transition. A
// nil startSet or finalSet defaults to every vertex, per §4.D.
func FromGraph(g *core.LabeledGraph, startSet, finalSet []string) *NFA {
	ids := g.Vertices()
	states := make([]State, 0, len(ids))
	byID := make(map[string]State, len(ids))
	for _, id := range ids {
		s := NewVertexState(id)
		states = append(states, s)
		byID[id] = s
	}

	n := &NFA{States: states}
	for _, e := range g.Edges() {
		n.Delta = append(n.Delta, Transition{From: byID[e.From], Label: e.Label, To: byID[e.To]})
	}

	if startSet == nil {
		n.Start = append([]State(nil), states...)
	} else {
		for _, id := range startSet {
			if s, ok := byID[id]; ok {
				n.Start = append(n.Start, s)
			}
		}
	}
	if finalSet == nil {
		n.Final = append([]State(nil), states...)
	} else {
		for _, id := range finalSet {
			if s, ok := byID[id]; ok {
				n.Final = append(n.Final, s)
			}
		}
	}

	return n
}
