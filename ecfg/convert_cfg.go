package ecfg

import (
	"strings"

	"github.com/yarovoy/cfpq/grammar"
)

// CFGToECFG groups cfg's productions by head; each head's regex is the
// |-union of its bodies, a body being the ·-concatenation (rendered as
// whitespace-separated tokens) of each symbol's textual value — a
// nonterminal's name doubles as its regex token, so a box transition
// labeled with another nonterminal's name is exactly a "call" edge once
// the RSM is flattened by package bmauto.
func CFGToECFG(cfg *grammar.CFG) *ECFG {
	byHead := map[grammar.Nonterminal][]grammar.Production{}
	for _, p := range cfg.Productions {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	out := &ECFG{Start: cfg.Start, Rules: map[grammar.Nonterminal]string{}}
	for nt, prods := range byHead {
		branches := make([]string, 0, len(prods))
		for _, p := range prods {
			branches = append(branches, renderBody(p.Body))
		}
		out.Rules[nt] = strings.Join(branches, " | ")
	}

	return out
}

func renderBody(body []grammar.Symbol) string {
	if len(body) == 0 {
		return "ε"
	}
	names := make([]string, len(body))
	for i, s := range body {
		names[i] = s.Name
	}

	return strings.Join(names, " ")
}
