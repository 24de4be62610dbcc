package bmauto

import (
	"sort"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/matrix"
)

// BoolMatrixAutomaton is the canonical, index-based view of an NFA:
// stateIdx is a bijection Q <-> {0..n-1} in insertion order; start/final are
// index sets; mats maps a label (including automaton.Eps) to the n×n
// boolean matrix of its transitions.
type BoolMatrixAutomaton struct {
	StateIdx map[automaton.State]int
	States   []automaton.State
	Start    map[int]struct{}
	Final    map[int]struct{}
	Mats     map[string]*matrix.Bool
}

// N reports the state count.
func (b *BoolMatrixAutomaton) N() int { return len(b.States) }

// Labels returns the sorted set of labels with a non-nil matrix, including
// automaton.Eps if present.
func (b *BoolMatrixAutomaton) Labels() []string {
	out := make([]string, 0, len(b.Mats))
	for l := range b.Mats {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// matOrEmpty returns b.Mats[label], allocating a fresh all-zero matrix of
// the automaton's shape if absent, so callers never branch on nil.
func (b *BoolMatrixAutomaton) matOrEmpty(label string) *matrix.Bool {
	if m, ok := b.Mats[label]; ok {
		return m
	}
	m, _ := matrix.NewBool(b.N(), b.N())

	return m
}

// unionOfLabels returns the sorted union of two automata's label sets.
func unionOfLabels(a, b *BoolMatrixAutomaton) []string {
	seen := map[string]struct{}{}
	for l := range a.Mats {
		seen[l] = struct{}{}
	}
	for l := range b.Mats {
		seen[l] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

func intersectLabels(a, b *BoolMatrixAutomaton) []string {
	out := make([]string, 0)
	for l := range a.Mats {
		if _, ok := b.Mats[l]; ok {
			out = append(out, l)
		}
	}
	sort.Strings(out)

	return out
}
