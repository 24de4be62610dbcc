package automaton

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
)

// ToDFA converts n to an equivalent (generally non-minimal) DFA via subset
// construction. The result is partial: a (state, label) pair absent from
// Delta has no successor, matching the "implementers only inspect
// transitions that exist" contract of §4.C.
func ToDFA(n *NFA) *DFA {
	idx := newNFAIndex(n)

	startSet := idx.closure(n.Start)
	startKey := idx.setKey(startSet)

	d := &DFA{Delta: make(map[State]map[string]State), Final: make(map[State]struct{})}
	seen := map[string]State{}
	queue := linkedlistqueue.New[setEntry]()
	queue.Enqueue(setEntry{key: startKey, set: startSet})
	seen[startKey] = stateFromSetKey(startKey)
	d.Start = seen[startKey]

	alphabet := n.Alphabet()

	for !queue.Empty() {
		cur, _ := queue.Dequeue()
		curState := seen[cur.key]
		d.States = append(d.States, curState)
		if idx.hasFinal(cur.set) {
			d.Final[curState] = struct{}{}
		}

		row := make(map[string]State)
		for _, label := range alphabet {
			moved := idx.move(cur.set, label)
			if len(moved) == 0 {
				continue
			}
			closed := idx.closureSet(moved)
			key := idx.setKey(closed)
			target, known := seen[key]
			if !known {
				target = stateFromSetKey(key)
				seen[key] = target
				queue.Enqueue(setEntry{key: key, set: closed})
			}
			row[label] = target
		}
		d.Delta[curState] = row
	}

	return d
}

type setEntry struct {
	key string
	set map[State]struct{}
}

func stateFromSetKey(key string) State {
	return State{Value: key, Kind: "dfa-subset"}
}

// nfaIndex precomputes ε-closures and label-indexed outgoing transitions
// for repeated subset-construction queries.
type nfaIndex struct {
	epsOut   map[State][]State
	labelOut map[State]map[string][]State
	final    map[State]struct{}
}

func newNFAIndex(n *NFA) *nfaIndex {
	idx := &nfaIndex{
		epsOut:   make(map[State][]State),
		labelOut: make(map[State]map[string][]State),
		final:    make(map[State]struct{}),
	}
	for _, f := range n.Final {
		idx.final[f] = struct{}{}
	}
	for _, t := range n.Delta {
		if t.Label == Eps {
			idx.epsOut[t.From] = append(idx.epsOut[t.From], t.To)
			continue
		}
		row, ok := idx.labelOut[t.From]
		if !ok {
			row = make(map[string][]State)
			idx.labelOut[t.From] = row
		}
		row[t.Label] = append(row[t.Label], t.To)
	}

	return idx
}

func (idx *nfaIndex) closure(start []State) map[State]struct{} {
	set := make(map[State]struct{})
	stack := append([]State(nil), start...)
	for _, s := range start {
		set[s] = struct{}{}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range idx.epsOut[s] {
			if _, ok := set[to]; !ok {
				set[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}

	return set
}

func (idx *nfaIndex) closureSet(set map[State]struct{}) map[State]struct{} {
	start := make([]State, 0, len(set))
	for s := range set {
		start = append(start, s)
	}

	return idx.closure(start)
}

func (idx *nfaIndex) move(set map[State]struct{}, label string) map[State]struct{} {
	out := make(map[State]struct{})
	for s := range set {
		for _, to := range idx.labelOut[s][label] {
			out[to] = struct{}{}
		}
	}

	return out
}

func (idx *nfaIndex) hasFinal(set map[State]struct{}) bool {
	for s := range set {
		if _, ok := idx.final[s]; ok {
			return true
		}
	}

	return false
}

func (idx *nfaIndex) setKey(set map[State]struct{}) string {
	keys := make([]string, 0, len(set))
	for s := range set {
		keys = append(keys, stateKey(s))
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "\x1f"
		}
		out += k
	}

	return out
}

func stateKey(s State) string {
	return s.Kind + ":" + stateValueKey(s)
}

func stateValueKey(s State) string {
	switch v := s.Value.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
