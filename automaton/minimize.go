package automaton

import (
	"sort"
	"strconv"
)

// Minimize computes the minimal DFA equivalent to d via iterative partition
// refinement (Moore's algorithm): states start partitioned by
// accepting/non-accepting, then repeatedly split by the block signature of
// their per-label successors until stable. A synthetic dead state absorbs
// undefined transitions so partial DFAs refine correctly; it is dropped
// from the result since downstream code only inspects transitions that
// exist.
func Minimize(d *DFA) *DFA {
	deadState := State{Value: struct{}{}, Kind: "dead"}
	states := append([]State(nil), d.States...)
	hasDead := false
	alphabet := collectAlphabet(d)

	succ := func(s State, label string) State {
		if s == deadState {
			return deadState
		}
		to, ok := d.Step(s, label)
		if !ok {
			hasDead = true
			return deadState
		}
		return to
	}

	// probe once to see whether a dead state is actually needed
	for _, s := range states {
		for _, label := range alphabet {
			succ(s, label)
		}
	}
	all := states
	if hasDead {
		all = append(append([]State(nil), states...), deadState)
	}

	block := make(map[State]int, len(all))
	for _, s := range all {
		if d.IsFinal(s) {
			block[s] = 1
		} else {
			block[s] = 0
		}
	}

	for {
		changed := false
		sig := make(map[State]string, len(all))
		for _, s := range all {
			key := ""
			for _, label := range alphabet {
				key += "|" + strconv.Itoa(block[succ(s, label)])
			}
			sig[s] = strconv.Itoa(block[s]) + ":" + key
		}

		newBlock := make(map[State]int, len(all))
		assigned := map[string]int{}
		next := 0
		for _, s := range all {
			id, ok := assigned[sig[s]]
			if !ok {
				id = next
				assigned[sig[s]] = id
				next++
			}
			newBlock[s] = id
		}

		for _, s := range all {
			if newBlock[s] != block[s] {
				changed = true
				break
			}
		}
		block = newBlock
		if !changed {
			break
		}
	}

	// representative state per block, excluding the dead block
	deadBlock := block[deadState]
	repOf := map[int]State{}
	var blockIDs []int
	for _, s := range all {
		b := block[s]
		if hasDead && b == deadBlock {
			continue
		}
		if _, ok := repOf[b]; !ok {
			repOf[b] = State{Value: b, Kind: "dfa-min"}
			blockIDs = append(blockIDs, b)
		}
	}
	sort.Ints(blockIDs)

	out := &DFA{Delta: make(map[State]map[string]State), Final: make(map[State]struct{})}
	for _, b := range blockIDs {
		rep := repOf[b]
		out.States = append(out.States, rep)
	}
	for _, s := range states {
		b := block[s]
		if hasDead && b == deadBlock {
			continue
		}
		rep := repOf[b]
		if d.IsFinal(s) {
			out.Final[rep] = struct{}{}
		}
		row := out.Delta[rep]
		if row == nil {
			row = make(map[string]State)
			out.Delta[rep] = row
		}
		for _, label := range alphabet {
			to := succ(s, label)
			tb := block[to]
			if hasDead && tb == deadBlock {
				continue
			}
			row[label] = repOf[tb]
		}
	}
	out.Start = repOf[block[d.Start]]

	return out
}

func collectAlphabet(d *DFA) []string {
	seen := map[string]struct{}{}
	for _, row := range d.Delta {
		for label := range row {
			seen[label] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
