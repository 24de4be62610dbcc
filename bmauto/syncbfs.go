package bmauto

import (
	"fmt"
	"sort"

	"github.com/yarovoy/cfpq/automaton"
	"github.com/yarovoy/cfpq/matrix"
)

// SyncBFSResult holds the output of SyncBFS: Aggregate is populated in
// aggregate mode (the set of reachable graph states), PerNode in per-node
// mode (start graph state -> reachable graph states).
type SyncBFSResult struct {
	Aggregate []automaton.State
	PerNode   map[automaton.State][]automaton.State
}

// SyncBFS treats self as the query automaton (p states) and other as the
// graph automaton (q states) and computes, via multi-source synchronous
// BFS on their product, the graph states reachable from other's start
// states along a path whose label sequence self accepts.
//
// Front/direct-sum layout: this implementation tracks the query state in
// the first p columns and the graph frontier in the last q, both for the
// front matrix and for the per-label direct-sum matrices built from self ⊎
// other — a self-consistent choice of the "direction of tracking" the spec
// calls normative only insofar as harvest must read it symmetrically,
// which harvestSyncBFS below does.
func (self *BoolMatrixAutomaton) SyncBFS(other *BoolMatrixAutomaton, perNode bool) (*SyncBFSResult, error) {
	p, q := self.N(), other.N()
	labels := intersectLabels(self, other)

	dmats := make(map[string]*matrix.Bool, len(labels))
	for _, label := range labels {
		d, _ := matrix.NewBool(p+q, p+q)
		for _, c := range self.Mats[label].Nonzeros() {
			_ = d.Set(c.Row, c.Col)
		}
		for _, c := range other.Mats[label].Nonzeros() {
			_ = d.Set(p+c.Row, p+c.Col)
		}
		dmats[label] = d
	}

	starts := sortedIntKeys(other.Start)
	selfStarts := sortedIntKeys(self.Start)
	rows := p
	if perNode {
		rows = len(starts) * p
	}

	front, _ := matrix.NewBool(rows, p+q)
	if perNode {
		for k, g0 := range starts {
			for _, q0 := range selfStarts {
				r := k*p + q0
				_ = front.Set(r, q0)
				_ = front.Set(r, p+g0)
			}
		}
	} else {
		for _, q0 := range selfStarts {
			_ = front.Set(q0, q0)
			for _, g0 := range starts {
				_ = front.Set(q0, p+g0)
			}
		}
	}

	visited := front.Clone()
	for {
		acc, _ := matrix.NewBool(rows, p+q)
		for _, label := range labels {
			step, err := matrix.Mul(front, dmats[label])
			if err != nil {
				return nil, err
			}
			normalized := rowNormalize(step, p)
			next, err := matrix.Or(acc, normalized)
			if err != nil {
				return nil, err
			}
			acc = next
		}

		newFront := subtract(acc, visited)
		if newFront.Nnz() == 0 {
			break
		}
		merged, err := matrix.Or(visited, newFront)
		if err != nil {
			return nil, err
		}
		visited = merged
		front = newFront
	}

	return harvestSyncBFS(self, other, visited, starts, p, perNode), nil
}

// rowNormalize re-aligns each row of step, a front·D product, so the
// query-state identity bit always matches the row's block: for each
// nonzero row r, every query bit j in columns [0,p) spawns a row at
// (r/p)*p+j carrying j's bit plus r's tail (columns >= p).
func rowNormalize(step *matrix.Bool, p int) *matrix.Bool {
	out, _ := matrix.NewBool(step.Rows(), step.Cols())

	queryBits := map[int][]int{}
	tails := map[int][]int{}
	for _, c := range step.Nonzeros() {
		if c.Col < p {
			queryBits[c.Row] = append(queryBits[c.Row], c.Col)
		} else {
			tails[c.Row] = append(tails[c.Row], c.Col)
		}
	}

	for r, bits := range queryBits {
		block := (r / p) * p
		for _, j := range bits {
			dest := block + j
			_ = out.Set(dest, j)
			for _, t := range tails[r] {
				_ = out.Set(dest, t)
			}
		}
	}

	return out
}

func subtract(a, b *matrix.Bool) *matrix.Bool {
	out := a.Clone()
	for _, c := range b.Nonzeros() {
		_ = out.Clear(c.Row, c.Col)
	}

	return out
}

func sortedIntKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func harvestSyncBFS(self, other *BoolMatrixAutomaton, visited *matrix.Bool, starts []int, p int, perNode bool) *SyncBFSResult {
	res := &SyncBFSResult{PerNode: map[automaton.State][]automaton.State{}}
	for _, c := range visited.Nonzeros() {
		if c.Col < p {
			continue
		}
		queryState := c.Row % p
		graphIdx := c.Col - p
		if _, ok := self.Final[queryState]; !ok {
			continue
		}
		if _, ok := other.Final[graphIdx]; !ok {
			continue
		}
		graphState := other.States[graphIdx]
		if perNode {
			startIdx := starts[c.Row/p]
			startState := other.States[startIdx]
			res.PerNode[startState] = appendUniqueState(res.PerNode[startState], graphState)
		} else {
			res.Aggregate = appendUniqueState(res.Aggregate, graphState)
		}
	}

	sortStates(res.Aggregate)
	for k := range res.PerNode {
		sortStates(res.PerNode[k])
	}

	return res
}

func appendUniqueState(list []automaton.State, s automaton.State) []automaton.State {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}

	return append(list, s)
}

func sortStates(list []automaton.State) {
	sort.Slice(list, func(i, j int) bool {
		return fmt.Sprintf("%v", list[i]) < fmt.Sprintf("%v", list[j])
	})
}
