package testgraphs

import (
	"fmt"

	"github.com/yarovoy/cfpq/core"
)

const minCycleNodes = 2

// Constructor applies a deterministic mutation to g using cfg. Constructors
// validate parameters early and return sentinel errors; they never panic.
type Constructor func(g *core.LabeledGraph, cfg *config) error

// Build creates a LabeledGraph with the given graph options, resolves opts
// into a config, and applies each Constructor in order. A constructor error
// is wrapped with "Build: %w" and returned immediately.
func Build(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.LabeledGraph, error) {
	g := core.NewLabeledGraph(gopts...)
	cfg := newConfig(opts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Cycle returns a Constructor building a simple directed n-cycle whose edges
// all carry label. Vertex i connects to (i+1)%n; n=2 yields the two opposing
// arcs of a 2-cycle (the smallest cycle a directed multigraph admits).
func Cycle(n int, label string) Constructor {
	return func(g *core.LabeledGraph, cfg *config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Cycle: AddVertex: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			from, to := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(from, to, label); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%s->%s): %w", from, to, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor building a simple directed path 0->1->...->n-1
// whose edges all carry label. Unlike Cycle, the last vertex has no outgoing
// edge back to the first.
func Path(n int, label string) Constructor {
	return func(g *core.LabeledGraph, cfg *config) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Path: AddVertex: %w", err)
			}
		}
		for i := 0; i < n-1; i++ {
			from, to := cfg.idFn(i), cfg.idFn(i+1)
			if _, err := g.AddEdge(from, to, label); err != nil {
				return fmt.Errorf("Path: AddEdge(%s->%s): %w", from, to, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor building the complete directed graph on n
// vertices (every ordered pair i != j gets an edge), all carrying label.
func Complete(n int, label string) Constructor {
	return func(g *core.LabeledGraph, cfg *config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Complete: AddVertex: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				from, to := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(from, to, label); err != nil {
					return fmt.Errorf("Complete: AddEdge(%s->%s): %w", from, to, err)
				}
			}
		}

		return nil
	}
}

// TwoCyclesSharingVertex returns a Constructor building two directed cycles
// of size n and m, labeled labelA and labelB respectively, that share a
// single vertex (index 0 under cfg.idFn).
//
// Indexing: cycle A occupies indices 0..n-1; cycle B occupies index 0
// (shared) plus fresh indices n..n+m-2. Each cycle's edges are emitted in
// ring order exactly as Cycle does, restricted to its own index sequence.
func TwoCyclesSharingVertex(n, m int, labelA, labelB string) Constructor {
	return func(g *core.LabeledGraph, cfg *config) error {
		if n < minCycleNodes || m < minCycleNodes {
			return fmt.Errorf("TwoCyclesSharingVertex: n=%d m=%d < min=%d: %w", n, m, minCycleNodes, ErrTooFewVertices)
		}

		ringA := make([]string, n)
		for i := 0; i < n; i++ {
			ringA[i] = cfg.idFn(i)
		}
		ringB := make([]string, m)
		ringB[0] = cfg.idFn(0)
		for i := 1; i < m; i++ {
			ringB[i] = cfg.idFn(n - 1 + i)
		}

		seen := map[string]struct{}{}
		for _, id := range append(append([]string{}, ringA...), ringB...) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("TwoCyclesSharingVertex: AddVertex: %w", err)
			}
		}

		if err := addRing(g, ringA, labelA); err != nil {
			return fmt.Errorf("TwoCyclesSharingVertex: cycle A: %w", err)
		}
		if err := addRing(g, ringB, labelB); err != nil {
			return fmt.Errorf("TwoCyclesSharingVertex: cycle B: %w", err)
		}

		return nil
	}
}

func addRing(g *core.LabeledGraph, ring []string, label string) error {
	for i, from := range ring {
		to := ring[(i+1)%len(ring)]
		if _, err := g.AddEdge(from, to, label); err != nil {
			return err
		}
	}

	return nil
}

// RandomSparse returns a Constructor building an Erdős–Rényi-style directed
// graph on n vertices, every ordered pair i != j independently connected by
// an edge labeled label with probability p. p=0 and p=1 are deterministic
// shortcuts that do not require cfg.rng; any other p requires WithRand or
// WithSeed to have been applied.
func RandomSparse(n int, p float64, label string) Constructor {
	return func(g *core.LabeledGraph, cfg *config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		if p != 0 && p != 1 && cfg.rng == nil {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("RandomSparse: AddVertex: %w", err)
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				var hit bool
				switch p {
				case 0:
					hit = false
				case 1:
					hit = true
				default:
					hit = cfg.rng.Float64() < p
				}
				if !hit {
					continue
				}
				from, to := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(from, to, label); err != nil {
					return fmt.Errorf("RandomSparse: AddEdge(%s->%s): %w", from, to, err)
				}
			}
		}

		return nil
	}
}
