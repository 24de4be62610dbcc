// Package testgraphs supplies deterministic core.LabeledGraph constructors
// used by the cfpq test suite to build scenario S2 and bounded random
// graphs for the solver-equivalence property test,
// mirroring the teacher's builder.BuildGraph orchestration idiom adapted
// from weighted core.Graph to labeled core.LabeledGraph.
package testgraphs
