package testgraphs

import "errors"

// Sentinel errors for graph constructors.
var (
	// ErrTooFewVertices indicates a constructor was asked for fewer
	// vertices than it can meaningfully build.
	ErrTooFewVertices = errors.New("testgraphs: too few vertices")

	// ErrInvalidProbability indicates a RandomSparse probability outside [0,1].
	ErrInvalidProbability = errors.New("testgraphs: probability out of [0,1]")

	// ErrNeedRandSource indicates a randomized constructor was invoked
	// without an RNG and without p in {0,1} (the only deterministic shortcuts).
	ErrNeedRandSource = errors.New("testgraphs: randomized constructor requires WithRand/WithSeed")
)
