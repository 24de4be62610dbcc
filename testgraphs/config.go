package testgraphs

import (
	"math/rand"
	"strconv"
)

// IDFn maps a vertex index to its string ID.
type IDFn func(i int) string

// DefaultIDFn renders decimal IDs "0", "1", "2", ...
func DefaultIDFn(i int) string {
	return strconv.Itoa(i)
}

// Option customizes a config before a Constructor runs.
type Option func(cfg *config)

type config struct {
	rng  *rand.Rand
	idFn IDFn
}

func newConfig(opts ...Option) *config {
	cfg := &config{rng: nil, idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) Option {
	return func(cfg *config) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithRand sets an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a fresh RNG, for reproducible RandomSparse graphs.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
