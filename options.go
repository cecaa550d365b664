package prrp

import "math/rand"

// Options configures a driver run. The zero value is not meant to be used
// directly — resolveOptions applies the defaults below before any
// functional option runs.
type Options struct {
	// MaxRetries bounds a single region's growth retries: restarts from a
	// fresh seed before the call fails with Infeasible (spatial), or
	// fallback picks after the heap empties before a partial region is
	// returned (graph).
	MaxRetries int

	// MaxSplit (MS) is the graph driver's overflow threshold: a grown
	// region larger than MaxSplit is split into several regions. Set
	// internally by RunGraph from its ms parameter; unused elsewhere.
	MaxSplit int

	// Seed seeds the driver's private RNG. Two calls with the same Seed
	// and the same adjacency/cardinalities reproduce the same partition.
	// Ignored if RNG is set directly.
	Seed int64

	// RNG, if non-nil, is used instead of constructing one from Seed —
	// the escape hatch for callers (e.g. the parallel runner) that need to
	// hand each driver invocation an independently derived stream.
	RNG *rand.Rand
}

// Option is a functional option for a driver run.
type Option func(*Options)

// defaultOptions centralizes zero-value behavior in one place rather than
// scattering `if x == 0` checks through the driver body.
func defaultOptions() Options {
	return Options{
		MaxRetries: 10,
		MaxSplit:   0, // graph driver callers are expected to set this explicitly
	}
}

// WithMaxRetries overrides the retry budget passed to region growth.
func WithMaxRetries(n int) Option {
	return func(o *Options) { o.MaxRetries = n }
}

// WithSeed seeds the driver's private RNG deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRNG injects an RNG directly, taking precedence over Seed.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.RNG = rng }
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o Options) rng() *rand.Rand {
	if o.RNG != nil {
		return o.RNG
	}
	return rand.New(rand.NewSource(o.Seed))
}
