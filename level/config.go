package level

import (
	"math/rand"

	"github.com/katalvlaran/longtour/geom"
)

// config aggregates the knobs generators read. It is passed by value.
type config struct {
	rng    *rand.Rand // nil means no randomness
	scale  float64    // >0; radius, spacing or box side depending on generator
	origin geom.Point // added to every generated point
}

const defaultScale = 10.0

// newConfig applies opts over the defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures Generate.
type Option func(*config)

// WithSeed seeds a private RNG for Random.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG for Random. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("level: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithScale sets the generator scale. Panics if s <= 0.
func WithScale(s float64) Option {
	if s <= 0 {
		panic("level: WithScale(s<=0)")
	}
	return func(c *config) {
		c.scale = s
	}
}

// WithOrigin translates every generated point by o.
func WithOrigin(o geom.Point) Option {
	return func(c *config) {
		c.origin = o
	}
}
