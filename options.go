package skipmap

import "github.com/metailurini/skipmap/skl"

// DefaultCacheCapacity is the number of recently resolved keys a Map keeps
// in its lookaside cache unless WithCacheCapacity says otherwise.
const DefaultCacheCapacity = 10

// Option configures a Map.
type Option func(*config)

type config struct {
	list          []func(*skl.Config)
	cacheCapacity int
}

func newConfig(opts []Option) config {
	c := config{cacheCapacity: DefaultCacheCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithCacheCapacity bounds the lookaside cache. A capacity of zero or less
// disables caching.
func WithCacheCapacity(n int) Option {
	return func(c *config) { c.cacheCapacity = n }
}

// WithMaxLevel sets the ceiling for the skip list's level draws.
func WithMaxLevel(maxLevel uint) Option {
	return func(c *config) { c.list = append(c.list, skl.WithMaxLevel(maxLevel)) }
}

// WithProbability sets the probability of promoting a key one level up.
func WithProbability(p float64) Option {
	return func(c *config) { c.list = append(c.list, skl.WithP(p)) }
}

// WithSeed makes the skip list's shape reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.list = append(c.list, skl.WithSeed(seed)) }
}
