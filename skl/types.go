package skl

import (
	"time"

	"github.com/pkg/errors"
)

// Less reports whether a orders strictly before b. It must be a strict weak
// ordering; two keys are equal when neither is less than the other.
type Less[K any] func(a, b K) bool

// Ref addresses a node inside a SkipList's arena. Refs stay valid until the
// node they address is removed or the list is cleared.
type Ref int32

// Nil is the Ref of no node.
const Nil Ref = -1

const (
	// DefaultMaxLevel is the ceiling for level draws.
	DefaultMaxLevel = 32

	// DefaultP is the probability of promoting a node one level further.
	DefaultP = 0.2

	maxLevelLimit = 64
)

// Config holds configuration for the SkipList.
type Config struct {
	// maxLevel is the ceiling for a node's level
	maxLevel uint

	// p is probability for level promotion
	p float64

	// seed initializes the list's RNG; zero means seed from the clock
	seed uint64
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		maxLevel: DefaultMaxLevel,
		p:        DefaultP,
	}
}

// WithMaxLevel sets the ceiling for level draws.
func WithMaxLevel(maxLevel uint) func(*Config) {
	return func(c *Config) { c.maxLevel = maxLevel }
}

// WithP sets the probability for level promotion.
func WithP(p float64) func(*Config) {
	return func(c *Config) { c.p = p }
}

// WithSeed makes level draws reproducible.
func WithSeed(seed uint64) func(*Config) {
	return func(c *Config) { c.seed = seed }
}

// MaxLevel returns the configured level ceiling.
func (c Config) MaxLevel() int { return int(c.maxLevel) }

// P returns the configured promotion probability.
func (c Config) P() float64 { return c.p }

// normalize replaces out of range values with defaults.
func (c Config) normalize() Config {
	if c.maxLevel < 1 || c.maxLevel > maxLevelLimit {
		c.maxLevel = DefaultMaxLevel
	}
	if !(c.p > 0 && c.p < 1) {
		c.p = DefaultP
	}
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}
	return c
}

// Errors
var (
	// ErrKeyNotFound is returned when a key is not present in the list.
	ErrKeyNotFound = errors.New("key not found")
)
