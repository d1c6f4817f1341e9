// Package workload generates reproducible key streams and operation mixes
// for exercising a skipmap.Map.
package workload

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Dist is a key distribution.
type Dist int

const (
	Uniform Dist = iota
	Ascending
	Zipf
)

var distNames = []string{"uniform", "ascending", "zipf"}

func (d Dist) String() string {
	if int(d) < 0 || int(d) >= len(distNames) {
		return "unknown"
	}
	return distNames[d]
}

// ParseDist maps a name such as "zipf" to its Dist.
func ParseDist(name string) (Dist, error) {
	for i, n := range distNames {
		if strings.EqualFold(n, name) {
			return Dist(i), nil
		}
	}
	return 0, errors.Errorf("unknown distribution %q", name)
}

// OpType is the kind of a generated operation.
type OpType uint8

const (
	OpFind OpType = iota
	OpContains
	OpInsert
	OpErase
)

func (t OpType) String() string {
	switch t {
	case OpFind:
		return "Find"
	case OpContains:
		return "Contains"
	case OpInsert:
		return "Insert"
	case OpErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Op is one generated operation.
type Op struct {
	Type  OpType
	Key   int
	Value int
}

// Generator produces keys in [0, keys) following a Dist, and operations
// with a given share of writes.
type Generator struct {
	dist         Dist
	keys         int
	writePercent int
	rng          *rand.Rand
	zipf         *rand.Zipf
	next         int
}

// New returns a Generator. keys must be positive and writePercent within
// [0, 100].
func New(dist Dist, keys, writePercent int, seed int64) (*Generator, error) {
	if keys <= 0 {
		return nil, errors.Errorf("key range must be positive, got %d", keys)
	}
	if writePercent < 0 || writePercent > 100 {
		return nil, errors.Errorf("write percent must be within [0, 100], got %d", writePercent)
	}

	g := &Generator{
		dist:         dist,
		keys:         keys,
		writePercent: writePercent,
		rng:          rand.New(rand.NewSource(seed)),
	}
	if dist == Zipf {
		upper := uint64(keys - 1)
		if upper == 0 {
			upper = 1
		}
		g.zipf = rand.NewZipf(g.rng, 1.2, 1, upper)
	}
	return g, nil
}

// Key returns the next key.
func (g *Generator) Key() int {
	switch g.dist {
	case Ascending:
		k := g.next % g.keys
		g.next++
		return k
	case Zipf:
		return int(g.zipf.Uint64()) % g.keys
	default:
		return g.rng.Intn(g.keys)
	}
}

// Op returns the next operation. Writes split evenly between Insert and
// Erase, reads between Find and Contains.
func (g *Generator) Op() Op {
	op := Op{Key: g.Key()}
	if g.rng.Intn(100) < g.writePercent {
		if g.rng.Intn(2) == 0 {
			op.Type = OpInsert
			op.Value = g.rng.Intn(1 << 16)
		} else {
			op.Type = OpErase
		}
	} else {
		if g.rng.Intn(2) == 0 {
			op.Type = OpFind
		} else {
			op.Type = OpContains
		}
	}
	return op
}

// Ops returns the next n operations.
func (g *Generator) Ops(n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = g.Op()
	}
	return ops
}
