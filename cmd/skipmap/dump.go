package main

import (
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/metailurini/skipmap"
)

type DumpCmd struct {
	Keys        int     `default:"16" help:"Number of keys to insert."`
	Seed        int64   `default:"1" help:"Seed for the key order and the level draws."`
	Probability float64 `default:"0.5" help:"Promotion probability of the level draw."`
}

func (c *DumpCmd) Run() error {
	if c.Keys < 0 {
		return errors.Errorf("keys must not be negative, got %d", c.Keys)
	}

	m := skipmap.NewOrdered[int, struct{}](
		skipmap.WithSeed(uint64(c.Seed)),
		skipmap.WithProbability(c.Probability),
	)

	keys := lo.Range(c.Keys)
	r := rand.New(rand.NewSource(c.Seed))
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for _, k := range keys {
		m.Insert(k, struct{}{})
	}

	m.Dump(os.Stdout)
	return nil
}
