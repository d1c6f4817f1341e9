package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/avamsi/ergo/assert"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/metailurini/skipmap"
	"github.com/metailurini/skipmap/internal/workload"
)

type BenchCmd struct {
	Keys         int    `default:"4096" help:"Size of the key range."`
	Ops          int    `default:"1000000" help:"Operations per run."`
	Dist         string `default:"uniform" enum:"uniform,ascending,zipf" help:"Key distribution (${enum})."`
	WritePercent int    `default:"10" help:"Share of operations that insert or erase."`
	Cache        []int  `default:"0,10,64" help:"Cache capacities to compare."`
	Seed         int64  `default:"1" help:"Seed for the workload and the level draws."`
	Runs         int    `default:"1" help:"Runs per cache capacity."`
	CPUProfile   string `name:"cpuprofile" type:"path" help:"Write a CPU profile to this file."`
}

type benchResult struct {
	capacity int
	elapsed  time.Duration
	ops      int
	stats    skipmap.Stats
	height   int
	size     int
}

func (c *BenchCmd) Run() error {
	dist, err := workload.ParseDist(c.Dist)
	if err != nil {
		return err
	}
	if c.Ops <= 0 || c.Runs <= 0 {
		return errors.Errorf("ops and runs must be positive")
	}

	if c.CPUProfile != "" {
		assert.Nil(pprof.StartCPUProfile(assert.Ok(os.Create(c.CPUProfile))))
		defer pprof.StopCPUProfile()
	}

	bar := newProgressBar(len(c.Cache) * c.Runs)
	var results []benchResult
	for _, capacity := range c.Cache {
		for run := 0; run < c.Runs; run++ {
			gen, err := workload.New(dist, c.Keys, c.WritePercent, c.Seed+int64(run))
			if err != nil {
				return err
			}

			r, err := c.run(gen, capacity, uint64(c.Seed)+uint64(run)+1)
			if err != nil {
				return errors.Wrapf(err, "cache capacity %d, run %d", capacity, run)
			}
			results = append(results, r)
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()

	c.print(dist, results)
	return nil
}

// run replays ops against a map and a plain Go map, failing on the first
// observation where they disagree.
func (c *BenchCmd) run(gen *workload.Generator, capacity int, seed uint64) (benchResult, error) {
	m := skipmap.NewOrdered[int, int](skipmap.WithCacheCapacity(capacity), skipmap.WithSeed(seed))
	model := make(map[int]int, c.Keys)
	for i := 0; i < c.Keys/2; i++ {
		m.Insert(i, i)
		model[i] = i
	}

	ops := gen.Ops(c.Ops)
	got := make([]bool, len(ops))

	start := time.Now()
	for i, op := range ops {
		switch op.Type {
		case workload.OpInsert:
			_, got[i] = m.Insert(op.Key, op.Value)
		case workload.OpErase:
			got[i] = m.Erase(op.Key)
		case workload.OpFind:
			got[i] = m.Find(op.Key).Valid()
		case workload.OpContains:
			got[i] = m.Contains(op.Key)
		}
	}
	elapsed := time.Since(start)

	for i, op := range ops {
		_, present := model[op.Key]
		want := present
		switch op.Type {
		case workload.OpInsert:
			want = !present
			if !present {
				model[op.Key] = op.Value
			}
		case workload.OpErase:
			delete(model, op.Key)
		}
		if got[i] != want {
			return benchResult{}, errors.Errorf("op %d: %v(%d) returned %v, expected %v", i, op.Type, op.Key, got[i], want)
		}
	}
	if m.Len() != len(model) {
		return benchResult{}, errors.Errorf("map holds %d entries, expected %d", m.Len(), len(model))
	}
	for k, v := range m.All() {
		if model[k] != v {
			return benchResult{}, errors.Errorf("key %d holds %d, expected %d", k, v, model[k])
		}
	}

	return benchResult{
		capacity: capacity,
		elapsed:  elapsed,
		ops:      len(ops),
		stats:    m.Stats(),
		height:   m.Height(),
		size:     m.Len(),
	}, nil
}

func (c *BenchCmd) print(dist workload.Dist, results []benchResult) {
	fmt.Printf("%v keys, %v ops per run, %v distribution, %d%% writes\n\n",
		humanize.Comma(int64(c.Keys)), humanize.Comma(int64(c.Ops)), dist, c.WritePercent)

	rows := lo.Map(results, func(r benchResult, _ int) []string {
		perOp := float64(r.elapsed.Nanoseconds()) / float64(r.ops)
		return []string{
			fmt.Sprint(r.capacity),
			r.elapsed.Round(time.Microsecond).String(),
			humanize.FormatFloat("#,###.##", perOp),
			humanize.Comma(int64(float64(r.ops) / r.elapsed.Seconds())),
			humanize.Comma(r.stats.CacheHits),
			humanize.Comma(r.stats.CacheMisses),
			humanize.FormatFloat("#.####", r.stats.HitRatio()),
			humanize.Comma(r.stats.CacheEvictions),
			fmt.Sprint(r.height),
			humanize.Comma(int64(r.size)),
		}
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Cache", "Elapsed", "ns/op", "ops/s", "Hits", "Misses", "Hit ratio", "Evictions", "Height", "Size"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "#", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
