package main

import (
	"github.com/alecthomas/kong"
)

var cli struct {
	Bench BenchCmd `cmd:"" help:"Run a generated workload against a map and report throughput and cache effectiveness."`
	Dump  DumpCmd  `cmd:"" help:"Build a map of random keys and print its skip list levels."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("skipmap"),
		kong.Description("Exercise and inspect the skip list backed ordered map."),
		kong.ShortUsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
