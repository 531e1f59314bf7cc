package search

import (
	"log/slog"
	"runtime"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/mc"
)

// Config holds the parameters of a search. The zero value searches the
// overworld of the newest version; defaults are applied by withDefaults.
type Config struct {
	// Version and Dimension select the generators built for candidates.
	Version   mc.Version
	Dimension mc.Dimension
	// Flags are passed to every generator.
	Flags mc.Flags
	// Workers is the number of goroutines evaluating seeds. Each owns its
	// generators exclusively.
	Workers int
	// Buffer is the number of matches a worker may compute ahead of the
	// consumer before it stalls.
	Buffer int
	// CacheCapacity is the grid cache capacity of each generator. Zero uses
	// the generator default and a negative value disables the cache.
	CacheCapacity int
	// Log receives worker lifecycle messages. slog.Default() is used if nil.
	Log *slog.Logger
	// Metrics optionally collects per-worker counters.
	Metrics *Metrics
}

func (c Config) withDefaults() Config {
	if c.Version == 0 {
		c.Version = mc.Newest
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Buffer <= 0 {
		c.Buffer = 16
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

func (c Config) generator(seed int64) gen.Config {
	return gen.Config{
		Log:           c.Log,
		Seed:          seed,
		Version:       c.Version,
		Dimension:     c.Dimension,
		Flags:         c.Flags,
		CacheCapacity: c.CacheCapacity,
	}
}
