// Command biomeseek searches a range of world seeds for seeds matching the
// conditions of a TOML or YAML job file, printing every match to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/search"
	"github.com/df-mc/biomegen/gen/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "path of the job file (.toml, .yaml or .yml)")
		seedFrom   = flag.Int64("seed-from", 0, "first seed searched, overriding the job file")
		seedTo     = flag.Int64("seed-to", 0, "last seed searched, overriding the job file")
		limit      = flag.Int("limit", 0, "stop after this many matches, overriding the job file")
		storePath  = flag.String("store", "", "path of the store, overriding the job file; uses the "+defaultBackend+" backend if the job names none")
		snapshot   = flag.Int("snapshot", 0, "store a biome map of this many 1:4 cells square around the origin for every match")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	uc := gen.DefaultConfig()
	if *configPath != "" {
		var err error
		if uc, err = gen.LoadUserConfig(*configPath); err != nil {
			log.Error("Could not load job.", "err", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed-from":
			uc.Search.SeedFrom = *seedFrom
		case "seed-to":
			uc.Search.SeedTo = *seedTo
		case "limit":
			uc.Search.Limit = *limit
		case "store":
			overrideStore(&uc, *storePath)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, log, uc, *snapshot); err != nil {
		log.Error("Search failed.", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, uc gen.UserConfig, snapshot int) error {
	conf, err := uc.Config(log)
	if err != nil {
		return err
	}
	pred, err := search.FromConditions(uc.Conditions)
	if err != nil {
		return err
	}
	metrics := search.NewMetrics()
	engine := search.New(search.Config{
		Version:       conf.Version,
		Dimension:     conf.Dimension,
		Flags:         conf.Flags,
		Workers:       uc.Search.Workers,
		Buffer:        uc.Search.Buffer,
		CacheCapacity: conf.CacheCapacity,
		Log:           log,
		Metrics:       metrics,
	})

	var (
		st  store.Store
		job store.Job
	)
	if uc.Store.Backend != "" {
		if st, err = store.Open(uc.Store.Backend, uc.Store.Path); err != nil {
			return err
		}
		defer st.Close()
		job = store.NewJob(uc)
		if err := st.CreateJob(job); err != nil {
			return err
		}
	}

	from, to := uc.Search.SeedFrom, uc.Search.SeedTo
	if to < from {
		return fmt.Errorf("seed range %d..%d is empty", from, to)
	}
	log.Info("Starting search.", "job", job.ID, "version", uc.World.Version, "dimension", conf.Dimension, "from", from, "to", to, "conditions", len(uc.Conditions))

	var found int
	for m, err := range engine.Search(ctx, search.Between(from, to), pred) {
		if err != nil {
			var perr *search.PredicateError
			if errors.As(err, &perr) {
				log.Warn("Worker stopped early.", "worker", perr.Worker, "seed", perr.Seed, "err", perr.Err)
				continue
			}
			if errors.Is(err, context.Canceled) {
				log.Info("Search interrupted.")
				break
			}
			return err
		}
		found++
		fmt.Println(m.Seed)
		origin, err := originBiome(conf, m.Seed)
		if err != nil {
			return err
		}
		log.Info("Found seed.", "seed", m.Seed, "worker", m.Worker, "origin", origin)
		if st != nil {
			if err := save(st, job, conf, m.Seed, snapshot); err != nil {
				return err
			}
		}
		if uc.Search.Limit > 0 && found >= uc.Search.Limit {
			break
		}
	}
	total := metrics.Total()
	log.Info("Search finished.", "matches", found, "evaluated", total.Evaluated, "failed", total.Failed, "stalls", total.Stalls)
	return nil
}

// defaultBackend stores matches when -store is passed for a job without a
// backend.
const defaultBackend = "leveldb"

// overrideStore points the job at the store path passed, enabling the default
// backend if the job stores nothing.
func overrideStore(uc *gen.UserConfig, path string) {
	uc.Store.Path = path
	if uc.Store.Backend == "" {
		uc.Store.Backend = defaultBackend
	}
}

// originBiome returns the display name of the biome at the origin of seed.
func originBiome(conf gen.Config, seed int64) (string, error) {
	conf.Seed = seed
	g, err := conf.New()
	if err != nil {
		return "", err
	}
	b, err := g.BiomeAt(0, 0)
	if err != nil {
		return "", err
	}
	return biome.DisplayName(conf.Version, b), nil
}

// save records a match and, if size is positive, a biome map of the seed
// centred on the origin.
func save(st store.Store, job store.Job, conf gen.Config, seed int64, size int) error {
	if err := st.PutMatch(job.ID, seed); err != nil {
		return err
	}
	if size <= 0 {
		return nil
	}
	conf.Seed = seed
	g, err := conf.New()
	if err != nil {
		return err
	}
	grid, err := g.BiomeMap(gen.Range{Scale: 4, X: -size / 2, Z: -size / 2, W: size, H: size, Y: gen.SeaLevel})
	if err != nil {
		return err
	}
	return st.PutSnapshot(job.ID, seed, grid)
}
