// Package gen exposes biome generation for one world: a Generator built from a
// seed, version and dimension answers point and area biome queries, reusing
// intermediate grids through a bounded cache.
package gen

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/internal/gridcache"
	"github.com/df-mc/biomegen/gen/internal/mathx"
	"github.com/df-mc/biomegen/gen/layer"
	"github.com/df-mc/biomegen/gen/mc"
)

// SeaLevel is the block height BiomeAt queries at.
const SeaLevel = 63

// DefaultCacheCapacity is the number of grids a Generator caches unless
// configured otherwise.
const DefaultCacheCapacity = 64

// Generator answers biome queries for one seed, version and dimension. The
// triple is fixed at construction. A Generator owns a grid cache and must
// not be used by multiple goroutines at once; create one per goroutine.
type Generator struct {
	seed  int64
	stack *layer.Stack
	cache *gridcache.Cache
	log   *slog.Logger
}

type options struct {
	flags    mc.Flags
	capacity int
	log      *slog.Logger
}

// Option configures a Generator created with New.
type Option func(o *options)

// WithFlags sets the world flags, such as mc.LargeBiomes.
func WithFlags(f mc.Flags) Option {
	return func(o *options) { o.flags = f }
}

// WithCacheCapacity sets the number of grids cached. Zero disables caching.
func WithCacheCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLogger sets the logger of the Generator. By default, slog.Default() is
// used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New builds the generator for the seed, version and dimension passed. An
// error matching ErrUnsupportedConfiguration is returned if no generation
// algorithm exists for the version and dimension.
func New(seed int64, v mc.Version, dim mc.Dimension, opts ...Option) (*Generator, error) {
	o := options{capacity: DefaultCacheCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	s, err := layer.Build(v, dim, o.flags, seed)
	if err != nil {
		if errors.Is(err, layer.ErrUnsupported) {
			return nil, fmt.Errorf("new generator for %v %v: %w", mc.VersionName(v), dim, ErrUnsupportedConfiguration)
		}
		return nil, fmt.Errorf("new generator: %w", err)
	}
	g := &Generator{
		seed:  seed,
		stack: s,
		cache: gridcache.New(o.capacity),
		log:   o.log.With("seed", seed, "version", mc.VersionName(v), "dimension", dim.String()),
	}
	g.log.Debug("Built layer stack.", "layers", len(s.Layers()))
	return g, nil
}

// Seed ...
func (g *Generator) Seed() int64 {
	return g.seed
}

// Version ...
func (g *Generator) Version() mc.Version {
	return g.stack.Version
}

// Dimension ...
func (g *Generator) Dimension() mc.Dimension {
	return g.stack.Dimension
}

// Flags ...
func (g *Generator) Flags() mc.Flags {
	return g.stack.Flags
}

// CacheStats holds the counters of the grid cache of a Generator.
type CacheStats struct {
	Hits, Misses, Evictions uint64
	Len, Capacity           int
}

// CacheStats returns a snapshot of the grid cache counters.
func (g *Generator) CacheStats() CacheStats {
	s := g.cache.Stats()
	return CacheStats{Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions, Len: g.cache.Len(), Capacity: g.cache.Capacity()}
}

// BiomeAt returns the biome of the block column at x, z, sampled at sea
// level.
func (g *Generator) BiomeAt(x, z int) (biome.ID, error) {
	return g.BiomeAtScale(1, x, SeaLevel, z)
}

// BiomeAtScale returns the biome of the cell x, z at the scale passed. y is
// a block coordinate and only affects 3D sources.
func (g *Generator) BiomeAtScale(scale, x, y, z int) (biome.ID, error) {
	m, err := g.BiomeMap(Range{Scale: scale, X: x, Z: z, W: 1, H: 1, Y: y})
	if err != nil {
		return biome.None, err
	}
	return m.Cells[0], nil
}

// BiomeMap returns the biomes of every cell in r.
func (g *Generator) BiomeMap(r Range) (Grid, error) {
	if r.W <= 0 || r.H <= 0 {
		return Grid{}, fmt.Errorf("biome map of %dx%d cells: %w", r.W, r.H, ErrInvalidRange)
	}
	id, ok := g.stack.Entry(r.Scale)
	if !ok || !slices.Contains(layer.Scales, r.Scale) {
		return Grid{}, fmt.Errorf("biome map at scale %d: %w", r.Scale, ErrInvalidRange)
	}
	if err := checkDomain(r); err != nil {
		return Grid{}, err
	}
	cells := g.stack.Gen(g.cache, id, r.X, r.Z, r.W, r.H, mathx.FloorDiv(r.Y, r.Scale))
	return Grid{Range: r, Cells: slices.Clone(cells)}, nil
}

func checkDomain(r Range) error {
	x, z := int64(r.X), int64(r.Z)
	if mathx.Abs(x) > MaxCoordinate || mathx.Abs(z) > MaxCoordinate || r.W > 2*MaxCoordinate || r.H > 2*MaxCoordinate {
		return &OutOfDomainError{X: x, Z: z}
	}
	s := int64(r.Scale)
	for _, c := range [...][2]int64{
		{int64(r.X) * s, int64(r.Z) * s},
		{(int64(r.X)+int64(r.W))*s - 1, (int64(r.Z)+int64(r.H))*s - 1},
	} {
		if mathx.Abs(c[0]) > MaxCoordinate || mathx.Abs(c[1]) > MaxCoordinate {
			return &OutOfDomainError{X: c[0], Z: c[1]}
		}
	}
	return nil
}
