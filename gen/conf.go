package gen

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/df-mc/biomegen/gen/mc"
	"github.com/pelletier/go-toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Config contains the options for creating a Generator.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed is the world seed.
	Seed int64
	// Version selects the generation algorithm of a game release.
	Version mc.Version
	// Dimension selects the dimension to generate biomes of.
	Dimension mc.Dimension
	// Flags alter the world type, for example to generate large biomes.
	Flags mc.Flags
	// CacheCapacity is the number of grids the Generator keeps cached. If
	// negative, caching is disabled. If zero, DefaultCacheCapacity is used.
	CacheCapacity int
}

// New creates a Generator using the fields of conf.
func (conf Config) New() (*Generator, error) {
	capacity := conf.CacheCapacity
	switch {
	case capacity == 0:
		capacity = DefaultCacheCapacity
	case capacity < 0:
		capacity = 0
	}
	return New(conf.Seed, conf.Version, conf.Dimension,
		WithFlags(conf.Flags), WithCacheCapacity(capacity), WithLogger(conf.Log))
}

// UserConfig is the user configuration of a seed search job. It may be
// serialised as TOML or YAML and converted to a Config by calling
// UserConfig.Config(). Search, Conditions and Store are consumed by the
// search driver.
type UserConfig struct {
	World struct {
		// Seed is the world seed used when generating single maps.
		Seed int64 `toml:"seed" yaml:"seed"`
		// Version is the game release, such as "1.16" or "1.18.2".
		Version string `toml:"version" yaml:"version"`
		// Dimension is one of "overworld", "nether" and "end".
		Dimension string `toml:"dimension" yaml:"dimension"`
		// LargeBiomes generates the "Large Biomes" world type.
		LargeBiomes bool `toml:"large_biomes" yaml:"large_biomes"`
		// ForceOceanVariants runs ocean temperature layers before 1.13.
		ForceOceanVariants bool `toml:"force_ocean_variants" yaml:"force_ocean_variants"`
		// CacheCapacity is the number of grids each generator caches.
		CacheCapacity int `toml:"cache_capacity" yaml:"cache_capacity"`
	} `toml:"world" yaml:"world"`
	Search struct {
		// Workers is the number of seeds evaluated in parallel. Zero selects
		// the number of CPUs.
		Workers int `toml:"workers" yaml:"workers"`
		// Buffer is the number of matches each worker may hold before it
		// waits for the consumer.
		Buffer int `toml:"buffer" yaml:"buffer"`
		// SeedFrom and SeedTo delimit the seeds searched, both inclusive.
		SeedFrom int64 `toml:"seed_from" yaml:"seed_from"`
		SeedTo   int64 `toml:"seed_to" yaml:"seed_to"`
		// Limit stops the search after this many matches. Zero means no
		// limit.
		Limit int `toml:"limit" yaml:"limit"`
	} `toml:"search" yaml:"search"`
	// Conditions must all hold for a seed to match.
	Conditions []Condition `toml:"conditions" yaml:"conditions"`
	Store      struct {
		// Backend is "leveldb", "sqlite" or empty to store nothing.
		Backend string `toml:"backend" yaml:"backend"`
		// Path is the directory or file the backend stores data in.
		Path string `toml:"path" yaml:"path"`
	} `toml:"store" yaml:"store"`
}

// Condition is a serialisable seed predicate.
type Condition struct {
	// Type is "biome", "structure" or "slime_chunk".
	Type string `toml:"type" yaml:"type"`
	// Biome is the biome required at X, Z for a "biome" condition.
	Biome string `toml:"biome" yaml:"biome"`
	// Structure is the structure required within Radius blocks of X, Z.
	Structure string `toml:"structure" yaml:"structure"`
	X         int    `toml:"x" yaml:"x"`
	Z         int    `toml:"z" yaml:"z"`
	Radius    int    `toml:"radius" yaml:"radius"`
	// Negate inverts the condition.
	Negate bool `toml:"negate" yaml:"negate"`
}

// Config converts a UserConfig to a Config. An error is returned if the
// version or dimension cannot be parsed.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	v, err := mc.ParseVersion(uc.World.Version)
	if err != nil {
		return Config{}, fmt.Errorf("parse world config: %w", err)
	}
	dim, err := mc.ParseDimension(uc.World.Dimension)
	if err != nil {
		return Config{}, fmt.Errorf("parse world config: %w", err)
	}
	conf := Config{
		Log:           log,
		Seed:          uc.World.Seed,
		Version:       v,
		Dimension:     dim,
		CacheCapacity: uc.World.CacheCapacity,
	}
	if uc.World.LargeBiomes {
		conf.Flags |= mc.LargeBiomes
	}
	if uc.World.ForceOceanVariants {
		conf.Flags |= mc.ForceOceanVariants
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	return conf, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Version = mc.VersionName(mc.Newest)
	c.World.Dimension = mc.Overworld.String()
	c.World.CacheCapacity = DefaultCacheCapacity
	c.Search.Buffer = 16
	c.Search.SeedTo = 100_000
	return c
}

//go:embed config.schema.json
var schemaSource string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("config.schema.json", schemaSource)
})

// LoadUserConfig reads a UserConfig from a TOML (.toml) or YAML (.yaml, .yml)
// file. Values missing from the file keep their defaults. The document is
// validated against the job schema before it is decoded.
func LoadUserConfig(path string) (UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UserConfig{}, fmt.Errorf("read config: %w", err)
	}
	return ParseUserConfig(data, filepath.Ext(path))
}

// ParseUserConfig decodes a UserConfig in the format named by ext, which is
// a file extension such as ".toml".
func ParseUserConfig(data []byte, ext string) (UserConfig, error) {
	var (
		doc       map[string]any
		unmarshal func([]byte, any) error
	)
	switch strings.ToLower(ext) {
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return UserConfig{}, fmt.Errorf("decode toml config: %w", err)
		}
		doc, unmarshal = tree.ToMap(), toml.Unmarshal
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return UserConfig{}, fmt.Errorf("decode yaml config: %w", err)
		}
		unmarshal = yaml.Unmarshal
	default:
		return UserConfig{}, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := validate(doc); err != nil {
		return UserConfig{}, err
	}
	c := DefaultConfig()
	if err := unmarshal(data, &c); err != nil {
		return UserConfig{}, fmt.Errorf("decode config: %w", err)
	}
	c.fillDefaults()
	return c, nil
}

// fillDefaults restores defaults for fields that have no meaningful zero
// value, for decoders that reset fields missing from the document.
func (uc *UserConfig) fillDefaults() {
	def := DefaultConfig()
	if uc.World.Version == "" {
		uc.World.Version = def.World.Version
	}
	if uc.World.Dimension == "" {
		uc.World.Dimension = def.World.Dimension
	}
	if uc.Search.Buffer == 0 {
		uc.Search.Buffer = def.Search.Buffer
	}
}

// validate checks doc against the job schema. doc is passed through JSON
// first so that the validator sees the number types it expects.
func validate(doc map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
