package gen

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/mc"
)

func newGenerator(t *testing.T, seed int64, v mc.Version, dim mc.Dimension, opts ...Option) *Generator {
	t.Helper()
	g, err := New(seed, v, dim, opts...)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return g
}

func TestUnsupportedConfiguration(t *testing.T) {
	if _, err := New(1, 0, mc.Overworld); !errors.Is(err, ErrUnsupportedConfiguration) {
		t.Fatalf("expected ErrUnsupportedConfiguration, got %v", err)
	}
	if _, err := New(1, mc.V1_16, mc.Dimension(3)); !errors.Is(err, ErrUnsupportedConfiguration) {
		t.Fatalf("expected ErrUnsupportedConfiguration for an unknown dimension, got %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	for _, v := range []mc.Version{mc.V1_12, mc.V1_16, mc.V1_18} {
		a := newGenerator(t, 1234, v, mc.Overworld)
		b := newGenerator(t, 1234, v, mc.Overworld, WithCacheCapacity(0))
		for _, p := range [][2]int{{0, 0}, {-1000, 250}, {123456, -98765}} {
			ba, err := a.BiomeAt(p[0], p[1])
			if err != nil {
				t.Fatalf("biome at %v: %v", p, err)
			}
			bb, _ := b.BiomeAt(p[0], p[1])
			if ba != bb {
				t.Fatalf("%v: biome at %v differs between generators: %v != %v", mc.VersionName(v), p, ba, bb)
			}
		}
	}
}

func TestCacheTransparency(t *testing.T) {
	for _, v := range []mc.Version{mc.V1_13, mc.V1_16} {
		g := newGenerator(t, 99, v, mc.Overworld, WithCacheCapacity(16))
		big, err := g.BiomeMap(Range{Scale: 4, X: -16, Z: -16, W: 48, H: 40})
		if err != nil {
			t.Fatalf("biome map: %v", err)
		}
		small, err := g.BiomeMap(Range{Scale: 4, X: -3, Z: 5, W: 11, H: 9})
		if err != nil {
			t.Fatalf("biome map: %v", err)
		}
		fresh := newGenerator(t, 99, v, mc.Overworld, WithCacheCapacity(0))
		direct, _ := fresh.BiomeMap(small.Range)

		crop := big.Crop(13, 21, 11, 9)
		if crop.Fingerprint() != small.Fingerprint() || small.Fingerprint() != direct.Fingerprint() {
			t.Fatalf("%v: sub window of a cached map differs from a direct query", mc.VersionName(v))
		}
		if g.CacheStats().Hits == 0 {
			t.Fatalf("expected the second query to be served from the cache")
		}
	}
}

func TestPointAreaConsistency(t *testing.T) {
	g := newGenerator(t, -5, mc.V1_14, mc.Overworld)
	m, err := g.BiomeMap(Range{Scale: 1, X: 200, Z: -300, W: 1, H: 1, Y: SeaLevel})
	if err != nil {
		t.Fatalf("biome map: %v", err)
	}
	b, _ := g.BiomeAt(200, -300)
	if m.At(0, 0) != b {
		t.Fatalf("1x1 map %v differs from point query %v", m.At(0, 0), b)
	}
}

func TestOutOfDomain(t *testing.T) {
	g := newGenerator(t, 1, mc.V1_16, mc.Overworld)
	_, err := g.BiomeAt(MaxCoordinate+1, 0)
	var oe *OutOfDomainError
	if !errors.As(err, &oe) || !errors.Is(err, ErrOutOfDomain) || oe.X != MaxCoordinate+1 {
		t.Fatalf("expected an out of domain error, got %v", err)
	}
	if _, err := g.BiomeMap(Range{Scale: 256, X: MaxCoordinate / 256, Z: 0, W: 4, H: 1}); !errors.Is(err, ErrOutOfDomain) {
		t.Fatalf("expected a map crossing the border to fail, got %v", err)
	}
	if _, err := g.BiomeAt(-MaxCoordinate, MaxCoordinate); err != nil {
		t.Fatalf("the border itself must be in the domain: %v", err)
	}
}

func TestInvalidRange(t *testing.T) {
	g := newGenerator(t, 1, mc.V1_16, mc.Overworld)
	if _, err := g.BiomeMap(Range{Scale: 8, W: 1, H: 1}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected an unknown scale to fail, got %v", err)
	}
	if _, err := g.BiomeMap(Range{Scale: 4, W: 0, H: 1}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected an empty window to fail, got %v", err)
	}
}

func TestScalesAgree(t *testing.T) {
	g := newGenerator(t, 8, mc.V1_12, mc.Overworld)
	for _, scale := range []int{4, 16, 64, 256} {
		m, err := g.BiomeMap(Range{Scale: scale, X: -2, Z: -2, W: 4, H: 4})
		if err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		for _, b := range m.Cells {
			if b == biome.None {
				t.Fatalf("scale %d produced an empty cell", scale)
			}
		}
	}
}

func TestDimensions(t *testing.T) {
	nether := newGenerator(t, 3, mc.V1_16, mc.Nether)
	b, err := nether.BiomeAt(100, 100)
	if err != nil || biome.CategoryOf(mc.V1_16, b) != biome.CategoryNether {
		t.Fatalf("expected a nether biome, got %v, %v", b, err)
	}
	end := newGenerator(t, 3, mc.V1_16, mc.End)
	if b, _ := end.BiomeAt(0, 0); b != biome.TheEnd {
		t.Fatalf("expected the main end island at the origin, got %v", b)
	}
}

// golden holds reference biomes pinned for fixed seeds.
type golden struct {
	Seed      int64  `json:"seed"`
	Version   string `json:"version"`
	Dimension string `json:"dimension"`
	X         int    `json:"x"`
	Z         int    `json:"z"`
	Biome     string `json:"biome"`
}

func TestGolden(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "golden.json"))
	if err != nil {
		t.Fatalf("read golden values: %v", err)
	}
	var cases []golden
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decode golden values: %v", err)
	}
	for _, c := range cases {
		v, err := mc.ParseVersion(c.Version)
		if err != nil {
			t.Fatalf("golden case: %v", err)
		}
		dim, err := mc.ParseDimension(c.Dimension)
		if err != nil {
			t.Fatalf("golden case: %v", err)
		}
		want, ok := biome.Parse(c.Biome)
		if !ok {
			t.Fatalf("golden case: unknown biome %q", c.Biome)
		}
		got, err := newGenerator(t, c.Seed, v, dim).BiomeAt(c.X, c.Z)
		if err != nil || got != want {
			t.Errorf("seed %d %s at %d, %d: got %v (%v), want %v", c.Seed, c.Version, c.X, c.Z, got, err, want)
		}
	}
}
