package layer

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/climate"
	"github.com/df-mc/biomegen/gen/internal/versioninfo"
	"github.com/df-mc/biomegen/gen/mc"
	"github.com/df-mc/biomegen/gen/noise"
	"github.com/df-mc/biomegen/gen/rand"
)

// ErrUnsupported is returned by Build for a version and dimension without a
// known generation algorithm.
var ErrUnsupported = errors.New("unsupported version and dimension")

// Source is a noise driven biome source sampled at its native scale.
type Source interface {
	Biome(x, y, z int) biome.ID
}

// Stack is the immutable arena of layers for one seed, version and dimension.
// A Stack holds no mutable state and may be shared between goroutines; grid
// caches are supplied by the caller of Gen.
type Stack struct {
	Version   mc.Version
	Dimension mc.Dimension
	Flags     mc.Flags
	Seed      int64

	layers  []Layer
	entries map[int]int

	oceanNoise *noise.Perlin
	source     Source
	sha        uint64
}

// Scales lists the horizontal resolutions every stack provides an entry for.
var Scales = []int{1, 4, 16, 64, 256}

// Build constructs the layer stack of the version and dimension passed and
// seeds every layer with seed.
func Build(v mc.Version, dim mc.Dimension, flags mc.Flags, seed int64) (*Stack, error) {
	if !versioninfo.Valid(v) {
		return nil, fmt.Errorf("build stack for version %d: %w", v, ErrUnsupported)
	}
	s := &Stack{
		Version:   v,
		Dimension: dim,
		Flags:     flags,
		Seed:      seed,
		entries:   make(map[int]int, len(Scales)),
		sha:       voronoiSHA(seed),
	}
	switch dim {
	case mc.Overworld:
		if versioninfo.Has(v, versioninfo.MultiNoise) {
			s.buildMultiNoise()
		} else {
			s.buildLayered()
		}
	case mc.Nether:
		s.buildNether()
	case mc.End:
		s.buildEnd()
	default:
		return nil, fmt.Errorf("build stack for %v: %w", dim, ErrUnsupported)
	}
	for i := range s.layers {
		s.layers[i].seed(seed)
	}
	for _, id := range s.entries {
		s.layers[id].Cached = true
	}
	return s, nil
}

// Layers returns the layers of the stack. The slice must not be modified.
func (s *Stack) Layers() []Layer {
	return s.layers
}

// Entry returns the index of the layer producing cells of the scale passed.
func (s *Stack) Entry(scale int) (int, bool) {
	id, ok := s.entries[scale]
	return id, ok
}

// Gen computes the w*h cells of layer id in the window starting at x, z.
// y is given at the scale of the layer and ignored by 2D layers. c may be
// nil. The returned slice may be shared with c and must not be modified.
func (s *Stack) Gen(c Cache, id, x, z, w, h, y int) []biome.ID {
	l := &s.layers[id]
	if !l.UsesY {
		y = 0
	}
	if l.Cached && c != nil {
		if cells, ok := c.Get(id, x, z, w, h, y); ok {
			return cells
		}
	}
	out := kindFuncs[l.Kind](s, l, c, x, z, w, h, y)
	if l.Cached && c != nil {
		c.Put(id, x, z, w, h, y, out)
	}
	return out
}

func (s *Stack) fetch(c Cache, id, x, z, w, h, y int) grid {
	return grid{x: x, z: z, w: w, h: h, cells: s.Gen(c, id, x, z, w, h, y)}
}

func (s *Stack) add(name string, kind Kind, salt uint64, parent, parent2 int) int {
	l := Layer{Name: name, Kind: kind, Salt: salt, Parent: parent, Parent2: parent2}
	if parent >= 0 {
		p := s.layers[parent]
		l.Scale, l.UsesY = p.Scale, p.UsesY
		switch kind {
		case KindZoom, KindZoomFuzzy:
			l.Scale /= 2
		case KindVoronoi114:
			l.Scale = 1
		case KindVoronoi:
			// The hashed jitter is three dimensional, so the block a cell
			// maps to depends on y even when the parent does not.
			l.Scale, l.UsesY = 1, true
		}
	}
	s.layers = append(s.layers, l)
	return len(s.layers) - 1
}

func (s *Stack) buildLayered() {
	v := s.Version
	size := 4
	if s.Flags.Has(mc.LargeBiomes) {
		size = 6
	}

	p := s.add("continent", KindContinent, 1, -1, -1)
	s.layers[p].Scale = 4096 << (size - 4)
	p = s.add("zoom_fuzzy", KindZoomFuzzy, 2000, p, -1)
	p = s.add("land", KindLand, 1, p, -1)
	p = s.add("zoom", KindZoom, 2001, p, -1)
	p = s.add("land", KindLand, 2, p, -1)
	p = s.add("land", KindLand, 50, p, -1)
	p = s.add("land", KindLand, 70, p, -1)
	p = s.add("island", KindIsland, 2, p, -1)
	p = s.add("snow", KindSnow, 2, p, -1)
	p = s.add("land", KindLand, 3, p, -1)
	p = s.add("cool", KindCool, 2, p, -1)
	p = s.add("heat", KindHeat, 2, p, -1)
	p = s.add("special", KindSpecial, 3, p, -1)
	p = s.add("zoom", KindZoom, 2002, p, -1)
	p = s.add("zoom", KindZoom, 2003, p, -1)
	p = s.add("land", KindLand, 4, p, -1)
	p = s.add("mushroom", KindMushroom, 5, p, -1)
	deep := s.add("deep_ocean", KindDeepOcean, 4, p, -1)

	main := []int{s.add("biome", KindBiome, 200, deep, -1)}
	last := func() int { return main[len(main)-1] }
	push := func(name string, kind Kind, salt uint64, parent2 int) {
		main = append(main, s.add(name, kind, salt, last(), parent2))
	}
	if versioninfo.Has(v, versioninfo.Bamboo) {
		push("bamboo", KindBamboo, 1001, -1)
	}
	push("zoom", KindZoom, 1000, -1)
	push("zoom", KindZoom, 1001, -1)
	push("biome_edge", KindBiomeEdge, 1000, -1)

	riverInit := s.add("river_init", KindRiverInit, 100, deep, -1)
	hn := s.add("zoom", KindZoom, 1000, riverInit, -1)
	hn = s.add("zoom", KindZoom, 1001, hn, -1)
	push("hills", KindHills, 1000, hn)
	push("sunflower", KindSunflower, 1001, -1)

	r := s.add("zoom", KindZoom, 1000, riverInit, -1)
	r = s.add("zoom", KindZoom, 1001, r, -1)
	for k := range size {
		r = s.add("zoom", KindZoom, uint64(1000+k), r, -1)
	}
	r = s.add("river", KindRiver, 1, r, -1)
	r = s.add("smooth", KindSmooth, 1000, r, -1)

	for k := range size {
		push("zoom", KindZoom, uint64(1000+k), -1)
		if k == 0 {
			push("land", KindLand, 3, -1)
		}
		if k == 1 {
			push("shore", KindShore, 1000, -1)
		}
	}
	push("smooth", KindSmooth, 1000, -1)
	push("river_mix", KindRiverMix, 100, r)
	final := last()

	if versioninfo.Has(v, versioninfo.OceanTemperature) || s.Flags.Has(mc.ForceOceanVariants) {
		s.oceanNoise = noise.NewPerlin(rand.NewRandom(s.Seed))
		o := s.add("ocean_temp", KindOceanTemp, 2, -1, -1)
		s.layers[o].Scale = 256
		for k := range 6 {
			o = s.add("zoom", KindZoom, uint64(2001+k), o, -1)
		}
		final = s.add("ocean_mix", KindOceanMix, 100, final, o)
	}

	for _, scale := range []int{16, 64, 256} {
		for i := len(main) - 1; i >= 0; i-- {
			if s.layers[main[i]].Scale == scale {
				s.entries[scale] = main[i]
				break
			}
		}
	}
	s.entries[4] = final
	if versioninfo.Has(v, versioninfo.SHAVoronoi) {
		s.entries[1] = s.add("voronoi", KindVoronoi, 0, final, -1)
	} else {
		s.entries[1] = s.add("voronoi", KindVoronoi114, 10, final, -1)
	}
}

// addSource adds a noise source layer at the scale passed and the entries
// derived from it. Scales finer than the source use nearest lookups, coarser
// scales sample the source at cell centres.
func (s *Stack) addSource(name string, scale int, usesY bool) int {
	id := s.add(name, KindClimate, 0, -1, -1)
	s.layers[id].Scale, s.layers[id].UsesY = scale, usesY
	return id
}

func (s *Stack) addDerived(src int) {
	srcScale := s.layers[src].Scale
	for _, scale := range Scales[1:] {
		switch {
		case scale == srcScale:
			s.entries[scale] = src
		case scale < srcScale:
			id := s.add("nearest", KindNearest, 0, src, -1)
			s.layers[id].Scale, s.layers[id].Value = scale, srcScale/scale
			s.entries[scale] = id
		default:
			id := s.add("downsample", KindDownsample, 0, src, -1)
			s.layers[id].Scale, s.layers[id].Value = scale, scale/srcScale
			s.entries[scale] = id
		}
	}
}

func (s *Stack) buildMultiNoise() {
	s.source = climate.NewOverworld(s.Seed, s.Flags.Has(mc.LargeBiomes))
	src := s.addSource("multi_noise", 4, true)
	s.addDerived(src)
	s.entries[1] = s.add("voronoi", KindVoronoi, 0, src, -1)
}

func (s *Stack) buildNether() {
	if !versioninfo.Has(s.Version, versioninfo.NetherBiomes) {
		s.addConstant(biome.NetherWastes)
		return
	}
	s.source = climate.NewNether(s.Seed)
	src := s.addSource("nether", 4, false)
	s.addDerived(src)
	s.entries[1] = s.add("voronoi", KindVoronoi, 0, src, -1)
}

func (s *Stack) buildEnd() {
	if !versioninfo.Has(s.Version, versioninfo.EndBiomes) {
		s.addConstant(biome.TheEnd)
		return
	}
	s.source = climate.NewEnd(s.Seed)
	src := s.addSource("end", 16, false)
	s.addDerived(src)
	if versioninfo.Has(s.Version, versioninfo.SHAVoronoi) {
		s.entries[1] = s.add("voronoi", KindVoronoi, 0, s.entries[4], -1)
		return
	}
	id := s.add("nearest", KindNearest, 0, src, -1)
	s.layers[id].Scale, s.layers[id].Value = 1, 16
	s.entries[1] = id
}

func (s *Stack) addConstant(b biome.ID) {
	id := s.add(b.String(), KindConstant, 0, -1, -1)
	s.layers[id].Value = int(b)
	for _, scale := range Scales {
		s.entries[scale] = id
	}
}

// voronoiSHA returns the first eight bytes of the SHA-256 digest of the seed,
// both in little endian order.
func voronoiSHA(seed int64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	sum := sha256.Sum256(b[:])
	return binary.LittleEndian.Uint64(sum[:8])
}
