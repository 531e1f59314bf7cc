package layer

import (
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/internal/mathx"
	"github.com/df-mc/biomegen/gen/internal/versioninfo"
)

type mapFunc func(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID

// cellFunc computes a single cell from a parent grid holding at least the
// margin the layer was registered with.
type cellFunc func(s *Stack, l *Layer, p grid, x, z int) biome.ID

var kindFuncs [KindNearest + 1]mapFunc

func init() {
	kindFuncs = [...]mapFunc{
		KindContinent:  mapContinent,
		KindZoomFuzzy:  mapZoom(true),
		KindZoom:       mapZoom(false),
		KindLand:       withMargin(1, land),
		KindIsland:     withMargin(1, island),
		KindSnow:       withMargin(0, snow),
		KindCool:       withMargin(1, cool),
		KindHeat:       withMargin(1, heat),
		KindSpecial:    withMargin(0, special),
		KindMushroom:   withMargin(1, mushroom),
		KindDeepOcean:  withMargin(1, deepOcean),
		KindBiome:      withMargin(0, biomeCell),
		KindBamboo:     withMargin(0, bamboo),
		KindBiomeEdge:  withMargin(1, biomeEdge),
		KindRiverInit:  withMargin(0, riverInit),
		KindHills:      mapHills,
		KindSunflower:  withMargin(0, sunflower),
		KindShore:      withMargin(1, shore),
		KindSmooth:     withMargin(1, smooth),
		KindRiver:      withMargin(1, river),
		KindRiverMix:   mapRiverMix,
		KindOceanTemp:  mapOceanTemp,
		KindOceanMix:   mapOceanMix,
		KindVoronoi114: mapVoronoi114,
		KindVoronoi:    mapVoronoi,
		KindConstant:   mapConstant,
		KindClimate:    mapSource,
		KindDownsample: mapDownsample,
		KindNearest:    mapNearest,
	}
}

func withMargin(margin int, f cellFunc) mapFunc {
	return func(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
		p := s.fetch(c, l.Parent, x-margin, z-margin, w+2*margin, h+2*margin, y)
		out := make([]biome.ID, w*h)
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				out[j*w+i] = f(s, l, p, x+i, z+j)
			}
		}
		return out
	}
}

func mapContinent(_ *Stack, l *Layer, _ Cache, x, z, w, h, _ int) []biome.ID {
	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			cx, cz := x+i, z+j
			if cx == 0 && cz == 0 {
				out[j*w+i] = 1
				continue
			}
			c := l.cell(cx, cz)
			if c.NextInt(10) == 0 {
				out[j*w+i] = 1
			}
		}
	}
	return out
}

func mapZoom(fuzzy bool) mapFunc {
	return func(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
		px, pz := x>>1, z>>1
		pw, ph := ((x+w-1)>>1)-px+2, ((z+h-1)>>1)-pz+2
		p := s.fetch(c, l.Parent, px, pz, pw, ph, y)
		out := make([]biome.ID, w*h)
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				cx, cz := x+i, z+j
				qx, qz := cx>>1, cz>>1
				v00 := p.at(qx, qz)
				if cx&1 == 0 && cz&1 == 0 {
					out[j*w+i] = v00
					continue
				}
				r := l.cell(qx<<1, qz<<1)
				v01 := p.at(qx, qz+1)
				a := biome.ID(r.Select(int(v00), int(v01)))
				if cx&1 == 0 {
					out[j*w+i] = a
					continue
				}
				v10 := p.at(qx+1, qz)
				b := biome.ID(r.Select(int(v00), int(v10)))
				if cz&1 == 0 {
					out[j*w+i] = b
					continue
				}
				v11 := p.at(qx+1, qz+1)
				if fuzzy {
					out[j*w+i] = biome.ID(r.Select(int(v00), int(v10), int(v01), int(v11)))
				} else {
					out[j*w+i] = biome.ID(modeOrRandom(&r, int(v00), int(v10), int(v01), int(v11)))
				}
			}
		}
		return out
	}
}

func modeOrRandom(r interface{ Select(...int) int }, a, b, c, d int) int {
	switch {
	case b == c && c == d:
		return b
	case a == b && a == c:
		return a
	case a == b && a == d:
		return a
	case a == c && a == d:
		return a
	case a == b && c != d:
		return a
	case a == c && b != d:
		return a
	case a == d && b != c:
		return a
	case b == c && a != d:
		return b
	case b == d && a != c:
		return b
	case c == d && a != b:
		return c
	}
	return r.Select(a, b, c, d)
}

// cross returns the north, east, south and west neighbours of x, z.
func cross(p grid, x, z int) (n, e, s, w biome.ID) {
	return p.at(x, z-1), p.at(x+1, z), p.at(x, z+1), p.at(x-1, z)
}

// diagonal returns the north-west, north-east, south-west and south-east
// neighbours of x, z.
func diagonal(p grid, x, z int) (nw, ne, sw, se biome.ID) {
	return p.at(x-1, z-1), p.at(x+1, z-1), p.at(x-1, z+1), p.at(x+1, z+1)
}

func isShallow(v biome.ID) bool {
	return biome.IsShallowOcean(v)
}

func land(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v11 := p.at(x, z)
	v00, v20, v02, v22 := diagonal(p, x, z)
	if !isShallow(v11) || (isShallow(v00) && isShallow(v20) && isShallow(v02) && isShallow(v22)) {
		if !isShallow(v11) && (isShallow(v00) || isShallow(v20) || isShallow(v02) || isShallow(v22)) {
			r := l.cell(x, z)
			if r.NextInt(5) == 0 {
				if v11 == 4 {
					return 4
				}
				return 0
			}
		}
		return v11
	}
	r := l.cell(x, z)
	inc, v := 1, biome.ID(1)
	for _, n := range [...]biome.ID{v00, v20, v02, v22} {
		if !isShallow(n) {
			if r.NextInt(inc) == 0 {
				v = n
			}
			inc++
		}
	}
	if r.NextInt(3) == 0 {
		return v
	}
	if v == 4 {
		return 4
	}
	return 0
}

func island(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v11 := p.at(x, z)
	n, e, s, w := cross(p, x, z)
	if isShallow(v11) && isShallow(n) && isShallow(e) && isShallow(s) && isShallow(w) {
		r := l.cell(x, z)
		if r.NextInt(2) == 0 {
			return 1
		}
	}
	return v11
}

func snow(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isShallow(v) {
		return v
	}
	r := l.cell(x, z)
	switch n := r.NextInt(6); {
	case n == 0:
		return 4
	case n <= 1:
		return 3
	}
	return 1
}

func cool(_ *Stack, _ *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if v != 1 {
		return v
	}
	n, e, s, w := cross(p, x, z)
	for _, o := range [...]biome.ID{n, e, s, w} {
		if o == 3 || o == 4 {
			return 2
		}
	}
	return v
}

func heat(_ *Stack, _ *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if v != 4 {
		return v
	}
	n, e, s, w := cross(p, x, z)
	for _, o := range [...]biome.ID{n, e, s, w} {
		if o == 1 || o == 2 {
			return 3
		}
	}
	return v
}

func special(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isShallow(v) {
		return v
	}
	r := l.cell(x, z)
	if r.NextInt(13) == 0 {
		v |= biome.ID(((1 + r.NextInt(15)) << 8) & 0xf00)
	}
	return v
}

func mushroom(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v11 := p.at(x, z)
	v00, v20, v02, v22 := diagonal(p, x, z)
	if isShallow(v11) && isShallow(v00) && isShallow(v20) && isShallow(v02) && isShallow(v22) {
		r := l.cell(x, z)
		if r.NextInt(100) == 0 {
			return biome.MushroomFields
		}
	}
	return v11
}

func deepOcean(_ *Stack, _ *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if !isShallow(v) {
		return v
	}
	n, e, s, w := cross(p, x, z)
	if isShallow(n) && isShallow(e) && isShallow(s) && isShallow(w) {
		return biome.DeepOcean
	}
	return v
}

var (
	warmBiomes   = [...]biome.ID{biome.Desert, biome.Desert, biome.Desert, biome.Savanna, biome.Savanna, biome.Plains}
	mediumBiomes = [...]biome.ID{biome.Forest, biome.DarkForest, biome.Mountains, biome.Plains, biome.BirchForest, biome.Swamp}
	coldBiomes   = [...]biome.ID{biome.Forest, biome.Mountains, biome.Taiga, biome.Plains}
	iceBiomes    = [...]biome.ID{biome.SnowyTundra, biome.SnowyTundra, biome.SnowyTundra, biome.SnowyTaiga}
)

func biomeCell(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	variant := (v & 0xf00) >> 8
	v &^= 0xf00
	if biome.IsOceanic(v) || v == biome.MushroomFields {
		return v
	}
	r := l.cell(x, z)
	switch v {
	case 1:
		if variant > 0 {
			if r.NextInt(3) == 0 {
				return biome.BadlandsPlateau
			}
			return biome.WoodedBadlandsPlateau
		}
		return warmBiomes[r.NextInt(len(warmBiomes))]
	case 2:
		if variant > 0 {
			return biome.Jungle
		}
		return mediumBiomes[r.NextInt(len(mediumBiomes))]
	case 3:
		if variant > 0 {
			return biome.GiantTreeTaiga
		}
		return coldBiomes[r.NextInt(len(coldBiomes))]
	case 4:
		return iceBiomes[r.NextInt(len(iceBiomes))]
	}
	return biome.MushroomFields
}

func bamboo(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if v != biome.Jungle {
		return v
	}
	r := l.cell(x, z)
	if r.NextInt(10) == 0 {
		return biome.BambooJungle
	}
	return v
}

func biomeEdge(s *Stack, _ *Layer, p grid, x, z int) biome.ID {
	v := s.Version
	c := p.at(x, z)
	n, e, so, w := cross(p, x, z)
	around := [...]biome.ID{n, e, so, w}

	if biome.AreSimilar(v, c, biome.Mountains) {
		for _, o := range around {
			if !biome.CanBeNeighbors(v, o, biome.Mountains) {
				return biome.MountainEdge
			}
		}
		return c
	}
	for _, edge := range [...]struct{ from, to biome.ID }{
		{biome.WoodedBadlandsPlateau, biome.Badlands},
		{biome.BadlandsPlateau, biome.Badlands},
		{biome.GiantTreeTaiga, biome.Taiga},
	} {
		if c != edge.from {
			continue
		}
		for _, o := range around {
			if !biome.AreSimilar(v, o, edge.from) {
				return edge.to
			}
		}
		return c
	}
	switch c {
	case biome.Desert:
		if anyOf(around, biome.SnowyTundra) {
			return biome.WoodedMountains
		}
	case biome.Swamp:
		if anyOf(around, biome.Desert, biome.SnowyTaiga, biome.SnowyTundra) {
			return biome.Plains
		}
		if anyOf(around, biome.Jungle) || (versioninfo.Has(v, versioninfo.Bamboo) && anyOf(around, biome.BambooJungle)) {
			return biome.JungleEdge
		}
	}
	return c
}

func anyOf(around [4]biome.ID, ids ...biome.ID) bool {
	for _, o := range around {
		for _, id := range ids {
			if o == id {
				return true
			}
		}
	}
	return false
}

func riverInit(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isShallow(v) {
		return v
	}
	r := l.cell(x, z)
	return biome.ID(r.NextInt(299999) + 2)
}

func mapHills(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	b := s.fetch(c, l.Parent, x-1, z-1, w+2, h+2, y)
	rv := s.fetch(c, l.Parent2, x-1, z-1, w+2, h+2, y)
	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[j*w+i] = hills(s, l, b, rv, x+i, z+j)
		}
	}
	return out
}

func hills(s *Stack, l *Layer, b, rv grid, x, z int) biome.ID {
	v := s.Version
	a11 := b.at(x, z)
	b11 := rv.at(x, z)
	bn := (b11 - 2) % 29

	if bn == 1 && b11 >= 2 && !isShallow(a11) {
		if m := biome.Mutated(a11); m != biome.None {
			return m
		}
		return a11
	}
	r := l.cell(x, z)
	if r.NextInt(3) != 0 && bn != 0 {
		return a11
	}
	hill := a11
	switch a11 {
	case biome.Desert:
		hill = biome.DesertHills
	case biome.Forest:
		hill = biome.WoodedHills
	case biome.BirchForest:
		hill = biome.BirchForestHills
	case biome.DarkForest:
		hill = biome.Plains
	case biome.Taiga:
		hill = biome.TaigaHills
	case biome.GiantTreeTaiga:
		hill = biome.GiantTreeTaigaHills
	case biome.SnowyTaiga:
		hill = biome.SnowyTaigaHills
	case biome.Plains:
		if r.NextInt(3) == 0 {
			hill = biome.WoodedHills
		} else {
			hill = biome.Forest
		}
	case biome.SnowyTundra:
		hill = biome.SnowyMountains
	case biome.Jungle:
		hill = biome.JungleHills
	case biome.BambooJungle:
		hill = biome.BambooJungleHills
	case biome.Ocean:
		hill = biome.DeepOcean
	case biome.Mountains:
		hill = biome.WoodedMountains
	case biome.Savanna:
		hill = biome.SavannaPlateau
	default:
		if biome.AreSimilar(v, a11, biome.WoodedBadlandsPlateau) {
			hill = biome.Badlands
		} else if a11 == biome.DeepOcean && r.NextInt(3) == 0 {
			if r.NextInt(2) == 0 {
				hill = biome.Plains
			} else {
				hill = biome.Forest
			}
		}
	}
	if bn == 0 && hill != a11 {
		hill = biome.Mutated(hill)
		if hill == biome.None {
			hill = a11
		}
	}
	if hill == a11 {
		return a11
	}
	n, e, so, w := cross(b, x, z)
	equal := 0
	for _, o := range [...]biome.ID{n, e, so, w} {
		if biome.AreSimilar(v, o, a11) {
			equal++
		}
	}
	if equal >= 3 {
		return hill
	}
	return a11
}

func sunflower(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	v := p.at(x, z)
	r := l.cell(x, z)
	if r.NextInt(57) == 0 && v == biome.Plains {
		return biome.SunflowerPlains
	}
	return v
}

func isJungleCompatible(v versioninfo.Version, id biome.ID) bool {
	if biome.CategoryOf(v, id) == biome.CategoryJungle {
		return true
	}
	return id == biome.Forest || id == biome.Taiga || biome.IsOceanic(id)
}

func shore(s *Stack, _ *Layer, p grid, x, z int) biome.ID {
	v := s.Version
	c := p.at(x, z)
	n, e, so, w := cross(p, x, z)
	around := [...]biome.ID{n, e, so, w}
	anyOcean := biome.IsOceanic(n) || biome.IsOceanic(e) || biome.IsOceanic(so) || biome.IsOceanic(w)

	switch {
	case c == biome.MushroomFields:
		for _, o := range around {
			if isShallow(o) {
				return biome.MushroomFieldShore
			}
		}
		return c
	case biome.CategoryOf(v, c) == biome.CategoryJungle:
		for _, o := range around {
			if !isJungleCompatible(v, o) {
				return biome.JungleEdge
			}
		}
		if anyOcean {
			return biome.Beach
		}
		return c
	case c == biome.Mountains || c == biome.WoodedMountains || c == biome.MountainEdge:
		if !biome.IsOceanic(c) && anyOcean {
			return biome.StoneShore
		}
		return c
	case biome.IsSnowy(c):
		if !biome.IsOceanic(c) && anyOcean {
			return biome.SnowyBeach
		}
		return c
	case c == biome.Badlands || c == biome.WoodedBadlandsPlateau:
		if !anyOcean {
			for _, o := range around {
				if !biome.IsMesa(o) {
					return biome.Desert
				}
			}
		}
		return c
	case c != biome.Ocean && c != biome.DeepOcean && c != biome.River && c != biome.Swamp:
		if anyOcean {
			return biome.Beach
		}
	}
	return c
}

func smooth(_ *Stack, l *Layer, p grid, x, z int) biome.ID {
	c := p.at(x, z)
	n, e, so, w := cross(p, x, z)
	if w == e && n == so {
		r := l.cell(x, z)
		if r.NextInt(2) == 0 {
			return w
		}
		return n
	}
	if w == e {
		c = w
	}
	if n == so {
		c = n
	}
	return c
}

func riverFilter(v biome.ID) biome.ID {
	if v >= 2 {
		return 2 + (v & 1)
	}
	return v
}

func river(_ *Stack, _ *Layer, p grid, x, z int) biome.ID {
	c := riverFilter(p.at(x, z))
	n, e, so, w := cross(p, x, z)
	if c == riverFilter(w) && c == riverFilter(n) && c == riverFilter(e) && c == riverFilter(so) {
		return biome.None
	}
	return biome.River
}

func mapRiverMix(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	land := s.Gen(c, l.Parent, x, z, w, h, y)
	rv := s.Gen(c, l.Parent2, x, z, w, h, y)
	out := make([]biome.ID, w*h)
	for i, b := range land {
		switch {
		case biome.IsOceanic(b):
			out[i] = b
		case rv[i] == biome.River:
			switch b {
			case biome.SnowyTundra:
				out[i] = biome.FrozenRiver
			case biome.MushroomFields, biome.MushroomFieldShore:
				out[i] = biome.MushroomFieldShore
			default:
				out[i] = rv[i] & 255
			}
		default:
			out[i] = b
		}
	}
	return out
}

func mapOceanTemp(s *Stack, _ *Layer, _ Cache, x, z, w, h, _ int) []biome.ID {
	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			t := s.oceanNoise.Sample(float64(x+i)/8.0, float64(z+j)/8.0, 0, 0, 0)
			switch {
			case t > 0.4:
				out[j*w+i] = biome.WarmOcean
			case t > 0.2:
				out[j*w+i] = biome.LukewarmOcean
			case t < -0.4:
				out[j*w+i] = biome.FrozenOcean
			case t < -0.2:
				out[j*w+i] = biome.ColdOcean
			default:
				out[j*w+i] = biome.Ocean
			}
		}
	}
	return out
}

func mapOceanMix(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	const r = 8
	land := s.fetch(c, l.Parent, x-r, z-r, w+2*r, h+2*r, y)
	ocean := s.Gen(c, l.Parent2, x, z, w, h, y)
	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[j*w+i] = oceanMix(land, ocean[j*w+i], x+i, z+j)
		}
	}
	return out
}

func oceanMix(land grid, o biome.ID, x, z int) biome.ID {
	b := land.at(x, z)
	if !biome.IsOceanic(b) {
		return b
	}
	for dx := -8; dx <= 8; dx += 4 {
		for dz := -8; dz <= 8; dz += 4 {
			if biome.IsOceanic(land.at(x+dx, z+dz)) {
				continue
			}
			if o == biome.WarmOcean {
				return biome.LukewarmOcean
			}
			if o == biome.FrozenOcean {
				return biome.ColdOcean
			}
		}
	}
	if b == biome.DeepOcean {
		switch o {
		case biome.LukewarmOcean:
			return biome.DeepLukewarmOcean
		case biome.Ocean:
			return biome.DeepOcean
		case biome.ColdOcean:
			return biome.DeepColdOcean
		case biome.FrozenOcean:
			return biome.DeepFrozenOcean
		}
	}
	return o
}

func mapConstant(_ *Stack, l *Layer, _ Cache, _, _, w, h, _ int) []biome.ID {
	out := make([]biome.ID, w*h)
	for i := range out {
		out[i] = biome.ID(l.Value)
	}
	return out
}

func mapSource(s *Stack, _ *Layer, _ Cache, x, z, w, h, y int) []biome.ID {
	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[j*w+i] = s.source.Biome(x+i, y, z+j)
		}
	}
	return out
}

// mapDownsample samples the parent at the centre of each coarser cell.
func mapDownsample(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	f := l.Value
	out := make([]biome.ID, w*h)
	py := y*f + f/2
	for j := 0; j < h; j++ {
		row := s.Gen(c, l.Parent, x*f+f/2, (z+j)*f+f/2, (w-1)*f+1, 1, py)
		for i := 0; i < w; i++ {
			out[j*w+i] = row[i*f]
		}
	}
	return out
}

// mapNearest returns the parent cell containing each finer cell.
func mapNearest(s *Stack, l *Layer, c Cache, x, z, w, h, y int) []biome.ID {
	f := l.Value
	px, pz := mathx.FloorDiv(x, f), mathx.FloorDiv(z, f)
	pw, ph := mathx.FloorDiv(x+w-1, f)-px+1, mathx.FloorDiv(z+h-1, f)-pz+1
	p := s.fetch(c, l.Parent, px, pz, pw, ph, mathx.FloorDiv(y, f))
	out := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out[j*w+i] = p.at(mathx.FloorDiv(x+i, f), mathx.FloorDiv(z+j, f))
		}
	}
	return out
}
