package structure

import (
	"errors"
	"iter"
	"math"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/mc"
	"github.com/df-mc/biomegen/gen/rand"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrNotOverworld is returned when strongholds are requested from a
// generator of another dimension.
var ErrNotOverworld = errors.New("strongholds only generate in the overworld")

// strongholdRadius is the distance in blocks around a ring position searched
// for a biome that allows the stronghold.
const strongholdRadius = 112

// StrongholdCount returns the number of strongholds in a world of version v.
func StrongholdCount(v mc.Version) int {
	if v < mc.V1_9 {
		return 3
	}
	return 128
}

// Strongholds returns the positions of the strongholds of the world g
// generates, nearest ring first. Each position is moved towards a nearby
// biome that allows strongholds, so g is queried for every one of them.
// Breaking out of the loop early skips the remaining biome lookups.
func Strongholds(g *gen.Generator) iter.Seq2[Pos, error] {
	return func(yield func(Pos, error) bool) {
		if g.Dimension() != mc.Overworld {
			yield(Pos{}, ErrNotOverworld)
			return
		}
		v := g.Version()
		r := rand.NewRandom(g.Seed())
		count := StrongholdCount(v)

		angle := r.NextDouble() * math.Pi * 2
		ring, inRing, spread := 0, 0, 3
		for i := 0; i < count; i++ {
			var dist float64
			if v < mc.V1_9 {
				dist = (1.25 + r.NextDouble()) * 32
			} else {
				dist = float64(4*32+32*ring*6) + (r.NextDouble()-0.5)*32*2.5
			}
			p := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(dist)
			pos := Pos{X: javaRound(p.X()), Z: javaRound(p.Y())}

			found, ok, err := findStrongholdBiome(g, pos, r)
			if err != nil {
				yield(Pos{}, err)
				return
			}
			if ok {
				pos = found
			}
			if !yield(pos, nil) {
				return
			}

			angle += math.Pi * 2 / float64(spread)
			if inRing++; inRing == spread && v >= mc.V1_9 {
				ring++
				inRing = 0
				spread += 2 * spread / (ring + 1)
				spread = min(spread, count-i)
				angle += r.NextDouble() * math.Pi * 2
			}
		}
	}
}

// findStrongholdBiome scans the quarter resolution biomes around the centre
// of chunk p and picks one of the cells allowing strongholds, consuming r the
// same way the game does.
func findStrongholdBiome(g *gen.Generator, p Pos, r *rand.JavaRandom) (Pos, bool, error) {
	bx, bz := p.Centre()
	x0, z0 := (bx-strongholdRadius)>>2, (bz-strongholdRadius)>>2
	x1, z1 := (bx+strongholdRadius)>>2, (bz+strongholdRadius)>>2
	grid, err := g.BiomeMap(gen.Range{Scale: 4, X: x0, Z: z0, W: x1 - x0 + 1, H: z1 - z0 + 1})
	if err != nil {
		return Pos{}, false, err
	}
	dx, dz, ok := pickStrongholdCell(grid, g.Version(), r)
	if !ok {
		return Pos{}, false, nil
	}
	return Pos{X: (x0 + dx) >> 2, Z: (z0 + dz) >> 2}, true, nil
}

// pickStrongholdCell returns the offset of the cell of grid the stronghold is
// moved to. From 1.13 every allowed cell is kept with probability 1/n, n
// counting the allowed cells seen so far. Before that n only counts the cells
// that were kept, so later cells are favoured.
func pickStrongholdCell(grid gen.Grid, v mc.Version, r *rand.JavaRandom) (x, z int, ok bool) {
	var n int32
	for dz := 0; dz < grid.Range.H; dz++ {
		for dx := 0; dx < grid.Range.W; dx++ {
			if !allowsStronghold(v, grid.At(dx, dz)) {
				continue
			}
			if n == 0 || r.NextInt(n+1) == 0 {
				x, z, ok = dx, dz, true
				if v < mc.V1_13 {
					n++
				}
			}
			if v >= mc.V1_13 {
				n++
			}
		}
	}
	return x, z, ok
}

// allowsStronghold reports whether a stronghold may be moved onto biome b.
// Before 1.16 any biome above sea level qualifies.
func allowsStronghold(v mc.Version, b biome.ID) bool {
	if !biome.IsOverworld(v, b) {
		return false
	}
	if v < mc.V1_16 {
		return biome.Depth(b) > 0
	}
	if biome.IsOceanic(b) {
		return false
	}
	switch b {
	case biome.River, biome.FrozenRiver, biome.Beach, biome.SnowyBeach, biome.Swamp:
		return false
	}
	return true
}

// javaRound rounds half up, unlike math.Round which rounds half away from
// zero.
func javaRound(f float64) int {
	return int(math.Floor(f + 0.5))
}
