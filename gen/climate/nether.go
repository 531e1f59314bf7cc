package climate

import (
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/noise"
	"github.com/df-mc/biomegen/gen/rand"
)

// Nether is the nether biome source of 1.16 and 1.17. Biomes are chosen
// from temperature and humidity only and do not vary with height.
type Nether struct {
	temperature, humidity *noise.DoublePerlin
}

// NewNether ...
func NewNether(seed int64) *Nether {
	return &Nether{
		temperature: noise.NewDoublePerlin(rand.NewRandom(seed), -7, 2),
		humidity:    noise.NewDoublePerlin(rand.NewRandom(seed+1), -7, 2),
	}
}

var netherPoints = [...]struct {
	temperature, humidity, offset float32
	biome                         biome.ID
}{
	{0, 0, 0, biome.NetherWastes},
	{0, -0.5, 0, biome.SoulSandValley},
	{0.4, 0, 0, biome.CrimsonForest},
	{0, 0.5, 0.375 * 0.375, biome.WarpedForest},
	{-0.5, 0, 0.175 * 0.175, biome.BasaltDeltas},
}

// Biome returns the biome at the 1:4 coordinates passed.
func (n *Nether) Biome(x, _, z int) biome.ID {
	t := float32(n.temperature.Sample(float64(x), 0, float64(z)))
	h := float32(n.humidity.Sample(float64(x), 0, float64(z)))

	best, dmin := biome.NetherWastes, float32(1<<30)
	for _, p := range netherPoints {
		dt, dh := p.temperature-t, p.humidity-h
		if d := dt*dt + dh*dh + p.offset; d < dmin {
			best, dmin = p.biome, d
		}
	}
	return best
}
