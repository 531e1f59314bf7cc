package climate

import (
	"math"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/internal/mathx"
	"github.com/df-mc/biomegen/gen/noise"
	"github.com/df-mc/biomegen/gen/rand"
)

// End is the end biome source used from 1.13. It works in chunk coordinates:
// the central island is surrounded by rings of outer islands whose height
// decides the biome.
type End struct {
	islands *noise.Simplex
}

// NewEnd ...
func NewEnd(seed int64) *End {
	r := rand.NewRandom(seed)
	r.Skip(17292)
	return &End{islands: noise.NewSimplex(r)}
}

// Biome returns the biome of the chunk at x, z.
func (e *End) Biome(x, _, z int) biome.ID {
	if int64(x)*int64(x)+int64(z)*int64(z) <= 4096 {
		return biome.TheEnd
	}
	h := e.Height(2*x+1, 2*z+1)
	switch {
	case h > 40:
		return biome.EndHighlands
	case h >= 0:
		return biome.EndMidlands
	case h < -20:
		return biome.SmallEndIslands
	}
	return biome.EndBarrens
}

// Height returns the island height at the half-chunk coordinates passed. The
// arithmetic is done in single precision with 32-bit wrapping, as the game
// does it.
func (e *End) Height(x, z int) float32 {
	hx, hz := x/2, z/2
	ox, oz := x%2, z%2
	xi, zi := int32(x), int32(z)

	h := 100 - sqrt32(float32(xi*xi+zi*zi))*8
	h = mathx.Clamp(h, -100, 80)
	for j := -12; j <= 12; j++ {
		for i := -12; i <= 12; i++ {
			rx, rz := int64(hx+i), int64(hz+j)
			if rx*rx+rz*rz <= 4096 || e.islands.Sample2D(float64(rx), float64(rz)) >= float64(float32(-0.9)) {
				continue
			}
			ax, az := abs32(float32(rx)), abs32(float32(rz))
			f := float32(math.Mod(float64(float32(ax*3439)+float32(az*147)), 13)) + 9
			dx, dz := float32(ox-i*2), float32(oz-j*2)
			v := mathx.Clamp(100-float32(sqrt32(dx*dx+dz*dz)*f), -100, 80)
			h = max(h, v)
		}
	}
	return h
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
