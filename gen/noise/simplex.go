package noise

import (
	"math"

	"github.com/df-mc/biomegen/gen/rand"
)

var (
	skew   = 0.5 * (math.Sqrt(3) - 1.0)
	unskew = (3.0 - math.Sqrt(3)) / 6.0
)

// Simplex is the 2D simplex noise the end islands are shaped with. It shares
// the permutation table layout of Perlin.
type Simplex struct {
	p *Perlin
}

// NewSimplex initialises a simplex noise from a Java random.
func NewSimplex(r *rand.JavaRandom) *Simplex {
	return &Simplex{p: NewPerlin(r)}
}

func simplexGrad(idx int, x, y, z, d float64) float64 {
	con := d - x*x - y*y - z*z
	if con < 0 {
		return 0
	}
	con *= con
	return con * con * indexedLerp(uint8(idx), x, y, z)
}

// Sample2D returns the noise value at x, y.
func (s *Simplex) Sample2D(x, y float64) float64 {
	d := &s.p.d
	hf := (x + y) * skew
	hx := int(math.Floor(x + hf))
	hz := int(math.Floor(y + hf))
	mhxz := float64(hx+hz) * unskew
	x0 := x - (float64(hx) - mhxz)
	y0 := y - (float64(hz) - mhxz)
	offx, offz := 0, 1
	if x0 > y0 {
		offx, offz = 1, 0
	}
	x1 := x0 - float64(offx) + unskew
	y1 := y0 - float64(offz) + unskew
	x2 := x0 - 1.0 + 2.0*unskew
	y2 := y0 - 1.0 + 2.0*unskew

	gi0 := int(d[0xff&hz])
	gi1 := int(d[0xff&(hz+offz)])
	gi2 := int(d[0xff&(hz+1)])
	gi0 = int(d[0xff&(gi0+hx)])
	gi1 = int(d[0xff&(gi1+hx+offx)])
	gi2 = int(d[0xff&(gi2+hx+1)])

	t := simplexGrad(gi0%12, x0, y0, 0, 0.5)
	t += simplexGrad(gi1%12, x1, y1, 0, 0.5)
	t += simplexGrad(gi2%12, x2, y2, 0, 0.5)
	return 70.0 * t
}
