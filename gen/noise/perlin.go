// Package noise implements the gradient noise functions of Java Edition world
// generation. All samplers are immutable after construction and may be used
// from any goroutine.
package noise

import (
	"math"

	"github.com/df-mc/biomegen/gen/rand"
)

// Perlin is Java's ImprovedNoise: a permutation table and a random origin.
type Perlin struct {
	d       [257]uint8
	a, b, c float64
	// h2, d2 and t2 cache the y lattice values for y = 0.
	h2 uint8
	d2 float64
	t2 float64

	amplitude  float64
	lacunarity float64
}

// NewPerlin initialises a Perlin noise from a Java random.
func NewPerlin(r *rand.JavaRandom) *Perlin {
	p := &Perlin{
		a: r.NextDouble() * 256,
		b: r.NextDouble() * 256,
		c: r.NextDouble() * 256,
	}
	for i := range 256 {
		p.d[i] = uint8(i)
	}
	for i := 0; i < 256; i++ {
		j := int(r.NextInt(int32(256-i))) + i
		p.d[i], p.d[j] = p.d[j], p.d[i]
	}
	p.finish()
	return p
}

// NewXPerlin initialises a Perlin noise from a xoroshiro random.
func NewXPerlin(r *rand.Xoroshiro) *Perlin {
	p := &Perlin{
		a: r.NextDouble() * 256,
		b: r.NextDouble() * 256,
		c: r.NextDouble() * 256,
	}
	for i := range 256 {
		p.d[i] = uint8(i)
	}
	for i := 0; i < 256; i++ {
		j := int(r.NextInt(uint32(256-i))) + i
		p.d[i], p.d[j] = p.d[j], p.d[i]
	}
	p.finish()
	return p
}

func (p *Perlin) finish() {
	p.d[256] = p.d[0]
	i2 := math.Floor(p.b)
	p.d2 = p.b - i2
	p.h2 = uint8(int(i2))
	p.t2 = fade(p.d2)
	p.amplitude, p.lacunarity = 1, 1
}

// The explicit conversions below keep the compiler from fusing
// multiply-add pairs, which would change results on some platforms.

func fade(t float64) float64 {
	return t * t * t * (float64(t*float64(float64(t*6)-15)) + 10)
}

func lerp(part, from, to float64) float64 {
	return from + float64(part*(to-from))
}

func indexedLerp(idx uint8, a, b, c float64) float64 {
	switch idx & 0xf {
	case 0:
		return a + b
	case 1:
		return -a + b
	case 2:
		return a - b
	case 3:
		return -a - b
	case 4:
		return a + c
	case 5:
		return -a + c
	case 6:
		return a - c
	case 7:
		return -a - c
	case 8:
		return b + c
	case 9:
		return -b + c
	case 10:
		return b - c
	case 11:
		return -b - c
	case 12:
		return a + b
	case 13:
		return -b + c
	case 14:
		return -a + b
	default:
		return -b - c
	}
}

// Sample returns the noise value at x, y, z. A non-zero yamp quantises the
// fractional y coordinate to multiples of yamp, below ymin.
func (p *Perlin) Sample(x, y, z, yamp, ymin float64) float64 {
	var (
		h2     uint8
		d2, t2 float64
	)
	if y == 0 {
		d2, h2, t2 = p.d2, p.h2, p.t2
	} else {
		y += p.b
		i2 := math.Floor(y)
		d2 = y - i2
		h2 = uint8(int(i2))
		t2 = fade(d2)
	}
	x += p.a
	z += p.c
	i1, i3 := math.Floor(x), math.Floor(z)
	d1, d3 := x-i1, z-i3
	h1, h3 := uint8(int(i1)), uint8(int(i3))
	t1, t3 := fade(d1), fade(d3)

	if yamp != 0 {
		yclamp := min(ymin, d2)
		d2 -= math.Floor(yclamp/yamp) * yamp
	}

	idx := &p.d
	a1 := idx[h1] + h2
	b1 := idx[int(h1)+1] + h2
	a2 := idx[a1] + h3
	b2 := idx[b1] + h3
	a3 := idx[int(a1)+1] + h3
	b3 := idx[int(b1)+1] + h3

	l1 := indexedLerp(idx[a2], d1, d2, d3)
	l2 := indexedLerp(idx[b2], d1-1, d2, d3)
	l3 := indexedLerp(idx[a3], d1, d2-1, d3)
	l4 := indexedLerp(idx[b3], d1-1, d2-1, d3)
	l5 := indexedLerp(idx[int(a2)+1], d1, d2, d3-1)
	l6 := indexedLerp(idx[int(b2)+1], d1-1, d2, d3-1)
	l7 := indexedLerp(idx[int(a3)+1], d1, d2-1, d3-1)
	l8 := indexedLerp(idx[int(b3)+1], d1-1, d2-1, d3-1)

	l1 = lerp(t1, l1, l2)
	l3 = lerp(t1, l3, l4)
	l5 = lerp(t1, l5, l6)
	l7 = lerp(t1, l7, l8)

	l1 = lerp(t2, l1, l3)
	l5 = lerp(t2, l5, l7)

	return lerp(t3, l1, l5)
}

// maintainPrecision wraps large coordinates so the lattice lookup keeps its
// fractional precision.
func maintainPrecision(x float64) float64 {
	return x - math.Floor(x/33554432.0+0.5)*33554432.0
}
