package noise

import (
	"math"
	"strconv"

	"github.com/df-mc/biomegen/gen/rand"
)

// Octave sums several Perlin noises of halving amplitude and doubling
// frequency.
type Octave struct {
	octaves []*Perlin
}

// NewOctave initialises len legacy octaves whose lowest frequency is
// 2^omin, advancing r as PerlinNoise did before 1.18. omin+len must not
// exceed 1.
func NewOctave(r *rand.JavaRandom, omin, length int) *Octave {
	end := omin + length - 1
	persist := 1.0 / (float64(int64(1)<<length) - 1.0)
	lacuna := math.Pow(2, float64(end))

	o := &Octave{octaves: make([]*Perlin, length)}
	i := 0
	if end == 0 {
		p := NewPerlin(r)
		p.amplitude, p.lacunarity = persist, lacuna
		o.octaves[0] = p
		persist *= 2
		lacuna *= 0.5
		i = 1
	} else {
		r.Skip(-end * 262)
	}
	for ; i < length; i++ {
		p := NewPerlin(r)
		p.amplitude, p.lacunarity = persist, lacuna
		o.octaves[i] = p
		persist *= 2
		lacuna *= 0.5
	}
	return o
}

// NewXOctave initialises octaves from a xoroshiro random, one for every
// non-zero amplitude. Octave i is seeded from the name "octave_<omin+i>".
// At most nmax octaves are created when nmax is positive.
func NewXOctave(r *rand.Xoroshiro, amplitudes []float64, omin, nmax int) *Octave {
	length := len(amplitudes)
	lacuna := math.Pow(2, float64(omin))
	persist := float64(int64(1)<<(length-1)) / (float64(int64(1)<<length) - 1.0)
	pos := r.Fork()

	o := &Octave{}
	for i := 0; i < length && len(o.octaves) != nmax; i, lacuna, persist = i+1, lacuna*2, persist*0.5 {
		if amplitudes[i] == 0 {
			continue
		}
		p := NewXPerlin(pos.FromHashOf("octave_" + strconv.Itoa(omin+i)))
		p.amplitude = amplitudes[i] * persist
		p.lacunarity = lacuna
		o.octaves = append(o.octaves, p)
	}
	return o
}

// Sample returns the sum of all octaves at x, y, z.
func (o *Octave) Sample(x, y, z float64) float64 {
	var v float64
	for _, p := range o.octaves {
		lf := p.lacunarity
		ax := maintainPrecision(x * lf)
		ay := maintainPrecision(y * lf)
		az := maintainPrecision(z * lf)
		v += float64(p.amplitude * p.Sample(ax, ay, az, 0, 0))
	}
	return v
}

// Len returns the number of initialised octaves.
func (o *Octave) Len() int {
	return len(o.octaves)
}

// DoublePerlin combines two octave noises, the second sampled at a slightly
// stretched coordinate, to hide lattice artifacts.
type DoublePerlin struct {
	amplitude float64
	a, b      *Octave
}

// NewDoublePerlin initialises a legacy double Perlin noise as the 1.16 nether
// climate does.
func NewDoublePerlin(r *rand.JavaRandom, omin, length int) *DoublePerlin {
	return &DoublePerlin{
		amplitude: (10.0 / 6.0) * float64(length) / float64(length+1),
		a:         NewOctave(r, omin, length),
		b:         NewOctave(r, omin, length),
	}
}

// NewXDoublePerlin initialises a double Perlin noise from a xoroshiro random
// and an amplitude list, as NormalNoise does from 1.18. nmax limits the total
// number of octaves when positive.
func NewXDoublePerlin(r *rand.Xoroshiro, amplitudes []float64, omin, nmax int) *DoublePerlin {
	na, nb := -1, -1
	if nmax > 0 {
		na = (nmax + 1) >> 1
		nb = nmax - na
	}
	d := &DoublePerlin{
		a: NewXOctave(r, amplitudes, omin, na),
		b: NewXOctave(r, amplitudes, omin, nb),
	}
	// The amplitude depends on the span of non-zero amplitudes.
	first, last := 0, len(amplitudes)-1
	for last >= 0 && amplitudes[last] == 0 {
		last--
	}
	for first < len(amplitudes) && amplitudes[first] == 0 {
		first++
	}
	span := last - first + 1
	d.amplitude = (5.0 / 3.0) * float64(span) / float64(span+1)
	return d
}

// Sample ...
func (d *DoublePerlin) Sample(x, y, z float64) float64 {
	const f = 337.0 / 331.0
	v := d.a.Sample(x, y, z)
	v += d.b.Sample(x*f, y*f, z*f)
	return v * d.amplitude
}
