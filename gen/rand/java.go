// Package rand implements the pseudo-random number generators used by world
// generation: the 48-bit linear congruential generator of java.util.Random,
// the xoroshiro128++ generator introduced with 1.18 and the seed mixing
// function used by the biome layers.
package rand

const (
	multiplier = 0x5deece66d
	addend     = 0xb
	mask48     = (1 << 48) - 1
)

// JavaRandom is a java.util.Random compatible generator. The zero value is
// a generator seeded with 0 after scrambling; use NewRandom or SetSeed to
// seed it.
type JavaRandom struct {
	seed uint64
}

// NewRandom returns a JavaRandom seeded with seed.
func NewRandom(seed int64) *JavaRandom {
	r := &JavaRandom{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the state of the generator as new(Random(seed)) would.
func (r *JavaRandom) SetSeed(seed int64) {
	r.seed = (uint64(seed) ^ multiplier) & mask48
}

// Seed returns the raw 48-bit internal state.
func (r *JavaRandom) Seed() uint64 {
	return r.seed
}

// Next advances the generator and returns the top bits bits of the new state.
func (r *JavaRandom) Next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & mask48
	return int32(int64(r.seed) >> (48 - bits))
}

// NextInt returns a uniformly distributed value in [0, n). n must be positive.
func (r *JavaRandom) NextInt(n int32) int32 {
	if n&(n-1) == 0 {
		return int32((int64(n) * int64(r.Next(31))) >> 31)
	}
	for {
		bits := r.Next(31)
		val := bits % n
		// Rejection when bits-val+(n-1) overflows an int32.
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// NextLong ...
func (r *JavaRandom) NextLong() int64 {
	hi := int64(r.Next(32))
	lo := int64(r.Next(32))
	return (hi << 32) + lo
}

// NextFloat returns a value in [0, 1) with 24 bits of precision.
func (r *JavaRandom) NextFloat() float32 {
	return float32(r.Next(24)) / float32(1<<24)
}

// NextDouble returns a value in [0, 1) with 53 bits of precision.
func (r *JavaRandom) NextDouble() float64 {
	x := (int64(r.Next(26)) << 27) + int64(r.Next(27))
	return float64(x) * (1.0 / float64(int64(1)<<53))
}

// Skip advances the generator n steps without producing values.
func (r *JavaRandom) Skip(n int) {
	m, a := uint64(1), uint64(0)
	im, ia := uint64(multiplier), uint64(addend)
	for k := uint64(n) & mask48; k != 0; k >>= 1 {
		if k&1 != 0 {
			m *= im
			a = im*a + ia
		}
		ia = (im + 1) * ia
		im *= im
	}
	r.seed = (r.seed*m + a) & mask48
}
