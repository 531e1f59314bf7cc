package rand

import (
	"crypto/md5"
	"encoding/binary"
	"math/bits"
)

const (
	silverRatio = 0x6a09e667f3bcc909
	goldenRatio = 0x9e3779b97f4a7c15
)

// Xoroshiro is the xoroshiro128++ generator used by 1.18 world generation.
type Xoroshiro struct {
	lo, hi uint64
}

// NewXoroshiro returns a generator seeded as XoroshiroRandomSource(seed).
func NewXoroshiro(seed int64) *Xoroshiro {
	x := &Xoroshiro{}
	x.SetSeed(seed)
	return x
}

// SetSeed seeds x from a single 64-bit value using the Stafford 13 mixer.
func (x *Xoroshiro) SetSeed(seed int64) {
	l := uint64(seed) ^ silverRatio
	h := l + goldenRatio
	x.lo, x.hi = mix64(l), mix64(h)
}

func mix64(z uint64) uint64 {
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}

// NextLong ...
func (x *Xoroshiro) NextLong() uint64 {
	l, h := x.lo, x.hi
	n := bits.RotateLeft64(l+h, 17) + l
	h ^= l
	x.lo = bits.RotateLeft64(l, 49) ^ h ^ (h << 21)
	x.hi = bits.RotateLeft64(h, 28)
	return n
}

// NextInt returns a value in [0, n) using Lemire's bounded multiplication.
func (x *Xoroshiro) NextInt(n uint32) int32 {
	r := (x.NextLong() & 0xffffffff) * uint64(n)
	if uint32(r) < n {
		for uint32(r) < (^n+1)%n {
			r = (x.NextLong() & 0xffffffff) * uint64(n)
		}
	}
	return int32(r >> 32)
}

// NextDouble ...
func (x *Xoroshiro) NextDouble() float64 {
	return float64(x.NextLong()>>11) * (1.0 / float64(uint64(1)<<53))
}

// NextFloat ...
func (x *Xoroshiro) NextFloat() float32 {
	return float32(x.NextLong()>>40) * (1.0 / float32(1<<24))
}

// Fork returns the positional factory of x: a generator state from which
// named sub-generators are derived with FromHashOf. x is advanced by two
// values.
func (x *Xoroshiro) Fork() Positional {
	return Positional{lo: x.NextLong(), hi: x.NextLong()}
}

// Positional derives independent generators from names, the way
// PositionalRandomFactory.fromHashOf does.
type Positional struct {
	lo, hi uint64
}

// FromHashOf returns a generator seeded with the MD5 digest of name mixed
// into p.
func (p Positional) FromHashOf(name string) *Xoroshiro {
	sum := md5.Sum([]byte(name))
	return &Xoroshiro{
		lo: p.lo ^ binary.BigEndian.Uint64(sum[:8]),
		hi: p.hi ^ binary.BigEndian.Uint64(sum[8:]),
	}
}
