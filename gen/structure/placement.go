package structure

import (
	"github.com/df-mc/biomegen/gen/internal/mathx"
	"github.com/df-mc/biomegen/gen/mc"
	"github.com/df-mc/biomegen/gen/rand"
	"github.com/go-gl/mathgl/mgl64"
)

// Pos is the position of a chunk.
type Pos struct {
	X, Z int
}

// Block returns the block coordinates of the north-west corner of the chunk.
func (p Pos) Block() (x, z int) {
	return p.X << 4, p.Z << 4
}

// Centre returns the block coordinates of the centre of the chunk.
func (p Pos) Centre() (x, z int) {
	return p.X<<4 + 8, p.Z<<4 + 8
}

// ChunkDistance returns the euclidean distance between two chunks, measured
// in chunks.
func ChunkDistance(a, b Pos) float64 {
	return mgl64.Vec2{float64(a.X), float64(a.Z)}.Sub(mgl64.Vec2{float64(b.X), float64(b.Z)}).Len()
}

// Region returns the region holding the chunk passed.
func (c Config) Region(chunkX, chunkZ int) (regX, regZ int) {
	return mathx.FloorDiv(chunkX, c.RegionSize), mathx.FloorDiv(chunkZ, c.RegionSize)
}

// regionRandom seeds a generator the way every structure derives the stream
// of a region.
func regionRandom(seed int64, regX, regZ int, salt int64) *rand.JavaRandom {
	return rand.NewRandom(int64(regX)*341873128712 + int64(regZ)*132897987541 + seed + salt)
}

// areaRandom seeds a generator from the 16 chunk area (i, j), as the gates of
// outposts and old fortresses do. The first value is discarded.
func areaRandom(seed int64, i, j int) *rand.JavaRandom {
	r := rand.NewRandom(int64(int32(i)^int32(j)<<4) ^ seed)
	r.Next(32)
	return r
}

// Attempt returns the chunk the structure tries to generate at in region
// (regX, regZ), and whether the attempt passes the gate of the structure.
// Only the lower 48 bits of the seed matter.
func (c Config) Attempt(seed int64, regX, regZ int) (Pos, bool) {
	switch c.Gate {
	case GateLegacyFortress:
		r := areaRandom(seed, regX, regZ)
		if r.NextInt(3) != 0 {
			return Pos{}, false
		}
		x := regX<<4 + 4 + int(r.NextInt(8))
		z := regZ<<4 + 4 + int(r.NextInt(8))
		return Pos{X: x, Z: z}, true
	case GateTreasure:
		return Pos{X: regX, Z: regZ}, regionRandom(seed, regX, regZ, c.Salt).NextFloat() < 0.01
	}

	r := regionRandom(seed, regX, regZ, c.Salt)
	n := int32(c.ChunkRange)
	var dx, dz int
	if c.Triangular {
		dx = int(r.NextInt(n)+r.NextInt(n)) / 2
		dz = int(r.NextInt(n)+r.NextInt(n)) / 2
	} else {
		dx = int(r.NextInt(n))
		dz = int(r.NextInt(n))
	}
	p := Pos{X: regX*c.RegionSize + dx, Z: regZ*c.RegionSize + dz}

	switch c.Gate {
	case GateOutpost:
		return p, areaRandom(seed, p.X>>4, p.Z>>4).NextInt(5) == 0
	case GateFortress:
		return p, r.NextInt(5) < 2
	case GateBastion:
		return p, r.NextInt(5) >= 2
	}
	return p, true
}

// IsPresent reports whether the attempt of the structure in region
// (regX, regZ) passes its gate. The result depends only on the arguments.
func (c Config) IsPresent(seed int64, regX, regZ int) bool {
	_, ok := c.Attempt(seed, regX, regZ)
	return ok
}

// IsPresent reports whether the salted check of a structure with the common
// 32 chunk layout succeeds in region (regX, regZ) at chunk (chunkX, chunkZ).
// It is the region-only check Generic(salt).IsPresent(seed, regX, regZ)
// narrowed to one chunk: it holds exactly when that check holds and the
// region's attempt lands on (chunkX, chunkZ). Use Generic(salt).Attempt to
// learn the chunk instead.
func IsPresent(seed int64, regX, regZ int, salt int64, chunkX, chunkZ int) bool {
	p, ok := Generic(salt).Attempt(seed, regX, regZ)
	return ok && p.X == chunkX && p.Z == chunkZ
}

// Position returns the attempt of structure k in version v for region
// (regX, regZ). The bool is false if the structure does not generate in v or
// the attempt fails its gate.
func Position(k Kind, v mc.Version, seed int64, regX, regZ int) (Pos, bool) {
	c, ok := ConfigFor(k, v)
	if !ok {
		return Pos{}, false
	}
	return c.Attempt(seed, regX, regZ)
}

// IsSlimeChunk reports whether slimes spawn at any height in chunk
// (chunkX, chunkZ). The products wrap as 32-bit integers.
func IsSlimeChunk(seed int64, chunkX, chunkZ int) bool {
	x, z := int32(chunkX), int32(chunkZ)
	s := seed +
		int64(x*x*4987142) +
		int64(x*5947611) +
		int64(z*z)*4392871 +
		int64(z*389711)
	return rand.NewRandom(s^987234911).NextInt(10) == 0
}
