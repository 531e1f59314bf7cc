package rand

// StepSeed advances a layer seed by one mixing step with the salt passed.
// All arithmetic wraps around as signed 64-bit multiplication does in Java.
func StepSeed(s, salt uint64) uint64 {
	return s*(s*6364136223846793005+1442695040888963407) + salt
}

// LayerSalt expands the fixed salt of a layer into the value mixed with the
// world seed.
func LayerSalt(salt uint64) uint64 {
	ls := StepSeed(salt, salt)
	ls = StepSeed(ls, salt)
	return StepSeed(ls, salt)
}

// StartSalt mixes the world seed with an expanded layer salt. The result is
// constant for a layer once the world seed is known.
func StartSalt(worldSeed, layerSalt uint64) uint64 {
	st := worldSeed
	st = StepSeed(st, layerSalt)
	st = StepSeed(st, layerSalt)
	return StepSeed(st, layerSalt)
}

// StartSeed derives the per-layer seed that chunk seeds start from.
func StartSeed(startSalt uint64) uint64 {
	return StepSeed(startSalt, 0)
}

// ChunkSeed returns the seed of the cell at x, z for a layer with the start
// seed passed.
func ChunkSeed(startSeed uint64, x, z int) uint64 {
	cs := startSeed + uint64(int64(x))
	cs = StepSeed(cs, uint64(int64(z)))
	cs = StepSeed(cs, uint64(int64(x)))
	return StepSeed(cs, uint64(int64(z)))
}

// FirstInt returns the first value the cell random would produce for
// nextInt(mod) without advancing any state.
func FirstInt(cs uint64, mod int) int {
	r := int((int64(cs) >> 24) % int64(mod))
	if r < 0 {
		r += mod
	}
	return r
}

// FirstIsZero is FirstInt(cs, mod) == 0.
func FirstIsZero(cs uint64, mod int) bool {
	return (int64(cs)>>24)%int64(mod) == 0
}

// Cell is the per-cell random stream of a layer: seeded with a chunk seed and
// advanced with the layer's start salt.
type Cell struct {
	cs, salt uint64
}

// NewCell returns the cell stream for the chunk seed cs of a layer with the
// start salt passed.
func NewCell(cs, startSalt uint64) Cell {
	return Cell{cs: cs, salt: startSalt}
}

// NextInt returns a value in [0, n) and advances the stream. n must be
// positive. The stream advances even when n is 1.
func (c *Cell) NextInt(n int) int {
	r := FirstInt(c.cs, n)
	c.cs = StepSeed(c.cs, c.salt)
	return r
}

// Select returns one of the values passed, chosen by the stream.
func (c *Cell) Select(v ...int) int {
	return v[c.NextInt(len(v))]
}
