package search

import (
	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/structure"
)

// Candidate is a seed under evaluation. It gives predicates access to the
// placement oracle, which is cheap, and to a generator, which is built the
// first time it is requested. A Candidate must not be retained once the
// predicate returns.
type Candidate struct {
	seed int64
	conf Config

	g   *gen.Generator
	err error
}

// Seed returns the seed being evaluated.
func (c *Candidate) Seed() int64 {
	return c.seed
}

// Generator returns the generator of the candidate seed, building it on the
// first call.
func (c *Candidate) Generator() (*gen.Generator, error) {
	if c.g == nil && c.err == nil {
		c.g, c.err = c.conf.generator(c.seed).New()
	}
	return c.g, c.err
}

// Built reports whether the generator of the candidate was requested.
func (c *Candidate) Built() bool {
	return c.g != nil
}

// Structure returns the attempt of structure k in region (regX, regZ) for
// the candidate seed. It never builds the generator.
func (c *Candidate) Structure(k structure.Kind, regX, regZ int) (structure.Pos, bool) {
	return structure.Position(k, c.conf.Version, c.seed, regX, regZ)
}

// SlimeChunk reports whether chunk (x, z) is a slime chunk for the
// candidate seed.
func (c *Candidate) SlimeChunk(x, z int) bool {
	return structure.IsSlimeChunk(c.seed, x, z)
}
