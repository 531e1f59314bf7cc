package search

import (
	"slices"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/structure"
)

// Predicate decides whether a candidate seed matches. It must be a pure
// function of the candidate and may be called from several goroutines at
// once. A returned error ends the partition of the worker evaluating it.
type Predicate func(c *Candidate) (bool, error)

// All matches if every predicate matches. Predicates run in order and stop at
// the first one that does not match, so cheap checks should come first.
func All(preds ...Predicate) Predicate {
	return func(c *Candidate) (bool, error) {
		for _, p := range preds {
			if ok, err := p(c); err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Any matches if at least one predicate matches, stopping at the first match.
func Any(preds ...Predicate) Predicate {
	return func(c *Candidate) (bool, error) {
		for _, p := range preds {
			if ok, err := p(c); err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
}

// Not inverts p. Errors are passed on unchanged.
func Not(p Predicate) Predicate {
	return func(c *Candidate) (bool, error) {
		ok, err := p(c)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// BiomeAt matches seeds whose biome at block x, z is one of biomes.
func BiomeAt(x, z int, biomes ...biome.ID) Predicate {
	return func(c *Candidate) (bool, error) {
		g, err := c.Generator()
		if err != nil {
			return false, err
		}
		b, err := g.BiomeAt(x, z)
		if err != nil {
			return false, err
		}
		return slices.Contains(biomes, b), nil
	}
}

// SlimeChunk matches seeds for which chunk (x, z) is a slime chunk.
func SlimeChunk(x, z int) Predicate {
	return func(c *Candidate) (bool, error) {
		return c.SlimeChunk(x, z), nil
	}
}

// StructureNear matches seeds with a structure of kind k that passes its
// gate within radius blocks of the chunk holding block x, z and stands on a
// biome allowing it. Distances are measured between chunks. Attempts are
// checked first, so seeds without any attempt in range never build a
// generator.
func StructureNear(k structure.Kind, x, z, radius int) Predicate {
	origin := structure.Pos{X: x >> 4, Z: z >> 4}
	span := radius >> 4
	return func(c *Candidate) (bool, error) {
		conf, ok := structure.ConfigFor(k, c.conf.Version)
		if !ok || conf.Dimension != c.conf.Dimension {
			return false, nil
		}
		var near []structure.Pos
		rx0, rz0 := conf.Region(origin.X-span, origin.Z-span)
		rx1, rz1 := conf.Region(origin.X+span, origin.Z+span)
		for rz := rz0; rz <= rz1; rz++ {
			for rx := rx0; rx <= rx1; rx++ {
				p, ok := conf.Attempt(c.seed, rx, rz)
				if !ok {
					continue
				}
				if structure.ChunkDistance(p, origin)*16 <= float64(radius) {
					near = append(near, p)
				}
			}
		}
		if len(near) == 0 {
			return false, nil
		}
		g, err := c.Generator()
		if err != nil {
			return false, err
		}
		for _, p := range near {
			if ok, err := structure.IsViable(g, k, p); err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
}
