package search

import (
	"fmt"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/structure"
)

// FromConditions builds a predicate matching seeds for which every condition
// holds. Conditions are checked in the order passed.
func FromConditions(conds []gen.Condition) (Predicate, error) {
	preds := make([]Predicate, 0, len(conds))
	for i, c := range conds {
		p, err := fromCondition(c)
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		if c.Negate {
			p = Not(p)
		}
		preds = append(preds, p)
	}
	return All(preds...), nil
}

func fromCondition(c gen.Condition) (Predicate, error) {
	switch c.Type {
	case "biome":
		b, ok := biome.Parse(c.Biome)
		if !ok {
			return nil, &biome.UnknownError{Name: c.Biome}
		}
		return BiomeAt(c.X, c.Z, b), nil
	case "structure":
		k, err := structure.ParseKind(c.Structure)
		if err != nil {
			return nil, err
		}
		return StructureNear(k, c.X, c.Z, c.Radius), nil
	case "slime_chunk":
		return SlimeChunk(c.X>>4, c.Z>>4), nil
	}
	return nil, fmt.Errorf("unknown condition type %q", c.Type)
}
