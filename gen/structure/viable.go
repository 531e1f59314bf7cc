package structure

import (
	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/mc"
)

// IsViable reports whether the biome at chunk p allows structure k to
// generate in the world of g. The biome is sampled at the centre of the chunk
// at quarter resolution and sea level. Structures of another dimension are
// never viable.
func IsViable(g *gen.Generator, k Kind, p Pos) (bool, error) {
	v := g.Version()
	c, ok := ConfigFor(k, v)
	if !ok || c.Dimension != g.Dimension() {
		return false, nil
	}
	b, err := g.BiomeAtScale(4, p.X<<2+2, gen.SeaLevel, p.Z<<2+2)
	if err != nil {
		return false, err
	}
	return AllowsBiome(k, v, b), nil
}

// AllowsBiome reports whether structure k may generate on biome b in
// version v.
func AllowsBiome(k Kind, v mc.Version, b biome.ID) bool {
	switch k {
	case DesertPyramid:
		return b == biome.Desert || b == biome.DesertHills
	case JungleTemple:
		switch b {
		case biome.Jungle, biome.JungleHills:
			return true
		case biome.BambooJungle, biome.BambooJungleHills:
			return v >= mc.V1_14
		}
	case SwampHut:
		return b == biome.Swamp
	case Igloo:
		switch b {
		case biome.SnowyTundra, biome.SnowyTaiga:
			return true
		case biome.SnowySlopes:
			return v >= mc.V1_18
		}
	case Village:
		return villageBiome(v, b)
	case Outpost:
		if villageBiome(v, b) {
			return true
		}
		switch b {
		case biome.Grove, biome.SnowySlopes, biome.JaggedPeaks, biome.FrozenPeaks:
			return v >= mc.V1_18
		}
	case OceanRuin:
		return biome.IsOceanic(b)
	case Shipwreck:
		return biome.IsOceanic(b) || b == biome.Beach || b == biome.SnowyBeach
	case Monument:
		return biome.IsDeepOcean(b)
	case Mansion:
		return b == biome.DarkForest || b == biome.DarkForestHills
	case BuriedTreasure:
		return b == biome.Beach || b == biome.SnowyBeach || (b == biome.StoneShore && v < mc.V1_16)
	case RuinedPortal:
		return biome.IsOverworld(v, b)
	case RuinedPortalNether, Fortress:
		return biome.CategoryOf(v, b) == biome.CategoryNether
	case Bastion:
		return biome.CategoryOf(v, b) == biome.CategoryNether && b != biome.BasaltDeltas
	case EndCity:
		return b == biome.EndHighlands || b == biome.EndMidlands
	}
	return false
}

func villageBiome(v mc.Version, b biome.ID) bool {
	switch b {
	case biome.Plains, biome.Desert, biome.Savanna, biome.Taiga:
		return true
	case biome.SnowyTundra:
		return v >= mc.V1_14
	case biome.Meadow:
		return v >= mc.V1_18
	}
	return false
}
