package biome

import (
	"strconv"
	"strings"

	"github.com/df-mc/biomegen/gen/internal/versioninfo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

// String returns the pre-1.18 resource name of the biome, such as
// "snowy_tundra".
func (id ID) String() string {
	if p, ok := table[id]; ok {
		return p.name
	}
	return "biome(" + strconv.Itoa(int(id)) + ")"
}

// Name returns the resource name of the biome as used by version v.
func Name(v versioninfo.Version, id ID) string {
	if p, ok := table[id]; ok && p.renamed != "" && v >= versioninfo.V1_18 {
		return p.renamed
	}
	return id.String()
}

// DisplayName returns a human readable name of the biome, such as
// "Snowy Tundra".
func DisplayName(v versioninfo.Version, id ID) string {
	return title.String(strings.ReplaceAll(Name(v, id), "_", " "))
}

// MarshalText encodes the biome as its resource name.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText accepts both old and new resource names, with or without the
// "minecraft:" namespace, as well as plain numeric ids.
func (id *ID) UnmarshalText(b []byte) error {
	v, ok := Parse(string(b))
	if !ok {
		return &UnknownError{Name: string(b)}
	}
	*id = v
	return nil
}

// UnknownError is returned when a biome name cannot be resolved.
type UnknownError struct {
	Name string
}

// Error ...
func (e *UnknownError) Error() string {
	return "unknown biome " + strconv.Quote(e.Name)
}

// Parse resolves a biome name or numeric id.
func Parse(s string) (ID, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "minecraft:")
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := table[ID(n)]; ok {
			return ID(n), true
		}
		return None, false
	}
	for id, p := range table {
		if p.name == s || p.renamed == s {
			return id, true
		}
	}
	return None, false
}

// Exists reports if the biome id is registered in version v.
func Exists(v versioninfo.Version, id ID) bool {
	p, ok := table[id]
	if !ok {
		return false
	}
	if p.since != versioninfo.Undefined && v < p.since {
		return false
	}
	return p.until == versioninfo.Undefined || v <= p.until
}

// Temperature returns the base temperature of the biome.
func Temperature(id ID) float32 {
	return table[id].temp
}

// Depth returns the base height of the biome. Biomes below sea level have a
// negative depth.
func Depth(id ID) float32 {
	return table[id].depth
}

// CategoryOf returns the category of the biome in version v. Badlands
// plateaus were considered badlands until 1.15.
func CategoryOf(v versioninfo.Version, id ID) Category {
	c := table[id].cat
	if c == CategoryBadlandsPlateau && v <= versioninfo.V1_15 {
		return CategoryMesa
	}
	return c
}

// IsOverworld reports if the biome generates in the overworld of version v.
func IsOverworld(v versioninfo.Version, id ID) bool {
	if !Exists(v, id) {
		return false
	}
	switch CategoryOf(v, id) {
	case CategoryNether, CategoryEnd:
		return false
	}
	return id != TheVoid
}

// IsOceanic reports if the biome is any kind of ocean.
func IsOceanic(id ID) bool {
	switch id {
	case Ocean, FrozenOcean, DeepOcean, WarmOcean, LukewarmOcean, ColdOcean,
		DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean, DeepFrozenOcean:
		return true
	}
	return false
}

// IsShallowOcean reports if the biome is an ocean that is not deep.
func IsShallowOcean(id ID) bool {
	switch id {
	case Ocean, FrozenOcean, WarmOcean, LukewarmOcean, ColdOcean:
		return true
	}
	return false
}

// IsDeepOcean ...
func IsDeepOcean(id ID) bool {
	switch id {
	case DeepOcean, DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean, DeepFrozenOcean:
		return true
	}
	return false
}

// IsSnowy reports if precipitation in the biome falls as snow at sea level.
func IsSnowy(id ID) bool {
	return table[id].temp < 0.1
}

// IsMesa reports if the biome is one of the badlands biomes.
func IsMesa(id ID) bool {
	return CategoryOf(versioninfo.V1_15, id) == CategoryMesa
}

// Mutated returns the rare variant of a biome, or None if it has none.
func Mutated(id ID) ID {
	switch id {
	case Plains:
		return SunflowerPlains
	case Desert:
		return DesertLakes
	case Mountains:
		return GravellyMountains
	case Forest:
		return FlowerForest
	case Taiga:
		return TaigaMountains
	case Swamp:
		return SwampHills
	case SnowyTundra:
		return IceSpikes
	case Jungle:
		return ModifiedJungle
	case JungleEdge:
		return ModifiedJungleEdge
	case BirchForest:
		return TallBirchForest
	case BirchForestHills:
		return TallBirchHills
	case DarkForest:
		return DarkForestHills
	case SnowyTaiga:
		return SnowyTaigaMountains
	case GiantTreeTaiga:
		return GiantSpruceTaiga
	case GiantTreeTaigaHills:
		return GiantSpruceTaigaHills
	case WoodedMountains:
		return ModifiedGravellyMountains
	case Savanna:
		return ShatteredSavanna
	case SavannaPlateau:
		return ShatteredSavannaPlateau
	case Badlands:
		return ErodedBadlands
	case WoodedBadlandsPlateau:
		return ModifiedWoodedBadlandsPlateau
	case BadlandsPlateau:
		return ModifiedBadlandsPlateau
	}
	return None
}

// AreSimilar reports if the layers treat a as the same kind of biome as b.
// The relation is not symmetric: a badlands plateau is only similar to
// another plateau before 1.16.
func AreSimilar(v versioninfo.Version, a, b ID) bool {
	if a == b {
		return true
	}
	if v <= versioninfo.V1_15 && (a == WoodedBadlandsPlateau || a == BadlandsPlateau) {
		return b == WoodedBadlandsPlateau || b == BadlandsPlateau
	}
	if _, ok := table[a]; !ok {
		return false
	}
	if _, ok := table[b]; !ok {
		return false
	}
	return CategoryOf(v, a) == CategoryOf(v, b)
}

// TempCategory is the coarse temperature class used to decide which biomes
// may border each other.
type TempCategory uint8

const (
	TempOcean TempCategory = iota
	TempCold
	TempMedium
	TempWarm
)

// TemperatureCategory returns the coarse temperature class of a biome.
func TemperatureCategory(id ID) TempCategory {
	if CategoryOf(versioninfo.Newest, id) == CategoryOcean {
		return TempOcean
	}
	t := float64(table[id].temp)
	switch {
	case t < 0.2:
		return TempCold
	case t < 1.0:
		return TempMedium
	}
	return TempWarm
}

// CanBeNeighbors reports if biome a may directly border biome b without an
// edge biome in between.
func CanBeNeighbors(v versioninfo.Version, a, b ID) bool {
	if AreSimilar(v, a, b) {
		return true
	}
	if _, ok := table[a]; !ok {
		return false
	}
	if _, ok := table[b]; !ok {
		return false
	}
	ta, tb := TemperatureCategory(a), TemperatureCategory(b)
	return ta == tb || ta == TempMedium || tb == TempMedium
}
