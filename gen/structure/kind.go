// Package structure decides where structures attempt to generate. Placement
// depends only on the seed and region coordinates; whether the biome at an
// attempt allows the structure is checked separately with a Generator.
package structure

import (
	"fmt"
	"strings"

	"github.com/df-mc/biomegen/gen/mc"
)

// Kind is a type of structure.
type Kind uint8

const (
	DesertPyramid Kind = iota
	JungleTemple
	SwampHut
	Igloo
	Village
	OceanRuin
	Shipwreck
	Monument
	Mansion
	Outpost
	RuinedPortal
	RuinedPortalNether
	BuriedTreasure
	Fortress
	Bastion
	EndCity
)

var kindNames = [...]string{
	DesertPyramid:      "desert_pyramid",
	JungleTemple:       "jungle_temple",
	SwampHut:           "swamp_hut",
	Igloo:              "igloo",
	Village:            "village",
	OceanRuin:          "ocean_ruin",
	Shipwreck:          "shipwreck",
	Monument:           "monument",
	Mansion:            "mansion",
	Outpost:            "outpost",
	RuinedPortal:       "ruined_portal",
	RuinedPortalNether: "ruined_portal_nether",
	BuriedTreasure:     "buried_treasure",
	Fortress:           "fortress",
	Bastion:            "bastion",
	EndCity:            "end_city",
}

// Kinds returns every structure kind.
func Kinds() []Kind {
	k := make([]Kind, len(kindNames))
	for i := range k {
		k[i] = Kind(i)
	}
	return k
}

// String ...
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("structure(%d)", uint8(k))
}

// ParseKind parses the name of a structure kind.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "minecraft:")
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown structure %q", s)
}

// MarshalText ...
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText ...
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// templeSalts are the salts of the small temples since 1.13. Before, all of
// them shared one salt.
var templeSalts = map[Kind]int64{
	DesertPyramid: 14357617,
	Igloo:         14357618,
	JungleTemple:  14357619,
	SwampHut:      14357620,
}

// Config describes how the attempts of a structure are spread. The world is
// split into square regions of RegionSize chunks with one attempt each, placed
// within the first ChunkRange chunks of the region along both axes.
type Config struct {
	Salt       int64
	RegionSize int
	ChunkRange int
	Kind       Kind
	Dimension  mc.Dimension
	// Triangular attempts average two draws per axis, favouring the centre
	// of the range.
	Triangular bool
	// Gate is the extra random check an attempt must pass, if any.
	Gate Gate
}

// Gate is a random check applied to an attempt after its chunk is chosen.
type Gate uint8

const (
	GateNone Gate = iota
	// GateOutpost keeps one in five attempts, seeded by the 16 chunk area of
	// the attempt.
	GateOutpost
	// GateTreasure keeps one percent of chunks.
	GateTreasure
	// GateLegacyFortress is the one in three check of fortresses before 1.16,
	// which also picks the chunk itself.
	GateLegacyFortress
	// GateFortress and GateBastion split the shared nether attempts two to
	// three.
	GateFortress
	GateBastion
)

// Generic returns the configuration of a structure with the common 32 chunk
// region and 24 chunk range, identified only by its salt.
func Generic(salt int64) Config {
	return Config{Salt: salt, RegionSize: 32, ChunkRange: 24}
}

// ConfigFor returns the configuration of a structure in version v, or false
// if the structure does not generate in that version.
func ConfigFor(k Kind, v mc.Version) (Config, bool) {
	c := Config{Kind: k, Dimension: mc.Overworld, RegionSize: 32, ChunkRange: 24}
	switch k {
	case DesertPyramid, JungleTemple, SwampHut, Igloo:
		if k == Igloo && v < mc.V1_9 {
			return Config{}, false
		}
		c.Salt = 14357617
		if v >= mc.V1_13 {
			c.Salt = templeSalts[k]
		}
	case Village:
		c.Salt = 10387312
		if v >= mc.V1_18 {
			c.RegionSize, c.ChunkRange = 34, 26
		}
	case OceanRuin:
		if v < mc.V1_13 {
			return Config{}, false
		}
		c.Salt, c.RegionSize, c.ChunkRange = 14357621, 20, 12
		if v < mc.V1_16 {
			c.RegionSize, c.ChunkRange = 16, 8
		}
	case Shipwreck:
		if v < mc.V1_13 {
			return Config{}, false
		}
		c.Salt, c.RegionSize, c.ChunkRange = 165745295, 24, 20
		if v < mc.V1_16 {
			c.RegionSize, c.ChunkRange = 15, 7
		}
	case Monument:
		if v < mc.V1_8 {
			return Config{}, false
		}
		c.Salt, c.ChunkRange, c.Triangular = 10387313, 27, true
	case Mansion:
		if v < mc.V1_11 {
			return Config{}, false
		}
		c.Salt, c.RegionSize, c.ChunkRange, c.Triangular = 10387319, 80, 60, true
	case Outpost:
		if v < mc.V1_14 {
			return Config{}, false
		}
		c.Salt, c.Gate = 165745296, GateOutpost
	case RuinedPortal, RuinedPortalNether:
		if v < mc.V1_16 {
			return Config{}, false
		}
		c.Salt, c.RegionSize, c.ChunkRange = 34222645, 40, 25
		if k == RuinedPortalNether {
			c.Dimension, c.RegionSize, c.ChunkRange = mc.Nether, 25, 15
		}
	case BuriedTreasure:
		if v < mc.V1_13 {
			return Config{}, false
		}
		c.Salt, c.RegionSize, c.ChunkRange, c.Gate = 10387320, 1, 1, GateTreasure
	case Fortress:
		c.Dimension = mc.Nether
		c.Salt, c.RegionSize, c.ChunkRange, c.Gate = 30084232, 27, 23, GateFortress
		if v < mc.V1_16 {
			c.Salt, c.RegionSize, c.ChunkRange, c.Gate = 0, 16, 8, GateLegacyFortress
		}
	case Bastion:
		if v < mc.V1_16 {
			return Config{}, false
		}
		c.Dimension = mc.Nether
		c.Salt, c.RegionSize, c.ChunkRange, c.Gate = 30084232, 27, 23, GateBastion
	case EndCity:
		if v < mc.V1_9 {
			return Config{}, false
		}
		c.Dimension = mc.End
		c.Salt, c.RegionSize, c.ChunkRange, c.Triangular = 10387313, 20, 9, true
	default:
		return Config{}, false
	}
	return c, true
}
