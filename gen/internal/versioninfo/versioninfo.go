// Package versioninfo holds the ordered table of supported Java Edition
// releases and the generation revisions each of them introduced. It is shared
// by the public mc and biome packages so neither needs to import the other.
package versioninfo

// Version is a supported Java Edition release. Versions are ordered: a larger
// value is always a later release.
type Version uint8

const (
	Undefined Version = iota
	V1_7
	V1_8
	V1_9
	V1_10
	V1_11
	V1_12
	V1_13
	V1_14
	V1_15
	V1_16
	V1_17
	V1_18

	Newest = V1_18
)

var names = [...]string{
	Undefined: "undefined",
	V1_7:      "1.7",
	V1_8:      "1.8",
	V1_9:      "1.9",
	V1_10:     "1.10",
	V1_11:     "1.11",
	V1_12:     "1.12",
	V1_13:     "1.13",
	V1_14:     "1.14",
	V1_15:     "1.15",
	V1_16:     "1.16",
	V1_17:     "1.17",
	V1_18:     "1.18",
}

// Name returns the release name of v, such as "1.16".
func Name(v Version) string {
	if int(v) >= len(names) {
		return names[Undefined]
	}
	return names[v]
}

// Lookup returns the version with the release name passed. Patch releases
// ("1.16.5") resolve to their minor release.
func Lookup(name string) (Version, bool) {
	dots := 0
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			dots++
			if dots == 2 {
				name = name[:i]
				break
			}
		}
	}
	for v := V1_7; v <= Newest; v++ {
		if names[v] == name {
			return v, true
		}
	}
	return Undefined, false
}

// Valid reports if v is a supported release.
func Valid(v Version) bool {
	return v >= V1_7 && v <= Newest
}

// Revision identifies a change to the generation algorithm that took effect
// in a specific release.
type Revision uint8

const (
	// StrongholdRing3 is the last release with three strongholds in a single ring.
	StrongholdRing3 Revision = iota
	// OceanTemperature introduced warm, lukewarm, cold and frozen oceans.
	OceanTemperature
	// Bamboo introduced the bamboo jungle layer.
	Bamboo
	// SHAVoronoi replaced the 2D voronoi jitter with a 3D, SHA-256 seeded zoom.
	SHAVoronoi
	// NetherBiomes introduced the multi-biome nether and bastions.
	NetherBiomes
	// EndBiomes introduced the end highlands, midlands and barrens.
	EndBiomes
	// MultiNoise replaced the layered overworld with the climate noise source.
	MultiNoise
	// NewerStructures moved ocean ruins and shipwrecks to their larger spacing.
	NewerStructures
	// StructureSalts gave the temple structures their own salts.
	StructureSalts
)

var introduced = [...]Version{
	StrongholdRing3:  V1_9,
	OceanTemperature: V1_13,
	Bamboo:           V1_14,
	SHAVoronoi:       V1_15,
	NetherBiomes:     V1_16,
	EndBiomes:        V1_13,
	MultiNoise:       V1_18,
	NewerStructures:  V1_16,
	StructureSalts:   V1_13,
}

// Has reports if the revision r is in effect for version v.
func Has(v Version, r Revision) bool {
	return v >= introduced[r]
}
