// Package mc defines the identifiers that select a generation algorithm:
// the game version, the dimension and the world flags.
package mc

import (
	"fmt"
	"strings"

	"github.com/df-mc/biomegen/gen/internal/versioninfo"
)

// Version is a Java Edition release supported by the generator.
type Version = versioninfo.Version

const (
	V1_7  = versioninfo.V1_7
	V1_8  = versioninfo.V1_8
	V1_9  = versioninfo.V1_9
	V1_10 = versioninfo.V1_10
	V1_11 = versioninfo.V1_11
	V1_12 = versioninfo.V1_12
	V1_13 = versioninfo.V1_13
	V1_14 = versioninfo.V1_14
	V1_15 = versioninfo.V1_15
	V1_16 = versioninfo.V1_16
	V1_17 = versioninfo.V1_17
	V1_18 = versioninfo.V1_18

	// Newest is the latest supported release.
	Newest = versioninfo.Newest
)

// ParseVersion parses a release name such as "1.16" or "1.16.5".
func ParseVersion(s string) (Version, error) {
	v, ok := versioninfo.Lookup(strings.TrimSpace(s))
	if !ok {
		return versioninfo.Undefined, fmt.Errorf("unknown version %q", s)
	}
	return v, nil
}

// VersionName returns the release name of v.
func VersionName(v Version) string {
	return versioninfo.Name(v)
}

// Dimension is one of the three vanilla dimensions.
type Dimension int8

const (
	Nether    Dimension = -1
	Overworld Dimension = 0
	End       Dimension = 1
)

// String ...
func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case Overworld:
		return "overworld"
	case End:
		return "end"
	}
	return fmt.Sprintf("dimension(%d)", int8(d))
}

// ParseDimension parses the name of a dimension. The "minecraft:" namespace
// and the "the_" prefix are accepted.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "minecraft:")
	switch strings.TrimPrefix(s, "the_") {
	case "overworld":
		return Overworld, nil
	case "nether":
		return Nether, nil
	case "end":
		return End, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

// MarshalText ...
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText ...
func (d *Dimension) UnmarshalText(b []byte) error {
	dim, err := ParseDimension(string(b))
	if err != nil {
		return err
	}
	*d = dim
	return nil
}

// Flags alter the world type a generator reproduces.
type Flags uint32

const (
	// LargeBiomes reproduces the "Large Biomes" world type.
	LargeBiomes Flags = 1 << iota
	// NoBetaOcean is accepted for compatibility. It only affects beta
	// releases, none of which are supported, so it is ignored.
	NoBetaOcean
	// ForceOceanVariants runs the ocean temperature layers on versions before
	// 1.13, as some modded worlds do.
	ForceOceanVariants
)

// Has reports if all bits of o are set in f.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}
