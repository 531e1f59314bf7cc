// Package layer implements the biome layer stack: an arena of grid
// transformations, each deriving its cells from a small neighbourhood of the
// layer below it and a private random stream seeded from the world seed and
// the layer's salt.
package layer

import (
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/rand"
)

// Kind identifies the transformation a layer applies.
type Kind uint8

const (
	KindContinent Kind = iota
	KindZoomFuzzy
	KindZoom
	KindLand
	KindIsland
	KindSnow
	KindCool
	KindHeat
	KindSpecial
	KindMushroom
	KindDeepOcean
	KindBiome
	KindBamboo
	KindBiomeEdge
	KindRiverInit
	KindHills
	KindSunflower
	KindShore
	KindSmooth
	KindRiver
	KindRiverMix
	KindOceanTemp
	KindOceanMix
	KindVoronoi114
	KindVoronoi
	KindConstant
	KindClimate
	KindDownsample
	KindNearest
)

// Layer is one entry of a Stack. Parent and Parent2 are indices into the
// same stack, or -1.
type Layer struct {
	Name string
	Kind Kind
	// Salt is the fixed salt of the layer before expansion.
	Salt uint64
	// Scale is the number of blocks covered by one cell along each axis.
	Scale   int
	Parent  int
	Parent2 int
	// UsesY is set for layers whose output depends on the y coordinate.
	UsesY bool
	// Cached marks layers whose grids are stored in the caller's Cache.
	Cached bool
	// Value is the biome produced by a KindConstant layer, or the
	// factor of a KindDownsample or KindNearest layer.
	Value int

	startSalt uint64
	startSeed uint64
}

// StartSalt returns the seed state the cell streams of l advance with.
func (l *Layer) StartSalt() uint64 {
	return l.startSalt
}

func (l *Layer) seed(worldSeed int64) {
	if l.Salt == 0 {
		l.startSalt, l.startSeed = 0, 0
		return
	}
	l.startSalt = rand.StartSalt(uint64(worldSeed), rand.LayerSalt(l.Salt))
	l.startSeed = rand.StartSeed(l.startSalt)
}

// cell returns the random stream of the cell at x, z.
func (l *Layer) cell(x, z int) rand.Cell {
	return rand.NewCell(rand.ChunkSeed(l.startSeed, x, z), l.startSalt)
}

// Cache stores grids produced by layers with Cached set. Returned slices are
// shared and must not be modified.
type Cache interface {
	Get(layer, x, z, w, h, y int) ([]biome.ID, bool)
	Put(layer, x, z, w, h, y int, cells []biome.ID)
}

// grid is a window of cells of a single layer.
type grid struct {
	x, z, w, h int
	cells      []biome.ID
}

func (g grid) at(x, z int) biome.ID {
	return g.cells[(z-g.z)*g.w+(x-g.x)]
}
