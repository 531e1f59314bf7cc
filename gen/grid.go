package gen

import (
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/segmentio/fasthash/fnv1a"
)

// Range is a rectangular window of a biome map. X, Z, W and H are counted in
// cells of Scale blocks; Y is a block coordinate.
type Range struct {
	Scale      int
	X, Z, W, H int
	Y          int
}

// Grid holds the cells of a Range in row-major order: the cell at X+dx, Z+dz
// is at index dz*W+dx.
type Grid struct {
	Range Range
	Cells []biome.ID
}

// At returns the cell at the offset dx, dz from the origin of the grid.
func (g Grid) At(dx, dz int) biome.ID {
	return g.Cells[dz*g.Range.W+dx]
}

// Crop returns the part of the grid starting at offset dx, dz with the size
// passed. The cells are copied.
func (g Grid) Crop(dx, dz, w, h int) Grid {
	r := g.Range
	r.X, r.Z, r.W, r.H = r.X+dx, r.Z+dz, w, h
	out := Grid{Range: r, Cells: make([]biome.ID, w*h)}
	for j := 0; j < h; j++ {
		start := (dz+j)*g.Range.W + dx
		copy(out.Cells[j*w:(j+1)*w], g.Cells[start:start+w])
	}
	return out
}

// Counts returns the number of cells of each biome in the grid.
func (g Grid) Counts() map[biome.ID]int {
	m := make(map[biome.ID]int)
	for _, c := range g.Cells {
		m[c]++
	}
	return m
}

// Fingerprint returns an FNV-1a hash of the window and its cells. Equal grids
// always have equal fingerprints.
func (g Grid) Fingerprint() uint64 {
	h := fnv1a.Init64
	for _, v := range [...]int{g.Range.Scale, g.Range.X, g.Range.Z, g.Range.W, g.Range.H, g.Range.Y} {
		h = fnv1a.AddUint64(h, uint64(int64(v)))
	}
	for _, c := range g.Cells {
		h = fnv1a.AddUint64(h, uint64(uint32(c)))
	}
	return h
}
