package layer

import (
	"errors"
	"testing"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/mc"
)

type mapCache map[[6]int][]biome.ID

func (m mapCache) Get(l, x, z, w, h, y int) ([]biome.ID, bool) {
	c, ok := m[[6]int{l, x, z, w, h, y}]
	return c, ok
}

func (m mapCache) Put(l, x, z, w, h, y int, cells []biome.ID) {
	m[[6]int{l, x, z, w, h, y}] = cells
}

func mustBuild(t *testing.T, v mc.Version, dim mc.Dimension, seed int64) *Stack {
	t.Helper()
	s, err := Build(v, dim, 0, seed)
	if err != nil {
		t.Fatalf("build %v %v: %v", v, dim, err)
	}
	return s
}

func TestBuildAllVersions(t *testing.T) {
	for v := mc.V1_7; v <= mc.Newest; v++ {
		for _, dim := range []mc.Dimension{mc.Overworld, mc.Nether, mc.End} {
			s := mustBuild(t, v, dim, 1)
			for _, scale := range Scales {
				if _, ok := s.Entry(scale); !ok {
					t.Fatalf("%v %v has no entry for scale %d", v, dim, scale)
				}
			}
		}
	}
}

func TestBuildUnsupported(t *testing.T) {
	if _, err := Build(0, mc.Overworld, 0, 1); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for an undefined version, got %v", err)
	}
	if _, err := Build(mc.V1_16, mc.Dimension(5), 0, 1); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for an unknown dimension, got %v", err)
	}
}

func TestEntryScales(t *testing.T) {
	s := mustBuild(t, mc.V1_12, mc.Overworld, 5)
	for _, scale := range Scales {
		id, _ := s.Entry(scale)
		if got := s.Layers()[id].Scale; got != scale {
			t.Fatalf("entry for scale %d has scale %d", scale, got)
		}
	}
}

func TestWindowIndependence(t *testing.T) {
	for _, v := range []mc.Version{mc.V1_12, mc.V1_14, mc.V1_16} {
		s := mustBuild(t, v, mc.Overworld, 12345)
		for _, scale := range []int{1, 4, 16} {
			id, _ := s.Entry(scale)
			area := s.Gen(nil, id, -5, 3, 9, 7, 0)
			for j := 0; j < 7; j++ {
				for i := 0; i < 9; i++ {
					one := s.Gen(nil, id, -5+i, 3+j, 1, 1, 0)
					if one[0] != area[j*9+i] {
						t.Fatalf("%v scale %d: cell %d, %d differs between point and area queries", v, scale, -5+i, 3+j)
					}
				}
			}
		}
	}
}

func TestCacheTransparent(t *testing.T) {
	s := mustBuild(t, mc.V1_13, mc.Overworld, -77)
	id, _ := s.Entry(4)
	c := mapCache{}
	a := s.Gen(c, id, 100, -40, 16, 16, 0)
	b := s.Gen(c, id, 100, -40, 16, 16, 0)
	plain := s.Gen(nil, id, 100, -40, 16, 16, 0)
	for i := range a {
		if a[i] != b[i] || a[i] != plain[i] {
			t.Fatalf("cached generation differs at cell %d", i)
		}
	}
	if len(c) == 0 {
		t.Fatalf("expected the entry layer to be cached")
	}
}

func TestDeterministic(t *testing.T) {
	a := mustBuild(t, mc.V1_16, mc.Overworld, 99)
	b := mustBuild(t, mc.V1_16, mc.Overworld, 99)
	id, _ := a.Entry(4)
	ga, gb := a.Gen(nil, id, 0, 0, 32, 32, 0), b.Gen(nil, id, 0, 0, 32, 32, 0)
	for i := range ga {
		if ga[i] != gb[i] {
			t.Fatalf("same seed produced different cells at %d", i)
		}
	}
}

func TestOverworldBiomesExist(t *testing.T) {
	for _, v := range []mc.Version{mc.V1_7, mc.V1_12, mc.V1_13, mc.V1_14} {
		s := mustBuild(t, v, mc.Overworld, 3)
		id, _ := s.Entry(4)
		for _, b := range s.Gen(nil, id, -64, -64, 128, 128, 0) {
			if !biome.IsOverworld(v, b) {
				t.Fatalf("%v generated %v which is not an overworld biome of that version", v, b)
			}
		}
	}
}

func TestConstantDimensions(t *testing.T) {
	s := mustBuild(t, mc.V1_15, mc.Nether, 1)
	id, _ := s.Entry(1)
	for _, b := range s.Gen(nil, id, 0, 0, 8, 8, 0) {
		if b != biome.NetherWastes {
			t.Fatalf("expected only nether wastes before 1.16, got %v", b)
		}
	}
	s = mustBuild(t, mc.V1_12, mc.End, 1)
	id, _ = s.Entry(16)
	if got := s.Gen(nil, id, 1000, 1000, 1, 1, 0)[0]; got != biome.TheEnd {
		t.Fatalf("expected only the end before 1.13, got %v", got)
	}
}

func TestModeOrRandom(t *testing.T) {
	c := mustBuild(t, mc.V1_12, mc.Overworld, 1).Layers()[1].cell(0, 0)
	cases := []struct{ a, b, c, d, want int }{
		{1, 2, 2, 2, 2},
		{1, 1, 1, 2, 1},
		{1, 1, 2, 3, 1},
		{2, 1, 3, 3, 3},
		{3, 1, 1, 2, 1},
	}
	for _, tc := range cases {
		if got := modeOrRandom(&c, tc.a, tc.b, tc.c, tc.d); got != tc.want {
			t.Fatalf("modeOrRandom(%d, %d, %d, %d) = %d, want %d", tc.a, tc.b, tc.c, tc.d, got, tc.want)
		}
	}
}

func TestVoronoiCellNearby(t *testing.T) {
	sha := voronoiSHA(1234)
	for x := -20; x < 20; x++ {
		for z := -20; z < 20; z += 3 {
			cx, cy, cz := VoronoiCell(sha, x, 64, z)
			if d := cx - (x-2)>>2; d < 0 || d > 1 {
				t.Fatalf("x cell %d out of range for block %d", cx, x)
			}
			if d := cz - (z-2)>>2; d < 0 || d > 1 {
				t.Fatalf("z cell %d out of range for block %d", cz, z)
			}
			if d := cy - (64-2)>>2; d < 0 || d > 1 {
				t.Fatalf("y cell %d out of range", cy)
			}
		}
	}
}

func TestVoronoiReferenceValues(t *testing.T) {
	sha := voronoiSHA(1234)
	if sha != 0x618d5b164c44f21a {
		t.Fatalf("unexpected hashed seed %x", sha)
	}
	for _, c := range []struct{ x, y, z, cx, cy, cz int }{
		{0, 63, 0, -1, 15, -1},
		{5, 63, -9, 1, 15, -3},
		{-1000, 70, 1000, -250, 17, 249},
		{13, 0, 7, 3, -1, 1},
	} {
		cx, cy, cz := VoronoiCell(sha, c.x, c.y, c.z)
		if cx != c.cx || cy != c.cy || cz != c.cz {
			t.Errorf("block %d, %d, %d: expected cell %d, %d, %d, got %d, %d, %d", c.x, c.y, c.z, c.cx, c.cy, c.cz, cx, cy, cz)
		}
	}
}

func TestLayered112ReferenceValues(t *testing.T) {
	s := mustBuild(t, mc.V1_12, mc.Overworld, 1234)
	id, _ := s.Entry(4)
	for _, c := range []struct {
		x, z int
		want biome.ID
	}{
		{0, 0, biome.SnowyTundra},
		{100, -100, biome.River},
		{-250, 40, biome.Plains},
		{400, 400, biome.Taiga},
		{-1000, -777, biome.BirchForest},
		{37, -512, biome.Mountains},
		{2000, 3, biome.BirchForestHills},
	} {
		if got := s.Gen(nil, id, c.x, c.z, 1, 1, 0)[0]; got != c.want {
			t.Errorf("cell %d, %d: expected %v, got %v", c.x, c.z, c.want, got)
		}
	}
}
