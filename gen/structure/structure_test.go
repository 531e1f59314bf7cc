package structure

import (
	"errors"
	"math"
	"testing"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/mc"
	"github.com/df-mc/biomegen/gen/rand"
)

func TestAttemptInRegion(t *testing.T) {
	for _, v := range []mc.Version{mc.V1_7, mc.V1_12, mc.V1_13, mc.V1_16, mc.V1_18} {
		for _, k := range Kinds() {
			c, ok := ConfigFor(k, v)
			if !ok {
				continue
			}
			for rx := -3; rx <= 3; rx++ {
				for rz := -3; rz <= 3; rz++ {
					p, ok := c.Attempt(42, rx, rz)
					if !ok {
						continue
					}
					gx, gz := c.Region(p.X, p.Z)
					if gx != rx || gz != rz {
						t.Fatalf("%v %v: attempt %v of region %d, %d lies in region %d, %d", v, k, p, rx, rz, gx, gz)
					}
					if c.Gate == GateLegacyFortress {
						continue
					}
					if dx, dz := p.X-rx*c.RegionSize, p.Z-rz*c.RegionSize; dx >= c.ChunkRange || dz >= c.ChunkRange {
						t.Fatalf("%v %v: attempt %v outside the chunk range of region %d, %d", v, k, p, rx, rz)
					}
				}
			}
		}
	}
}

func TestConfigAvailability(t *testing.T) {
	cases := []struct {
		k  Kind
		v  mc.Version
		ok bool
	}{
		{Village, mc.V1_7, true},
		{Igloo, mc.V1_8, false},
		{Igloo, mc.V1_9, true},
		{Monument, mc.V1_7, false},
		{Mansion, mc.V1_11, true},
		{Outpost, mc.V1_13, false},
		{Bastion, mc.V1_15, false},
		{Bastion, mc.V1_16, true},
		{EndCity, mc.V1_9, true},
	}
	for _, tc := range cases {
		if _, ok := ConfigFor(tc.k, tc.v); ok != tc.ok {
			t.Errorf("ConfigFor(%v, %v) available = %v, want %v", tc.k, mc.VersionName(tc.v), ok, tc.ok)
		}
	}
	old, _ := ConfigFor(SwampHut, mc.V1_12)
	cur, _ := ConfigFor(SwampHut, mc.V1_13)
	if old.Salt != 14357617 || cur.Salt != 14357620 {
		t.Fatalf("unexpected swamp hut salts %d and %d", old.Salt, cur.Salt)
	}
	if c, _ := ConfigFor(Village, mc.V1_18); c.RegionSize != 34 {
		t.Fatalf("expected villages to use 34 chunk regions in 1.18, got %d", c.RegionSize)
	}
}

func TestAttemptPure(t *testing.T) {
	c, _ := ConfigFor(Monument, mc.V1_16)
	a, aok := c.Attempt(-9000, 17, -4)
	b, bok := c.Attempt(-9000, 17, -4)
	if a != b || aok != bok {
		t.Fatalf("attempts differ between calls: %v %v", a, b)
	}
}

func TestOnlyLower48BitsMatter(t *testing.T) {
	for _, k := range Kinds() {
		c, ok := ConfigFor(k, mc.V1_16)
		if !ok {
			continue
		}
		for r := -5; r < 5; r++ {
			a, aok := c.Attempt(123456789, r, -r)
			b, bok := c.Attempt(123456789+7<<48, r, -r)
			if a != b || aok != bok {
				t.Fatalf("%v: upper seed bits changed the attempt in region %d", k, r)
			}
		}
	}
}

func TestFortressAndBastionSplit(t *testing.T) {
	fortress, _ := ConfigFor(Fortress, mc.V1_16)
	bastion, _ := ConfigFor(Bastion, mc.V1_16)
	var fortresses int
	for rx := 0; rx < 20; rx++ {
		for rz := 0; rz < 20; rz++ {
			fp, fok := fortress.Attempt(777, rx, rz)
			bp, bok := bastion.Attempt(777, rx, rz)
			if fp != bp {
				t.Fatalf("fortress and bastion attempts differ in region %d, %d", rx, rz)
			}
			if fok == bok {
				t.Fatalf("region %d, %d must hold exactly one of a fortress and a bastion", rx, rz)
			}
			if fok {
				fortresses++
			}
		}
	}
	if fortresses < 110 || fortresses > 210 {
		t.Fatalf("expected about two fifths of 400 regions to hold fortresses, got %d", fortresses)
	}
}

func TestGateRates(t *testing.T) {
	cases := []struct {
		k        Kind
		lo, hi   float64
		regions  int
		versions mc.Version
	}{
		{Outpost, 0.15, 0.25, 60, mc.V1_16},
		{BuriedTreasure, 0.005, 0.015, 200, mc.V1_16},
		{Fortress, 0.28, 0.39, 60, mc.V1_12},
	}
	for _, tc := range cases {
		c, _ := ConfigFor(tc.k, tc.versions)
		var n int
		for rx := 0; rx < tc.regions; rx++ {
			for rz := 0; rz < tc.regions; rz++ {
				if c.IsPresent(31337, rx, rz) {
					n++
				}
			}
		}
		rate := float64(n) / float64(tc.regions*tc.regions)
		if rate < tc.lo || rate > tc.hi {
			t.Errorf("%v: rate %.4f outside [%v, %v]", tc.k, rate, tc.lo, tc.hi)
		}
	}
}

func TestGenericIsPresent(t *testing.T) {
	const salt = 14357620
	p, _ := Generic(salt).Attempt(5, -2, 3)
	if !IsPresent(5, -2, 3, salt, p.X, p.Z) {
		t.Fatalf("expected the attempt chunk %v to be present", p)
	}
	if IsPresent(5, -2, 3, salt, p.X+1, p.Z) {
		t.Fatalf("expected a neighbouring chunk not to be present")
	}
	c := Generic(salt)
	for seed := int64(0); seed < 50; seed++ {
		p, ok := c.Attempt(seed, 1, -1)
		if ok != c.IsPresent(seed, 1, -1) || ok != IsPresent(seed, 1, -1, salt, p.X, p.Z) {
			t.Fatalf("seed %d: chunk check disagrees with the region check", seed)
		}
	}
}

func TestSlimeChunkRate(t *testing.T) {
	var n int
	for x := -50; x < 50; x++ {
		for z := -50; z < 50; z++ {
			if IsSlimeChunk(-4172144997902289642, x, z) {
				n++
			}
			if IsSlimeChunk(-4172144997902289642, x, z) != IsSlimeChunk(-4172144997902289642, x, z) {
				t.Fatalf("slime chunk check is not pure at %d, %d", x, z)
			}
		}
	}
	if n < 850 || n > 1150 {
		t.Fatalf("expected about a tenth of 10000 chunks to be slime chunks, got %d", n)
	}
}

func TestSlimeChunkReference(t *testing.T) {
	cases := []struct {
		seed   int64
		x, z   int
		slimes bool
	}{
		{0, -8, 0, true},
		{0, -7, 1, true},
		{0, -4, -8, true},
		{0, 0, 0, false},
		{12345, -7, 3, true},
		{12345, -4, 0, true},
		{-4172144997902289642, -6, -7, true},
		{42, 1000001, -1000006, true},
		{42, 1000002, -1000002, true},
		{42, 1000000, -1000001, false},
	}
	for _, tc := range cases {
		if got := IsSlimeChunk(tc.seed, tc.x, tc.z); got != tc.slimes {
			t.Errorf("IsSlimeChunk(%d, %d, %d) = %v, want %v", tc.seed, tc.x, tc.z, got, tc.slimes)
		}
	}
}

func TestChunkDistance(t *testing.T) {
	if d := ChunkDistance(Pos{X: 1, Z: 1}, Pos{X: 4, Z: 5}); math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %v", d)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind("minecraft:" + k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("nether_fossil"); err == nil {
		t.Fatalf("expected an error for an unknown structure")
	}
}

func TestStrongholdsFirstRing(t *testing.T) {
	g, err := gen.New(1234, mc.V1_16, mc.Overworld)
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for p, err := range Strongholds(g) {
		if err != nil {
			t.Fatal(err)
		}
		// The first ring lies 88 to 168 chunks out, and the biome search
		// moves a stronghold by at most 112 blocks.
		if d := ChunkDistance(p, Pos{}) * 16; d < 88*16-128 || d > 168*16+128 {
			t.Fatalf("stronghold %d at %v is %v blocks from the origin", n, p, d)
		}
		if n++; n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected three strongholds in the first ring, got %d", n)
	}
}

func TestStrongholdsLegacyCount(t *testing.T) {
	g, err := gen.New(99, mc.V1_8, mc.Overworld)
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for _, err := range Strongholds(g) {
		if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != StrongholdCount(mc.V1_8) {
		t.Fatalf("expected %d strongholds, got %d", StrongholdCount(mc.V1_8), n)
	}
}

func TestStrongholds112ReferenceValues(t *testing.T) {
	g, err := gen.New(1234, mc.V1_12, mc.Overworld)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pos{{X: -105, Z: -124}, {X: 107, Z: -6}, {X: -37, Z: 97}}
	var n int
	for p, err := range Strongholds(g) {
		if err != nil {
			t.Fatal(err)
		}
		if p != want[n] {
			t.Fatalf("stronghold %d: expected %v, got %v", n, want[n], p)
		}
		if n++; n == len(want) {
			break
		}
	}
}

func TestStrongholdCellSelection(t *testing.T) {
	grid := gen.Grid{
		Range: gen.Range{Scale: 4, W: 4, H: 1},
		Cells: []biome.ID{biome.Plains, biome.Ocean, biome.Plains, biome.Plains},
	}
	for _, c := range []struct {
		v      mc.Version
		bounds []int32
		want   int
	}{
		// With seed 1 the third cell is rejected. Before 1.13 the counter
		// stays at one, so the last cell is drawn with nextInt(2) and kept.
		{mc.V1_12, []int32{2, 2}, 3},
		{mc.V1_13, []int32{2, 3}, 0},
	} {
		r := rand.NewRandom(1)
		x, z, ok := pickStrongholdCell(grid, c.v, r)
		if !ok || x != c.want || z != 0 {
			t.Fatalf("%v: expected cell %d, got %d, %d (%v)", mc.VersionName(c.v), c.want, x, z, ok)
		}
		ref := rand.NewRandom(1)
		for _, n := range c.bounds {
			ref.NextInt(n)
		}
		if r.Seed() != ref.Seed() {
			t.Fatalf("%v: random consumed differently than nextInt%v", mc.VersionName(c.v), c.bounds)
		}
	}
	if _, _, ok := pickStrongholdCell(gen.Grid{Range: gen.Range{W: 1, H: 1}, Cells: []biome.ID{biome.Ocean}}, mc.V1_12, rand.NewRandom(1)); ok {
		t.Fatalf("expected no cell to be picked from an ocean")
	}
}

func TestStrongholdsNeedOverworld(t *testing.T) {
	g, err := gen.New(1, mc.V1_16, mc.Nether)
	if err != nil {
		t.Fatal(err)
	}
	for _, err := range Strongholds(g) {
		if !errors.Is(err, ErrNotOverworld) {
			t.Fatalf("expected ErrNotOverworld, got %v", err)
		}
	}
}

func TestIsViable(t *testing.T) {
	g, err := gen.New(1, mc.V1_16, mc.Nether)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := IsViable(g, Village, Pos{}); err != nil || ok {
		t.Fatalf("villages must not be viable in the nether, got %v, %v", ok, err)
	}
	if ok, err := IsViable(g, Fortress, Pos{X: 3, Z: 3}); err != nil || !ok {
		t.Fatalf("fortresses must be viable on any nether biome, got %v, %v", ok, err)
	}
	if !AllowsBiome(Monument, mc.V1_16, biome.DeepOcean) || AllowsBiome(Monument, mc.V1_16, biome.Ocean) {
		t.Fatalf("monuments need deep oceans")
	}
}
