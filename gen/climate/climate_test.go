package climate

import (
	"testing"

	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/internal/versioninfo"
)

func TestQuantize(t *testing.T) {
	if p := Span(-0.45, 0.2); p.Min != -4500 || p.Max != 2000 {
		t.Fatalf("unexpected quantized span %+v", p)
	}
	if d := Span(-1, 1).distance(15000); d != 5000 {
		t.Fatalf("expected distance 5000 outside the range, got %d", d)
	}
	if d := Span(-1, 1).distance(0); d != 0 {
		t.Fatalf("expected no distance inside the range, got %d", d)
	}
}

func TestNearestPrefersFirstOnTie(t *testing.T) {
	entries := []Entry{
		{Temperature: Point(0), Biome: biome.Plains},
		{Temperature: Point(0), Biome: biome.Desert},
	}
	if got := Nearest(entries, Target{}); got != biome.Plains {
		t.Fatalf("expected the first entry to win a tie, got %v", got)
	}
}

func TestOverworldTableBiomes(t *testing.T) {
	seen := map[biome.ID]bool{}
	for _, e := range OverworldEntries() {
		if !biome.Exists(versioninfo.V1_18, e.Biome) {
			t.Fatalf("table references %v which does not exist in 1.18", e.Biome)
		}
		seen[e.Biome] = true
	}
	for _, id := range []biome.ID{biome.MushroomFields, biome.DeepFrozenOcean, biome.StonyPeaks, biome.LushCaves, biome.Swamp, biome.River} {
		if !seen[id] {
			t.Errorf("expected %v in the overworld table", id)
		}
	}
}

func TestOverworldDeterministic(t *testing.T) {
	a, b := NewOverworld(42, false), NewOverworld(42, false)
	for x := -40; x < 40; x += 7 {
		for z := -40; z < 40; z += 11 {
			if ta, tb := a.Sample(x, 16, z), b.Sample(x, 16, z); ta != tb {
				t.Fatalf("samples differ at %d, %d: %+v != %+v", x, z, ta, tb)
			}
			if id := a.Biome(x, 16, z); !biome.IsOverworld(versioninfo.V1_18, id) {
				t.Fatalf("got non overworld biome %v at %d, %d", id, x, z)
			}
		}
	}
}

func TestOverworldLargeDiffers(t *testing.T) {
	a, b := NewOverworld(7, false), NewOverworld(7, true)
	same := true
	for x := 0; x < 64 && same; x += 4 {
		same = a.Sample(x*16, 16, 0) == b.Sample(x*16, 16, 0)
	}
	if same {
		t.Fatalf("large biome noise must differ from the default")
	}
}

func TestSplineConstant(t *testing.T) {
	vals := [4]float32{0.3, -0.2, 0.1, 0.5}
	if v := fixed(0.25).eval(&vals); v != 0.25 {
		t.Fatalf("expected constant spline value, got %v", v)
	}
	sp := &spline{input: inContinentalness}
	sp.add(0, fixed(0), 0)
	sp.add(1, fixed(1), 0)
	if v := sp.eval(&[4]float32{0.5}); v != 0.5 {
		t.Fatalf("expected the midpoint of a flat ramp, got %v", v)
	}
	if v := sp.eval(&[4]float32{2}); v != 1 {
		t.Fatalf("expected clamping past the last point, got %v", v)
	}
}

func TestNether(t *testing.T) {
	n := NewNether(1)
	counts := map[biome.ID]int{}
	for x := -256; x < 256; x += 8 {
		for z := -256; z < 256; z += 8 {
			counts[n.Biome(x, 0, z)]++
		}
	}
	for id := range counts {
		if biome.CategoryOf(versioninfo.V1_16, id) != biome.CategoryNether {
			t.Fatalf("got non nether biome %v", id)
		}
	}
	if len(counts) < 2 {
		t.Fatalf("expected several nether biomes over a large area, got %v", counts)
	}
}

func TestEnd(t *testing.T) {
	e := NewEnd(1)
	if got := e.Biome(10, 0, -10); got != biome.TheEnd {
		t.Fatalf("expected the main island near the origin, got %v", got)
	}
	if h := e.Height(0, 0); h != 80 {
		t.Fatalf("expected the centre height to be clamped to 80, got %v", h)
	}
	counts := map[biome.ID]int{}
	for x := 100; x < 400; x += 5 {
		counts[e.Biome(x, 0, 50)]++
	}
	if counts[biome.TheEnd] != 0 {
		t.Fatalf("the main island biome must not appear far from the origin")
	}
	if counts[biome.SmallEndIslands] == 0 {
		t.Fatalf("expected small end islands in the outer ring, got %v", counts)
	}
}
