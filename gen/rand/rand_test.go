package rand

import "testing"

func TestJavaRandomReferenceValues(t *testing.T) {
	r := NewRandom(0)
	if got := r.Next(32); got != -1155484576 {
		t.Fatalf("expected first int of seed 0 to be -1155484576, got %d", got)
	}
	r.SetSeed(0)
	if got := r.NextLong(); got != -4962768465676381896 {
		t.Fatalf("expected first long of seed 0 to be -4962768465676381896, got %d", got)
	}
	r.SetSeed(0)
	if got := r.NextDouble(); got != 0.730967787376657 {
		t.Fatalf("expected first double of seed 0 to be 0.730967787376657, got %v", got)
	}
	r.SetSeed(0)
	if got := r.NextInt(10); got != 0 {
		t.Fatalf("expected nextInt(10) of seed 0 to be 0, got %d", got)
	}
}

func TestJavaRandomSkip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 262, 17292} {
		a, b := NewRandom(12345), NewRandom(12345)
		for i := 0; i < n; i++ {
			a.Next(32)
		}
		b.Skip(n)
		if a.Seed() != b.Seed() {
			t.Fatalf("skip %d: state mismatch %x != %x", n, a.Seed(), b.Seed())
		}
	}
}

func TestJavaRandomBounds(t *testing.T) {
	r := NewRandom(-42)
	for i := 0; i < 10000; i++ {
		if v := r.NextInt(13); v < 0 || v >= 13 {
			t.Fatalf("nextInt out of range: %d", v)
		}
		if f := r.NextFloat(); f < 0 || f >= 1 {
			t.Fatalf("nextFloat out of range: %v", f)
		}
	}
}

func TestXoroshiroDeterministic(t *testing.T) {
	a, b := NewXoroshiro(1234), NewXoroshiro(1234)
	for i := 0; i < 100; i++ {
		if a.NextLong() != b.NextLong() {
			t.Fatalf("xoroshiro diverged at step %d", i)
		}
	}
	x := NewXoroshiro(99)
	for i := 0; i < 10000; i++ {
		if v := x.NextInt(256); v < 0 || v >= 256 {
			t.Fatalf("nextInt out of range: %d", v)
		}
		if d := x.NextDouble(); d < 0 || d >= 1 {
			t.Fatalf("nextDouble out of range: %v", d)
		}
	}
}

func TestPositionalNamesAreIndependent(t *testing.T) {
	p := NewXoroshiro(1234).Fork()
	a := p.FromHashOf("minecraft:temperature")
	b := p.FromHashOf("minecraft:vegetation")
	if a.NextLong() == b.NextLong() {
		t.Fatalf("expected different names to produce different streams")
	}
	c := NewXoroshiro(1234).Fork().FromHashOf("minecraft:temperature")
	d := p.FromHashOf("minecraft:temperature")
	if c.NextLong() != d.NextLong() {
		t.Fatalf("expected identical names to produce identical streams")
	}
}

func TestCellStreamAdvancesOnNextIntOne(t *testing.T) {
	cs := ChunkSeed(StartSeed(StartSalt(1, LayerSalt(2000))), 3, -7)
	c := NewCell(cs, 42)
	c.NextInt(1)
	if c.cs == cs {
		t.Fatalf("expected nextInt(1) to advance the cell stream")
	}
	if FirstIsZero(cs, 4) != (FirstInt(cs, 4) == 0) {
		t.Fatalf("FirstIsZero disagrees with FirstInt")
	}
}

func TestXoroshiroReferenceValues(t *testing.T) {
	x := NewXoroshiro(1234)
	for i, want := range []int64{1442210903926503196, -6213764276566792285, -6513712564911937959} {
		if got := int64(x.NextLong()); got != want {
			t.Fatalf("long %d of seed 1234: expected %d, got %d", i, want, got)
		}
	}
	x = NewXoroshiro(1234)
	for i, want := range []int32{11, 249, 239, 236, 107} {
		if got := x.NextInt(256); got != want {
			t.Fatalf("nextInt(256) %d of seed 1234: expected %d, got %d", i, want, got)
		}
	}
	if got := NewXoroshiro(1234).NextDouble(); got != 0.0781824097609698 {
		t.Fatalf("expected first double of seed 1234 to be 0.0781824097609698, got %v", got)
	}
}

func TestPositionalReferenceValues(t *testing.T) {
	p := NewXoroshiro(1234).Fork()
	if p.lo != 0x1403c32d0bbbf71c || p.hi != 0xa9c4464ff93967a3 {
		t.Fatalf("unexpected fork state %x, %x", p.lo, p.hi)
	}
	if got := int64(p.FromHashOf("minecraft:temperature").NextLong()); got != -1499940144176543850 {
		t.Fatalf("unexpected first long of the temperature stream: %d", got)
	}
	// A zero factory exposes the digest of the name itself.
	for name, want := range map[string][2]uint64{
		"minecraft:offset":          {0x080518cf6af25384, 0x3f3dfb40a54febd5},
		"minecraft:temperature":     {0x5c7e6b29735f0d7f, 0xf7d86f1bbc734988},
		"minecraft:continentalness": {0x83886c9d0ae3a662, 0xafa638a61b42e8ad},
		"minecraft:ridge":           {0xefc8ef4d36102b34, 0x1beeeb324a0f24ea},
		"octave_-12":                {0xb198de63a8012672, 0x7b84cad43ef7b5a8},
	} {
		x := Positional{}.FromHashOf(name)
		if x.lo != want[0] || x.hi != want[1] {
			t.Fatalf("%s: expected %x, %x, got %x, %x", name, want[0], want[1], x.lo, x.hi)
		}
	}
}

func TestLayerSeedReferenceValues(t *testing.T) {
	ls := LayerSalt(2000)
	ss := StartSalt(1234, ls)
	cs := ChunkSeed(StartSeed(ss), 3, -7)
	if ls != 0x863c20e1ae532c00 || ss != 0x34e550344002df02 || cs != 0xa564c3eb3fb2a92f {
		t.Fatalf("unexpected layer seeds %x, %x, %x", ls, ss, cs)
	}
	// The chunk seed is negative, so the remainder must be moved into range.
	if got := FirstInt(cs, 10); got != 7 {
		t.Fatalf("expected first int 7, got %d", got)
	}
	if got := FirstInt(cs, 4); got != 3 {
		t.Fatalf("expected first int 3, got %d", got)
	}
}
