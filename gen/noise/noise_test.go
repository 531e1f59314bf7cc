package noise

import (
	"math"
	"testing"

	"github.com/df-mc/biomegen/gen/rand"
)

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(rand.NewRandom(1234))
	b := NewPerlin(rand.NewRandom(1234))
	for i := 0; i < 200; i++ {
		x, y, z := float64(i)*0.37, float64(i%7)*1.3, float64(-i)*0.91
		if a.Sample(x, y, z, 0, 0) != b.Sample(x, y, z, 0, 0) {
			t.Fatalf("perlin samples differ at %v, %v, %v", x, y, z)
		}
	}
}

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(rand.NewRandom(-7))
	for i := 0; i < 5000; i++ {
		v := p.Sample(float64(i)*0.113, float64(i)*0.071, float64(i)*-0.049, 0, 0)
		if math.IsNaN(v) || v < -1.05 || v > 1.05 {
			t.Fatalf("perlin sample out of range: %v", v)
		}
	}
}

func TestPerlinLatticeIsZero(t *testing.T) {
	p := NewPerlin(rand.NewRandom(3))
	// At integer lattice points relative to the origin every gradient
	// contribution vanishes.
	if v := p.Sample(-p.a+5, -p.b+2, -p.c+9, 0, 0); math.Abs(v) > 1e-9 {
		t.Fatalf("expected zero at a lattice point, got %v", v)
	}
}

func TestSeedsDecorrelate(t *testing.T) {
	a := NewOctave(rand.NewRandom(1), -7, 2)
	b := NewOctave(rand.NewRandom(2), -7, 2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 3.1
		if a.Sample(x, 0, x) == b.Sample(x, 0, x) {
			same++
		}
	}
	if same > 5 {
		t.Fatalf("expected different seeds to produce different octave noise, %d equal samples", same)
	}
}

func TestOctaveLength(t *testing.T) {
	if n := NewOctave(rand.NewRandom(0), -7, 2).Len(); n != 2 {
		t.Fatalf("expected 2 legacy octaves, got %d", n)
	}
	o := NewXOctave(rand.NewXoroshiro(0), []float64{1.5, 0, 1, 0, 0, 0}, -10, -1)
	if o.Len() != 2 {
		t.Fatalf("expected zero amplitudes to be skipped, got %d octaves", o.Len())
	}
}

func TestXDoublePerlinAmplitude(t *testing.T) {
	d := NewXDoublePerlin(rand.NewXoroshiro(0), []float64{1.5, 0, 1, 0, 0, 0}, -10, -1)
	want := (5.0 / 3.0) * 3 / 4
	if d.amplitude != want {
		t.Fatalf("expected amplitude %v, got %v", want, d.amplitude)
	}
}

func TestSimplexRange(t *testing.T) {
	s := NewSimplex(rand.NewRandom(42))
	for i := 0; i < 5000; i++ {
		v := s.Sample2D(float64(i)*0.37-900, float64(i)*-0.21+400)
		if v < -1.01 || v > 1.01 {
			t.Fatalf("simplex sample out of range: %v", v)
		}
	}
}

func TestMaintainPrecision(t *testing.T) {
	if v := maintainPrecision(33554432.0*3 + 0.25); v != 0.25 {
		t.Fatalf("expected wrapped coordinate 0.25, got %v", v)
	}
}

func TestReferenceSamples(t *testing.T) {
	p := NewPerlin(rand.NewRandom(1234))
	for _, c := range []struct{ x, y, z, want float64 }{
		{0.5, 0, 0.5, 0.5260081486954652},
		{12.3, 4.5, -6.7, 0.14911760759377435},
		{-1000.25, 0, 777.75, 0.04587359444403012},
	} {
		if got := p.Sample(c.x, c.y, c.z, 0, 0); got != c.want {
			t.Errorf("perlin at %v, %v, %v: expected %v, got %v", c.x, c.y, c.z, c.want, got)
		}
	}

	legacy := NewDoublePerlin(rand.NewRandom(1234), -7, 2)
	for _, c := range []struct{ x, z, want float64 }{
		{100, -50, -0.03799426075191374},
		{-3.5, 8.25, 0.16726075419663672},
	} {
		if got := legacy.Sample(c.x, 0, c.z); got != c.want {
			t.Errorf("legacy double perlin at %v, %v: expected %v, got %v", c.x, c.z, c.want, got)
		}
	}

	f := rand.NewXoroshiro(1234).Fork()
	cont := NewXDoublePerlin(f.FromHashOf("minecraft:continentalness"), []float64{1, 1, 2, 2, 2, 1, 1, 1, 1}, -9, -1)
	for _, c := range []struct{ x, z, want float64 }{
		{0, 0, -0.5107748223304321},
		{1000, -1000, 0.1099653848801678},
		{-250.5, 3.25, 0.4656611855174148},
	} {
		if got := cont.Sample(c.x, 0, c.z); got != c.want {
			t.Errorf("continentalness at %v, %v: expected %v, got %v", c.x, c.z, c.want, got)
		}
	}
}
