// Package climate implements the noise driven biome sources that replaced
// the layer stack: the nether of 1.16, the end islands of 1.13 and the
// multi-noise overworld of 1.18.
package climate

import (
	"math"

	"github.com/df-mc/biomegen/gen/biome"
)

// Parameter is a closed range of a quantized climate value. Values are
// multiplied by 10000 and truncated, as the game stores them.
type Parameter struct {
	Min, Max int64
}

func quantize(v float32) int64 {
	return int64(v * 10000.0)
}

// Span returns the parameter covering lo to hi.
func Span(lo, hi float32) Parameter {
	return Parameter{Min: quantize(lo), Max: quantize(hi)}
}

// Point returns the parameter holding only v.
func Point(v float32) Parameter {
	return Span(v, v)
}

// Join returns the parameter from the start of a to the end of b.
func Join(a, b Parameter) Parameter {
	return Parameter{Min: a.Min, Max: b.Max}
}

func (p Parameter) distance(v int64) int64 {
	if d := v - p.Max; d > 0 {
		return d
	}
	if d := p.Min - v; d > 0 {
		return d
	}
	return 0
}

// Target is a sampled climate, quantized.
type Target struct {
	Temperature, Humidity, Continentalness, Erosion, Depth, Weirdness int64
}

// Entry maps a region of the climate space to a biome.
type Entry struct {
	Temperature, Humidity, Continentalness, Erosion, Depth, Weirdness Parameter
	Offset                                                            int64
	Biome                                                             biome.ID
}

// fitness returns the squared distance of t to the region of e.
func (e *Entry) fitness(t Target) uint64 {
	var sum uint64
	for _, d := range [...]int64{
		e.Temperature.distance(t.Temperature),
		e.Humidity.distance(t.Humidity),
		e.Continentalness.distance(t.Continentalness),
		e.Erosion.distance(t.Erosion),
		e.Depth.distance(t.Depth),
		e.Weirdness.distance(t.Weirdness),
		e.Offset,
	} {
		sum += uint64(d * d)
	}
	return sum
}

// Nearest returns the biome of the entry closest to t. Ties go to the entry
// listed first.
func Nearest(entries []Entry, t Target) biome.ID {
	best, dmin := biome.None, uint64(math.MaxUint64)
	for i := range entries {
		if d := entries[i].fitness(t); d < dmin {
			best, dmin = entries[i].Biome, d
		}
	}
	return best
}
