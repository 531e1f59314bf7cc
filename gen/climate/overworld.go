package climate

import (
	"github.com/df-mc/biomegen/gen/biome"
	"github.com/df-mc/biomegen/gen/noise"
	"github.com/df-mc/biomegen/gen/rand"
)

type noiseParams struct {
	name       string
	large      string
	omin       int
	largeOmin  int
	amplitudes []float64
}

var (
	shiftParams = noiseParams{
		name: "minecraft:offset", omin: -3, amplitudes: []float64{1, 1, 1, 0},
	}
	temperatureParams = noiseParams{
		name: "minecraft:temperature", large: "minecraft:temperature_large",
		omin: -10, largeOmin: -12, amplitudes: []float64{1.5, 0, 1, 0, 0, 0},
	}
	humidityParams = noiseParams{
		name: "minecraft:vegetation", large: "minecraft:vegetation_large",
		omin: -8, largeOmin: -10, amplitudes: []float64{1, 1, 0, 0, 0, 0},
	}
	continentalnessParams = noiseParams{
		name: "minecraft:continentalness", large: "minecraft:continentalness_large",
		omin: -9, largeOmin: -11, amplitudes: []float64{1, 1, 2, 2, 2, 1, 1, 1, 1},
	}
	erosionParams = noiseParams{
		name: "minecraft:erosion", large: "minecraft:erosion_large",
		omin: -9, largeOmin: -11, amplitudes: []float64{1, 1, 0, 1, 1},
	}
	weirdnessParams = noiseParams{
		name: "minecraft:ridge", omin: -7, amplitudes: []float64{1, 2, 1, 0, 0, 0},
	}
)

func (p noiseParams) create(f rand.Positional, large bool) *noise.DoublePerlin {
	name, omin := p.name, p.omin
	if large && p.large != "" {
		name, omin = p.large, p.largeOmin
	}
	return noise.NewXDoublePerlin(f.FromHashOf(name), p.amplitudes, omin, -1)
}

// Overworld is the multi-noise overworld biome source of 1.18. Biomes depend
// on five noise fields and on the depth below the terrain surface.
type Overworld struct {
	shift, temperature, humidity, continentalness, erosion, weirdness *noise.DoublePerlin

	offset *spline
}

// NewOverworld ...
func NewOverworld(seed int64, large bool) *Overworld {
	f := rand.NewXoroshiro(seed).Fork()
	return &Overworld{
		shift:           shiftParams.create(f, false),
		temperature:     temperatureParams.create(f, large),
		humidity:        humidityParams.create(f, large),
		continentalness: continentalnessParams.create(f, large),
		erosion:         erosionParams.create(f, large),
		weirdness:       weirdnessParams.create(f, false),
		offset:          offsetSpline(),
	}
}

// Sample returns the quantized climate at the 1:4 coordinates passed.
func (o *Overworld) Sample(x, y, z int) Target {
	fx, fz := float64(x), float64(z)
	px := fx + o.shift.Sample(fx, 0, fz)*4
	pz := fz + o.shift.Sample(fz, fx, 0)*4

	c := float32(o.continentalness.Sample(px, 0, pz))
	e := float32(o.erosion.Sample(px, 0, pz))
	w := float32(o.weirdness.Sample(px, 0, pz))

	ridges := -3 * (abs32(abs32(w)-0.6666667) - 0.33333334)
	vals := [4]float32{c, e, ridges, w}
	off := float64(o.offset.eval(&vals) + 0.015)
	d := float32(1 - float64(y*4)/128 - 83.0/160 + off)

	t := float32(o.temperature.Sample(px, 0, pz))
	h := float32(o.humidity.Sample(px, 0, pz))
	return Target{
		Temperature:     quantize(t),
		Humidity:        quantize(h),
		Continentalness: quantize(c),
		Erosion:         quantize(e),
		Depth:           quantize(d),
		Weirdness:       quantize(w),
	}
}

// Biome returns the biome at the 1:4 coordinates passed.
func (o *Overworld) Biome(x, y, z int) biome.ID {
	return Nearest(overworldEntries(), o.Sample(x, y, z))
}
