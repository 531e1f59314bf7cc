package climate

// splineInput selects the climate value a spline is keyed on.
type splineInput uint8

const (
	inContinentalness splineInput = iota
	inErosion
	inRidges
	inWeirdness
)

// spline is a cubic Hermite curve whose control values may themselves be
// splines. A spline without points is constant.
type spline struct {
	input  splineInput
	value  float32
	points []splinePoint
}

type splinePoint struct {
	loc   float32
	value *spline
	der   float32
}

func fixed(v float32) *spline {
	return &spline{value: v}
}

func (s *spline) add(loc float32, v *spline, der float32) {
	s.points = append(s.points, splinePoint{loc: loc, value: v, der: der})
}

func lerp32(t, a, b float32) float32 {
	return a + float32(t*(b-a))
}

// eval returns the spline at the climate values passed, indexed by
// splineInput.
func (s *spline) eval(vals *[4]float32) float32 {
	if len(s.points) == 0 {
		return s.value
	}
	f := vals[s.input]
	i := 0
	for i < len(s.points) && s.points[i].loc < f {
		i++
	}
	if i == 0 || i == len(s.points) {
		if i > 0 {
			i--
		}
		p := s.points[i]
		return p.value.eval(vals) + float32(p.der*(f-p.loc))
	}
	p1, p2 := s.points[i-1], s.points[i]
	g, h := p1.loc, p2.loc
	k := (f - g) / (h - g)
	n, o := p1.value.eval(vals), p2.value.eval(vals)
	p := float32(p1.der*(h-g)) - (o - n)
	q := float32(-p2.der*(h-g)) + (o - n)
	return lerp32(k, n, o) + float32(float32(k*(1-k))*lerp32(k, p, q))
}

// offsetValue is the terrain offset of a ridge at the given weirdness and
// continentalness.
func offsetValue(weirdness, continentalness float32) float32 {
	f0 := 1 - float32((1-continentalness)*0.5)
	f1 := float32(0.5 * (1 - continentalness))
	f2 := float32((weirdness + 1.17) * 0.46082947)
	off := float32(f2*f0) - f1
	if weirdness < -1 {
		return max(off, -0.0222)
	}
	return max(off, 0)
}

func ridgeSpline(f float32, amplified bool) *spline {
	sp := &spline{input: inRidges}
	i := offsetValue(-1, f)
	k := offsetValue(1, f)
	l := 1 - float32((1-f)*0.5)
	u := float32(0.5 * (1 - f))
	l = u/float32(0.46082947*l) - 1.17

	if -0.65 < l && l < 1 {
		u = offsetValue(-0.65, f)
		p := offsetValue(-0.75, f)
		q := (p - i) * 4
		r := offsetValue(l, f)
		s := (k - r) / (1 - l)
		sp.add(-1, fixed(i), q)
		sp.add(-0.75, fixed(p), 0)
		sp.add(-0.65, fixed(u), 0)
		sp.add(l-0.01, fixed(r), 0)
		sp.add(l, fixed(r), s)
		sp.add(1, fixed(k), s)
		return sp
	}
	u = (k - i) * 0.5
	if amplified {
		sp.add(-1, fixed(max(i, 0.2)), 0)
		sp.add(0, fixed(lerp32(0.5, i, k)), u)
	} else {
		sp.add(-1, fixed(i), u)
	}
	sp.add(1, fixed(k), u)
	return sp
}

func flatOffsetSpline(f, g, h, i, j, k float32) *spline {
	sp := &spline{input: inRidges}
	l := max(0.5*(g-f), k)
	m := 5 * (h - g)
	sp.add(-1, fixed(f), l)
	sp.add(-0.4, fixed(g), min(l, m))
	sp.add(0, fixed(h), m)
	sp.add(0.4, fixed(i), 2*(i-h))
	sp.add(1, fixed(j), 0.7*(j-i))
	return sp
}

func landSpline(f, g, h, i, j, k float32, amplified bool) *spline {
	sp1 := ridgeSpline(lerp32(i, 0.6, 1.5), amplified)
	sp2 := ridgeSpline(lerp32(i, 0.6, 1.0), amplified)
	sp3 := ridgeSpline(i, amplified)
	ih := 0.5 * i
	sp4 := flatOffsetSpline(f-0.15, ih, ih, ih, i*0.6, 0.5)
	sp5 := flatOffsetSpline(f, j*i, g*i, ih, i*0.6, 0.5)
	sp6 := flatOffsetSpline(f, j, j, g, h, 0.5)
	sp7 := flatOffsetSpline(f, j, j, g, h, 0.5)

	sp8 := &spline{input: inRidges}
	sp8.add(-1, fixed(f), 0)
	sp8.add(-0.4, sp6, 0)
	sp8.add(0, fixed(h+0.07), 0)

	sp9 := flatOffsetSpline(-0.02, k, k, g, h, 0)
	sp := &spline{input: inErosion}
	sp.add(-0.85, sp1, 0)
	sp.add(-0.7, sp2, 0)
	sp.add(-0.4, sp3, 0)
	sp.add(-0.35, sp4, 0)
	sp.add(-0.1, sp5, 0)
	sp.add(0.2, sp6, 0)
	if amplified {
		sp.add(0.4, sp7, 0)
		sp.add(0.45, sp8, 0)
		sp.add(0.55, sp8, 0)
		sp.add(0.58, sp7, 0)
	}
	sp.add(0.7, sp9, 0)
	return sp
}

// offsetSpline is the overworld terrain offset keyed on continentalness,
// erosion and ridges.
func offsetSpline() *spline {
	sp := &spline{input: inContinentalness}
	sp1 := landSpline(-0.15, 0.00, 0.0, 0.1, 0.00, -0.03, false)
	sp2 := landSpline(-0.10, 0.03, 0.1, 0.1, 0.01, -0.03, false)
	sp3 := landSpline(-0.10, 0.03, 0.1, 0.7, 0.01, -0.03, true)
	sp4 := landSpline(-0.05, 0.03, 0.1, 1.0, 0.01, 0.01, true)

	sp.add(-1.10, fixed(0.044), 0)
	sp.add(-1.02, fixed(-0.2222), 0)
	sp.add(-0.51, fixed(-0.2222), 0)
	sp.add(-0.44, fixed(-0.12), 0)
	sp.add(-0.18, fixed(-0.12), 0)
	sp.add(-0.16, sp1, 0)
	sp.add(-0.15, sp1, 0)
	sp.add(-0.10, sp2, 0)
	sp.add(0.25, sp3, 0)
	sp.add(1.00, sp4, 0)
	return sp
}
