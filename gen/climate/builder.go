package climate

import (
	"sync"

	"github.com/df-mc/biomegen/gen/biome"
)

var (
	fullRange = Span(-1, 1)

	temperatures = [5]Parameter{
		Span(-1, -0.45), Span(-0.45, -0.15), Span(-0.15, 0.2), Span(0.2, 0.55), Span(0.55, 1),
	}
	humidities = [5]Parameter{
		Span(-1, -0.35), Span(-0.35, -0.1), Span(-0.1, 0.1), Span(0.1, 0.3), Span(0.3, 1),
	}
	erosions = [7]Parameter{
		Span(-1, -0.78), Span(-0.78, -0.375), Span(-0.375, -0.2225), Span(-0.2225, 0.05),
		Span(0.05, 0.45), Span(0.45, 0.55), Span(0.55, 1),
	}
	frozenRange   = temperatures[0]
	unfrozenRange = Join(temperatures[1], temperatures[4])

	mushroomFields = Span(-1.2, -1.05)
	deepOcean      = Span(-1.05, -0.455)
	ocean          = Span(-0.455, -0.19)
	coast          = Span(-0.19, -0.11)
	inland         = Span(-0.11, 0.55)
	nearInland     = Span(-0.11, 0.03)
	midInland      = Span(0.03, 0.3)
	farInland      = Span(0.3, 1)
)

const none = biome.None

var (
	oceans = [2][5]biome.ID{
		{biome.DeepFrozenOcean, biome.DeepColdOcean, biome.DeepOcean, biome.DeepLukewarmOcean, biome.WarmOcean},
		{biome.FrozenOcean, biome.ColdOcean, biome.Ocean, biome.LukewarmOcean, biome.WarmOcean},
	}
	middleBiomes = [5][5]biome.ID{
		{biome.SnowyPlains, biome.SnowyPlains, biome.SnowyPlains, biome.SnowyTaiga, biome.Taiga},
		{biome.Plains, biome.Plains, biome.Forest, biome.Taiga, biome.OldGrowthSpruceTaiga},
		{biome.FlowerForest, biome.Plains, biome.Forest, biome.BirchForest, biome.DarkForest},
		{biome.Savanna, biome.Savanna, biome.Forest, biome.Jungle, biome.Jungle},
		{biome.Desert, biome.Desert, biome.Desert, biome.Desert, biome.Desert},
	}
	middleVariants = [5][5]biome.ID{
		{biome.IceSpikes, none, biome.SnowyTaiga, none, none},
		{none, none, none, none, biome.OldGrowthPineTaiga},
		{biome.SunflowerPlains, none, none, biome.OldGrowthBirchForest, none},
		{none, none, biome.Plains, biome.SparseJungle, biome.BambooJungle},
		{none, none, none, none, none},
	}
	plateauBiomes = [5][5]biome.ID{
		{biome.SnowyPlains, biome.SnowyPlains, biome.SnowyPlains, biome.SnowyTaiga, biome.SnowyTaiga},
		{biome.Meadow, biome.Meadow, biome.Forest, biome.Taiga, biome.OldGrowthSpruceTaiga},
		{biome.Meadow, biome.Meadow, biome.Meadow, biome.Meadow, biome.DarkForest},
		{biome.SavannaPlateau, biome.SavannaPlateau, biome.Forest, biome.Forest, biome.Jungle},
		{biome.Badlands, biome.Badlands, biome.Badlands, biome.WoodedBadlands, biome.WoodedBadlands},
	}
	plateauVariants = [5][5]biome.ID{
		{biome.IceSpikes, none, none, none, none},
		{none, none, biome.Meadow, biome.Meadow, biome.OldGrowthPineTaiga},
		{none, none, biome.Forest, biome.BirchForest, none},
		{none, none, none, none, none},
		{biome.ErodedBadlands, biome.ErodedBadlands, none, none, none},
	}
	shatteredBiomes = [5][5]biome.ID{
		{biome.WindsweptGravellyHills, biome.WindsweptGravellyHills, biome.WindsweptHills, biome.WindsweptForest, biome.WindsweptForest},
		{biome.WindsweptGravellyHills, biome.WindsweptGravellyHills, biome.WindsweptHills, biome.WindsweptForest, biome.WindsweptForest},
		{biome.WindsweptHills, biome.WindsweptHills, biome.WindsweptHills, biome.WindsweptForest, biome.WindsweptForest},
		{none, none, none, none, none},
		{none, none, none, none, none},
	}
)

var (
	entriesOnce sync.Once
	entries     []Entry
)

// overworldEntries returns the climate regions of every overworld biome,
// built on first use.
func overworldEntries() []Entry {
	entriesOnce.Do(func() {
		b := &builder{}
		b.offCoast()
		b.inland()
		b.underground()
		entries = b.entries
	})
	return entries
}

// OverworldEntries returns a copy of the overworld climate table.
func OverworldEntries() []Entry {
	return append([]Entry(nil), overworldEntries()...)
}

type builder struct {
	entries []Entry
}

func (b *builder) surface(t, h, c, e, w Parameter, id biome.ID) {
	for _, d := range [...]Parameter{Point(0), Point(1)} {
		b.entries = append(b.entries, Entry{
			Temperature: t, Humidity: h, Continentalness: c, Erosion: e, Depth: d, Weirdness: w, Biome: id,
		})
	}
}

func (b *builder) underground() {
	b.entries = append(b.entries,
		Entry{Temperature: fullRange, Humidity: fullRange, Continentalness: Span(0.8, 1), Erosion: fullRange,
			Depth: Span(0.2, 0.9), Weirdness: fullRange, Biome: biome.DripstoneCaves},
		Entry{Temperature: fullRange, Humidity: Span(0.7, 1), Continentalness: fullRange, Erosion: fullRange,
			Depth: Span(0.2, 0.9), Weirdness: fullRange, Biome: biome.LushCaves},
	)
}

func (b *builder) offCoast() {
	b.surface(fullRange, fullRange, mushroomFields, fullRange, fullRange, biome.MushroomFields)
	for i, t := range temperatures {
		b.surface(t, fullRange, deepOcean, fullRange, fullRange, oceans[0][i])
		b.surface(t, fullRange, ocean, fullRange, fullRange, oceans[1][i])
	}
}

func (b *builder) inland() {
	b.midSlice(Span(-1, -0.93333334))
	b.highSlice(Span(-0.93333334, -0.7666667))
	b.peaks(Span(-0.7666667, -0.56666666))
	b.highSlice(Span(-0.56666666, -0.4))
	b.midSlice(Span(-0.4, -0.26666668))
	b.lowSlice(Span(-0.26666668, -0.05))
	b.valleys(Span(-0.05, 0.05))
	b.lowSlice(Span(0.05, 0.26666668))
	b.midSlice(Span(0.26666668, 0.4))
	b.highSlice(Span(0.4, 0.56666666))
	b.peaks(Span(0.56666666, 0.7666667))
	b.highSlice(Span(0.7666667, 0.93333334))
	b.midSlice(Span(0.93333334, 1))
}

func (b *builder) peaks(w Parameter) {
	for i, t := range temperatures {
		for j, h := range humidities {
			middle := pickMiddle(i, j, w)
			middleOrBadlands := pickMiddleOrBadlands(i, j, w)
			middleOrSlope := pickMiddleOrBadlandsOrSlope(i, j, w)
			plateau := pickPlateau(i, j, w)
			shattered := pickShattered(i, j, w)
			savanna := maybeWindsweptSavanna(i, j, w, shattered)
			peak := pickPeak(i, j, w)

			b.surface(t, h, Join(coast, farInland), erosions[0], w, peak)
			b.surface(t, h, Join(coast, nearInland), erosions[1], w, middleOrSlope)
			b.surface(t, h, Join(midInland, farInland), erosions[1], w, peak)
			b.surface(t, h, Join(coast, nearInland), Join(erosions[2], erosions[3]), w, middle)
			b.surface(t, h, Join(midInland, farInland), erosions[2], w, plateau)
			b.surface(t, h, midInland, erosions[3], w, middleOrBadlands)
			b.surface(t, h, farInland, erosions[3], w, plateau)
			b.surface(t, h, Join(coast, farInland), erosions[4], w, middle)
			b.surface(t, h, Join(coast, nearInland), erosions[5], w, savanna)
			b.surface(t, h, Join(midInland, farInland), erosions[5], w, shattered)
			b.surface(t, h, Join(coast, farInland), erosions[6], w, middle)
		}
	}
}

func (b *builder) highSlice(w Parameter) {
	for i, t := range temperatures {
		for j, h := range humidities {
			middle := pickMiddle(i, j, w)
			middleOrBadlands := pickMiddleOrBadlands(i, j, w)
			middleOrSlope := pickMiddleOrBadlandsOrSlope(i, j, w)
			plateau := pickPlateau(i, j, w)
			shattered := pickShattered(i, j, w)
			savanna := maybeWindsweptSavanna(i, j, w, middle)
			slope := pickSlope(i, j, w)
			peak := pickPeak(i, j, w)

			b.surface(t, h, coast, Join(erosions[0], erosions[1]), w, middle)
			b.surface(t, h, nearInland, erosions[0], w, slope)
			b.surface(t, h, Join(midInland, farInland), erosions[0], w, peak)
			b.surface(t, h, nearInland, erosions[1], w, middleOrSlope)
			b.surface(t, h, Join(midInland, farInland), erosions[1], w, slope)
			b.surface(t, h, Join(coast, nearInland), Join(erosions[2], erosions[3]), w, middle)
			b.surface(t, h, Join(midInland, farInland), erosions[2], w, plateau)
			b.surface(t, h, midInland, erosions[3], w, middleOrBadlands)
			b.surface(t, h, farInland, erosions[3], w, plateau)
			b.surface(t, h, Join(coast, farInland), erosions[4], w, middle)
			b.surface(t, h, Join(coast, nearInland), erosions[5], w, savanna)
			b.surface(t, h, Join(midInland, farInland), erosions[5], w, shattered)
			b.surface(t, h, Join(coast, farInland), erosions[6], w, middle)
		}
	}
}

func (b *builder) midSlice(w Parameter) {
	b.surface(fullRange, fullRange, coast, Join(erosions[0], erosions[2]), w, biome.StonyShore)
	b.surface(unfrozenRange, fullRange, Join(nearInland, farInland), erosions[6], w, biome.Swamp)
	for i, t := range temperatures {
		for j, h := range humidities {
			middle := pickMiddle(i, j, w)
			middleOrBadlands := pickMiddleOrBadlands(i, j, w)
			middleOrSlope := pickMiddleOrBadlandsOrSlope(i, j, w)
			shattered := pickShattered(i, j, w)
			plateau := pickPlateau(i, j, w)
			beach := pickBeach(i)
			savanna := maybeWindsweptSavanna(i, j, w, middle)
			shatteredCoast := pickShatteredCoast(i, j, w)
			slope := pickSlope(i, j, w)

			b.surface(t, h, Join(nearInland, farInland), erosions[0], w, slope)
			b.surface(t, h, Join(nearInland, midInland), erosions[1], w, middleOrSlope)
			if i == 0 {
				b.surface(t, h, farInland, erosions[1], w, slope)
			} else {
				b.surface(t, h, farInland, erosions[1], w, plateau)
			}
			b.surface(t, h, nearInland, erosions[2], w, middle)
			b.surface(t, h, midInland, erosions[2], w, middleOrBadlands)
			b.surface(t, h, farInland, erosions[2], w, plateau)
			b.surface(t, h, Join(coast, nearInland), erosions[3], w, middle)
			b.surface(t, h, Join(midInland, farInland), erosions[3], w, middleOrBadlands)
			if w.Max < 0 {
				b.surface(t, h, coast, erosions[4], w, beach)
				b.surface(t, h, Join(nearInland, farInland), erosions[4], w, middle)
			} else {
				b.surface(t, h, Join(coast, farInland), erosions[4], w, middle)
			}
			b.surface(t, h, coast, erosions[5], w, shatteredCoast)
			b.surface(t, h, nearInland, erosions[5], w, savanna)
			b.surface(t, h, Join(midInland, farInland), erosions[5], w, shattered)
			if w.Max < 0 {
				b.surface(t, h, coast, erosions[6], w, beach)
			} else {
				b.surface(t, h, coast, erosions[6], w, middle)
			}
			if i == 0 {
				b.surface(t, h, Join(nearInland, farInland), erosions[6], w, middle)
			}
		}
	}
}

func (b *builder) lowSlice(w Parameter) {
	b.surface(fullRange, fullRange, coast, Join(erosions[0], erosions[2]), w, biome.StonyShore)
	b.surface(unfrozenRange, fullRange, Join(nearInland, farInland), erosions[6], w, biome.Swamp)
	for i, t := range temperatures {
		for j, h := range humidities {
			middle := pickMiddle(i, j, w)
			middleOrBadlands := pickMiddleOrBadlands(i, j, w)
			middleOrSlope := pickMiddleOrBadlandsOrSlope(i, j, w)
			beach := pickBeach(i)
			savanna := maybeWindsweptSavanna(i, j, w, middle)
			shatteredCoast := pickShatteredCoast(i, j, w)

			b.surface(t, h, nearInland, Join(erosions[0], erosions[1]), w, middleOrBadlands)
			b.surface(t, h, Join(midInland, farInland), Join(erosions[0], erosions[1]), w, middleOrSlope)
			b.surface(t, h, nearInland, Join(erosions[2], erosions[3]), w, middle)
			b.surface(t, h, Join(midInland, farInland), Join(erosions[2], erosions[3]), w, middleOrBadlands)
			b.surface(t, h, coast, Join(erosions[3], erosions[4]), w, beach)
			b.surface(t, h, Join(nearInland, farInland), erosions[4], w, middle)
			b.surface(t, h, coast, erosions[5], w, shatteredCoast)
			b.surface(t, h, nearInland, erosions[5], w, savanna)
			b.surface(t, h, Join(midInland, farInland), erosions[5], w, middle)
			b.surface(t, h, coast, erosions[6], w, beach)
			if i == 0 {
				b.surface(t, h, Join(nearInland, farInland), erosions[6], w, middle)
			}
		}
	}
}

func (b *builder) valleys(w Parameter) {
	shore, frozenShore := biome.River, biome.FrozenRiver
	if w.Max < 0 {
		shore, frozenShore = biome.StonyShore, biome.StonyShore
	}
	b.surface(frozenRange, fullRange, coast, Join(erosions[0], erosions[1]), w, frozenShore)
	b.surface(unfrozenRange, fullRange, coast, Join(erosions[0], erosions[1]), w, shore)
	b.surface(frozenRange, fullRange, nearInland, Join(erosions[0], erosions[1]), w, biome.FrozenRiver)
	b.surface(unfrozenRange, fullRange, nearInland, Join(erosions[0], erosions[1]), w, biome.River)
	b.surface(frozenRange, fullRange, Join(coast, farInland), Join(erosions[2], erosions[5]), w, biome.FrozenRiver)
	b.surface(unfrozenRange, fullRange, Join(coast, farInland), Join(erosions[2], erosions[5]), w, biome.River)
	b.surface(frozenRange, fullRange, coast, erosions[6], w, biome.FrozenRiver)
	b.surface(unfrozenRange, fullRange, coast, erosions[6], w, biome.River)
	b.surface(unfrozenRange, fullRange, Join(inland, farInland), erosions[6], w, biome.Swamp)
	b.surface(frozenRange, fullRange, Join(inland, farInland), erosions[6], w, biome.FrozenRiver)
	for i, t := range temperatures {
		for j, h := range humidities {
			b.surface(t, h, Join(midInland, farInland), Join(erosions[0], erosions[1]), w, pickMiddleOrBadlands(i, j, w))
		}
	}
}

func pickMiddle(i, j int, w Parameter) biome.ID {
	if w.Max >= 0 {
		if v := middleVariants[i][j]; v != none {
			return v
		}
	}
	return middleBiomes[i][j]
}

func pickMiddleOrBadlands(i, j int, w Parameter) biome.ID {
	if i == 4 {
		return pickBadlands(j, w)
	}
	return pickMiddle(i, j, w)
}

func pickMiddleOrBadlandsOrSlope(i, j int, w Parameter) biome.ID {
	if i == 0 {
		return pickSlope(i, j, w)
	}
	return pickMiddleOrBadlands(i, j, w)
}

func maybeWindsweptSavanna(i, j int, w Parameter, fallback biome.ID) biome.ID {
	if i > 1 && j < 4 && w.Max >= 0 {
		return biome.WindsweptSavanna
	}
	return fallback
}

func pickShatteredCoast(i, j int, w Parameter) biome.ID {
	b := pickBeach(i)
	if w.Max >= 0 {
		b = pickMiddle(i, j, w)
	}
	return maybeWindsweptSavanna(i, j, w, b)
}

func pickBeach(i int) biome.ID {
	switch i {
	case 0:
		return biome.SnowyBeach
	case 4:
		return biome.Desert
	}
	return biome.Beach
}

func pickBadlands(j int, w Parameter) biome.ID {
	switch {
	case j < 2:
		if w.Max < 0 {
			return biome.ErodedBadlands
		}
		return biome.Badlands
	case j < 3:
		return biome.Badlands
	}
	return biome.WoodedBadlands
}

func pickPlateau(i, j int, w Parameter) biome.ID {
	if w.Max >= 0 {
		if v := plateauVariants[i][j]; v != none {
			return v
		}
	}
	return plateauBiomes[i][j]
}

func pickPeak(i, j int, w Parameter) biome.ID {
	switch {
	case i <= 2:
		if w.Max < 0 {
			return biome.JaggedPeaks
		}
		return biome.FrozenPeaks
	case i == 3:
		return biome.StonyPeaks
	}
	return pickBadlands(j, w)
}

func pickSlope(i, j int, w Parameter) biome.ID {
	if i >= 3 {
		return pickPlateau(i, j, w)
	}
	if j <= 1 {
		return biome.SnowySlopes
	}
	return biome.Grove
}

func pickShattered(i, j int, w Parameter) biome.ID {
	if v := shatteredBiomes[i][j]; v != none {
		return v
	}
	return pickMiddle(i, j, w)
}
