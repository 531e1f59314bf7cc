// Package biome enumerates the Java Edition biomes and the properties that
// world generation queries about them.
package biome

// ID is a Java Edition numeric biome id.
type ID int32

// None marks the absence of a biome.
const None ID = -1

const (
	Ocean                 ID = 0
	Plains                ID = 1
	Desert                ID = 2
	Mountains             ID = 3
	Forest                ID = 4
	Taiga                 ID = 5
	Swamp                 ID = 6
	River                 ID = 7
	NetherWastes          ID = 8
	TheEnd                ID = 9
	FrozenOcean           ID = 10
	FrozenRiver           ID = 11
	SnowyTundra           ID = 12
	SnowyMountains        ID = 13
	MushroomFields        ID = 14
	MushroomFieldShore    ID = 15
	Beach                 ID = 16
	DesertHills           ID = 17
	WoodedHills           ID = 18
	TaigaHills            ID = 19
	MountainEdge          ID = 20
	Jungle                ID = 21
	JungleHills           ID = 22
	JungleEdge            ID = 23
	DeepOcean             ID = 24
	StoneShore            ID = 25
	SnowyBeach            ID = 26
	BirchForest           ID = 27
	BirchForestHills      ID = 28
	DarkForest            ID = 29
	SnowyTaiga            ID = 30
	SnowyTaigaHills       ID = 31
	GiantTreeTaiga        ID = 32
	GiantTreeTaigaHills   ID = 33
	WoodedMountains       ID = 34
	Savanna               ID = 35
	SavannaPlateau        ID = 36
	Badlands              ID = 37
	WoodedBadlandsPlateau ID = 38
	BadlandsPlateau       ID = 39
	SmallEndIslands       ID = 40
	EndMidlands           ID = 41
	EndHighlands          ID = 42
	EndBarrens            ID = 43
	WarmOcean             ID = 44
	LukewarmOcean         ID = 45
	ColdOcean             ID = 46
	DeepWarmOcean         ID = 47
	DeepLukewarmOcean     ID = 48
	DeepColdOcean         ID = 49
	DeepFrozenOcean       ID = 50

	TheVoid ID = 127

	SunflowerPlains               ID = 129
	DesertLakes                   ID = 130
	GravellyMountains             ID = 131
	FlowerForest                  ID = 132
	TaigaMountains                ID = 133
	SwampHills                    ID = 134
	IceSpikes                     ID = 140
	ModifiedJungle                ID = 149
	ModifiedJungleEdge            ID = 151
	TallBirchForest               ID = 155
	TallBirchHills                ID = 156
	DarkForestHills               ID = 157
	SnowyTaigaMountains           ID = 158
	GiantSpruceTaiga              ID = 160
	GiantSpruceTaigaHills         ID = 161
	ModifiedGravellyMountains     ID = 162
	ShatteredSavanna              ID = 163
	ShatteredSavannaPlateau       ID = 164
	ErodedBadlands                ID = 165
	ModifiedWoodedBadlandsPlateau ID = 166
	ModifiedBadlandsPlateau       ID = 167
	BambooJungle                  ID = 168
	BambooJungleHills             ID = 169
	SoulSandValley                ID = 170
	CrimsonForest                 ID = 171
	WarpedForest                  ID = 172
	BasaltDeltas                  ID = 173
	DripstoneCaves                ID = 174
	LushCaves                     ID = 175
	Meadow                        ID = 177
	Grove                         ID = 178
	SnowySlopes                   ID = 179
	JaggedPeaks                   ID = 180
	FrozenPeaks                   ID = 181
	StonyPeaks                    ID = 182
)

// Names introduced by the 1.18 biome rename. They alias the older ids.
const (
	WindsweptHills         = Mountains
	SnowyPlains            = SnowyTundra
	SparseJungle           = JungleEdge
	StonyShore             = StoneShore
	OldGrowthPineTaiga     = GiantTreeTaiga
	WindsweptForest        = WoodedMountains
	WoodedBadlands         = WoodedBadlandsPlateau
	OldGrowthBirchForest   = TallBirchForest
	OldGrowthSpruceTaiga   = GiantSpruceTaiga
	WindsweptSavanna       = ShatteredSavanna
	WindsweptGravellyHills = GravellyMountains
)
