package biome

import "github.com/df-mc/biomegen/gen/internal/versioninfo"

// Category groups biomes that world generation treats as alike.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryOcean
	CategoryPlains
	CategoryDesert
	CategoryMountains
	CategoryForest
	CategoryTaiga
	CategorySwamp
	CategoryRiver
	CategoryNether
	CategoryEnd
	CategoryIcy
	CategoryMushroom
	CategoryBeach
	CategoryJungle
	CategoryMesa
	CategoryBadlandsPlateau
	CategorySavanna
	CategoryStoneShore
	CategoryUnderground
	CategoryPeak
)

type props struct {
	name    string
	renamed string
	cat     Category
	temp    float32
	depth   float32
	since   versioninfo.Version
	until   versioninfo.Version
}

var table = map[ID]props{
	Ocean:                 {name: "ocean", cat: CategoryOcean, temp: 0.5, depth: -1.0},
	Plains:                {name: "plains", cat: CategoryPlains, temp: 0.8, depth: 0.125},
	Desert:                {name: "desert", cat: CategoryDesert, temp: 2.0, depth: 0.125},
	Mountains:             {name: "mountains", renamed: "windswept_hills", cat: CategoryMountains, temp: 0.2, depth: 1.0},
	Forest:                {name: "forest", cat: CategoryForest, temp: 0.7, depth: 0.1},
	Taiga:                 {name: "taiga", cat: CategoryTaiga, temp: 0.25, depth: 0.2},
	Swamp:                 {name: "swamp", cat: CategorySwamp, temp: 0.8, depth: -0.2},
	River:                 {name: "river", cat: CategoryRiver, temp: 0.5, depth: -0.5},
	NetherWastes:          {name: "nether_wastes", cat: CategoryNether, temp: 2.0, depth: 0.1},
	TheEnd:                {name: "the_end", cat: CategoryEnd, temp: 0.5, depth: 0.1},
	FrozenOcean:           {name: "frozen_ocean", cat: CategoryOcean, temp: 0.0, depth: -1.0},
	FrozenRiver:           {name: "frozen_river", cat: CategoryRiver, temp: 0.0, depth: -0.5},
	SnowyTundra:           {name: "snowy_tundra", renamed: "snowy_plains", cat: CategoryIcy, temp: 0.0, depth: 0.125},
	SnowyMountains:        {name: "snowy_mountains", cat: CategoryIcy, temp: 0.0, depth: 0.45, until: versioninfo.V1_17},
	MushroomFields:        {name: "mushroom_fields", cat: CategoryMushroom, temp: 0.9, depth: 0.2},
	MushroomFieldShore:    {name: "mushroom_field_shore", cat: CategoryMushroom, temp: 0.9, depth: 0.0, until: versioninfo.V1_17},
	Beach:                 {name: "beach", cat: CategoryBeach, temp: 0.8, depth: 0.0},
	DesertHills:           {name: "desert_hills", cat: CategoryDesert, temp: 2.0, depth: 0.45, until: versioninfo.V1_17},
	WoodedHills:           {name: "wooded_hills", cat: CategoryForest, temp: 0.7, depth: 0.45, until: versioninfo.V1_17},
	TaigaHills:            {name: "taiga_hills", cat: CategoryTaiga, temp: 0.25, depth: 0.45, until: versioninfo.V1_17},
	MountainEdge:          {name: "mountain_edge", cat: CategoryMountains, temp: 0.2, depth: 0.8, until: versioninfo.V1_17},
	Jungle:                {name: "jungle", cat: CategoryJungle, temp: 0.95, depth: 0.1},
	JungleHills:           {name: "jungle_hills", cat: CategoryJungle, temp: 0.95, depth: 0.45, until: versioninfo.V1_17},
	JungleEdge:            {name: "jungle_edge", renamed: "sparse_jungle", cat: CategoryJungle, temp: 0.95, depth: 0.1},
	DeepOcean:             {name: "deep_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.8},
	StoneShore:            {name: "stone_shore", renamed: "stony_shore", cat: CategoryStoneShore, temp: 0.2, depth: 0.1},
	SnowyBeach:            {name: "snowy_beach", cat: CategoryBeach, temp: 0.05, depth: 0.0},
	BirchForest:           {name: "birch_forest", cat: CategoryForest, temp: 0.6, depth: 0.1},
	BirchForestHills:      {name: "birch_forest_hills", cat: CategoryForest, temp: 0.6, depth: 0.45, until: versioninfo.V1_17},
	DarkForest:            {name: "dark_forest", cat: CategoryForest, temp: 0.7, depth: 0.1},
	SnowyTaiga:            {name: "snowy_taiga", cat: CategoryTaiga, temp: -0.5, depth: 0.2},
	SnowyTaigaHills:       {name: "snowy_taiga_hills", cat: CategoryTaiga, temp: -0.5, depth: 0.45, until: versioninfo.V1_17},
	GiantTreeTaiga:        {name: "giant_tree_taiga", renamed: "old_growth_pine_taiga", cat: CategoryTaiga, temp: 0.3, depth: 0.2},
	GiantTreeTaigaHills:   {name: "giant_tree_taiga_hills", cat: CategoryTaiga, temp: 0.3, depth: 0.45, until: versioninfo.V1_17},
	WoodedMountains:       {name: "wooded_mountains", renamed: "windswept_forest", cat: CategoryMountains, temp: 0.2, depth: 1.0},
	Savanna:               {name: "savanna", cat: CategorySavanna, temp: 1.2, depth: 0.125},
	SavannaPlateau:        {name: "savanna_plateau", cat: CategorySavanna, temp: 1.0, depth: 1.5},
	Badlands:              {name: "badlands", cat: CategoryMesa, temp: 2.0, depth: 0.1},
	WoodedBadlandsPlateau: {name: "wooded_badlands_plateau", renamed: "wooded_badlands", cat: CategoryBadlandsPlateau, temp: 2.0, depth: 1.5},
	BadlandsPlateau:       {name: "badlands_plateau", cat: CategoryBadlandsPlateau, temp: 2.0, depth: 1.5, until: versioninfo.V1_17},
	SmallEndIslands:       {name: "small_end_islands", cat: CategoryEnd, temp: 0.5, depth: 0.1, since: versioninfo.V1_9},
	EndMidlands:           {name: "end_midlands", cat: CategoryEnd, temp: 0.5, depth: 0.1, since: versioninfo.V1_9},
	EndHighlands:          {name: "end_highlands", cat: CategoryEnd, temp: 0.5, depth: 0.1, since: versioninfo.V1_9},
	EndBarrens:            {name: "end_barrens", cat: CategoryEnd, temp: 0.5, depth: 0.1, since: versioninfo.V1_9},
	WarmOcean:             {name: "warm_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.0, since: versioninfo.V1_13},
	LukewarmOcean:         {name: "lukewarm_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.0, since: versioninfo.V1_13},
	ColdOcean:             {name: "cold_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.0, since: versioninfo.V1_13},
	DeepWarmOcean:         {name: "deep_warm_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.8, since: versioninfo.V1_13, until: versioninfo.V1_17},
	DeepLukewarmOcean:     {name: "deep_lukewarm_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.8, since: versioninfo.V1_13},
	DeepColdOcean:         {name: "deep_cold_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.8, since: versioninfo.V1_13},
	DeepFrozenOcean:       {name: "deep_frozen_ocean", cat: CategoryOcean, temp: 0.5, depth: -1.8, since: versioninfo.V1_13},
	TheVoid:               {name: "the_void", temp: 0.5, depth: 0.1, since: versioninfo.V1_9},

	SunflowerPlains:               {name: "sunflower_plains", cat: CategoryPlains, temp: 0.8, depth: 0.125},
	DesertLakes:                   {name: "desert_lakes", cat: CategoryDesert, temp: 2.0, depth: 0.225, until: versioninfo.V1_17},
	GravellyMountains:             {name: "gravelly_mountains", renamed: "windswept_gravelly_hills", cat: CategoryMountains, temp: 0.2, depth: 1.0},
	FlowerForest:                  {name: "flower_forest", cat: CategoryForest, temp: 0.7, depth: 0.1},
	TaigaMountains:                {name: "taiga_mountains", cat: CategoryTaiga, temp: 0.25, depth: 0.3, until: versioninfo.V1_17},
	SwampHills:                    {name: "swamp_hills", cat: CategorySwamp, temp: 0.8, depth: -0.1, until: versioninfo.V1_17},
	IceSpikes:                     {name: "ice_spikes", cat: CategoryIcy, temp: 0.0, depth: 0.425},
	ModifiedJungle:                {name: "modified_jungle", cat: CategoryJungle, temp: 0.95, depth: 0.2, until: versioninfo.V1_17},
	ModifiedJungleEdge:            {name: "modified_jungle_edge", cat: CategoryJungle, temp: 0.95, depth: 0.2, until: versioninfo.V1_17},
	TallBirchForest:               {name: "tall_birch_forest", renamed: "old_growth_birch_forest", cat: CategoryForest, temp: 0.6, depth: 0.2},
	TallBirchHills:                {name: "tall_birch_hills", cat: CategoryForest, temp: 0.6, depth: 0.55, until: versioninfo.V1_17},
	DarkForestHills:               {name: "dark_forest_hills", cat: CategoryForest, temp: 0.7, depth: 0.2, until: versioninfo.V1_17},
	SnowyTaigaMountains:           {name: "snowy_taiga_mountains", cat: CategoryTaiga, temp: -0.5, depth: 0.3, until: versioninfo.V1_17},
	GiantSpruceTaiga:              {name: "giant_spruce_taiga", renamed: "old_growth_spruce_taiga", cat: CategoryTaiga, temp: 0.25, depth: 0.2},
	GiantSpruceTaigaHills:         {name: "giant_spruce_taiga_hills", cat: CategoryTaiga, temp: 0.25, depth: 0.2, until: versioninfo.V1_17},
	ModifiedGravellyMountains:     {name: "modified_gravelly_mountains", cat: CategoryMountains, temp: 0.2, depth: 1.0, until: versioninfo.V1_17},
	ShatteredSavanna:              {name: "shattered_savanna", renamed: "windswept_savanna", cat: CategorySavanna, temp: 1.1, depth: 0.3625},
	ShatteredSavannaPlateau:       {name: "shattered_savanna_plateau", cat: CategorySavanna, temp: 1.0, depth: 1.05, until: versioninfo.V1_17},
	ErodedBadlands:                {name: "eroded_badlands", cat: CategoryMesa, temp: 2.0, depth: 0.1},
	ModifiedWoodedBadlandsPlateau: {name: "modified_wooded_badlands_plateau", cat: CategoryMesa, temp: 2.0, depth: 0.45, until: versioninfo.V1_17},
	ModifiedBadlandsPlateau:       {name: "modified_badlands_plateau", cat: CategoryMesa, temp: 2.0, depth: 0.45, until: versioninfo.V1_17},
	BambooJungle:                  {name: "bamboo_jungle", cat: CategoryJungle, temp: 0.95, depth: 0.1, since: versioninfo.V1_14},
	BambooJungleHills:             {name: "bamboo_jungle_hills", cat: CategoryJungle, temp: 0.95, depth: 0.45, since: versioninfo.V1_14, until: versioninfo.V1_17},
	SoulSandValley:                {name: "soul_sand_valley", cat: CategoryNether, temp: 2.0, depth: 0.1, since: versioninfo.V1_16},
	CrimsonForest:                 {name: "crimson_forest", cat: CategoryNether, temp: 2.0, depth: 0.1, since: versioninfo.V1_16},
	WarpedForest:                  {name: "warped_forest", cat: CategoryNether, temp: 2.0, depth: 0.1, since: versioninfo.V1_16},
	BasaltDeltas:                  {name: "basalt_deltas", cat: CategoryNether, temp: 2.0, depth: 0.1, since: versioninfo.V1_16},
	DripstoneCaves:                {name: "dripstone_caves", cat: CategoryUnderground, temp: 0.8, depth: 0.125, since: versioninfo.V1_18},
	LushCaves:                     {name: "lush_caves", cat: CategoryUnderground, temp: 0.5, depth: 0.125, since: versioninfo.V1_18},
	Meadow:                        {name: "meadow", cat: CategoryMountains, temp: 0.5, depth: 0.125, since: versioninfo.V1_18},
	Grove:                         {name: "grove", cat: CategoryForest, temp: -0.2, depth: 0.125, since: versioninfo.V1_18},
	SnowySlopes:                   {name: "snowy_slopes", cat: CategoryIcy, temp: -0.3, depth: 0.125, since: versioninfo.V1_18},
	JaggedPeaks:                   {name: "jagged_peaks", cat: CategoryPeak, temp: -0.7, depth: 0.125, since: versioninfo.V1_18},
	FrozenPeaks:                   {name: "frozen_peaks", cat: CategoryPeak, temp: -0.7, depth: 0.125, since: versioninfo.V1_18},
	StonyPeaks:                    {name: "stony_peaks", cat: CategoryPeak, temp: 1.0, depth: 0.125, since: versioninfo.V1_18},
}
