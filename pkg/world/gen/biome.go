package gen

import "sort"

// Biome IDs matching Minecraft 1.8 protocol.
const (
	biomeOcean      byte = 0
	biomePlains     byte = 1
	biomeDesert     byte = 2
	biomeMountains  byte = 3 // extreme hills
	biomeForest     byte = 4
	biomeTaiga      byte = 5
	biomeTundra     byte = 12
	biomeBeach      byte = 16
	biomeJungle     byte = 21
	biomeDarkForest byte = 29
	biomeSnowyTaiga byte = 30
	biomeSavanna    byte = 35
)

var biomeNames = map[byte]string{
	biomeOcean:      "ocean",
	biomePlains:     "plains",
	biomeDesert:     "desert",
	biomeMountains:  "extreme_hills",
	biomeForest:     "forest",
	biomeTaiga:      "taiga",
	biomeTundra:     "ice_plains",
	biomeBeach:      "beach",
	biomeJungle:     "jungle",
	biomeDarkForest: "roofed_forest",
	biomeSnowyTaiga: "cold_taiga",
	biomeSavanna:    "savanna",
}

// BiomeName returns the vanilla name of a biome ID, or "" if unknown.
func BiomeName(id byte) string {
	return biomeNames[id]
}

// BiomeByName returns the ID of a named biome.
func BiomeByName(name string) (byte, bool) {
	for id, n := range biomeNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// BiomeNames returns every known biome name, sorted.
func BiomeNames() []string {
	names := make([]string, 0, len(biomeNames))
	for _, n := range biomeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// BiomeGenerator selects biomes using temperature/rainfall noise fields.
type BiomeGenerator struct {
	tempNoise *NoiseField
	rainNoise *NoiseField
	terrain   *NoiseField
	seaLevel  int
}

// NewBiomeGenerator creates a BiomeGenerator from a seed.
func NewBiomeGenerator(seed int64, seaLevel int) *BiomeGenerator {
	return &BiomeGenerator{
		tempNoise: NewNoiseField(seed+100, 512, 4),
		rainNoise: NewNoiseField(seed+200, 512, 4),
		terrain:   NewNoiseField(seed, 128, 6),
		seaLevel:  seaLevel,
	}
}

// BiomeAt returns the biome ID at the given world block coordinates.
func (bg *BiomeGenerator) BiomeAt(bx, bz int) byte {
	// Sample temperature and rainfall at large scale.
	temp := bg.tempNoise.At(float64(bx), float64(bz))*0.8 + 0.75 // center around 0.75
	rain := bg.rainNoise.At(float64(bx)+51200, float64(bz)+51200)*0.5 + 0.5

	// Check for ocean: very low terrain at this position.
	terrainHeight := float64(bg.seaLevel) + bg.terrain.At(float64(bx), float64(bz))*8.0
	if terrainHeight < float64(bg.seaLevel)-8 {
		return biomeOcean
	}

	// Check for beach: terrain near sea level.
	if terrainHeight < float64(bg.seaLevel)-2 {
		return biomeBeach
	}

	return selectBiome(temp, rain)
}

// selectBiome maps temperature and rainfall to a biome ID.
//
//	Temp\Rain     | Dry (<0.3)    | Medium (0.3-0.6) | Wet (>0.6)
//	Cold <0.3     | Tundra (12)   | Snowy Taiga (30)  | Taiga (5)
//	Mild 0.3-0.7  | Plains (1)    | Forest (4)        | Dark Forest (29)
//	Warm 0.7-1.2  | Savanna (35)  | Plains (1)        | Jungle (21)
//	Hot >1.2      | Desert (2)    | Desert (2)        | Jungle (21)
func selectBiome(temp, rain float64) byte {
	switch {
	case temp < 0.3:
		switch {
		case rain < 0.3:
			return biomeTundra
		case rain < 0.6:
			return biomeSnowyTaiga
		default:
			return biomeTaiga
		}
	case temp < 0.7:
		switch {
		case rain < 0.3:
			return biomePlains
		case rain < 0.6:
			return biomeForest
		default:
			return biomeDarkForest
		}
	case temp < 1.2:
		switch {
		case rain < 0.3:
			return biomeSavanna
		case rain < 0.6:
			return biomePlains
		default:
			return biomeJungle
		}
	default:
		if rain > 0.6 {
			return biomeJungle
		}
		return biomeDesert
	}
}
