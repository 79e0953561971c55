package gen

import "math"

// Regime selects which layer stack a column uses.
type Regime uint8

const (
	Overwater Regime = iota
	Underwater
)

func (r Regime) String() string {
	if r == Underwater {
		return "underwater"
	}
	return "overwater"
}

// RegimeFor returns Underwater when the first solid block at surfaceY lies at
// or below the fuzzy sea level.
func RegimeFor(surfaceY, fuzzySeaLevel int) Regime {
	if surfaceY <= fuzzySeaLevel {
		return Underwater
	}
	return Overwater
}

// Profile holds the per-biome terrain settings used by the Classifier.
// Profiles are built once and shared read-only between goroutines; do not
// modify one after handing it to a generator.
type Profile struct {
	Name string

	// SeaLevelOverride replaces the world sea level when >= 0.
	SeaLevelOverride int
	// BedrockDepth is the height of the randomized bedrock band above y=0.
	BedrockDepth int

	SeaLevelFuzzScale  float64
	SeaLevelFuzzOffset float64

	OceanBlock  uint16 // replaces water at or below sea level
	StoneBlock  uint16 // everything below the layers
	TopBlock    uint16
	FillerBlock uint16
	FillerDepth int

	// Optional underwater fallback surface. Zero means "same as TopBlock /
	// FillerBlock".
	UnderwaterTopBlock    uint16
	UnderwaterFillerBlock uint16

	Layers LayerSet
}

// DefaultProfile returns a profile with the stock settings: world sea level,
// fuzz 3/3, five bedrock layers, grass over five dirt over stone.
func DefaultProfile(name string) *Profile {
	return &Profile{
		Name:               name,
		SeaLevelOverride:   -1,
		BedrockDepth:       5,
		SeaLevelFuzzScale:  3,
		SeaLevelFuzzOffset: 3,
		OceanBlock:         Water,
		StoneBlock:         Stone,
		TopBlock:           Grass,
		FillerBlock:        Dirt,
		FillerDepth:        5,
	}
}

// SeaLevel returns the effective sea level for the profile.
func (p *Profile) SeaLevel(worldDefault int) int {
	if p.SeaLevelOverride < 0 {
		return worldDefault
	}
	return p.SeaLevelOverride
}

// FuzzySeaLevel returns the height separating the overwater and underwater
// regimes for a column with the given surface noise.
func (p *Profile) FuzzySeaLevel(seaLevel int, noise float64) int {
	return int(math.Floor(float64(seaLevel) + p.SeaLevelFuzzOffset + noise*p.SeaLevelFuzzScale))
}

// BedrockBound returns the exclusive bound for the bedrock draw, clamped to 1.
func (p *Profile) BedrockBound() int {
	if p.BedrockDepth < 1 {
		return 1
	}
	return p.BedrockDepth
}

func (p *Profile) surface(r Regime) (top, filler uint16) {
	top, filler = p.TopBlock, p.FillerBlock
	if r == Underwater {
		if p.UnderwaterTopBlock != 0 {
			top = p.UnderwaterTopBlock
		}
		if p.UnderwaterFillerBlock != 0 {
			filler = p.UnderwaterFillerBlock
		}
	}
	return top, filler
}
