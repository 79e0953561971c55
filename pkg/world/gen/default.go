package gen

import "time"

// DefaultSeaLevel is the vanilla world sea level.
const DefaultSeaLevel = 62

// DefaultGenerator produces vanilla-like terrain: a noise heightmap filled
// with stone and water, then classified column by column with the biome's
// Profile.
type DefaultGenerator struct {
	seed     int64
	seaLevel int
	terrain  *NoiseField
	detail   *NoiseField
	surface  *NoiseField
	biomeGen *BiomeGenerator
	profiles map[byte]*Profile
	observer Observer
}

// options holds the settings shared by the generators.
type options struct {
	seaLevel int
	profiles map[string]*Profile
	observer Observer
}

func newOptions(opts []Option) options {
	o := options{seaLevel: DefaultSeaLevel, observer: NopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a generator.
type Option func(*options)

// WithSeaLevel sets the world sea level (default 62). FlatGenerator ignores
// it.
func WithSeaLevel(seaLevel int) Option {
	return func(o *options) { o.seaLevel = seaLevel }
}

// WithProfiles replaces the built-in profiles of the named biomes. Names
// that are not biomes are ignored. FlatGenerator ignores it.
func WithProfiles(profiles map[string]*Profile) Option {
	return func(o *options) {
		if o.profiles == nil {
			o.profiles = make(map[string]*Profile, len(profiles))
		}
		for name, p := range profiles {
			if p != nil {
				o.profiles[name] = p
			}
		}
	}
}

// WithObserver reports column and chunk results to o.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// NewDefaultGenerator creates a DefaultGenerator from a seed.
func NewDefaultGenerator(seed int64, opts ...Option) *DefaultGenerator {
	o := newOptions(opts)
	g := &DefaultGenerator{
		seed:     seed,
		seaLevel: o.seaLevel,
		profiles: DefaultProfiles(),
		observer: o.observer,
	}
	for name, p := range o.profiles {
		if id, ok := BiomeByName(name); ok {
			g.profiles[id] = p
		}
	}

	g.terrain = NewNoiseField(seed, 128, 6)
	g.detail = NewNoiseField(seed+1, 32, 3)
	g.surface = NewNoiseField(seed+2, 16, 2)
	g.biomeGen = NewBiomeGenerator(seed, g.seaLevel)
	return g
}

// SeaLevel returns the world sea level.
func (g *DefaultGenerator) SeaLevel() int { return g.seaLevel }

// Profile returns the profile used for a biome ID.
func (g *DefaultGenerator) Profile(biome byte) *Profile {
	if p, ok := g.profiles[biome]; ok {
		return p
	}
	return g.profiles[biomePlains]
}

// Generate builds one chunk. It keeps all scratch state local, so it may be
// called from several goroutines at once.
func (g *DefaultGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	start := time.Now()
	c := &ChunkData{}

	cls := NewClassifier(g.seaLevel)
	rng := NewChunkRNG(g.seed, chunkX, chunkZ, 700)

	var col Column
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			bx := chunkX*16 + x
			bz := chunkZ*16 + z

			biome := g.biomeGen.BiomeAt(bx, bz)
			c.SetBiome(x, z, biome)
			p := g.Profile(biome)

			FillRaw(&col, g.terrainHeight(bx, bz, biome), g.seaLevel)
			stats := cls.Classify(&col, p, g.surface.At(float64(bx), float64(bz)), rng)
			c.SetColumn(x, z, &col)

			g.observer.ObserveColumn(p.Name, stats)
		}
	}

	g.observer.ObserveChunk(ChunkPos{X: chunkX, Z: chunkZ}, time.Since(start))
	return c
}

func (g *DefaultGenerator) HeightAt(blockX, blockZ int) int {
	biome := g.biomeGen.BiomeAt(blockX, blockZ)
	return g.terrainHeight(blockX, blockZ, biome)
}

// terrainHeight computes the terrain height at a world block coordinate.
// Different biomes scale noise amplitude differently.
func (g *DefaultGenerator) terrainHeight(bx, bz int, biome byte) int {
	base := g.terrain.At(float64(bx), float64(bz))
	detail := g.detail.At(float64(bx), float64(bz))

	amplitude, baseHeight := biomeTerrainParams(biome, float64(g.seaLevel))

	h := int(baseHeight + base*amplitude + detail*4.0)
	if h < 1 {
		h = 1
	}
	if h > 250 {
		h = 250
	}
	return h
}

// biomeTerrainParams returns (amplitude, baseHeight) for terrain noise scaling.
func biomeTerrainParams(biome byte, seaLevel float64) (amplitude, baseHeight float64) {
	switch biome {
	case biomeOcean:
		return 8.0, seaLevel - 22
	case biomePlains, biomeSavanna:
		return 12.0, seaLevel
	case biomeForest, biomeDarkForest:
		return 16.0, seaLevel + 2
	case biomeTaiga, biomeSnowyTaiga:
		return 18.0, seaLevel + 4
	case biomeDesert:
		return 10.0, seaLevel + 2
	case biomeJungle:
		return 18.0, seaLevel + 4
	case biomeMountains:
		return 40.0, seaLevel + 10
	case biomeBeach:
		return 3.0, seaLevel
	case biomeTundra:
		return 10.0, seaLevel
	default:
		return 14.0, seaLevel
	}
}

// FillRaw resets col to the raw output of the density pass: stone from y=1
// to height, water up to seaLevel, air above. y=0 is left as air for the
// Classifier to floor with bedrock.
func FillRaw(col *Column, height, seaLevel int) {
	for y := range col {
		switch {
		case y == 0:
			col[y] = Air
		case y <= height:
			col[y] = Stone
		case y <= seaLevel:
			col[y] = Water
		default:
			col[y] = Air
		}
	}
}

// DefaultProfiles returns the built-in profile for every known biome.
func DefaultProfiles() map[byte]*Profile {
	profiles := make(map[byte]*Profile, len(biomeNames))
	for id, name := range biomeNames {
		p := DefaultProfile(name)
		p.FillerDepth = 3
		p.UnderwaterTopBlock = Dirt
		profiles[id] = p
	}

	desert := profiles[biomeDesert]
	desert.Layers = NewLayerSet(
		[]Layer{MakeLayer(4, Sand), MakeLayer(2, Sandstone)},
		[]Layer{MakeLayer(4, Sand), MakeLayer(2, Sandstone)},
	)

	beach := profiles[biomeBeach]
	beach.Layers = NewLayerSet(
		[]Layer{MakeLayer(4, Sand), MakeLayer(1, Sandstone)},
		[]Layer{MakeLayer(4, Sand), MakeLayer(1, Sandstone)},
	)

	ocean := profiles[biomeOcean]
	ocean.Layers = NewLayerSet(nil, []Layer{MakeLayer(3, Gravel), MakeLayer(2, Dirt)})

	for _, id := range []byte{biomeTundra, biomeSnowyTaiga} {
		p := profiles[id]
		p.Layers = NewLayerSet(
			[]Layer{MakeLayer(1, Grass), MakeLayer(3, Dirt)},
			[]Layer{MakeLayer(1, Gravel), MakeLayer(2, Dirt)},
		)
	}

	return profiles
}
