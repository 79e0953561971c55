package gen

import "time"

const flatHeight = 4

// FlatGenerator generates a classic superflat world:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4.
type FlatGenerator struct {
	seed     int64
	profile  *Profile
	observer Observer
}

// NewFlatGenerator creates a FlatGenerator. Of the options only
// WithObserver applies; the layout is fixed.
func NewFlatGenerator(seed int64, opts ...Option) *FlatGenerator {
	o := newOptions(opts)
	p := DefaultProfile(BiomeName(biomePlains))
	p.BedrockDepth = 1
	p.SeaLevelFuzzScale = 0
	p.SeaLevelFuzzOffset = 0
	p.Layers = NewLayerSet([]Layer{MakeLayer(1, Grass), MakeLayer(1, Dirt)}, nil)
	return &FlatGenerator{seed: seed, profile: p, observer: o.observer}
}

func (g *FlatGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	start := time.Now()
	c := &ChunkData{}
	cls := NewClassifier(0)
	rng := NewChunkRNG(g.seed, chunkX, chunkZ, 700)

	var col Column
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			FillRaw(&col, flatHeight, 0)
			stats := cls.Classify(&col, g.profile, 0, rng)
			c.SetColumn(x, z, &col)
			c.SetBiome(x, z, biomePlains)
			g.observer.ObserveColumn(g.profile.Name, stats)
		}
	}

	g.observer.ObserveChunk(ChunkPos{X: chunkX, Z: chunkZ}, time.Since(start))
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return flatHeight // top solid block is at y=4 (grass)
}
