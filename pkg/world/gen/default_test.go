package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeneratorDeterministic(t *testing.T) {
	c1 := NewDefaultGenerator(42).Generate(0, 0)
	c2 := NewDefaultGenerator(42).Generate(0, 0)

	for i := range c1.Sections {
		assert.Equal(t, c1.Sections[i], c2.Sections[i], "section %d", i)
	}
	assert.Equal(t, c1.Biomes, c2.Biomes)
}

func TestDefaultGeneratorBedrockAtY0(t *testing.T) {
	c := NewDefaultGenerator(12345).Generate(0, 0)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			assert.Equal(t, Bedrock, c.GetBlock(x, 0, z), "(%d,0,%d)", x, z)
		}
	}
}

func TestDefaultGeneratorHeightReasonable(t *testing.T) {
	h := NewDefaultGenerator(999).HeightAt(0, 0)
	assert.GreaterOrEqual(t, h, 1)
	assert.LessOrEqual(t, h, 250)
}

func TestDefaultGeneratorDifferentSeeds(t *testing.T) {
	c1 := NewDefaultGenerator(1).Generate(0, 0)
	c2 := NewDefaultGenerator(2).Generate(0, 0)

	different := false
	for i := range c1.Sections {
		if c1.Sections[i] == nil || c2.Sections[i] == nil {
			continue
		}
		if c1.Sections[i].Blocks != c2.Sections[i].Blocks {
			different = true
			break
		}
	}
	assert.True(t, different, "different seeds should produce different terrain")
}

func TestFlatGeneratorLayers(t *testing.T) {
	c := NewFlatGenerator(0).Generate(0, 0)

	// y=0: bedrock, y=1-2: stone, y=3: dirt, y=4: grass
	tests := []struct {
		y     int
		block uint16
		name  string
	}{
		{0, Bedrock, "bedrock"},
		{1, Stone, "stone"},
		{2, Stone, "stone"},
		{3, Dirt, "dirt"},
		{4, Grass, "grass"},
		{5, Air, "air"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.block, c.GetBlock(0, tt.y, 0), "y=%d (%s)", tt.y, tt.name)
	}
}

func TestFlatGeneratorObserver(t *testing.T) {
	obs := newRecordingObserver()
	g := NewFlatGenerator(0, WithObserver(obs), WithSeaLevel(90))

	c := g.Generate(2, -1)
	assert.Equal(t, Grass, c.GetBlock(5, 4, 5), "sea level option does not change the flat layout")
	assert.Equal(t, Air, c.GetBlock(5, 5, 5))

	assert.Equal(t, 256, obs.columns["plains"])
	assert.Equal(t, 256, obs.surface)
	assert.Equal(t, []ChunkPos{{X: 2, Z: -1}}, obs.chunks)
}

func TestDefaultGeneratorMultipleChunks(t *testing.T) {
	g := NewDefaultGenerator(12345)

	for cx := -2; cx <= 2; cx++ {
		for cz := -2; cz <= 2; cz++ {
			c := g.Generate(cx, cz)
			require.NotNil(t, c, "Generate(%d,%d)", cx, cz)
			// Every chunk should have bedrock at y=0.
			for x := 0; x < 16; x++ {
				assert.Equal(t, Bedrock, c.GetBlock(x, 0, 0), "chunk(%d,%d) x=%d", cx, cz, x)
			}
		}
	}
}

func TestDefaultGeneratorProfileOverride(t *testing.T) {
	p := DefaultProfile("plains")
	p.Layers = NewLayerSet(
		[]Layer{MakeLayer(2, Clay)},
		[]Layer{MakeLayer(2, Clay)},
	)
	g := NewDefaultGenerator(5, WithProfiles(map[string]*Profile{
		"plains":   p,
		"not_real": DefaultProfile("not_real"),
	}))

	require.Same(t, p, g.Profile(biomePlains))
	assert.Same(t, p, g.Profile(250), "unknown biome falls back to the plains profile")
	assert.NotSame(t, p, g.Profile(biomeDesert))
}

func TestDefaultGeneratorSeaLevel(t *testing.T) {
	g := NewDefaultGenerator(1, WithSeaLevel(40))
	require.Equal(t, 40, g.SeaLevel())

	c := g.Generate(0, 0)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			col := c.Column(x, z)
			for y := 41; y < ColumnHeight; y++ {
				require.NotEqual(t, MaterialWater, MaterialOf(col[y]), "water above sea level at (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestChunkColumnRoundTrip(t *testing.T) {
	var col Column
	FillRaw(&col, 70, 62)
	col[0] = Bedrock

	c := &ChunkData{}
	c.SetColumn(3, 9, &col)
	assert.Equal(t, col, c.Column(3, 9))
	assert.Nil(t, c.Sections[15], "all-air section should stay nil")
}
