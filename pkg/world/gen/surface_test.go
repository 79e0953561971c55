package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxRand always returns the largest allowed value, so every slot inside
// the bedrock band is replaced.
type maxRand struct{ calls int }

func (r *maxRand) Intn(n int) int {
	r.calls++
	return n - 1
}

// zeroRand never replaces anything above y=0.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// strictRand fails the test on a non-positive bound.
type strictRand struct {
	t   *testing.T
	rng *rand.Rand
}

func (r strictRand) Intn(n int) int {
	if n <= 0 {
		r.t.Fatalf("Intn called with bound %d", n)
	}
	return r.rng.Intn(n)
}

func flatProfile() *Profile {
	p := DefaultProfile("test")
	p.SeaLevelFuzzScale = 0
	p.SeaLevelFuzzOffset = 0
	return p
}

func rawColumn(surfaceY, waterTop int) Column {
	var col Column
	FillRaw(&col, surfaceY, waterTop)
	return col
}

func TestClassifyFloorIsAlwaysBedrock(t *testing.T) {
	profiles := []*Profile{flatProfile(), DefaultProfile("default")}
	profiles[1].BedrockDepth = 0

	inputs := []Column{
		rawColumn(70, 62),
		rawColumn(0, 62),
		rawColumn(0, 0),
		{},
	}
	inputs[3][0] = Sand

	for _, p := range profiles {
		for i := range inputs {
			col := inputs[i]
			NewClassifier(62).Classify(&col, p, 0.5, zeroRand{})
			assert.Equal(t, Bedrock, col[0], "profile %s input %d", p.Name, i)
		}
	}
}

func TestClassifySeaLevelOverride(t *testing.T) {
	p := flatProfile()

	col := rawColumn(40, 62)
	stats := NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	assert.Equal(t, 62, stats.SeaLevel)

	p.SeaLevelOverride = 50
	col = rawColumn(40, 62)
	stats = NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	assert.Equal(t, 50, stats.SeaLevel)

	// Water above the overridden sea level is removed.
	assert.Equal(t, Water, col[50])
	assert.Equal(t, Air, col[51])
	assert.Equal(t, Air, col[62])

	p.SeaLevelOverride = 0
	col = rawColumn(40, 62)
	stats = NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	assert.Equal(t, 0, stats.SeaLevel)
}

func TestClassifyColumnWithoutSolid(t *testing.T) {
	p := flatProfile()
	p.OceanBlock = Ice
	p.Layers = NewLayerSet([]Layer{MakeLayer(2, Sand)}, []Layer{MakeLayer(2, Gravel)})

	col := rawColumn(0, 62)
	cls := NewClassifier(62)
	stats := cls.Classify(&col, p, 0, zeroRand{})

	assert.Equal(t, -1, stats.SurfaceY)
	assert.False(t, stats.LookupRebuilt)
	assert.Equal(t, Bedrock, col[0])
	for y := 1; y <= 62; y++ {
		require.Equal(t, Ice, col[y], "y=%d", y)
	}
	for y := 63; y < ColumnHeight; y++ {
		require.Equal(t, Air, col[y], "y=%d", y)
	}
}

func TestClassifyWaterAboveSeaLevelBecomesAir(t *testing.T) {
	p := flatProfile()

	// A floating pocket of water above sea level on top of a surface at 80.
	col := rawColumn(80, 0)
	for y := 81; y <= 90; y++ {
		col[y] = Water
	}
	col[85] = State(blockFlowingWater, 3)

	NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	for y := 81; y <= 90; y++ {
		assert.Equal(t, Air, col[y], "y=%d", y)
	}
	assert.Equal(t, Grass, col[80])
}

func TestClassifyOceanBlockReplacesWaterBelowSeaLevel(t *testing.T) {
	p := flatProfile()
	p.OceanBlock = Clay

	col := rawColumn(50, 62)
	NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	for y := 51; y <= 62; y++ {
		assert.Equal(t, Clay, col[y], "y=%d", y)
	}
	assert.Equal(t, Air, col[63])
}

func TestClassifyScenarioFallbackSurface(t *testing.T) {
	p := flatProfile()
	p.FillerDepth = 3

	col := rawColumn(70, 62)
	stats := NewClassifier(62).Classify(&col, p, 0, NewChunkRNG(1, 0, 0, 0))

	assert.Equal(t, 70, stats.SurfaceY)
	assert.Equal(t, Overwater, stats.Regime)
	assert.Equal(t, Grass, col[70])
	for y := 67; y <= 69; y++ {
		assert.Equal(t, Dirt, col[y], "y=%d", y)
	}
	for y := 5; y <= 66; y++ {
		assert.Equal(t, Stone, col[y], "y=%d", y)
	}
	for y := 1; y < p.BedrockDepth; y++ {
		assert.Contains(t, []uint16{Stone, Bedrock}, col[y], "y=%d", y)
	}
	for y := 71; y < ColumnHeight; y++ {
		assert.Equal(t, Air, col[y], "y=%d", y)
	}
}

func TestClassifyScenarioUnderwaterLayers(t *testing.T) {
	p := flatProfile()
	p.Layers = NewLayerSet(
		[]Layer{MakeLayer(2, Grass)},
		[]Layer{MakeLayer(3, Sand), MakeLayer(1, Sandstone)},
	)

	col := rawColumn(50, 62)
	stats := NewClassifier(62).Classify(&col, p, 0, zeroRand{})

	require.Equal(t, Underwater, stats.Regime)
	assert.Equal(t, Sand, col[50])
	assert.Equal(t, Sand, col[49])
	assert.Equal(t, Sand, col[48])
	assert.Equal(t, Sandstone, col[47])
	for y := 1; y <= 46; y++ {
		assert.Equal(t, Stone, col[y], "y=%d", y)
	}
	for y := 51; y <= 62; y++ {
		assert.Equal(t, Water, col[y], "y=%d", y)
	}
}

func TestClassifyScenarioFuzzySeaLevel(t *testing.T) {
	p := DefaultProfile("fuzzy")
	p.SeaLevelFuzzScale = 3
	p.SeaLevelFuzzOffset = 3
	p.Layers = NewLayerSet([]Layer{MakeLayer(1, Grass)}, []Layer{MakeLayer(1, Sand)})

	col := rawColumn(65, 62)
	stats := NewClassifier(62).Classify(&col, p, 1.0, zeroRand{})

	assert.Equal(t, 62, stats.SeaLevel)
	assert.Equal(t, 68, stats.FuzzySeaLevel)
	assert.Equal(t, Underwater, stats.Regime)
	assert.Equal(t, Sand, col[65])

	// Pushing the noise down moves the boundary below the surface.
	col = rawColumn(65, 62)
	stats = NewClassifier(62).Classify(&col, p, -1.0, zeroRand{})
	assert.Equal(t, 62, stats.FuzzySeaLevel)
	assert.Equal(t, Overwater, stats.Regime)
	assert.Equal(t, Grass, col[65])
}

func TestClassifyBedrockBandUsesAbsoluteHeight(t *testing.T) {
	p := flatProfile()
	p.BedrockDepth = 10
	p.Layers = NewLayerSet([]Layer{MakeLayer(1, Grass)}, []Layer{MakeLayer(1, Sand)})

	// Surface inside the band: the surface itself is never bedrock, every
	// other slot below y=10 is when the draw is maximal.
	col := rawColumn(6, 0)
	rng := &maxRand{}
	stats := NewClassifier(62).Classify(&col, p, 0, rng)

	assert.Equal(t, Sand, col[6])
	for y := 1; y <= 5; y++ {
		assert.Equal(t, Bedrock, col[y], "y=%d", y)
	}
	assert.Equal(t, 5, stats.BedrockSubstitutions)
	assert.Equal(t, 5, rng.calls)

	// Deep surface: only y < BedrockDepth can become bedrock, whatever the
	// depth below the surface.
	col = rawColumn(100, 0)
	rng = &maxRand{}
	stats = NewClassifier(62).Classify(&col, p, 0, rng)
	for y := 10; y < 100; y++ {
		assert.Equal(t, Stone, col[y], "y=%d", y)
	}
	for y := 1; y <= 9; y++ {
		assert.Equal(t, Bedrock, col[y], "y=%d", y)
	}
	assert.Equal(t, 9, stats.BedrockSubstitutions)
	assert.Equal(t, 9, rng.calls)

	// A zero draw never wins above y=0.
	col = rawColumn(100, 0)
	stats = NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	assert.Zero(t, stats.BedrockSubstitutions)
	for y := 1; y < 100; y++ {
		assert.Equal(t, Stone, col[y], "y=%d", y)
	}
}

func TestClassifyDegenerateBedrockDepth(t *testing.T) {
	for _, depth := range []int{0, -5} {
		p := flatProfile()
		p.BedrockDepth = depth

		col := rawColumn(3, 0)
		rng := strictRand{t: t, rng: rand.New(rand.NewSource(7))}
		stats := NewClassifier(62).Classify(&col, p, 0, rng)

		assert.Zero(t, stats.BedrockSubstitutions)
		assert.Equal(t, Bedrock, col[0])
		assert.Equal(t, Grass, col[3])
		assert.Equal(t, Dirt, col[2])
		assert.Equal(t, Dirt, col[1])
	}
}

func TestClassifyReusesLookupPerRegime(t *testing.T) {
	p := flatProfile()
	other := flatProfile()
	cls := NewClassifier(62)

	col := rawColumn(70, 62)
	assert.True(t, cls.Classify(&col, p, 0, zeroRand{}).LookupRebuilt)

	col = rawColumn(75, 62)
	assert.False(t, cls.Classify(&col, p, 0, zeroRand{}).LookupRebuilt)

	col = rawColumn(40, 62)
	stats := cls.Classify(&col, p, 0, zeroRand{})
	assert.Equal(t, Underwater, stats.Regime)
	assert.True(t, stats.LookupRebuilt)

	col = rawColumn(40, 62)
	assert.True(t, cls.Classify(&col, other, 0, zeroRand{}).LookupRebuilt)
}

func TestClassifyDoesNotLeakBetweenProfiles(t *testing.T) {
	sandy := flatProfile()
	sandy.Layers = NewLayerSet([]Layer{MakeLayer(4, Sand)}, nil)
	plain := flatProfile()

	cls := NewClassifier(62)
	col := rawColumn(70, 62)
	cls.Classify(&col, sandy, 0, zeroRand{})
	require.Equal(t, Sand, col[70])

	col = rawColumn(70, 62)
	cls.Classify(&col, plain, 0, zeroRand{})
	assert.Equal(t, Grass, col[70])
	assert.Equal(t, Dirt, col[69])
}

func TestClassifyDeterministicWithSeededRNG(t *testing.T) {
	p := flatProfile()
	p.BedrockDepth = 8

	run := func() Column {
		col := rawColumn(6, 62)
		NewClassifier(62).Classify(&col, p, 0.3, NewChunkRNG(99, 3, -4, 700))
		return col
	}
	assert.Equal(t, run(), run())

	runStd := func() Column {
		col := rawColumn(6, 62)
		NewClassifier(62).Classify(&col, p, 0.3, rand.New(rand.NewSource(5)))
		return col
	}
	assert.Equal(t, runStd(), runStd())
}

func TestClassifyTopOfWorld(t *testing.T) {
	p := flatProfile()
	p.Layers = NewLayerSet([]Layer{MakeLayer(1, Snow), MakeLayer(2, Dirt)}, nil)

	col := rawColumn(ColumnHeight-1, 0)
	stats := NewClassifier(62).Classify(&col, p, 0, zeroRand{})

	assert.Equal(t, ColumnHeight-1, stats.SurfaceY)
	assert.Equal(t, Snow, col[ColumnHeight-1])
	assert.Equal(t, Dirt, col[ColumnHeight-2])
	assert.Equal(t, Dirt, col[ColumnHeight-3])
	assert.Equal(t, Stone, col[ColumnHeight-4])
}

func TestClassifyLavaCountsAsSolid(t *testing.T) {
	p := flatProfile()
	col := rawColumn(30, 62)
	col[40] = State(blockLava, 0)

	stats := NewClassifier(62).Classify(&col, p, 0, zeroRand{})
	assert.Equal(t, 40, stats.SurfaceY)
	assert.Equal(t, Grass, col[40])
}
