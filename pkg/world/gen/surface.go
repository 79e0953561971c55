package gen

// Column is one vertical column of block states, indexed by y.
type Column [ColumnHeight]uint16

// Rand is the random source used for bedrock placement. *ChunkRNG and
// *math/rand.Rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// ColumnStats describes what Classify did to a column.
type ColumnStats struct {
	SeaLevel      int
	FuzzySeaLevel int
	// SurfaceY is the height of the first solid block, or -1 when the
	// column has none.
	SurfaceY             int
	Regime               Regime
	LookupRebuilt        bool
	BedrockSubstitutions int
}

// Classifier replaces the raw air/water/stone blocks of a column with the
// biome's surface layers. It owns a Lookup, so each goroutine needs its own
// Classifier.
type Classifier struct {
	worldSeaLevel int
	lookup        Lookup
}

// NewClassifier creates a Classifier for a world with the given default sea
// level.
func NewClassifier(worldSeaLevel int) *Classifier {
	return &Classifier{worldSeaLevel: worldSeaLevel}
}

// WorldSeaLevel returns the sea level used for profiles without an override.
func (c *Classifier) WorldSeaLevel() int { return c.worldSeaLevel }

// Classify resolves every slot of col in place.
//
// y=0 is always bedrock. Scanning down from the top, water above sea level
// becomes air and water at or below it becomes the profile's ocean block,
// until the first solid block. That block and everything below it take the
// lookup entry for their depth, except that solid blocks below the surface
// may turn into bedrock when y <= rng.Intn(p.BedrockBound()).
func (c *Classifier) Classify(col *Column, p *Profile, noise float64, rng Rand) ColumnStats {
	col[0] = Bedrock

	seaLevel := p.SeaLevel(c.worldSeaLevel)
	stats := ColumnStats{
		SeaLevel:      seaLevel,
		FuzzySeaLevel: p.FuzzySeaLevel(seaLevel, noise),
		SurfaceY:      -1,
	}
	bedrockBound := p.BedrockBound()

	hitSolid := false
	solidDepth := 0
	for y := ColumnHeight - 1; y > 0; y-- {
		if !hitSolid {
			switch MaterialOf(col[y]) {
			case MaterialAir:
				continue
			case MaterialWater:
				if y > seaLevel {
					col[y] = Air
				} else {
					col[y] = p.OceanBlock
				}
				continue
			}

			hitSolid = true
			stats.SurfaceY = y
			stats.Regime = RegimeFor(y, stats.FuzzySeaLevel)
			stats.LookupRebuilt = c.lookup.Prepare(p, stats.Regime)
		}

		// Draws past the bedrock band can never win, so skip them.
		if solidDepth > 0 && y < bedrockBound && y <= rng.Intn(bedrockBound) {
			col[y] = Bedrock
			stats.BedrockSubstitutions++
		} else {
			col[y] = c.lookup.At(solidDepth)
		}
		solidDepth++
	}

	return stats
}
