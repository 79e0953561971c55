package gen

import "time"

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x, value = blockID<<4 | metadata.
type Section struct {
	Blocks [4096]uint16
}

// ChunkData holds the generated terrain for one chunk column.
type ChunkData struct {
	Sections [16]*Section // nil = all-air
	Biomes   [256]byte    // index = z*16 + x → biome ID
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	HeightAt(blockX, blockZ int) int
}

// SetBlock sets a block state at the given local coordinates within the chunk.
// x, z must be in [0,16), y must be in [0,256).
func (c *ChunkData) SetBlock(x, y, z int, state uint16) {
	sec := y >> 4
	if c.Sections[sec] == nil {
		if state == 0 {
			return
		}
		c.Sections[sec] = &Section{}
	}
	c.Sections[sec].Blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (c *ChunkData) GetBlock(x, y, z int) uint16 {
	sec := y >> 4
	if c.Sections[sec] == nil {
		return 0
	}
	return c.Sections[sec].Blocks[(y&0xF)*256+z*16+x]
}

// SetBiome sets the biome ID at the given local x, z coordinates.
func (c *ChunkData) SetBiome(x, z int, biome byte) {
	c.Biomes[z*16+x] = biome
}

// Biome returns the biome ID at the given local x, z coordinates.
func (c *ChunkData) Biome(x, z int) byte {
	return c.Biomes[z*16+x]
}

// Column copies out the block column at local x, z.
func (c *ChunkData) Column(x, z int) Column {
	var col Column
	for sec, s := range c.Sections {
		if s == nil {
			continue
		}
		for dy := 0; dy < 16; dy++ {
			col[sec<<4|dy] = s.Blocks[dy*256+z*16+x]
		}
	}
	return col
}

// SetColumn writes col into the chunk at local x, z.
func (c *ChunkData) SetColumn(x, z int, col *Column) {
	for y, state := range col {
		c.SetBlock(x, y, z, state)
	}
}

// Observer receives per-column and per-chunk generation results. It must be
// safe for concurrent use.
type Observer interface {
	ObserveColumn(biome string, stats ColumnStats)
	ObserveChunk(pos ChunkPos, d time.Duration)
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) ObserveColumn(string, ColumnStats) {}
func (NopObserver) ObserveChunk(ChunkPos, time.Duration) {}

// MultiObserver fans results out to several observers.
type MultiObserver []Observer

func (m MultiObserver) ObserveColumn(biome string, stats ColumnStats) {
	for _, o := range m {
		o.ObserveColumn(biome, stats)
	}
}

func (m MultiObserver) ObserveChunk(pos ChunkPos, d time.Duration) {
	for _, o := range m {
		o.ObserveChunk(pos, d)
	}
}
