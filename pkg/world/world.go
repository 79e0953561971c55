package world

import (
	"context"
	"sync"

	"github.com/OCharnyshevich/terrain-layers/pkg/world/gen"
)

// World caches generated chunks and answers block queries in world
// coordinates.
type World struct {
	mu        sync.RWMutex
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ChunkData
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator) *World {
	return &World{
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
	}
}

// GetOrGenerateChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *gen.ChunkData {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generator.Generate(cx, cz)
	return w.store(pos, c)
}

// store caches c unless another goroutine got there first, and returns the
// cached chunk.
func (w *World) store(pos gen.ChunkPos, c *gen.ChunkData) *gen.ChunkData {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		return existing
	}
	w.chunks[pos] = c
	return c
}

// PreGenerateRadius generates every chunk within radius of (0, 0) on up to
// workers goroutines and returns the number of chunks now cached for that
// square.
func (w *World) PreGenerateRadius(ctx context.Context, radius, workers int) (int, error) {
	var missing []gen.ChunkPos

	all := gen.RegionPositions(0, 0, radius)
	w.mu.RLock()
	for _, pos := range all {
		if _, ok := w.chunks[pos]; !ok {
			missing = append(missing, pos)
		}
	}
	w.mu.RUnlock()

	chunks, err := gen.GenerateRegion(ctx, w.generator, missing, workers)
	if err != nil {
		return 0, err
	}
	for pos, c := range chunks {
		w.store(pos, c)
	}
	return len(all), nil
}

// Len returns the number of cached chunks.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Block returns the block state at the given position. Positions outside
// [0, 256) vertically are air.
func (w *World) Block(x, y, z int) uint16 {
	if y < 0 || y >= gen.ColumnHeight {
		return gen.Air
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	return c.GetBlock(x&0xF, y, z&0xF)
}

// Column returns a copy of the classified column at world x, z.
func (w *World) Column(x, z int) gen.Column {
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	return c.Column(x&0xF, z&0xF)
}

// Biome returns the biome ID at world x, z.
func (w *World) Biome(x, z int) byte {
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	return c.Biome(x&0xF, z&0xF)
}

// SurfaceY returns the height of the highest solid block at world x, z, or
// -1 when the column holds only air and water.
func (w *World) SurfaceY(x, z int) int {
	col := w.Column(x, z)
	for y := gen.ColumnHeight - 1; y >= 0; y-- {
		if gen.MaterialOf(col[y]) == gen.MaterialSolid {
			return y
		}
	}
	return -1
}

// SpawnHeight returns the terrain height at spawn (0, 0) + 1 for the player to stand on.
func (w *World) SpawnHeight() int {
	return w.generator.HeightAt(0, 0) + 1
}
