package gen

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RegionPositions returns the chunk positions of the square of the given
// radius around (cx, cz), in row order.
func RegionPositions(cx, cz, radius int) []ChunkPos {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	positions := make([]ChunkPos, 0, side*side)
	for z := cz - radius; z <= cz+radius; z++ {
		for x := cx - radius; x <= cx+radius; x++ {
			positions = append(positions, ChunkPos{X: x, Z: z})
		}
	}
	return positions
}

// GenerateRegion generates the given chunks on up to workers goroutines.
// workers <= 0 means GOMAXPROCS. It stops early and returns ctx.Err() when
// ctx is cancelled.
func GenerateRegion(ctx context.Context, g Generator, positions []ChunkPos, workers int) (map[ChunkPos]*ChunkData, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu     sync.Mutex
		chunks = make(map[ChunkPos]*ChunkData, len(positions))
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, pos := range positions {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := g.Generate(pos.X, pos.Z)

			mu.Lock()
			chunks[pos] = c
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}
