package gen

// ChunkRNG is a small deterministic LCG seeded per chunk. It is not safe for
// concurrent use; give every chunk its own.
type ChunkRNG struct {
	state int64
}

// NewChunkRNG seeds an RNG from the world seed, the chunk position and a
// salt that separates independent uses within one chunk.
func NewChunkRNG(seed int64, cx, cz int, salt int64) *ChunkRNG {
	s := seed ^ (int64(cx)*341873128712 + int64(cz)*132897987541 + salt)
	return &ChunkRNG{state: s}
}

func (r *ChunkRNG) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *ChunkRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}
