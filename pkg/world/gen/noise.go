package gen

import "github.com/aquilax/go-perlin"

// Perlin parameters shared by every noise field.
const (
	noiseAlpha = 2.0 // amplitude falloff per octave
	noiseBeta  = 2.0 // frequency growth per octave
)

// NoiseField is a seeded 2D Perlin field sampled in block coordinates.
// Output is clamped to [-1, 1].
type NoiseField struct {
	p     *perlin.Perlin
	scale float64
}

// NewNoiseField creates a field. scale is the number of blocks per noise
// unit; octaves is the number of summed octaves.
func NewNoiseField(seed int64, scale float64, octaves int32) *NoiseField {
	if scale <= 0 {
		scale = 1
	}
	if octaves < 1 {
		octaves = 1
	}
	return &NoiseField{
		p:     perlin.NewPerlin(noiseAlpha, noiseBeta, octaves, seed),
		scale: scale,
	}
}

// At samples the field at a block coordinate.
func (f *NoiseField) At(x, z float64) float64 {
	v := f.p.Noise2D(x/f.scale, z/f.scale)
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}
