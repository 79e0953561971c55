package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/terrain-layers/pkg/world/gen"
)

// ErrUnknownBiome is returned when a biome pack configures a biome the
// generator does not know.
var ErrUnknownBiome = errors.New("unknown biome")

// Pack is a biome pack: per-biome surface configuration plus an optional
// world sea level.
type Pack struct {
	SeaLevel int                    `yaml:"sea_level" json:"sea_level" toml:"sea_level" default:"62"`
	Biomes   map[string]BiomeConfig `yaml:"biomes" json:"biomes" toml:"biomes"`

	// HasSeaLevel reports whether the decoded document set sea_level.
	// SeaLevel holds the default when it did not.
	HasSeaLevel bool `yaml:"-" json:"-" toml:"-"`
}

// BiomeConfig is the file form of a gen.Profile. Missing keys take the
// values of DefaultBiomeConfig in every format.
type BiomeConfig struct {
	SeaLevelOverride   int           `yaml:"sea_level_override" json:"sea_level_override" toml:"sea_level_override" default:"-1"`
	SeaLevelFuzzScale  float64       `yaml:"sea_level_fuzz_scale" json:"sea_level_fuzz_scale" toml:"sea_level_fuzz_scale" default:"3"`
	SeaLevelFuzzOffset float64       `yaml:"sea_level_fuzz_offset" json:"sea_level_fuzz_offset" toml:"sea_level_fuzz_offset" default:"3"`
	BedrockDepth       int           `yaml:"bedrock_depth" json:"bedrock_depth" toml:"bedrock_depth" default:"5"`
	StoneBlock         string        `yaml:"stone_block" json:"stone_block" toml:"stone_block" default:"minecraft:stone"`
	OceanBlock         string        `yaml:"ocean_block" json:"ocean_block" toml:"ocean_block" default:"minecraft:water"`
	FillerDepth        int           `yaml:"fallback_filler_depth" json:"fallback_filler_depth" toml:"fallback_filler_depth" default:"5"`
	TopBlock           string        `yaml:"fallback_top_block" json:"fallback_top_block" toml:"fallback_top_block" default:"minecraft:grass"`
	FillerBlock        string        `yaml:"fallback_filler_block" json:"fallback_filler_block" toml:"fallback_filler_block" default:"minecraft:dirt"`
	UnderwaterTop      string        `yaml:"fallback_underwater_top_block" json:"fallback_underwater_top_block" toml:"fallback_underwater_top_block"`
	UnderwaterFiller   string        `yaml:"fallback_underwater_filler_block" json:"fallback_underwater_filler_block" toml:"fallback_underwater_filler_block"`
	Layers             []LayerConfig `yaml:"layers" json:"layers" toml:"layers"`
	UnderwaterLayers   []LayerConfig `yaml:"underwater_layers" json:"underwater_layers" toml:"underwater_layers"`
}

// DefaultBiomeConfig returns the configuration of a biome with no keys set.
func DefaultBiomeConfig() BiomeConfig {
	return BiomeConfig{
		SeaLevelOverride:   -1,
		SeaLevelFuzzScale:  3,
		SeaLevelFuzzOffset: 3,
		BedrockDepth:       5,
		StoneBlock:         "minecraft:stone",
		OceanBlock:         "minecraft:water",
		FillerDepth:        5,
		TopBlock:           "minecraft:grass",
		FillerBlock:        "minecraft:dirt",
	}
}

func (c *BiomeConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain BiomeConfig
	*c = DefaultBiomeConfig()
	return value.Decode((*plain)(c))
}

func (c *BiomeConfig) UnmarshalJSON(data []byte) error {
	type plain BiomeConfig
	*c = DefaultBiomeConfig()
	return json.Unmarshal(data, (*plain)(c))
}

// Profile converts the configuration into a generator profile. Unknown
// block names fall back to the vanilla block for that slot; unknown layer
// blocks fall back to the stone block.
func (c BiomeConfig) Profile(name string, reg gen.BlockRegistry) *gen.Profile {
	p := gen.DefaultProfile(name)
	p.SeaLevelOverride = c.SeaLevelOverride
	p.SeaLevelFuzzScale = c.SeaLevelFuzzScale
	p.SeaLevelFuzzOffset = c.SeaLevelFuzzOffset
	p.BedrockDepth = c.BedrockDepth
	p.FillerDepth = c.FillerDepth

	p.StoneBlock = gen.ResolveBlock(reg, c.StoneBlock, gen.Stone)
	p.OceanBlock = gen.ResolveBlock(reg, c.OceanBlock, gen.Water)
	p.TopBlock = gen.ResolveBlock(reg, c.TopBlock, gen.Grass)
	p.FillerBlock = gen.ResolveBlock(reg, c.FillerBlock, gen.Dirt)
	if c.UnderwaterTop != "" {
		p.UnderwaterTopBlock = gen.ResolveBlock(reg, c.UnderwaterTop, p.TopBlock)
	}
	if c.UnderwaterFiller != "" {
		p.UnderwaterFillerBlock = gen.ResolveBlock(reg, c.UnderwaterFiller, p.FillerBlock)
	}

	p.Layers = gen.NewLayerSet(
		layers(c.Layers, reg, p.StoneBlock),
		layers(c.UnderwaterLayers, reg, p.StoneBlock),
	)
	return p
}

func layers(cfgs []LayerConfig, reg gen.BlockRegistry, fallback uint16) []gen.Layer {
	if len(cfgs) == 0 {
		return nil
	}
	out := make([]gen.Layer, 0, len(cfgs))
	for _, lc := range cfgs {
		out = append(out, lc.Layer(reg, fallback))
	}
	return out
}

// Profiles converts every biome in the pack. Biome names must be known to
// the generator.
func (p *Pack) Profiles(reg gen.BlockRegistry) (map[string]*gen.Profile, error) {
	names := make([]string, 0, len(p.Biomes))
	for name := range p.Biomes {
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make(map[string]*gen.Profile, len(names))
	for _, name := range names {
		if _, ok := gen.BiomeByName(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBiome, name)
		}
		profiles[name] = p.Biomes[name].Profile(name, reg)
	}
	return profiles, nil
}
