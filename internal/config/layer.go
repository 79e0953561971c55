package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/terrain-layers/pkg/world/gen"
)

// LayerConfig is one layer of a biome stack, either in the structured
// {depth, block} form or, in YAML and JSON, as a "<depth>, <block>" string.
type LayerConfig struct {
	Depth int    `yaml:"depth" json:"depth" toml:"depth" default:"1"`
	Block string `yaml:"block" json:"block" toml:"block"`
}

// Layer resolves the configuration. A missing or unknown block becomes
// fallback and a depth below 1 becomes 1.
func (l LayerConfig) Layer(reg gen.BlockRegistry, fallback uint16) gen.Layer {
	return gen.NewLayer(l.Depth, l.Block, reg, fallback)
}

func (l *LayerConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = parseLayerConfig(value.Value)
		return nil
	}
	type plain LayerConfig
	*l = LayerConfig{Depth: 1}
	return value.Decode((*plain)(l))
}

func (l *LayerConfig) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = parseLayerConfig(s)
		return nil
	}
	type plain LayerConfig
	*l = LayerConfig{Depth: 1}
	return json.Unmarshal(data, (*plain)(l))
}

func parseLayerConfig(raw string) LayerConfig {
	depth, block := gen.SplitLayer(raw)
	return LayerConfig{Depth: depth, Block: block}
}
