package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/terrain-layers/pkg/world/gen"
)

// ErrUnknownFormat is returned for biome pack files whose extension is not
// one of .yaml, .yml, .toml or .json.
var ErrUnknownFormat = errors.New("unknown biome pack format")

// Format is a biome pack encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf returns the pack format implied by a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}
}

// LoadBiomePack reads a biome pack, choosing the decoder by file extension.
func LoadBiomePack(path string) (*Pack, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read biome pack: %w", err)
	}
	pack, err := DecodeBiomePack(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode biome pack %s: %w", path, err)
	}
	return pack, nil
}

// DecodeBiomePack decodes a pack in the given format. An empty document is
// an empty pack at the default sea level.
func DecodeBiomePack(data []byte, format Format) (*Pack, error) {
	pack := &Pack{SeaLevel: gen.DefaultSeaLevel}

	// presence is decoded alongside the pack to tell an explicit sea_level
	// from the default.
	var presence struct {
		SeaLevel *int `yaml:"sea_level" json:"sea_level"`
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, pack); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &presence); err != nil {
			return nil, err
		}
		pack.HasSeaLevel = presence.SeaLevel != nil
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) == 0 {
			break
		}
		if err := json.Unmarshal(data, pack); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &presence); err != nil {
			return nil, err
		}
		pack.HasSeaLevel = presence.SeaLevel != nil
	case FormatTOML:
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, err
		}
		if err := tree.Unmarshal(pack); err != nil {
			return nil, err
		}
		pack.HasSeaLevel = tree.Has("sea_level")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return pack, nil
}

// EncodeBiomePack writes pack in the given format.
func EncodeBiomePack(pack *Pack, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(pack)
	case FormatJSON:
		return json.MarshalIndent(pack, "", "  ")
	case FormatTOML:
		return toml.Marshal(*pack)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DefaultPack returns a pack configuring every known biome with
// DefaultBiomeConfig.
func DefaultPack() *Pack {
	pack := &Pack{SeaLevel: gen.DefaultSeaLevel, HasSeaLevel: true, Biomes: make(map[string]BiomeConfig)}
	for _, name := range gen.BiomeNames() {
		pack.Biomes[name] = DefaultBiomeConfig()
	}
	return pack
}
