package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the terraingen configuration.
type Config struct {
	Seed          int64  `yaml:"seed"`
	GeneratorType string `yaml:"generator_type"` // "default" or "flat"
	SeaLevel      int    `yaml:"sea_level"`      // world default; a biome pack may override it
	Radius        int    `yaml:"radius"`         // chunks around (0, 0) to generate
	Workers       int    `yaml:"workers"`        // 0 = GOMAXPROCS
	BiomePack     string `yaml:"biome_pack"`     // local pack file
	BiomePackURL  string `yaml:"biome_pack_url"` // go-getter source, fetched into CacheDir
	CacheDir      string `yaml:"cache_dir"`
	MetricsAddr   string `yaml:"metrics_addr"` // empty disables the /metrics endpoint
	LogLevel      string `yaml:"log_level"`
	Column        string `yaml:"column"` // "x,z" column to dump after generation
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GeneratorType: "default",
		SeaLevel:      62,
		Radius:        2,
		CacheDir:      ".terraingen",
		LogLevel:      "info",
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// DefaultConfig values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["sea-level"] {
		cfg.SeaLevel = fromFile.SeaLevel
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["biomes"] {
		cfg.BiomePack = fromFile.BiomePack
	}
	if !explicitFlags["biomes-url"] {
		cfg.BiomePackURL = fromFile.BiomePackURL
	}
	if !explicitFlags["cache-dir"] {
		cfg.CacheDir = fromFile.CacheDir
	}
	if !explicitFlags["metrics-addr"] {
		cfg.MetricsAddr = fromFile.MetricsAddr
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	if !explicitFlags["column"] {
		cfg.Column = fromFile.Column
	}
}
