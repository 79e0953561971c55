package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/OCharnyshevich/terrain-layers/internal/config"
	"github.com/OCharnyshevich/terrain-layers/internal/metrics"
	"github.com/OCharnyshevich/terrain-layers/pkg/world"
	"github.com/OCharnyshevich/terrain-layers/pkg/world/gen"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML config file")
	writePack := flag.String("write-pack", "", "write the default biome pack to this file (.yaml, .toml or .json) and exit")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, `terrain generator: "default" or "flat"`)
	flag.IntVar(&cfg.SeaLevel, "sea-level", cfg.SeaLevel, "world sea level")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "chunks around (0, 0) to generate")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "generation goroutines (0 = GOMAXPROCS)")
	flag.StringVar(&cfg.BiomePack, "biomes", cfg.BiomePack, "biome pack file")
	flag.StringVar(&cfg.BiomePackURL, "biomes-url", cfg.BiomePackURL, "biome pack source to fetch (go-getter syntax)")
	flag.StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory for fetched biome packs")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.StringVar(&cfg.Column, "column", cfg.Column, `dump the column at "x,z" after generation`)
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *writePack != "" {
		if err := writeDefaultPack(*writePack); err != nil {
			log.Error("write biome pack", "error", err)
			os.Exit(1)
		}
		log.Info("biome pack written", "path", *writePack)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, explicit, log); err != nil {
		log.Error("terraingen", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, explicit map[string]bool, log *slog.Logger) error {
	profiles, seaLevel, err := loadProfiles(ctx, cfg, explicit, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, log); err != nil {
				log.Error("metrics", "error", err)
			}
		}()
	}

	sum := newSummary()
	observer := gen.WithObserver(gen.MultiObserver{collector, sum})

	var g gen.Generator
	switch cfg.GeneratorType {
	case "flat":
		if len(profiles) > 0 {
			log.Warn("flat generator ignores the biome pack", "biomes", len(profiles))
		}
		g = gen.NewFlatGenerator(cfg.Seed, observer)
	case "default", "":
		g = gen.NewDefaultGenerator(cfg.Seed,
			gen.WithSeaLevel(seaLevel),
			gen.WithProfiles(profiles),
			observer,
		)
	default:
		return fmt.Errorf("unknown generator %q", cfg.GeneratorType)
	}

	log.Info("generating",
		"generator", cfg.GeneratorType,
		"seed", cfg.Seed,
		"sea_level", seaLevel,
		"radius", cfg.Radius,
		"workers", cfg.Workers,
	)

	w := world.NewWorld(g)
	start := time.Now()
	n, err := w.PreGenerateRadius(ctx, cfg.Radius, cfg.Workers)
	if err != nil {
		return fmt.Errorf("generate region: %w", err)
	}
	log.Info("region generated", "chunks", n, "elapsed", time.Since(start), "spawn_height", w.SpawnHeight())
	sum.log(log)

	if cfg.Column != "" {
		x, z, err := parseColumn(cfg.Column)
		if err != nil {
			return err
		}
		dumpColumn(w, x, z)
	}

	if cfg.MetricsAddr != "" {
		log.Info("serving metrics until interrupted", "addr", cfg.MetricsAddr)
		<-ctx.Done()
	}
	return nil
}

// loadProfiles fetches and decodes the configured biome pack. A sea_level
// set in the pack applies unless -sea-level was given; otherwise the
// configured sea level stands.
func loadProfiles(ctx context.Context, cfg *config.Config, explicit map[string]bool, log *slog.Logger) (map[string]*gen.Profile, int, error) {
	path := cfg.BiomePack
	if cfg.BiomePackURL != "" {
		fetched, err := config.FetchBiomePack(ctx, cfg.BiomePackURL, cfg.CacheDir)
		if err != nil {
			return nil, 0, err
		}
		log.Info("biome pack fetched", "src", cfg.BiomePackURL, "path", fetched)
		path = fetched
	}
	if path == "" {
		return nil, cfg.SeaLevel, nil
	}

	pack, err := config.LoadBiomePack(path)
	if err != nil {
		return nil, 0, err
	}
	profiles, err := pack.Profiles(gen.Blocks)
	if err != nil {
		return nil, 0, fmt.Errorf("biome pack %s: %w", path, err)
	}
	log.Info("biome pack loaded", "path", path, "biomes", len(profiles))

	seaLevel := cfg.SeaLevel
	if pack.HasSeaLevel && !explicit["sea-level"] {
		seaLevel = pack.SeaLevel
	}
	return profiles, seaLevel, nil
}

func writeDefaultPack(path string) error {
	format, err := config.FormatOf(path)
	if err != nil {
		return err
	}
	data, err := config.EncodeBiomePack(config.DefaultPack(), format)
	if err != nil {
		return fmt.Errorf("encode biome pack: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write biome pack: %w", err)
	}
	return nil
}

func parseColumn(s string) (int, int, error) {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("column %q: want x,z", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("column %q: %w", s, err)
	}
	z, err := strconv.Atoi(strings.TrimSpace(zs))
	if err != nil {
		return 0, 0, fmt.Errorf("column %q: %w", s, err)
	}
	return x, z, nil
}

// dumpColumn prints the column at x, z from the top of the terrain down,
// collapsing runs of the same block.
func dumpColumn(w *world.World, x, z int) {
	col := w.Column(x, z)
	top := w.SurfaceY(x, z)
	for y := gen.ColumnHeight - 1; y > top; y-- {
		if col[y] != gen.Air {
			top = y
			break
		}
	}

	fmt.Printf("column (%d, %d) biome=%s surface=%d\n", x, z, gen.BiomeName(w.Biome(x, z)), w.SurfaceY(x, z))
	for y := top; y >= 0; {
		state := col[y]
		end := y
		for end > 0 && col[end-1] == state {
			end--
		}
		if end == y {
			fmt.Printf("  y=%-3d     %s\n", y, gen.Blocks.Name(state))
		} else {
			fmt.Printf("  y=%-3d..%-3d %s\n", y, end, gen.Blocks.Name(state))
		}
		y = end - 1
	}
}

// summary counts classified columns per biome and regime.
type summary struct {
	mu      sync.Mutex
	columns map[string][2]int
	bedrock int
}

func newSummary() *summary {
	return &summary{columns: make(map[string][2]int)}
}

func (s *summary) ObserveColumn(biome string, stats gen.ColumnStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.columns[biome]
	if stats.Regime == gen.Underwater {
		c[1]++
	} else {
		c[0]++
	}
	s.columns[biome] = c
	s.bedrock += stats.BedrockSubstitutions
}

func (s *summary) ObserveChunk(gen.ChunkPos, time.Duration) {}

func (s *summary) log(log *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := s.columns[name]
		log.Info("biome", "name", name, "overwater", c[0], "underwater", c[1])
	}
	if len(names) > 0 {
		log.Debug("bedrock substitutions", "count", s.bedrock)
	}
}
