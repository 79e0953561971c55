package gen

import (
	"strconv"
	"strings"
)

// Block IDs matching Minecraft 1.8 protocol. A block state stored in a
// Section is blockID<<4 | metadata.
const (
	blockAir          = 0
	blockStone        = 1
	blockGrass        = 2
	blockDirt         = 3
	blockCobblestone  = 4
	blockBedrock      = 7
	blockFlowingWater = 8
	blockWater        = 9 // stationary water
	blockFlowingLava  = 10
	blockLava         = 11 // stationary lava
	blockSand         = 12
	blockGravel       = 13
	blockGoldOre      = 14
	blockIronOre      = 15
	blockCoalOre      = 16
	blockLapisOre     = 21
	blockSandstone    = 24
	blockMossyCobble  = 48
	blockObsidian     = 49
	blockDiamondOre   = 56
	blockRedstoneOre  = 73
	blockSnowLayer    = 78
	blockIce          = 79
	blockSnow         = 80
	blockClay         = 82
	blockNetherrack   = 87
	blockSoulSand     = 88
	blockGlowstone    = 89
	blockMycelium     = 110
	blockEndStone     = 121
	blockStainedClay  = 159
	blockHardenedClay = 172
	blockPackedIce    = 174
	blockRedSandstone = 179
	blockPrismarine   = 168
)

// Commonly used block states.
const (
	Air       uint16 = blockAir << 4
	Stone     uint16 = blockStone << 4
	Grass     uint16 = blockGrass << 4
	Dirt      uint16 = blockDirt << 4
	Bedrock   uint16 = blockBedrock << 4
	Water     uint16 = blockWater << 4
	Sand      uint16 = blockSand << 4
	Gravel    uint16 = blockGravel << 4
	Sandstone uint16 = blockSandstone << 4
	Clay      uint16 = blockClay << 4
	Snow      uint16 = blockSnow << 4
	Ice       uint16 = blockIce << 4
)

// State packs a block ID and metadata into a block state.
func State(id, meta uint16) uint16 {
	return id<<4 | meta&0xF
}

// StateID returns the block ID of a block state.
func StateID(s uint16) uint16 { return s >> 4 }

// StateMeta returns the metadata nibble of a block state.
func StateMeta(s uint16) uint16 { return s & 0xF }

// Material is the coarse classification the column scan works with.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialWater
	MaterialSolid
)

// MaterialOf classifies a raw block state. Anything that is neither air nor
// water counts as solid, lava included.
func MaterialOf(s uint16) Material {
	switch StateID(s) {
	case blockAir:
		return MaterialAir
	case blockWater, blockFlowingWater:
		return MaterialWater
	default:
		return MaterialSolid
	}
}

// BlockRegistry resolves block names to block states.
type BlockRegistry interface {
	ByName(name string) (uint16, bool)
}

// NameRegistry is a BlockRegistry backed by a name -> block ID table.
type NameRegistry map[string]uint16

// Blocks is the built-in registry of vanilla 1.8 terrain blocks.
var Blocks = NameRegistry{
	"air":                   blockAir,
	"stone":                 blockStone,
	"grass":                 blockGrass,
	"dirt":                  blockDirt,
	"cobblestone":           blockCobblestone,
	"bedrock":               blockBedrock,
	"flowing_water":         blockFlowingWater,
	"water":                 blockWater,
	"flowing_lava":          blockFlowingLava,
	"lava":                  blockLava,
	"sand":                  blockSand,
	"gravel":                blockGravel,
	"gold_ore":              blockGoldOre,
	"iron_ore":              blockIronOre,
	"coal_ore":              blockCoalOre,
	"lapis_ore":             blockLapisOre,
	"sandstone":             blockSandstone,
	"mossy_cobblestone":     blockMossyCobble,
	"obsidian":              blockObsidian,
	"diamond_ore":           blockDiamondOre,
	"redstone_ore":          blockRedstoneOre,
	"snow_layer":            blockSnowLayer,
	"ice":                   blockIce,
	"snow":                  blockSnow,
	"clay":                  blockClay,
	"netherrack":            blockNetherrack,
	"soul_sand":             blockSoulSand,
	"glowstone":             blockGlowstone,
	"mycelium":              blockMycelium,
	"end_stone":             blockEndStone,
	"stained_hardened_clay": blockStainedClay,
	"hardened_clay":         blockHardenedClay,
	"packed_ice":            blockPackedIce,
	"red_sandstone":         blockRedSandstone,
	"prismarine":            blockPrismarine,
}

// ByName resolves names of the form "stone", "minecraft:stone",
// "minecraft:sand:1" or "12:1". Names in any namespace other than
// "minecraft" are not resolvable.
func (r NameRegistry) ByName(name string) (uint16, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}

	parts := strings.Split(name, ":")
	var meta uint16
	if len(parts) > 1 {
		if m, err := strconv.ParseUint(parts[len(parts)-1], 10, 4); err == nil {
			meta = uint16(m)
			parts = parts[:len(parts)-1]
		}
	}

	switch len(parts) {
	case 1:
	case 2:
		if parts[0] != "minecraft" {
			return 0, false
		}
		parts = parts[1:]
	default:
		return 0, false
	}

	if id, err := strconv.ParseUint(parts[0], 10, 12); err == nil {
		return State(uint16(id), meta), true
	}
	id, ok := r[parts[0]]
	if !ok {
		return 0, false
	}
	return State(id, meta), true
}

// Name returns the namespaced name of a block state, e.g. "minecraft:sand:1".
// States with no registered name are rendered numerically.
func (r NameRegistry) Name(s uint16) string {
	id, meta := StateID(s), StateMeta(s)
	name := ""
	for n, v := range r {
		// Prefer the shortest name for ids with aliases, then sort order.
		if v == id && (name == "" || len(n) < len(name) || len(n) == len(name) && n < name) {
			name = n
		}
	}
	if name == "" {
		name = strconv.Itoa(int(id))
	}
	if meta != 0 {
		return "minecraft:" + name + ":" + strconv.Itoa(int(meta))
	}
	return "minecraft:" + name
}

// ResolveBlock looks name up in reg, returning fallback when the name is
// empty or unknown.
func ResolveBlock(reg BlockRegistry, name string, fallback uint16) uint16 {
	if reg == nil {
		return fallback
	}
	if s, ok := reg.ByName(name); ok {
		return s
	}
	return fallback
}
