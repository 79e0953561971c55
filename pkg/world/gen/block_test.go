package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameRegistryByName(t *testing.T) {
	tests := []struct {
		name  string
		state uint16
		ok    bool
	}{
		{"stone", Stone, true},
		{"minecraft:stone", Stone, true},
		{"  Minecraft:Grass ", Grass, true},
		{"minecraft:sand:1", State(blockSand, 1), true},
		{"sand:1", State(blockSand, 1), true},
		{"12", Sand, true},
		{"12:1", State(blockSand, 1), true},
		{"minecraft:24:2", State(blockSandstone, 2), true},
		{"mymod:mud", 0, false},
		{"a:b:c", 0, false},
		{"unknown", 0, false},
		{"", 0, false},
		{"stone:16", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Blocks.ByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.state, s)
			}
		})
	}
}

func TestResolveBlock(t *testing.T) {
	assert.Equal(t, Gravel, ResolveBlock(Blocks, "gravel", Stone))
	assert.Equal(t, Stone, ResolveBlock(Blocks, "nope", Stone))
	assert.Equal(t, Stone, ResolveBlock(nil, "gravel", Stone))
}

func TestMaterialOf(t *testing.T) {
	assert.Equal(t, MaterialAir, MaterialOf(Air))
	assert.Equal(t, MaterialWater, MaterialOf(Water))
	assert.Equal(t, MaterialWater, MaterialOf(State(blockFlowingWater, 7)))
	assert.Equal(t, MaterialSolid, MaterialOf(Stone))
	assert.Equal(t, MaterialSolid, MaterialOf(State(blockLava, 0)))
	assert.Equal(t, MaterialSolid, MaterialOf(Bedrock))
}

func TestStateHelpers(t *testing.T) {
	s := State(blockSand, 1)
	assert.Equal(t, uint16(blockSand), StateID(s))
	assert.Equal(t, uint16(1), StateMeta(s))
	assert.Equal(t, Sand, State(blockSand, 0))
}

func TestNameRegistryName(t *testing.T) {
	assert.Equal(t, "minecraft:sand", Blocks.Name(Sand))
	assert.Equal(t, "minecraft:sand:1", Blocks.Name(State(blockSand, 1)))
	assert.Equal(t, "minecraft:air", Blocks.Name(Air))
	assert.Equal(t, "minecraft:4000", Blocks.Name(State(4000, 0)))

	for _, s := range []uint16{Stone, Grass, Gravel, State(blockSandstone, 2)} {
		got, ok := Blocks.ByName(Blocks.Name(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
}
