package gen

import (
	"strconv"
	"strings"
)

// Layer is a run of Depth() slots of the same block, counted down from the
// first solid block of a column.
type Layer struct {
	depth int
	block uint16
}

// MakeLayer creates a layer, clamping depth to at least 1.
func MakeLayer(depth int, block uint16) Layer {
	if depth < 1 {
		depth = 1
	}
	return Layer{depth: depth, block: block}
}

// NewLayer creates a layer from the structured {depth, block} form. Unknown
// blocks resolve to fallback.
func NewLayer(depth int, block string, reg BlockRegistry, fallback uint16) Layer {
	return MakeLayer(depth, ResolveBlock(reg, block, fallback))
}

// ParseLayer parses a layer entry of the form "<depth>, <block>".
//
// A missing or malformed depth becomes 1 and a missing or unknown block
// becomes fallback.
func ParseLayer(raw string, reg BlockRegistry, fallback uint16) Layer {
	depth, block := SplitLayer(raw)
	return NewLayer(depth, block, reg, fallback)
}

// SplitLayer splits a "<depth>, <block>" entry into its parts without
// resolving the block. A single token is read as a depth when it is an
// integer and as a block name otherwise. A missing or malformed depth is
// returned as 1.
func SplitLayer(raw string) (depth int, block string) {
	depthPart, blockPart, found := strings.Cut(raw, ",")
	if !found {
		token := strings.TrimSpace(raw)
		if _, err := strconv.Atoi(token); err == nil {
			depthPart, blockPart = token, ""
		} else {
			depthPart, blockPart = "", token
		}
	}

	depth, err := strconv.Atoi(strings.TrimSpace(depthPart))
	if err != nil {
		depth = 1
	}
	return depth, strings.TrimSpace(blockPart)
}

// Depth returns the number of slots the layer occupies. Always >= 1.
func (l Layer) Depth() int {
	if l.depth < 1 {
		return 1
	}
	return l.depth
}

// Block returns the block state the layer places.
func (l Layer) Block() uint16 { return l.block }

// LayerSet holds the layer stacks used above and below the fuzzy sea level.
// Either stack may be empty, in which case the profile's top/filler/stone
// fallback is used for that regime.
type LayerSet struct {
	overwater  []Layer
	underwater []Layer
}

// NewLayerSet copies the given stacks into a LayerSet.
func NewLayerSet(overwater, underwater []Layer) LayerSet {
	return LayerSet{
		overwater:  append([]Layer(nil), overwater...),
		underwater: append([]Layer(nil), underwater...),
	}
}

// ParseLayerSet parses both stacks from their string entries. It never fails.
func ParseLayerSet(raw, rawUnderwater []string, reg BlockRegistry, fallback uint16) LayerSet {
	parse := func(entries []string) []Layer {
		if len(entries) == 0 {
			return nil
		}
		layers := make([]Layer, 0, len(entries))
		for _, s := range entries {
			layers = append(layers, ParseLayer(s, reg, fallback))
		}
		return layers
	}
	return LayerSet{overwater: parse(raw), underwater: parse(rawUnderwater)}
}

// Overwater returns a copy of the overwater stack.
func (ls LayerSet) Overwater() []Layer { return append([]Layer(nil), ls.overwater...) }

// Underwater returns a copy of the underwater stack.
func (ls LayerSet) Underwater() []Layer { return append([]Layer(nil), ls.underwater...) }

// For returns the stack for the regime. The returned slice must not be
// modified.
func (ls LayerSet) For(r Regime) []Layer {
	if r == Underwater {
		return ls.underwater
	}
	return ls.overwater
}
