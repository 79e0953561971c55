package gen

// ColumnHeight is the number of block slots in a chunk column.
const ColumnHeight = 256

// Lookup maps depth below the first solid block to the block placed there.
//
// A Lookup is scratch space owned by a single goroutine. The table is a pure
// function of (profile, regime), so Prepare only rebuilds it when that key
// changes from the previous column.
type Lookup struct {
	table   [ColumnHeight]uint16
	profile *Profile
	regime  Regime
	valid   bool
}

// Reset invalidates the table. The next Prepare always rebuilds.
func (l *Lookup) Reset() {
	l.profile = nil
	l.valid = false
}

// Prepare makes the table describe p's stack for regime r and reports
// whether it had to be rebuilt.
func (l *Lookup) Prepare(p *Profile, r Regime) bool {
	if l.valid && l.profile == p && l.regime == r {
		return false
	}
	buildLookup(&l.table, p, r)
	l.profile, l.regime, l.valid = p, r, true
	return true
}

// At returns the block for the given depth below the surface. Depths past
// the end of the table resolve to the profile's stone block.
func (l *Lookup) At(depth int) uint16 {
	if depth < 0 {
		depth = 0
	}
	if depth >= ColumnHeight {
		if l.profile != nil {
			return l.profile.StoneBlock
		}
		return Stone
	}
	return l.table[depth]
}

// Table returns a copy of the current table.
func (l *Lookup) Table() [ColumnHeight]uint16 { return l.table }

func buildLookup(table *[ColumnHeight]uint16, p *Profile, r Regime) {
	layers := p.Layers.For(r)

	if len(layers) == 0 {
		top, filler := p.surface(r)
		table[0] = top
		for y := 1; y < ColumnHeight; y++ {
			if y <= p.FillerDepth {
				table[y] = filler
			} else {
				table[y] = p.StoneBlock
			}
		}
		return
	}

	y := 0
	for _, layer := range layers {
		for i := 0; i < layer.Depth() && y < ColumnHeight; i++ {
			table[y] = layer.Block()
			y++
		}
	}
	for ; y < ColumnHeight; y++ {
		table[y] = p.StoneBlock
	}
}
