package palette

import (
	"github.com/alexisbeaulieu97/hueblocks/internal/color"
)

// Block is a single color slot entry.
type Block struct {
	ID       int
	Color    color.HSV
	Locked   bool
	Selected bool
}

// NewBlock creates an unlocked, unselected block.
func NewBlock(id int, h, s, v float64) Block {
	return Block{ID: id, Color: color.NewHSV(h, s, v)}
}

// SetHSV replaces the block color. The hue is normalized into [0,360).
func (b *Block) SetHSV(h, s, v float64) {
	b.Color = color.NewHSV(h, s, v)
}

// ToggleLock flips the locked flag and returns the new state.
func (b *Block) ToggleLock() bool {
	b.Locked = !b.Locked
	return b.Locked
}

// Hex returns the block color as #RRGGBB.
func (b Block) Hex() string {
	return color.ToHex(b.Color)
}

// RGB returns the block color as 8-bit channels.
func (b Block) RGB() color.RGB {
	return color.HSVToRGB(b.Color)
}
