// Package palette holds the color block model and the generation engine
// that regenerates unlocked blocks according to a color theory.
package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/hueblocks/internal/color"
	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

const (
	// Capacity is the number of slots in a palette.
	Capacity = 9
	// MinBlocks is the floor below which blocks cannot be deleted.
	MinBlocks = 3
	// DefaultBlocks is the number of blocks created at startup.
	DefaultBlocks = 5
)

// Palette is a fixed set of nine slots, each empty or holding one block.
//
// The cursor is an ordinal over occupied slots in slot order and is always
// within [0, Count()-1]. Exactly one occupied block carries Selected=true
// whenever the palette is non-empty.
type Palette struct {
	slots  [Capacity]*Block
	count  int
	cursor int
}

// New creates a palette whose first n slots hold black, unlocked blocks with
// IDs 1..n. n is clamped into [1, Capacity].
func New(n int) *Palette {
	if n < 1 {
		n = 1
	}
	if n > Capacity {
		n = Capacity
	}

	p := &Palette{}
	for i := 0; i < n; i++ {
		b := NewBlock(i+1, 0, 0, 0)
		p.slots[i] = &b
	}
	p.count = n
	p.syncSelection()
	return p
}

// Count returns the number of occupied slots.
func (p *Palette) Count() int {
	return p.count
}

// Cursor returns the selection ordinal.
func (p *Palette) Cursor() int {
	return p.cursor
}

// Slot returns a copy of the block in slot i, if any.
func (p *Palette) Slot(i int) (Block, bool) {
	if i < 0 || i >= Capacity || p.slots[i] == nil {
		return Block{}, false
	}
	return *p.slots[i], true
}

// Blocks returns copies of the occupied blocks in slot order.
func (p *Palette) Blocks() []Block {
	out := make([]Block, 0, p.count)
	for _, b := range p.slots {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}

// SelectedSlot returns the slot index the cursor points at.
func (p *Palette) SelectedSlot() (int, bool) {
	seen := 0
	for i, b := range p.slots {
		if b == nil {
			continue
		}
		if seen == p.cursor {
			return i, true
		}
		seen++
	}
	return 0, false
}

// Selected returns the selected block for in-place mutation.
func (p *Palette) Selected() (*Block, error) {
	slot, ok := p.SelectedSlot()
	if !ok {
		return nil, apperrors.NewSelectionError(p.cursor)
	}
	return p.slots[slot], nil
}

// MoveCursor shifts the selection by delta, saturating at both ends.
func (p *Palette) MoveCursor(delta int) {
	if p.count == 0 {
		return
	}
	next := p.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > p.count-1 {
		next = p.count - 1
	}
	p.cursor = next
	p.syncSelection()
}

// CanDelete reports whether another block may be removed.
func (p *Palette) CanDelete() bool {
	return p.count > MinBlocks
}

// DeleteSelected clears the selected slot and resets the cursor to the
// first block. It returns the removed block and false when the palette is
// already at MinBlocks.
func (p *Palette) DeleteSelected() (Block, bool) {
	if !p.CanDelete() {
		return Block{}, false
	}
	slot, ok := p.SelectedSlot()
	if !ok {
		return Block{}, false
	}

	removed := *p.slots[slot]
	removed.Selected = false
	p.slots[slot] = nil
	p.count--
	p.cursor = 0
	p.syncSelection()
	return removed, true
}

// ToggleLockAt flips the lock of the block in slot i and returns its new
// state. An empty or out-of-range slot yields an errors.ErrSelectionEmpty.
func (p *Palette) ToggleLockAt(slot int) (bool, error) {
	if slot < 0 || slot >= Capacity || p.slots[slot] == nil {
		return false, apperrors.NewSelectionError(slot)
	}
	return p.slots[slot].ToggleLock(), nil
}

// LockColor sets the color of slot i and locks it.
func (p *Palette) LockColor(slot int, c color.HSV) error {
	if slot < 0 || slot >= Capacity {
		return fmt.Errorf("slot %d out of range 1..%d", slot+1, Capacity)
	}
	b := p.slots[slot]
	if b == nil {
		return apperrors.NewSelectionError(slot)
	}
	b.SetHSV(c.H, c.S, c.V)
	b.Locked = true
	return nil
}

func (p *Palette) occupied() []*Block {
	out := make([]*Block, 0, p.count)
	for _, b := range p.slots {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (p *Palette) syncSelection() {
	if p.cursor > p.count-1 {
		p.cursor = p.count - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	for i, b := range p.occupied() {
		b.Selected = i == p.cursor
	}
}
