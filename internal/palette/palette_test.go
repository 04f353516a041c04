package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/hueblocks/internal/color"
	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

func selectedCount(p *Palette) int {
	n := 0
	for _, b := range p.Blocks() {
		if b.Selected {
			n++
		}
	}
	return n
}

func TestNewCreatesDefaultBlocks(t *testing.T) {
	t.Parallel()

	p := New(DefaultBlocks)

	require.Equal(t, 5, p.Count())
	require.Equal(t, 0, p.Cursor())
	blocks := p.Blocks()
	require.Len(t, blocks, 5)
	for i, b := range blocks {
		assert.Equal(t, i+1, b.ID)
		assert.Equal(t, color.HSV{}, b.Color)
		assert.False(t, b.Locked)
	}
	assert.True(t, blocks[0].Selected)
	assert.Equal(t, 1, selectedCount(p))

	_, ok := p.Slot(5)
	assert.False(t, ok)
}

func TestNewClampsBlockCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, New(0).Count())
	assert.Equal(t, Capacity, New(42).Count())
}

func TestMoveCursorSaturates(t *testing.T) {
	t.Parallel()

	p := New(5)
	for i := 0; i < 4; i++ {
		p.MoveCursor(1)
	}
	require.Equal(t, 4, p.Cursor())

	for i := 0; i < 3; i++ {
		p.MoveCursor(1)
	}
	assert.Equal(t, 4, p.Cursor())

	for i := 0; i < 10; i++ {
		p.MoveCursor(-1)
	}
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 1, selectedCount(p))
}

func TestDeleteSelected(t *testing.T) {
	t.Parallel()

	p := New(5)
	p.MoveCursor(2)

	removed, ok := p.DeleteSelected()
	require.True(t, ok)
	assert.Equal(t, 3, removed.ID)
	assert.Equal(t, 4, p.Count())
	assert.Equal(t, 0, p.Cursor())

	_, occupied := p.Slot(2)
	assert.False(t, occupied, "slot 2 should be empty")

	sel, err := p.Selected()
	require.NoError(t, err)
	assert.Equal(t, 1, sel.ID)
	assert.Equal(t, 1, selectedCount(p))
}

func TestDeleteStopsAtMinimum(t *testing.T) {
	t.Parallel()

	p := New(3)
	_, ok := p.DeleteSelected()
	assert.False(t, ok)
	assert.Equal(t, 3, p.Count())

	p = New(5)
	_, ok = p.DeleteSelected()
	require.True(t, ok)
	_, ok = p.DeleteSelected()
	require.True(t, ok)
	_, ok = p.DeleteSelected()
	assert.False(t, ok)
	assert.Equal(t, 3, p.Count())
}

func TestCursorReachesBlocksAfterGap(t *testing.T) {
	t.Parallel()

	p := New(5)
	p.MoveCursor(1)
	_, ok := p.DeleteSelected()
	require.True(t, ok)

	p.MoveCursor(10)
	assert.Equal(t, 3, p.Cursor())

	slot, ok := p.SelectedSlot()
	require.True(t, ok)
	assert.Equal(t, 4, slot)

	sel, err := p.Selected()
	require.NoError(t, err)
	assert.Equal(t, 5, sel.ID)
}

func TestToggleLockAt(t *testing.T) {
	t.Parallel()

	p := New(5)

	locked, err := p.ToggleLockAt(3)
	require.NoError(t, err)
	assert.True(t, locked)

	b, _ := p.Slot(3)
	assert.True(t, b.Locked)

	locked, err = p.ToggleLockAt(3)
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = p.ToggleLockAt(7)
	require.ErrorIs(t, err, apperrors.ErrSelectionEmpty)

	_, err = p.ToggleLockAt(-1)
	require.ErrorIs(t, err, apperrors.ErrSelectionEmpty)
}

func TestLockColor(t *testing.T) {
	t.Parallel()

	p := New(4)
	require.NoError(t, p.LockColor(1, color.NewHSV(-30, 0.5, 0.5)))

	b, ok := p.Slot(1)
	require.True(t, ok)
	assert.True(t, b.Locked)
	assert.InDelta(t, 330, b.Color.H, 1e-9)

	require.ErrorIs(t, p.LockColor(6, color.HSV{}), apperrors.ErrSelectionEmpty)
	require.Error(t, p.LockColor(9, color.HSV{}))
}

func TestBlockMutations(t *testing.T) {
	t.Parallel()

	b := NewBlock(1, 0, 0, 0)
	b.SetHSV(-50, 1, 1)
	assert.InDelta(t, 310, b.Color.H, 1e-9)

	assert.True(t, b.ToggleLock())
	assert.False(t, b.ToggleLock())

	b.SetHSV(120, 1, 1)
	assert.Equal(t, "#00FF00", b.Hex())
	assert.Equal(t, color.RGB{G: 255}, b.RGB())
}

func TestParseTheory(t *testing.T) {
	t.Parallel()

	for _, th := range Theories() {
		parsed, err := ParseTheory(th.String())
		require.NoError(t, err)
		assert.Equal(t, th, parsed)
	}

	parsed, err := ParseTheory("  COMPLEMENTARY ")
	require.NoError(t, err)
	assert.Equal(t, Complementary, parsed)

	_, err = ParseTheory("triadic")
	require.Error(t, err)
}
