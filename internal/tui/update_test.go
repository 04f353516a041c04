package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
	"github.com/alexisbeaulieu97/hueblocks/internal/session"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestUpdate_QuitFromMain(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
}

func TestUpdate_QClosesPopupInsteadOfQuitting(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runes("x"), runes("q"))

	assert.Nil(t, cmd)
	assert.False(t, m.Quitting())
	assert.Equal(t, session.PageMain, m.Session().Page().Kind())
}

func TestUpdate_CtrlCQuitsFromPopup(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runes("z"), tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
}

func TestUpdate_CursorAndLock(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyLeft},
		runes("l"),
	)

	snap := m.Session().Snapshot()
	assert.Equal(t, 1, snap.Cursor)
	assert.True(t, snap.Blocks[1].Locked)
	assert.Equal(t, "Locked block 2", snap.Status.Text)
}

func TestUpdate_AltDigitTogglesLockByIndex(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true})

	snap := m.Session().Snapshot()
	assert.True(t, snap.Blocks[2].Locked)
	assert.Equal(t, 0, snap.Cursor)
}

func TestUpdate_SpaceGeneratesAroundLocks(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("l"))
	before := m.Session().Snapshot().Blocks

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	after := m.Session().Snapshot().Blocks
	assert.Equal(t, before[0].Color, after[0].Color)
	assert.NotEqual(t, before[1].Color, after[1].Color)
	assert.Equal(t, "Generated Analogous palette", m.Session().Status().Text)
}

func TestUpdate_TheorySelectorFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("x"))
	require.Equal(t, session.PageTheorySelector, m.Session().Page().Kind())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, session.PageMain, m.Session().Page().Kind())
	assert.Equal(t, palette.Complementary, m.Session().Theory())
}

func TestUpdate_TheorySelectorJumps(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyRight})
	page, ok := m.Session().Page().(session.TheorySelectorPage)
	require.True(t, ok)
	assert.Equal(t, len(palette.Theories())-1, page.Highlighted())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	page, ok = m.Session().Page().(session.TheorySelectorPage)
	require.True(t, ok)
	assert.Equal(t, 0, page.Highlighted())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, session.PageMain, m.Session().Page().Kind())
	assert.Equal(t, palette.Analogous, m.Session().Theory())
}

func TestUpdate_EditColorFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("z"), runes("f"), runes("g"), runes("0"), runes("8"))

	page, ok := m.Session().Page().(session.EditColorPage)
	require.True(t, ok)
	assert.Equal(t, "f08", page.Input())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	page, ok = m.Session().Page().(session.EditColorPage)
	require.True(t, ok)
	assert.Equal(t, "f0", page.Input())

	m, _ = press(t, m, runes("8"), runes("0"), runes("0"), runes("0"), tea.KeyMsg{Type: tea.KeyEnter})

	snap := m.Session().Snapshot()
	assert.Equal(t, "#F08000", snap.Blocks[0].Hex())
	assert.Equal(t, session.PageEditColor, snap.Page.Kind())

	m, _ = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyCtrlU})
	page, ok = m.Session().Page().(session.EditColorPage)
	require.True(t, ok)
	assert.Empty(t, page.Input())

	m, _ = press(t, m, runes("z"))
	assert.Equal(t, session.PageMain, m.Session().Page().Kind())
}

func TestUpdate_CopySelectedHex(t *testing.T) {
	m, clip := newTestModel(t)

	m, _ = press(t, m, runes("c"))

	assert.Equal(t, "#000000", clip.text)
	assert.Equal(t, "Copied #000000", m.Session().Status().Text)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	m, _ = press(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_UnboundKeyIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.Session().Snapshot()

	m, cmd := press(t, m, runes("w"))

	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Session().Snapshot())
}

func TestUpdate_PastedHexFillsInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("z"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("FF8800"), Paste: true})

	page, ok := m.Session().Page().(session.EditColorPage)
	require.True(t, ok)
	assert.Equal(t, "FF8800", page.Input())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "#FF8800", m.Session().Snapshot().Blocks[0].Hex())
}

func TestUpdate_BatchedRunesAreTypedInOrder(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("z"), runes("ab"), runes("g1"))

	page, ok := m.Session().Page().(session.EditColorPage)
	require.True(t, ok)
	assert.Equal(t, "ab1", page.Input())
}

func TestUpdate_BatchedRunesOnMainPage(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("lx"))

	assert.True(t, m.Session().Snapshot().Blocks[0].Locked)
	assert.Equal(t, session.PageTheorySelector, m.Session().Page().Kind())
}

func TestUpdate_BatchedRunesStopAtQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runes("qz"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Equal(t, session.PageMain, m.Session().Page().Kind())
}
