package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/hueblocks/internal/session"
)

type mainKeyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	Delete    key.Binding
	Theory    key.Binding
	Edit      key.Binding
	Lock      key.Binding
	Copy      key.Binding
	LockIndex key.Binding
	Generate  key.Binding
	Help      key.Binding
}

type theoryKeyMap struct {
	Close    key.Binding
	First    key.Binding
	Last     key.Binding
	Previous key.Binding
	Next     key.Binding
	Confirm  key.Binding
}

type editKeyMap struct {
	Close     key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Commit    key.Binding
	Type      key.Binding
}

type keyMap struct {
	Main   mainKeyMap
	Theory theoryKeyMap
	Edit   editKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Main: mainKeyMap{
			Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
			Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev block")),
			Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next block")),
			Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			Theory:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "theory")),
			Edit:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "edit")),
			Lock:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lock")),
			Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy hex")),
			LockIndex: key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"), key.WithHelp("alt+1-9", "lock block")),
			Generate:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "generate")),
			Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		},
		Theory: theoryKeyMap{
			Close:    key.NewBinding(key.WithKeys("x", "q", "esc"), key.WithHelp("esc", "close")),
			First:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "first")),
			Last:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "last")),
			Previous: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
			Confirm:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		},
		Edit: editKeyMap{
			Close:     key.NewBinding(key.WithKeys("z", "q", "esc"), key.WithHelp("esc", "close")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
			Clear:     key.NewBinding(key.WithKeys("alt+backspace", "ctrl+u"), key.WithHelp("ctrl+u", "clear")),
			Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			Type:      key.NewBinding(key.WithHelp("0-9 a-f", "type hex")),
		},
	}
}

func (k mainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Lock, k.Edit, k.Theory, k.Copy, k.Help, k.Quit}
}

func (k mainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Generate},
		{k.Lock, k.LockIndex, k.Delete},
		{k.Edit, k.Theory, k.Copy},
		{k.Help, k.Quit},
	}
}

func (k theoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Confirm, k.Close}
}

func (k theoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.First, k.Last, k.Previous, k.Next}, {k.Confirm, k.Close}}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Commit, k.Backspace, k.Clear, k.Close}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// forPage returns the help bindings for the active page.
func (k keyMap) forPage(kind session.PageKind) help.KeyMap {
	switch kind {
	case session.PageTheorySelector:
		return k.Theory
	case session.PageEditColor:
		return k.Edit
	default:
		return k.Main
	}
}

// resolve maps a key press to a session action for the active page.
func (k keyMap) resolve(kind session.PageKind, msg tea.KeyMsg) (session.Action, bool) {
	switch kind {
	case session.PageMain:
		return k.resolveMain(msg)
	case session.PageTheorySelector:
		return k.resolveTheory(msg)
	case session.PageEditColor:
		return k.resolveEdit(msg)
	}
	return session.Action{}, false
}

func (k keyMap) resolveMain(msg tea.KeyMsg) (session.Action, bool) {
	m := k.Main
	switch {
	case key.Matches(msg, m.Quit):
		return session.Do(session.ActionQuit), true
	case key.Matches(msg, m.Left):
		return session.Do(session.ActionCursorLeft), true
	case key.Matches(msg, m.Right):
		return session.Do(session.ActionCursorRight), true
	case key.Matches(msg, m.Delete):
		return session.Do(session.ActionDeleteSelected), true
	case key.Matches(msg, m.Theory):
		return session.Do(session.ActionOpenTheorySelector), true
	case key.Matches(msg, m.Edit):
		return session.Do(session.ActionOpenEditColor), true
	case key.Matches(msg, m.Lock):
		return session.Do(session.ActionToggleLockSelected), true
	case key.Matches(msg, m.Copy):
		return session.Do(session.ActionCopySelectedHex), true
	case key.Matches(msg, m.LockIndex):
		return session.ToggleLockByIndex(int(msg.Runes[0] - '0')), true
	case key.Matches(msg, m.Generate):
		return session.Do(session.ActionGenerate), true
	}
	return session.Action{}, false
}

func (k keyMap) resolveTheory(msg tea.KeyMsg) (session.Action, bool) {
	t := k.Theory
	switch {
	case key.Matches(msg, t.Close):
		return session.Do(session.ActionClose), true
	case key.Matches(msg, t.First):
		return session.Do(session.ActionFirst), true
	case key.Matches(msg, t.Last):
		return session.Do(session.ActionLast), true
	case key.Matches(msg, t.Previous):
		return session.Do(session.ActionPrevious), true
	case key.Matches(msg, t.Next):
		return session.Do(session.ActionNext), true
	case key.Matches(msg, t.Confirm):
		return session.Do(session.ActionConfirm), true
	}
	return session.Action{}, false
}

func (k keyMap) resolveEdit(msg tea.KeyMsg) (session.Action, bool) {
	e := k.Edit
	switch {
	case key.Matches(msg, e.Close):
		return session.Do(session.ActionClose), true
	case key.Matches(msg, e.Clear):
		return session.Do(session.ActionClearInput), true
	case key.Matches(msg, e.Backspace):
		return session.Do(session.ActionBackspace), true
	case key.Matches(msg, e.Commit):
		return session.Do(session.ActionCommit), true
	case msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1:
		return session.AppendHexChar(msg.Runes[0]), true
	}
	return session.Action{}, false
}
