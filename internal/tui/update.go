package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/hueblocks/internal/session"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c leaves from any page, popups included.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Pastes and fast typing arrive as one message carrying several runes.
	// Each rune is its own key press.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			var cmd tea.Cmd
			m, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
			if m.quitting {
				return m, cmd
			}
		}
		return m, nil
	}

	return m.handleKey(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	kind := m.session.Page().Kind()
	if kind == session.PageMain && msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, ok := m.keys.resolve(kind, msg)
	if !ok {
		return m, nil
	}

	m.log.WithFields(map[string]any{
		"key":    msg.String(),
		"action": action.Kind.String(),
		"page":   kind.String(),
	}).Debug("key resolved")

	if m.session.Apply(action) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}
