// Package tui is the terminal boundary: it turns key presses into session
// actions and draws session snapshots with lipgloss.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/hueblocks/internal/logger"
	"github.com/alexisbeaulieu97/hueblocks/internal/session"
)

// DefaultTitle is shown in the header when none is configured.
const DefaultTitle = "Color Palette"

// Model is the Bubble Tea model wrapping a palette session.
type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	log     *logger.Logger

	title    string
	width    int
	height   int
	quitting bool
}

// NewModel builds a model around an existing session.
func NewModel(s *session.Session, title string, log *logger.Logger) Model {
	if title == "" {
		title = DefaultTitle
	}

	return Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     log,
		title:   title,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the wrapped session.
func (m Model) Session() *session.Session {
	return m.session
}

// Quitting reports whether the run loop has been asked to stop.
func (m Model) Quitting() bool {
	return m.quitting
}
