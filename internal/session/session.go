// Package session implements the page state machine that turns symbolic
// actions into palette mutations.
//
// A Session is single-threaded: the caller alternates between reading a
// Snapshot for rendering and applying exactly one Action. No action is
// fatal; failures are reported through the status message.
package session

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/hueblocks/internal/color"
	"github.com/alexisbeaulieu97/hueblocks/internal/logger"
	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

// Clipboard is the system clipboard boundary.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures a new Session.
type Options struct {
	Blocks    int
	Theory    palette.Theory
	Engine    *palette.Engine
	Clipboard Clipboard
	Logger    *logger.Logger
}

// Status is the transient message shown after an action.
type Status struct {
	Text  string
	Error bool
}

// Snapshot is a read-only view of the session for the render boundary.
type Snapshot struct {
	Page      Page
	Theory    palette.Theory
	Blocks    []palette.Block
	Cursor    int
	CanDelete bool
	Status    Status
}

// Session owns the palette and the active page.
type Session struct {
	palette   *palette.Palette
	engine    *palette.Engine
	clipboard Clipboard
	log       *logger.Logger

	theory palette.Theory
	page   Page
	status Status
}

// New creates a session on the main page.
func New(opts Options) *Session {
	blocks := opts.Blocks
	if blocks == 0 {
		blocks = palette.DefaultBlocks
	}

	s := &Session{
		palette:   palette.New(blocks),
		engine:    opts.Engine,
		clipboard: opts.Clipboard,
		log:       opts.Logger,
		theory:    opts.Theory,
		page:      MainPage{},
	}

	s.log.WithTheory(s.theory).WithFields(map[string]any{
		"blocks": s.palette.Count(),
	}).Info("session started")

	return s
}

// Page returns the active page.
func (s *Session) Page() Page {
	return s.page
}

// Theory returns the theory used by Generate.
func (s *Session) Theory() palette.Theory {
	return s.theory
}

// Status returns the message produced by the last action.
func (s *Session) Status() Status {
	return s.status
}

// Snapshot captures everything needed to draw a frame.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Page:      s.page,
		Theory:    s.theory,
		Blocks:    s.palette.Blocks(),
		Cursor:    s.palette.Cursor(),
		CanDelete: s.palette.CanDelete(),
		Status:    s.status,
	}
}

// Apply performs one transition. It returns true when the run loop should
// end. Actions that do not apply to the active page are ignored.
func (s *Session) Apply(a Action) bool {
	if a.Kind == ActionNone {
		return false
	}
	s.status = Status{}

	switch page := s.page.(type) {
	case MainPage:
		return s.applyMain(a)
	case TheorySelectorPage:
		s.applyTheorySelector(page, a)
	case EditColorPage:
		s.applyEditColor(page, a)
	}
	return false
}

func (s *Session) applyMain(a Action) bool {
	switch a.Kind {
	case ActionQuit:
		s.log.Info("quit requested")
		return true
	case ActionCursorLeft:
		s.palette.MoveCursor(-1)
	case ActionCursorRight:
		s.palette.MoveCursor(1)
	case ActionDeleteSelected:
		s.deleteSelected()
	case ActionOpenTheorySelector:
		s.page = TheorySelectorPage{}
	case ActionOpenEditColor:
		s.page = EditColorPage{}
	case ActionToggleLockSelected:
		if slot, ok := s.palette.SelectedSlot(); ok {
			s.toggleLock(slot)
		}
	case ActionToggleLockByIndex:
		if a.Index < 1 || a.Index > palette.Capacity {
			return false
		}
		s.toggleLock(a.Index - 1)
	case ActionCopySelectedHex:
		s.copySelected()
	case ActionGenerate:
		s.generate()
	}
	return false
}

func (s *Session) applyTheorySelector(page TheorySelectorPage, a Action) {
	switch a.Kind {
	case ActionClose:
		s.page = MainPage{}
	case ActionFirst:
		s.page = page.move(-len(palette.Theories()))
	case ActionLast:
		s.page = page.move(len(palette.Theories()))
	case ActionPrevious:
		s.page = page.move(-1)
	case ActionNext:
		s.page = page.move(1)
	case ActionConfirm:
		s.theory = page.HighlightedTheory()
		s.page = MainPage{}
		s.status = Status{Text: fmt.Sprintf("Theory set to %s", s.theory)}
		s.log.WithTheory(s.theory).Debug("theory selected")
	}
}

func (s *Session) applyEditColor(page EditColorPage, a Action) {
	switch a.Kind {
	case ActionClose:
		s.page = MainPage{}
	case ActionAppendHexChar:
		if next, ok := page.append(a.Char); ok {
			s.page = next
		}
	case ActionBackspace:
		s.page = page.backspace()
	case ActionClearInput:
		s.page = EditColorPage{}
	case ActionCommit:
		s.commit(page)
	}
}

func (s *Session) deleteSelected() {
	removed, ok := s.palette.DeleteSelected()
	if !ok {
		s.status = Status{Text: fmt.Sprintf("A palette keeps at least %d blocks", palette.MinBlocks)}
		return
	}
	s.status = Status{Text: fmt.Sprintf("Deleted block %d", removed.ID)}
	s.log.WithBlock(removed.ID).WithFields(map[string]any{"remaining": s.palette.Count()}).Info("block deleted")
}

func (s *Session) toggleLock(slot int) {
	locked, err := s.palette.ToggleLockAt(slot)
	if err != nil {
		s.log.WithFields(map[string]any{"slot": slot + 1}).Debug(err.Error())
		return
	}
	b, _ := s.palette.Slot(slot)
	state := "Unlocked"
	if locked {
		state = "Locked"
	}
	s.status = Status{Text: fmt.Sprintf("%s block %d", state, b.ID)}
	s.log.WithBlock(b.ID).WithFields(map[string]any{"locked": locked}).Debug("lock toggled")
}

func (s *Session) copySelected() {
	sel, err := s.palette.Selected()
	if err != nil {
		s.status = Status{Text: err.Error(), Error: true}
		return
	}
	hex := sel.Hex()

	if err := s.writeClipboard(hex); err != nil {
		s.status = Status{Text: err.Error(), Error: true}
		s.log.WithHex(hex).Error(err, "clipboard write failed")
		return
	}
	s.status = Status{Text: fmt.Sprintf("Copied %s", hex)}
}

func (s *Session) writeClipboard(text string) error {
	if s.clipboard == nil {
		return apperrors.NewClipboardError(errors.New("no clipboard configured"))
	}
	err := s.clipboard.WriteAll(text)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrClipboardUnavailable) {
		return err
	}
	return apperrors.NewClipboardError(err)
}

func (s *Session) generate() {
	if s.engine == nil {
		return
	}
	stats := s.engine.Regenerate(s.palette, s.theory)
	if stats.Regenerated == 0 {
		s.status = Status{Text: "All blocks are locked"}
	} else {
		s.status = Status{Text: fmt.Sprintf("Generated %s palette", s.theory)}
	}
	s.log.WithTheory(stats.Theory).WithFields(map[string]any{
		"locked":      stats.Locked,
		"regenerated": stats.Regenerated,
		"seed_hue":    stats.SeedHue,
		"from_locked": stats.FromLocked,
	}).Info("palette regenerated")
}

func (s *Session) commit(page EditColorPage) {
	sel, err := s.palette.Selected()
	if err != nil {
		s.status = Status{Text: err.Error(), Error: true}
		return
	}
	hsv, err := color.HexToHSV(page.Input())
	if err != nil {
		s.status = Status{Text: err.Error(), Error: true}
		s.log.Warn(err.Error())
		return
	}

	sel.SetHSV(hsv.H, hsv.S, hsv.V)
	s.page = EditColorPage{}
	s.status = Status{Text: fmt.Sprintf("Block %d set to %s", sel.ID, sel.Hex())}
	s.log.WithBlock(sel.ID).WithHex(sel.Hex()).Info("color committed")
}
