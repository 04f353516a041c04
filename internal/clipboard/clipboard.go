// Package clipboard adapts the system clipboard to the session boundary.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

var errUnsupported = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// System writes to the OS clipboard.
type System struct {
	write       func(string) error
	unsupported bool
}

// NewSystem returns the OS clipboard adapter.
func NewSystem() *System {
	return &System{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// WriteAll places text on the clipboard. Failures match
// errors.ErrClipboardUnavailable.
func (s *System) WriteAll(text string) error {
	if s.unsupported {
		return apperrors.NewClipboardError(errUnsupported)
	}
	if err := s.write(text); err != nil {
		return apperrors.NewClipboardError(err)
	}
	return nil
}
