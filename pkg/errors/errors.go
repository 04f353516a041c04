package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrInvalidDigit is matched by every HexError.
	ErrInvalidDigit = stdErrors.New("invalid hex digit")
	// ErrClipboardUnavailable is matched by every ClipboardError.
	ErrClipboardUnavailable = stdErrors.New("clipboard unavailable")
	// ErrSelectionEmpty is matched by every SelectionError.
	ErrSelectionEmpty = stdErrors.New("selection empty")
)

// ParseError represents a configuration file decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HexError reports a character that is not a hexadecimal digit.
type HexError struct {
	Input    string
	Position int
	Char     rune
}

// NewHexError constructs a HexError for the character at position.
func NewHexError(input string, position int, char rune) error {
	return &HexError{Input: input, Position: position, Char: char}
}

func (e *HexError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid hex digit %q at position %d in %q", e.Char, e.Position, e.Input)
}

// Is lets errors.Is match ErrInvalidDigit.
func (e *HexError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// ClipboardError wraps a failure reported by the system clipboard.
type ClipboardError struct {
	Err error
}

// NewClipboardError constructs a ClipboardError.
func NewClipboardError(err error) error {
	return &ClipboardError{Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("clipboard unavailable: %v", e.Err)
	}
	return "clipboard unavailable"
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match ErrClipboardUnavailable.
func (e *ClipboardError) Is(target error) bool {
	return target == ErrClipboardUnavailable
}

// SelectionError indicates an operation addressed an empty palette slot.
type SelectionError struct {
	Slot int
}

// NewSelectionError constructs a SelectionError for a zero-based slot.
func NewSelectionError(slot int) error {
	return &SelectionError{Slot: slot}
}

func (e *SelectionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("slot %d is empty", e.Slot+1)
}

// Is lets errors.Is match ErrSelectionEmpty.
func (e *SelectionError) Is(target error) bool {
	return target == ErrSelectionEmpty
}
