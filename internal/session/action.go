package session

// ActionKind enumerates the symbolic inputs the state machine understands.
type ActionKind int

const (
	ActionNone ActionKind = iota

	// Main page.
	ActionQuit
	ActionCursorLeft
	ActionCursorRight
	ActionDeleteSelected
	ActionOpenTheorySelector
	ActionOpenEditColor
	ActionToggleLockSelected
	ActionCopySelectedHex
	ActionToggleLockByIndex
	ActionGenerate

	// Shared by the popups.
	ActionClose

	// Theory selector.
	ActionFirst
	ActionLast
	ActionPrevious
	ActionNext
	ActionConfirm

	// Edit color.
	ActionAppendHexChar
	ActionBackspace
	ActionClearInput
	ActionCommit
)

var actionNames = map[ActionKind]string{
	ActionNone:               "none",
	ActionQuit:               "quit",
	ActionCursorLeft:         "cursor-left",
	ActionCursorRight:        "cursor-right",
	ActionDeleteSelected:     "delete-selected",
	ActionOpenTheorySelector: "open-theory-selector",
	ActionOpenEditColor:      "open-edit-color",
	ActionToggleLockSelected: "toggle-lock-selected",
	ActionCopySelectedHex:    "copy-selected-hex",
	ActionToggleLockByIndex:  "toggle-lock-by-index",
	ActionGenerate:           "generate",
	ActionClose:              "close",
	ActionFirst:              "first",
	ActionLast:               "last",
	ActionPrevious:           "previous",
	ActionNext:               "next",
	ActionConfirm:            "confirm",
	ActionAppendHexChar:      "append-hex-char",
	ActionBackspace:          "backspace",
	ActionClearInput:         "clear-input",
	ActionCommit:             "commit",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is one discrete user input. Char is set for ActionAppendHexChar and
// Index (1..9) for ActionToggleLockByIndex.
type Action struct {
	Kind  ActionKind
	Char  rune
	Index int
}

// Do builds a payload-free action.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// AppendHexChar builds the action that types c into the hex buffer.
func AppendHexChar(c rune) Action {
	return Action{Kind: ActionAppendHexChar, Char: c}
}

// ToggleLockByIndex builds the numeric lock shortcut for block n (1..9).
func ToggleLockByIndex(n int) Action {
	return Action{Kind: ActionToggleLockByIndex, Index: n}
}
