package session

import (
	"github.com/alexisbeaulieu97/hueblocks/internal/color"
	"github.com/alexisbeaulieu97/hueblocks/internal/palette"
)

// PageKind names the active page.
type PageKind int

const (
	PageMain PageKind = iota
	PageTheorySelector
	PageEditColor
)

func (k PageKind) String() string {
	switch k {
	case PageMain:
		return "main"
	case PageTheorySelector:
		return "theory-selector"
	case PageEditColor:
		return "edit-color"
	default:
		return "unknown"
	}
}

// Page is the active UI state. Only the concrete page types in this package
// implement it.
type Page interface {
	Kind() PageKind
	isPage()
}

// MainPage shows the block row.
type MainPage struct{}

func (MainPage) Kind() PageKind { return PageMain }
func (MainPage) isPage()        {}

// TheorySelectorPage shows the theory list with one highlighted entry.
type TheorySelectorPage struct {
	highlighted int
}

func (TheorySelectorPage) Kind() PageKind { return PageTheorySelector }
func (TheorySelectorPage) isPage()        {}

// Highlighted returns the index into palette.Theories().
func (p TheorySelectorPage) Highlighted() int {
	return p.highlighted
}

// HighlightedTheory returns the theory under the marker.
func (p TheorySelectorPage) HighlightedTheory() palette.Theory {
	return palette.Theories()[p.highlighted]
}

func (p TheorySelectorPage) move(delta int) TheorySelectorPage {
	last := len(palette.Theories()) - 1
	next := p.highlighted + delta
	if next < 0 {
		next = 0
	}
	if next > last {
		next = last
	}
	return TheorySelectorPage{highlighted: next}
}

// EditColorPage owns the hex input buffer. The buffer only exists while
// this page is active.
type EditColorPage struct {
	input string
}

func (EditColorPage) Kind() PageKind { return PageEditColor }
func (EditColorPage) isPage()        {}

// Input returns the typed hex digits, at most six.
func (p EditColorPage) Input() string {
	return p.input
}

// Preview returns the color the current input would commit to.
func (p EditColorPage) Preview() color.RGB {
	rgb, err := color.HexToRGB(p.input)
	if err != nil {
		return color.RGB{}
	}
	return rgb
}

func (p EditColorPage) append(r rune) (EditColorPage, bool) {
	if !color.IsHexDigit(r) || len(p.input) >= color.HexLength {
		return p, false
	}
	return EditColorPage{input: p.input + string(r)}, true
}

func (p EditColorPage) backspace() EditColorPage {
	if p.input == "" {
		return p
	}
	return EditColorPage{input: p.input[:len(p.input)-1]}
}
