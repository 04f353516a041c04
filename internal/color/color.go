// Package color converts between hex codes, RGB triples and HSV triples.
//
// All functions are pure. Hue is expressed in degrees and always normalized
// into [0,360); saturation and value are clamped into [0,1].
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

// HexLength is the number of digits in a full RRGGBB code.
const HexLength = 6

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// HSV is a hue/saturation/value color. Construct it with NewHSV so the hue
// is normalized.
type HSV struct {
	H float64
	S float64
	V float64
}

// NewHSV builds an HSV value, wrapping the hue into [0,360) (negative hues
// wrap upwards) and clamping saturation and value into [0,1].
func NewHSV(h, s, v float64) HSV {
	return HSV{H: NormalizeHue(h), S: clamp01(s), V: clamp01(v)}
}

// NormalizeHue maps any finite angle into [0,360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative angle can round back up to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// IsHexDigit reports whether r is 0-9, a-f or A-F.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// PadHex treats text as a prefix of a six digit code: it right-pads with '0'
// up to six characters and keeps the first six. A single leading '#' is
// dropped first.
func PadHex(text string) string {
	text = strings.TrimPrefix(text, "#")
	if len(text) < HexLength {
		text += strings.Repeat("0", HexLength-len(text))
	}
	return text[:HexLength]
}

// HexToRGB parses text as a (possibly partial) hex code. Missing trailing
// digits are zero. Any non-hex character among the six used characters
// yields an error matching errors.ErrInvalidDigit.
func HexToRGB(text string) (RGB, error) {
	padded := PadHex(text)
	for i, r := range padded {
		if !IsHexDigit(r) {
			return RGB{}, apperrors.NewHexError(text, i, r)
		}
	}

	c, err := colorful.Hex("#" + padded)
	if err != nil {
		return RGB{}, fmt.Errorf("decode %q: %w", padded, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHSV converts an 8-bit color to HSV. Grays (r=g=b) have hue 0 and
// saturation 0.
func RGBToHSV(c RGB) HSV {
	h, s, v := toColorful(c).Hsv()
	return NewHSV(h, s, v)
}

// HSVToRGB converts to 8-bit channels, rounding each to the nearest integer.
func HSVToRGB(c HSV) RGB {
	c = NewHSV(c.H, c.S, c.V)
	r, g, b := colorful.Hsv(c.H, c.S, c.V).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ToHex formats c as #RRGGBB with uppercase digits.
func ToHex(c HSV) string {
	return HSVToRGB(c).Hex()
}

// HexToHSV parses a (possibly partial) hex code straight to HSV.
func HexToHSV(text string) (HSV, error) {
	rgb, err := HexToRGB(text)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(rgb), nil
}

// Hex formats the color as #RRGGBB with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
