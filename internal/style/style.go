// Package style holds the per-cell styling values (truecolor foreground,
// background and an SGR attribute bitset) and their escape-sequence form.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit truecolor value.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
)

// NewRGB builds a color from int channels, saturating each to [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a "#rgb" or "#rrggbb" color string.
func ParseRGB(s string) (RGB, error) {
	col, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Attr is a bitset of text attributes. The zero value means no attributes,
// which is emitted as an SGR reset rather than an attribute code.
type Attr uint16

// Attribute flags. Bits above AttrStrikethrough are accepted but never
// produce an escape code.
const (
	AttrReset Attr = 0
	AttrBold  Attr = 1 << (iota - 1)
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrInvisible
	AttrStrikethrough
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrFaint, "faint"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrInvisible, "invisible"},
	{AttrStrikethrough, "strikethrough"},
}

// String lists the set flags joined by "|", or "reset" for the zero value.
func (a Attr) String() string {
	if a == AttrReset {
		return "reset"
	}
	var names []string
	for _, n := range attrNames {
		if a&n.attr != 0 {
			names = append(names, n.name)
		}
	}
	if rest := a &^ (AttrStrikethrough<<1 - 1); rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(names, "|")
}

// ParseAttrs parses a "|" or "," separated list of attribute names.
// An empty string and "reset" both yield AttrReset.
func ParseAttrs(s string) (Attr, error) {
	var a Attr
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || f == "reset" {
			continue
		}
		found := false
		for _, n := range attrNames {
			if n.name == f {
				a |= n.attr
				found = true
				break
			}
		}
		if !found {
			return AttrReset, fmt.Errorf("unknown attribute %q", f)
		}
	}
	return a, nil
}

// Style is the full styling of one cell.
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// DefaultStyle is white on black with no attributes.
func DefaultStyle() Style {
	return Style{Fg: White, Bg: Black}
}

// BorderStyle is the fixed black on white style used for panel borders.
func BorderStyle() Style {
	return Style{Fg: Black, Bg: White}
}

// New returns a style with the given colors and attributes.
func New(fg, bg RGB, attrs Attr) Style {
	return Style{Fg: fg, Bg: bg, Attrs: attrs}
}

// SetFg sets the foreground, clamping each channel to [0,255].
func (s *Style) SetFg(r, g, b int) {
	s.Fg = NewRGB(r, g, b)
}

// SetBg sets the background, clamping each channel to [0,255].
func (s *Style) SetBg(r, g, b int) {
	s.Bg = NewRGB(r, g, b)
}

// SetAttrs stores the attribute bitset verbatim.
func (s *Style) SetAttrs(a Attr) {
	s.Attrs = a
}

// WithAttrs returns a copy of s carrying a.
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs = a
	return s
}
