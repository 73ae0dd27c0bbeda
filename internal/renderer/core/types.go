// Package core holds the cell and style values shared by the renderer, its
// backends and the presenter. It imports nothing from quill.
package core

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Attribute is a bit set of text attributes.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrUnderline
	// AttrReverse swaps foreground and background; highlighted text uses it.
	AttrReverse
)

func (a Attribute) Has(attr Attribute) bool { return a&attr != 0 }

// Color is either a 24-bit RGB value, an index into the terminal's 256 colour
// palette (held in R), or the terminal default.
type Color struct {
	R, G, B uint8
	Indexed bool
	Default bool
}

// ColorDefault leaves the terminal's own colour in place.
var ColorDefault = Color{Default: true}

// The first nine palette entries; their actual values follow the user's
// terminal theme.
var (
	ColorBlack   = ColorFromIndex(0)
	ColorRed     = ColorFromIndex(1)
	ColorGreen   = ColorFromIndex(2)
	ColorYellow  = ColorFromIndex(3)
	ColorBlue    = ColorFromIndex(4)
	ColorMagenta = ColorFromIndex(5)
	ColorCyan    = ColorFromIndex(6)
	ColorWhite   = ColorFromIndex(7)
	ColorGray    = ColorFromIndex(8)
)

func ColorFromRGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

func ColorFromIndex(i uint8) Color { return Color{R: i, Indexed: true} }

func (c Color) IsDefault() bool { return c.Default }

func (c Color) String() string {
	switch {
	case c.Default:
		return "default"
	case c.Indexed:
		return fmt.Sprintf("palette %d", c.R)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Style is how a cell is painted. The zero Style paints black on black; use
// DefaultStyle for the terminal defaults.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// The builders below return modified copies.

func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is one screen cell. A wide rune occupies its own cell with Width 2
// followed by a cell with Width 0.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell is a blank in the default style.
func EmptyCell() Cell { return NewStyledCell(' ', DefaultStyle()) }

func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth is the number of columns r occupies. Zero width and control
// runes are given one column so that every rune stays visible.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth is the column width of s as the terminal would lay it out.
func StringWidth(s string) int { return runewidth.StringWidth(s) }

// ScreenPos addresses a cell from the top left corner.
type ScreenPos struct {
	Row, Col int
}
