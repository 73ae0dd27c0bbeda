// Package statusline lays out the status line drawn on the bottom row.
package statusline

import (
	"github.com/dshills/quill/internal/renderer/core"
)

// Segment is one piece of the status line.
type Segment struct {
	Content string
	Style   core.Style
}

// modeStyles holds the label colors for each mode display name.
var modeStyles = map[string]core.Style{
	"NORMAL":      core.DefaultStyle().WithBackground(core.ColorBlue).WithForeground(core.ColorWhite),
	"INSERT":      core.DefaultStyle().WithBackground(core.ColorGreen).WithForeground(core.ColorBlack),
	"SELECT":      core.DefaultStyle().WithBackground(core.ColorMagenta).WithForeground(core.ColorWhite),
	"SELECT LINE": core.DefaultStyle().WithBackground(core.ColorBlue).WithForeground(core.ColorWhite),
	"OPEN":        core.DefaultStyle().WithBackground(core.ColorWhite).WithForeground(core.ColorBlack),
	"JUMP":        core.DefaultStyle().WithBackground(core.ColorRed).WithForeground(core.ColorWhite),
	"LINE JUMP":   core.DefaultStyle().WithBackground(core.ColorRed).WithForeground(core.ColorWhite),
	"SYMBOL":      core.DefaultStyle().WithBackground(core.ColorYellow).WithForeground(core.ColorBlack),
	"SEARCH":      core.DefaultStyle().WithBackground(core.ColorCyan).WithForeground(core.ColorBlack),
}

// BarStyle is used for segments without mode color.
var BarStyle = core.DefaultStyle().WithBackground(core.ColorGray).WithForeground(core.ColorWhite)

// ModeStyle returns the style for a mode's status line.
func ModeStyle(displayName string) core.Style {
	if s, ok := modeStyles[displayName]; ok {
		return s
	}
	return BarStyle
}

// ModeSegment returns the bold mode label.
func ModeSegment(displayName string) Segment {
	return Segment{Content: " " + displayName + " ", Style: ModeStyle(displayName).Bold()}
}

// BufferSegment returns the path segment, marked when modified.
func BufferSegment(path string, modified bool, style core.Style) Segment {
	if path == "" {
		path = "[No Name]"
	}
	if modified {
		path += " *"
	}
	return Segment{Content: " " + path, Style: style}
}

// Render lays segments out left to right across width cells. The last
// segment's style fills whatever space remains.
func Render(segments []Segment, width int) []core.Cell {
	cells := make([]core.Cell, 0, width)
	fill := BarStyle

	for _, seg := range segments {
		fill = seg.Style
		for _, r := range seg.Content {
			w := core.RuneWidth(r)
			if len(cells)+w > width {
				break
			}
			cells = append(cells, core.NewStyledCell(r, seg.Style))
			if w == 2 {
				cells = append(cells, core.Cell{Width: 0, Style: seg.Style})
			}
		}
	}

	for len(cells) < width {
		cells = append(cells, core.NewStyledCell(' ', fill))
	}
	return cells
}
