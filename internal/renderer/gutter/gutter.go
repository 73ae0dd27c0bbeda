// Package gutter formats the line number column drawn left of buffer content.
package gutter

import (
	"strconv"
	"strings"
)

// Gap is the number of blank columns between the numbers and the content.
const Gap = 2

// Width returns the gutter width for a window of height rows starting at
// offset over a buffer of lineCount lines. It fits the largest line number
// actually on screen, plus one leading column and the gap.
func Width(offset, height, lineCount int) int {
	largest := offset + height
	if largest > lineCount {
		largest = lineCount
	}
	if largest <= offset {
		largest = offset + 1
	}
	return NumberWidth(largest) + Gap
}

// NumberWidth returns the width of the number field for n: its digits plus
// one leading column.
func NumberWidth(n int) int {
	return len(strconv.Itoa(n)) + 1
}

// Format renders the 1-based line number n right-aligned in a gutter of the
// given total width, followed by the gap.
func Format(n, width int) string {
	return PadLeft(strconv.Itoa(n), width-Gap) + strings.Repeat(" ", Gap)
}

// PadLeft pads s with spaces on the left to the given width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
