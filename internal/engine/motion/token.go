package motion

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Direction selects which way a token search runs.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Segment is one word-boundary segment of the content.
type Segment struct {
	Lexeme string
	Start  buffer.Position
	End    buffer.Position
}

// IsSpace returns true if the segment holds only whitespace.
func (s Segment) IsSpace() bool {
	return strings.TrimSpace(s.Lexeme) == ""
}

// Segments splits content into word-boundary segments in order.
func Segments(content string) []Segment {
	var segments []Segment
	pos := buffer.Position{}
	state := -1
	rest := content

	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)

		end := advance(pos, word)
		segments = append(segments, Segment{Lexeme: word, Start: pos, End: end})
		pos = end
	}

	return segments
}

// AdjacentToken finds the nearest non-whitespace token boundary from cursor.
//
// Searching forward returns the first token whose start (or end, when toEnd
// is set) lies strictly after the cursor. Searching backward returns the last
// one strictly before it, so a cursor inside a token lands on that token's
// own start.
func AdjacentToken(content string, cursor buffer.Position, dir Direction, toEnd bool) (buffer.Position, bool) {
	var found buffer.Position
	ok := false

	for _, seg := range Segments(content) {
		if seg.IsSpace() {
			continue
		}

		boundary := seg.Start
		if toEnd {
			boundary = seg.End
		}

		switch dir {
		case Forward:
			if boundary.After(cursor) {
				return boundary, true
			}
		case Backward:
			if boundary.Before(cursor) {
				found, ok = boundary, true
			} else {
				return found, ok
			}
		}
	}

	return found, ok
}
