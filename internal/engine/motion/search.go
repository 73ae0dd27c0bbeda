package motion

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Matches returns the start of every occurrence of query in content.
func Matches(content, query string) []buffer.Position {
	if query == "" {
		return nil
	}

	var matches []buffer.Position
	pos := buffer.Position{}
	consumed := 0

	for {
		i := strings.Index(content[consumed:], query)
		if i < 0 {
			return matches
		}
		pos = advance(pos, content[consumed:consumed+i])
		matches = append(matches, pos)

		// Step over the first rune of the match so overlapping matches count.
		_, step := utf8.DecodeRuneInString(content[consumed+i:])
		pos = advance(pos, content[consumed+i:consumed+i+step])
		consumed += i + step
	}
}

// NextMatch returns the first match after cursor, wrapping to the top.
func NextMatch(content string, cursor buffer.Position, query string) (buffer.Position, bool) {
	matches := Matches(content, query)
	if len(matches) == 0 {
		return buffer.Position{}, false
	}
	for _, m := range matches {
		if m.After(cursor) {
			return m, true
		}
	}
	return matches[0], true
}

// PreviousMatch returns the last match before cursor, wrapping to the bottom.
func PreviousMatch(content string, cursor buffer.Position, query string) (buffer.Position, bool) {
	matches := Matches(content, query)
	if len(matches) == 0 {
		return buffer.Position{}, false
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Before(cursor) {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}

// advance moves pos over text.
func advance(pos buffer.Position, text string) buffer.Position {
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Offset = 0
		} else {
			pos.Offset++
		}
	}
	return pos
}
