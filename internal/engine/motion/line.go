package motion

import (
	"strings"
	"unicode"

	"github.com/dshills/quill/internal/engine/buffer"
)

// FirstWordOfLine returns the rune offset of the first non-whitespace
// character in line. Blank lines have no first word.
func FirstWordOfLine(line string) (int, bool) {
	offset := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return offset, true
		}
		offset++
	}
	return 0, false
}

// InclusiveRange converts a line range into a range that covers the whole of
// its last line. When a line follows the range the trailing newline is
// included by ending at the start of that line; otherwise the range ends at
// the end of the last line.
func InclusiveRange(content string, lines buffer.LineRange) buffer.Range {
	next := lines.End() + 1
	lineCount := strings.Count(content, "\n") + 1

	var end buffer.Position
	if lineCount > next {
		end = buffer.Position{Line: next, Offset: 0}
	} else {
		end = buffer.Position{Line: lines.End(), Offset: 0}
		if all := strings.Split(content, "\n"); lines.End() < len(all) {
			end.Offset = len([]rune(all[lines.End()]))
		}
	}

	return buffer.NewRange(buffer.Position{Line: lines.Start(), Offset: 0}, end)
}
