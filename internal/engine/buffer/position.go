package buffer

import (
	"cmp"
	"fmt"
	"sync/atomic"
)

// Position is a line and offset within a buffer.
// Both are 0-indexed; Offset counts runes from the start of the line.
type Position struct {
	Line   int
	Offset int
}

func (p Position) String() string { return fmt.Sprintf("(%d:%d)", p.Line, p.Offset) }

// Compare orders positions by line, then offset.
func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset, other.Offset)
}

func (p Position) Before(other Position) bool { return p.Compare(other) < 0 }
func (p Position) After(other Position) bool  { return p.Compare(other) > 0 }

// Range is a span of positions. Start is inclusive, End is exclusive.
type Range struct {
	start Position
	end   Position
}

// NewRange creates a range covering both positions, ordering them if needed.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{start: a, end: b}
}

// Start returns the inclusive start of the range.
func (r Range) Start() Position { return r.start }

// End returns the exclusive end of the range.
func (r Range) End() Position { return r.end }

// IsEmpty returns true if the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.start == r.end
}

// Includes returns true if pos lies inside the range.
func (r Range) Includes(pos Position) bool {
	return !pos.Before(r.start) && pos.Before(r.end)
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s)", r.start, r.end)
}

// LineRange is an inclusive span of whole lines.
type LineRange struct {
	start int
	end   int
}

// NewLineRange creates a line range covering both lines, ordering them if needed.
func NewLineRange(a, b int) LineRange {
	if b < a {
		a, b = b, a
	}
	return LineRange{start: a, end: b}
}

// Start returns the first line of the range.
func (r LineRange) Start() int { return r.start }

// End returns the last line of the range.
func (r LineRange) End() int { return r.end }

// Includes returns true if line lies inside the range.
func (r LineRange) Includes(line int) bool {
	return line >= r.start && line <= r.end
}

// RevisionID identifies a buffer's content. Every edit takes a fresh ID;
// undo and redo bring back the ID the content had before, so equal IDs always
// mean equal content.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
