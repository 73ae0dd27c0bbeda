package viewport

import (
	"github.com/google/uuid"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Visibility says where an absolute line sits relative to the window.
type Visibility int

const (
	Visible Visibility = iota
	AboveVisible
	BelowVisible
)

// RelativeLine is the result of translating an absolute line.
// Line is only meaningful when Visibility is Visible.
type RelativeLine struct {
	Visibility Visibility
	Line       int
}

// RelativePosition translates an absolute line into a window row.
func (r *Region) RelativePosition(id uuid.UUID, line int) RelativeLine {
	rel := line - r.LineOffset(id)
	switch {
	case rel < 0:
		return RelativeLine{Visibility: AboveVisible}
	case rel >= r.height:
		return RelativeLine{Visibility: BelowVisible}
	default:
		return RelativeLine{Visibility: Visible, Line: rel}
	}
}

// RelativeCursor translates pos into window coordinates, or returns false
// if it is off screen.
func (r *Region) RelativeCursor(id uuid.UUID, pos buffer.Position) (buffer.Position, bool) {
	rel := r.RelativePosition(id, pos.Line)
	if rel.Visibility != Visible {
		return buffer.Position{}, false
	}
	return buffer.Position{Line: rel.Line, Offset: pos.Offset}, true
}

// RelativeRange translates rng into window coordinates, clipping it to the
// visible lines. It returns false only when no part of rng is visible.
func (r *Region) RelativeRange(id uuid.UUID, rng buffer.Range) (buffer.Range, bool) {
	offset := r.LineOffset(id)
	start, end := rng.Start(), rng.End()

	first := offset
	// One past the last visible line; a range ending here at offset 0
	// covers the newline of the last visible line.
	limit := offset + r.height

	if end.Line < first || start.Line >= limit {
		return buffer.Range{}, false
	}

	if start.Line < first {
		start = buffer.Position{Line: first}
	}
	if end.Line >= limit {
		end = buffer.Position{Line: limit}
	}

	return buffer.NewRange(
		buffer.Position{Line: start.Line - offset, Offset: start.Offset},
		buffer.Position{Line: end.Line - offset, Offset: end.Offset},
	), true
}
