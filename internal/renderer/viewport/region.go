// Package viewport maps a buffer's absolute lines onto the rows of the
// screen.
//
// A Region keeps one scroll offset per buffer, keyed by buffer ID. Buffers
// that were never scrolled have offset 0. Offsets never go negative, but may
// run past the end of a buffer; rows with no content are simply drawn empty.
package viewport

import (
	"github.com/google/uuid"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Region tracks the visible window of every open buffer.
type Region struct {
	height      int
	lineOffsets map[uuid.UUID]int
}

// NewRegion creates a region showing height lines.
// Height is clamped to a minimum of 1.
func NewRegion(height int) *Region {
	if height < 1 {
		height = 1
	}
	return &Region{
		height:      height,
		lineOffsets: make(map[uuid.UUID]int),
	}
}

// Height returns the number of visible lines.
func (r *Region) Height() int {
	return r.height
}

// SetHeight changes the number of visible lines. Offsets are kept.
func (r *Region) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	r.height = height
}

// LineOffset returns the first visible line of the buffer.
func (r *Region) LineOffset(id uuid.UUID) int {
	return r.lineOffsets[id]
}

// VisibleRange returns the absolute lines the window covers, inclusive.
func (r *Region) VisibleRange(id uuid.UUID) buffer.LineRange {
	offset := r.LineOffset(id)
	return buffer.NewLineRange(offset, offset+r.height-1)
}

// ScrollUp moves the window up by n lines, stopping at the top.
func (r *Region) ScrollUp(id uuid.UUID, n int) {
	offset, ok := r.lineOffsets[id]
	if !ok {
		return
	}
	offset -= n
	if offset < 0 {
		offset = 0
	}
	r.lineOffsets[id] = offset
}

// ScrollDown moves the window down by n lines.
func (r *Region) ScrollDown(id uuid.UUID, n int) {
	if n < 0 {
		n = 0
	}
	r.lineOffsets[id] += n
}

// ScrollToCursor moves the window the least distance that makes line
// visible. It does nothing when the line is already visible.
func (r *Region) ScrollToCursor(id uuid.UUID, line int) {
	if line < 0 {
		line = 0
	}
	offset := r.LineOffset(id)

	switch {
	case line < offset:
		r.lineOffsets[id] = line
	case line >= offset+r.height:
		r.lineOffsets[id] = line - r.height + 1
	}
}

// Forget drops the offset of a closed buffer.
func (r *Region) Forget(id uuid.UUID) {
	delete(r.lineOffsets, id)
}
