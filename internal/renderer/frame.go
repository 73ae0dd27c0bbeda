package renderer

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/core"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/statusline"
)

// BufferData is the visible part of a buffer, in window coordinates.
type BufferData struct {
	// Tokens cover the visible lines only; the first token starts on
	// window row 0.
	Tokens []highlight.Token

	// Cursor is the window-relative cursor, nil when off screen or hidden.
	Cursor *buffer.Position

	// Highlight is the window-relative selection, nil when there is none.
	Highlight *buffer.Range

	// Line numbers shown in the gutter are row+ScrollOffset+1 while they
	// stay below LineCount.
	LineCount    int
	ScrollOffset int
	GutterWidth  int
}

// JumpTag labels a window-relative position.
type JumpTag struct {
	Position buffer.Position
	Label    string
}

// OverlayLine is a full-width row drawn above buffer content.
type OverlayLine struct {
	Row     int
	Content string
	Style   core.Style
}

// Frame is everything drawn in one pass.
type Frame struct {
	Buffer   *BufferData
	Tags     []JumpTag
	Overlays []OverlayLine
	Status   []statusline.Segment

	// Cursor pins the screen cursor, overriding the buffer cursor.
	Cursor      *core.ScreenPos
	CursorStyle backend.CursorStyle
}
