// Package backend is the boundary between quill's renderer and the device
// that shows its cells. Terminal drives a real tty through tcell; NullBackend
// keeps everything in memory for tests.
package backend

import "github.com/dshills/quill/internal/renderer/core"

// CursorStyle is the cursor shape requested for the current mode.
type CursorStyle int

// Cursor shapes. CursorHidden leaves no cursor on screen at all.
const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorHidden
)

// EventType tags an Event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventClosed means the device is gone; the editor loop stops on it.
	EventClosed
)

// Event is what PollEvent hands back. Key, Rune and Mod are set for EventKey;
// Width and Height for EventResize.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Mod    ModMask
	Width  int
	Height int
}

// Key names a key the device reports. KeyRune carries its character in
// Event.Rune; the rest are the named keys the editor binds.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
)

// Navigation keys.
const (
	KeyHome Key = iota + KeyDelete + 1
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ModMask is a set of held modifiers.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether mod is held.
func (m ModMask) Has(mod ModMask) bool { return m&mod != 0 }

// Backend is a cell grid plus an input queue. The editor only touches it from
// its own goroutine; Init comes first and Shutdown last.
type Backend interface {
	Init() error
	Shutdown()

	// Size is the grid in columns and rows.
	Size() (width, height int)

	// SetCell writes one cell. Out of range coordinates are dropped.
	SetCell(x, y int, cell core.Cell)
	Clear()
	// Show makes everything written since the last Show visible.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the device has something to report.
	PollEvent() Event
	// PostEvent queues ev as if the device had produced it.
	PostEvent(ev Event)
}
