// Package buffer holds the text of an open file along with its cursor and
// edit history.
//
// Content is kept as a slice of lines. All offsets exposed by the package are
// rune indices within a line, never byte offsets, so callers can move the
// cursor over multi-byte text without decoding anything themselves.
//
// Basic usage:
//
//	buf := buffer.New(buffer.WithContent("ink\neditor"))
//	buf.Cursor().MoveTo(buffer.Position{Line: 1, Offset: 0})
//	buf.Insert("modal ")  // "ink\nmodal editor"
//
// Edits are recorded in an undo history. Compound edits can be bracketed with
// StartOperationGroup and EndOperationGroup so they are undone as a unit.
//
// A Buffer is not safe for concurrent use; the editor drives it from a single
// goroutine.
package buffer
