package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/motion"
	"github.com/dshills/quill/internal/input/mode"
)

// selection returns the text range the current selection mode covers and
// the clipboard kind it copies as.
func selection(a *app.Application, buf *buffer.Buffer) (buffer.Range, app.ClipboardKind, bool) {
	cursor := buf.Cursor().Position()
	switch m := a.Mode.(type) {
	case *mode.Select:
		return m.Range(cursor), app.ClipboardInline, true
	case *mode.SelectLine:
		return motion.InclusiveRange(buf.Data(), m.ToRange(cursor)), app.ClipboardBlock, true
	default:
		return buffer.Range{}, app.ClipboardEmpty, false
	}
}

// copySelection puts the selected text on the clipboard.
func copySelection(a *app.Application, buf *buffer.Buffer) (buffer.Range, bool) {
	rng, kind, ok := selection(a, buf)
	if !ok {
		return rng, false
	}
	text := buf.Read(rng)
	if kind == app.ClipboardBlock && (text == "" || text[len(text)-1] != '\n') {
		text += "\n"
	}
	setClipboard(a, app.ClipboardContent{Kind: kind, Text: text})
	return rng, true
}

// deleteSelection copies and removes the selection, leaving the cursor at
// its start.
func deleteSelection(a *app.Application, buf *buffer.Buffer) bool {
	rng, ok := copySelection(a, buf)
	if !ok {
		return false
	}
	buf.DeleteRange(rng)
	buf.Cursor().MoveTo(rng.Start())
	return true
}

// CopySelection copies the selection and returns to normal mode.
func CopySelection(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		if _, ok := copySelection(a, buf); ok {
			SwitchToNormalMode(a)
		}
	})
}

// CopyAndDeleteSelection cuts the selection and returns to normal mode.
func CopyAndDeleteSelection(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		if deleteSelection(a, buf) {
			SwitchToNormalMode(a)
		}
	})
	ScrollToCursor(a)
}

// ChangeSelection cuts the selection and enters insert mode. The delete
// and the text typed afterwards undo as one group.
func ChangeSelection(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		if _, _, ok := selection(a, buf); !ok {
			return
		}
		buf.StartOperationGroup()
		deleteSelection(a, buf)
		a.SwitchMode(&mode.Insert{})
	})
	ScrollToCursor(a)
}
