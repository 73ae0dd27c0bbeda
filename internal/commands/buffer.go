package commands

import (
	"strings"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/motion"
	"github.com/dshills/quill/internal/input/mode"
)

// indent is the text indent_line adds and outdent_line removes.
const indent = "  "

// StartCommandGroup begins an edit group on the current buffer.
func StartCommandGroup(a *app.Application) {
	withBuffer(a, (*buffer.Buffer).StartOperationGroup)
}

// EndCommandGroup closes the current buffer's edit group.
func EndCommandGroup(a *app.Application) {
	withBuffer(a, (*buffer.Buffer).EndOperationGroup)
}

// InsertNewline breaks the line at the cursor and moves to the start of
// the new line.
func InsertNewline(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		buf.Insert("\n")
		buf.Cursor().MoveDown()
		buf.Cursor().MoveToStartOfLine()
	})
	ScrollToCursor(a)
}

// InsertTab inserts spaces up to the next tab stop.
func InsertTab(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		width := a.Config.TabWidth
		n := width - buf.Cursor().Offset()%width
		buf.Insert(strings.Repeat(" ", n))
		pos := buf.Cursor().Position()
		buf.Cursor().MoveTo(buffer.Position{Line: pos.Line, Offset: pos.Offset + n})
	})
}

// InsertText returns a command typing text at the cursor and moving past
// it.
func InsertText(text string) Command {
	return func(a *app.Application) {
		withEditableBuffer(a, func(buf *buffer.Buffer) {
			buf.Insert(text)
			for range text {
				buf.Cursor().MoveRight()
			}
		})
		ScrollToCursor(a)
	}
}

// Backspace removes the character before the cursor, joining lines at
// the start of a line.
func Backspace(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		cursor := buf.Cursor()
		switch {
		case cursor.Offset() > 0:
			cursor.MoveLeft()
		case cursor.Line() > 0:
			cursor.MoveUp()
			cursor.MoveToEndOfLine()
		default:
			return
		}
		buf.Delete()
	})
	ScrollToCursor(a)
}

// Delete removes the character at the cursor.
func Delete(a *app.Application) {
	withEditableBuffer(a, (*buffer.Buffer).Delete)
}

// DeleteLine removes the cursor line and puts it on the clipboard.
func DeleteLine(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		line := buf.Cursor().Line()
		rng := motion.InclusiveRange(buf.Data(), buffer.NewLineRange(line, line))

		// The last line has no newline of its own; take the one before it.
		text := buf.Read(rng)
		if !strings.HasSuffix(text, "\n") {
			if line > 0 {
				prev := buffer.Position{Line: line - 1, Offset: buf.LineLength(line - 1)}
				rng = buffer.NewRange(prev, rng.End())
			}
			text += "\n"
		}

		setClipboard(a, app.ClipboardContent{Kind: app.ClipboardBlock, Text: text})
		buf.DeleteRange(rng)

		if line >= buf.LineCount() {
			line = buf.LineCount() - 1
		}
		buf.Cursor().MoveTo(buffer.Position{Line: line})
	})
	ScrollToCursor(a)
}

// editedLines returns the lines indent and outdent apply to: the selected
// lines in select line mode, else the cursor line.
func editedLines(a *app.Application, buf *buffer.Buffer) buffer.LineRange {
	cursor := buf.Cursor().Position()
	if m, ok := a.Mode.(*mode.SelectLine); ok {
		return m.ToRange(cursor)
	}
	return buffer.NewLineRange(cursor.Line, cursor.Line)
}

// IndentLine indents the affected lines as one undoable change.
func IndentLine(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		lines := editedLines(a, buf)
		cursor := buf.Cursor().Position()

		buf.StartOperationGroup()
		for l := lines.Start(); l <= lines.End(); l++ {
			buf.InsertAt(buffer.Position{Line: l}, indent)
		}
		buf.EndOperationGroup()

		cursor.Offset += len(indent)
		buf.Cursor().MoveTo(cursor)
	})
}

// OutdentLine removes up to one indent of leading spaces from the
// affected lines.
func OutdentLine(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		lines := editedLines(a, buf)
		cursor := buf.Cursor().Position()

		buf.StartOperationGroup()
		for l := lines.Start(); l <= lines.End(); l++ {
			text, _ := buf.Line(l)
			n := len(text) - len(strings.TrimLeft(text, " "))
			if n > len(indent) {
				n = len(indent)
			}
			if n == 0 {
				continue
			}
			buf.DeleteRange(buffer.NewRange(buffer.Position{Line: l}, buffer.Position{Line: l, Offset: n}))
			if l == cursor.Line {
				cursor.Offset = max(cursor.Offset-n, 0)
			}
		}
		buf.EndOperationGroup()

		buf.Cursor().MoveTo(cursor)
	})
}

// Paste inserts the clipboard. Inline text goes at the cursor; blocks go
// on their own lines below the cursor line. The cursor does not move.
func Paste(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		content := a.Clipboard.Get()
		cursor := buf.Cursor().Position()

		switch content.Kind {
		case app.ClipboardInline:
			buf.Insert(content.Text)
		case app.ClipboardBlock:
			text := strings.TrimSuffix(content.Text, "\n")
			if cursor.Line+1 < buf.LineCount() {
				buf.InsertAt(buffer.Position{Line: cursor.Line + 1}, text+"\n")
			} else {
				end := buffer.Position{Line: cursor.Line, Offset: buf.LineLength(cursor.Line)}
				buf.InsertAt(end, "\n"+text)
			}
		default:
			return
		}
		buf.Cursor().MoveTo(cursor)
	})
	ScrollToCursor(a)
}

// Undo reverts the last edit group.
func Undo(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		_ = buf.Undo() // nothing to undo is not an error worth reporting
	})
	ScrollToCursor(a)
}

// Redo reapplies the last undone edit group.
func Redo(a *app.Application) {
	withEditableBuffer(a, func(buf *buffer.Buffer) {
		_ = buf.Redo()
	})
	ScrollToCursor(a)
}

// Save writes the current buffer to disk.
func Save(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		log := a.Logger.WithComponent("buffer").WithField("path", buf.Path())
		if err := buf.Save(); err != nil {
			log.Error("save failed", "error", err)
			return
		}
		log.Info("saved", "lines", buf.LineCount())
	})
}

// Close closes the current buffer, discarding unsaved changes.
func Close(a *app.Application) {
	a.Workspace.CloseCurrent()
	ScrollToCursor(a)
}

// Reload replaces the current buffer's content with the file on disk.
func Reload(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		if err := buf.Reload(); err != nil {
			a.Logger.WithComponent("buffer").Error("reload failed", "path", buf.Path(), "error", err)
		}
	})
	ScrollToCursor(a)
}

// setClipboard stores content, logging a failed system clipboard write.
func setClipboard(a *app.Application, content app.ClipboardContent) {
	if err := a.Clipboard.Set(content); err != nil {
		a.Logger.WithComponent("clipboard").Warn("system clipboard write failed", "error", err)
	}
}
