package presenter

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/backend"
)

// Present returns the frame for the current mode.
func Present(a *app.Application) renderer.Frame {
	switch m := a.Mode.(type) {
	case *mode.Normal:
		return presentNormal(a, m)
	case *mode.Insert:
		return presentEditing(a, m)
	case *mode.Select:
		return presentSelect(a, m)
	case *mode.SelectLine:
		return presentSelectLine(a, m)
	case *mode.Jump:
		return presentJump(a, m)
	case *mode.LineJump:
		return presentPrompt(a, m, m.Input)
	case *mode.SearchInsert:
		return presentPrompt(a, m, m.Input)
	case *mode.SymbolJump:
		return presentSymbolJump(a, m)
	case *mode.Open:
		return presentOpen(a, m)
	default:
		return renderer.Frame{CursorStyle: backend.CursorHidden}
	}
}

// cursorStyle maps a mode cursor to the terminal cursor.
func cursorStyle(m mode.Mode) backend.CursorStyle {
	switch m.CursorStyle() {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorHidden:
		return backend.CursorHidden
	default:
		return backend.CursorBlock
	}
}

// presentEditing draws the buffer with the mode's status line.
func presentEditing(a *app.Application, m mode.Mode) renderer.Frame {
	return renderer.Frame{
		Buffer:      bufferData(a, nil),
		Status:      status(a, m),
		CursorStyle: cursorStyle(m),
	}
}

func presentNormal(a *app.Application, m *mode.Normal) renderer.Frame {
	f := presentEditing(a, m)
	f.Status = append(f.Status, branchSegment(a)...)
	return f
}
