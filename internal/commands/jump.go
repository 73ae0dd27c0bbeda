package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/input/mode"
)

// JumpInput returns a command that types r into a jump tag. The second
// letter completes the tag: a known tag moves the cursor, anything else
// abandons the jump.
func JumpInput(r rune) Command {
	return func(a *app.Application) {
		m, ok := a.Mode.(*mode.Jump)
		if !ok {
			return
		}
		if m.Input == "" {
			m.Input = string(r)
			return
		}

		if pos, ok := m.Target(m.Input + string(r)); ok {
			withBuffer(a, func(buf *buffer.Buffer) {
				buf.Cursor().MoveTo(pos)
			})
		}
		resumeAfterJump(a, m)
		ScrollToCursor(a)
	}
}

// resumeAfterJump restores the mode a jump was started from.
func resumeAfterJump(a *app.Application, m *mode.Jump) {
	if m.Resume != nil {
		a.SwitchMode(m.Resume)
		return
	}
	a.SwitchMode(&mode.Normal{})
}

// CancelJump leaves jump mode without moving.
func CancelJump(a *app.Application) {
	if m, ok := a.Mode.(*mode.Jump); ok {
		resumeAfterJump(a, m)
	}
}

// LineJumpAccept moves to the typed line, clamped to the last line.
func LineJumpAccept(a *app.Application) {
	m, ok := a.Mode.(*mode.LineJump)
	if !ok {
		return
	}
	if line, ok := m.Line(); ok {
		withBuffer(a, func(buf *buffer.Buffer) {
			line = min(line, buf.LineCount()-1)
			buf.Cursor().MoveTo(buffer.Position{Line: line})
		})
	}
	SwitchToNormalMode(a)
	ScrollToCursor(a)
}

// SymbolJumpSearch refreshes the symbol results for the typed query.
func SymbolJumpSearch(a *app.Application) {
	if m, ok := a.Mode.(*mode.SymbolJump); ok {
		m.Results.Set(rankSymbols(m.Symbols, m.Input))
	}
}

// SymbolJumpAccept moves to the selected symbol.
func SymbolJumpAccept(a *app.Application) {
	m, ok := a.Mode.(*mode.SymbolJump)
	if !ok {
		return
	}
	if sym, ok := m.Results.Selection(); ok {
		withBuffer(a, func(buf *buffer.Buffer) {
			buf.Cursor().MoveTo(sym.Position)
		})
	}
	SwitchToNormalMode(a)
	ScrollToCursor(a)
}

// SelectNextSymbol moves the symbol selection down.
func SelectNextSymbol(a *app.Application) {
	if m, ok := a.Mode.(*mode.SymbolJump); ok {
		m.Results.SelectNext()
	}
}

// SelectPreviousSymbol moves the symbol selection up.
func SelectPreviousSymbol(a *app.Application) {
	if m, ok := a.Mode.(*mode.SymbolJump); ok {
		m.Results.SelectPrevious()
	}
}
