package commands

import (
	"unicode"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input/mode"
)

// InsertRune returns the command that enters r as input in the current
// text entry mode.
func InsertRune(r rune) Command {
	return func(a *app.Application) {
		switch m := a.Mode.(type) {
		case *mode.Insert:
			InsertText(string(r))(a)
		case *mode.Jump:
			JumpInput(r)(a)
		case *mode.LineJump:
			if unicode.IsDigit(r) {
				m.Input += string(r)
			}
		case *mode.Open:
			m.Input += string(r)
			OpenModeSearch(a)
		case *mode.SymbolJump:
			m.Input += string(r)
			SymbolJumpSearch(a)
		case *mode.SearchInsert:
			m.Input += string(r)
		}
	}
}

// PromptBackspace removes the last rune of the prompt input.
func PromptBackspace(a *app.Application) {
	switch m := a.Mode.(type) {
	case *mode.LineJump:
		m.Input = trimLastRune(m.Input)
	case *mode.Open:
		m.Input = trimLastRune(m.Input)
		OpenModeSearch(a)
	case *mode.SymbolJump:
		m.Input = trimLastRune(m.Input)
		SymbolJumpSearch(a)
	case *mode.SearchInsert:
		m.Input = trimLastRune(m.Input)
	}
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
