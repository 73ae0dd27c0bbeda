package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/input/mode"
)

// Command is an operation on the application.
type Command func(*app.Application)

// withBuffer runs fn on the current buffer, if there is one.
func withBuffer(a *app.Application, fn func(*buffer.Buffer)) {
	if buf := a.CurrentBuffer(); buf != nil {
		fn(buf)
	}
}

// withEditableBuffer runs fn on the current buffer when the mode allows
// changing text.
func withEditableBuffer(a *app.Application, fn func(*buffer.Buffer)) {
	if !mode.AllowsEdits(a.Mode) {
		return
	}
	withBuffer(a, fn)
}
