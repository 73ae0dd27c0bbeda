package presenter

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/motion"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
)

func presentSelect(a *app.Application, m *mode.Select) renderer.Frame {
	f := presentEditing(a, m)
	if buf := a.CurrentBuffer(); buf != nil {
		rng := m.Range(buf.Cursor().Position())
		f.Buffer = bufferData(a, &rng)
	}
	return f
}

func presentSelectLine(a *app.Application, m *mode.SelectLine) renderer.Frame {
	f := presentEditing(a, m)
	if buf := a.CurrentBuffer(); buf != nil {
		rng := motion.InclusiveRange(buf.Data(), m.ToRange(buf.Cursor().Position()))
		f.Buffer = bufferData(a, &rng)
	}
	return f
}
