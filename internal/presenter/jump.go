package presenter

import (
	"strings"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
)

// presentJump labels the jump targets on screen. Once a first letter is
// typed only the tags it starts are shown.
func presentJump(a *app.Application, m *mode.Jump) renderer.Frame {
	f := presentEditing(a, m)
	buf := a.CurrentBuffer()
	if buf == nil {
		return f
	}

	for _, tag := range m.Order {
		if !strings.HasPrefix(tag, m.Input) {
			continue
		}
		pos, ok := a.Region.RelativeCursor(buf.ID, m.Tags[tag])
		if !ok {
			continue
		}
		f.Tags = append(f.Tags, renderer.JumpTag{Position: pos, Label: tag})
	}

	// The selection being extended stays visible underneath the tags.
	switch resume := m.Resume.(type) {
	case *mode.Select:
		f.Buffer = presentSelect(a, resume).Buffer
	case *mode.SelectLine:
		f.Buffer = presentSelectLine(a, resume).Buffer
	}
	return f
}
