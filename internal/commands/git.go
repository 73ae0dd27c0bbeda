package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/input/mode"
)

// CopyRemoteURL puts the web URL of the current file on the clipboard,
// pointing at the selected lines or the cursor line. Outside a repository
// it does nothing.
func CopyRemoteURL(a *app.Application) {
	if a.Repository == nil {
		return
	}
	withBuffer(a, func(buf *buffer.Buffer) {
		if buf.Path() == "" {
			return
		}

		cursor := buf.Cursor().Position()
		first, last := cursor.Line, cursor.Line
		if m, ok := a.Mode.(*mode.SelectLine); ok {
			lines := m.ToRange(cursor)
			first, last = lines.Start(), lines.End()
		}

		url, err := a.Repository.FileURL(buf.Path(), first+1, last+1)
		if err != nil {
			a.Logger.WithComponent("git").Warn("remote url unavailable", "path", buf.Path(), "error", err)
			return
		}
		setClipboard(a, app.ClipboardContent{Kind: app.ClipboardInline, Text: url})
		SwitchToNormalMode(a)
	})
}
