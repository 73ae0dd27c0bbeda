package presenter

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer/statusline"
)

// status returns the mode label and the current buffer's path.
func status(a *app.Application, m mode.Mode) []statusline.Segment {
	segments := []statusline.Segment{statusline.ModeSegment(m.DisplayName())}
	if buf := a.CurrentBuffer(); buf != nil {
		path := a.Workspace.RelativePath(buf.Path())
		segments = append(segments, statusline.BufferSegment(path, buf.Modified(), statusline.BarStyle))
	}
	return segments
}

// branchSegment returns the repository branch, if there is one.
func branchSegment(a *app.Application) []statusline.Segment {
	if a.Repository == nil {
		return nil
	}
	branch, err := a.Repository.Branch()
	if err != nil || branch == "" {
		return nil
	}
	return []statusline.Segment{{Content: "  " + branch + " ", Style: statusline.BarStyle}}
}
