package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/input/mode"
)

// OpenModeSearch refreshes the open mode results for the typed query.
func OpenModeSearch(a *app.Application) {
	m, ok := a.Mode.(*mode.Open)
	if !ok {
		return
	}
	paths, err := a.Index().Find(m.Input, mode.MaxResults)
	if err != nil {
		a.Logger.WithComponent("index").Warn("path search failed", "query", m.Input, "error", err)
		return
	}
	m.Results.Set(paths)
}

// OpenSelectedPath opens the selected result and returns to normal mode.
func OpenSelectedPath(a *app.Application) {
	m, ok := a.Mode.(*mode.Open)
	if !ok {
		return
	}
	if path, ok := m.Results.Selection(); ok {
		if _, err := a.Workspace.Open(path); err != nil {
			a.Logger.WithComponent("workspace").Error("open failed", "path", path, "error", err)
		}
	}
	SwitchToNormalMode(a)
	ScrollToCursor(a)
}

// SelectNextPath moves the open mode selection down.
func SelectNextPath(a *app.Application) {
	if m, ok := a.Mode.(*mode.Open); ok {
		m.Results.SelectNext()
	}
}

// SelectPreviousPath moves the open mode selection up.
func SelectPreviousPath(a *app.Application) {
	if m, ok := a.Mode.(*mode.Open); ok {
		m.Results.SelectPrevious()
	}
}
