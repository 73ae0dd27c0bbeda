package commands

import "github.com/dshills/quill/internal/app"

// NextBuffer makes the following buffer current.
func NextBuffer(a *app.Application) {
	a.Workspace.Next()
	ScrollToCursor(a)
}

// PreviousBuffer makes the preceding buffer current.
func PreviousBuffer(a *app.Application) {
	a.Workspace.Previous()
	ScrollToCursor(a)
}
