package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
)

// ScrollToCursor scrolls the least distance that shows the cursor.
func ScrollToCursor(a *app.Application) {
	a.ScrollToCursor()
}

// ScrollUp moves the window up by the configured amount. The cursor stays
// where it is, even off screen.
func ScrollUp(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		a.Region.ScrollUp(buf.ID, a.Config.ScrollAmount)
	})
}

// ScrollDown moves the window down by the configured amount.
func ScrollDown(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		a.Region.ScrollDown(buf.ID, a.Config.ScrollAmount)
	})
}
