package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/motion"
	"github.com/dshills/quill/internal/input/mode"
)

// SearchAccept stores the typed query and moves to its next match.
func SearchAccept(a *app.Application) {
	m, ok := a.Mode.(*mode.SearchInsert)
	if !ok {
		return
	}
	a.SearchQuery = m.Input
	SwitchToNormalMode(a)
	MoveToNextMatch(a)
}

// MoveToNextMatch moves to the next match of the last query, wrapping.
var MoveToNextMatch = matchMotion(motion.NextMatch)

// MoveToPreviousMatch moves to the previous match of the last query,
// wrapping.
var MoveToPreviousMatch = matchMotion(motion.PreviousMatch)

func matchMotion(find func(string, buffer.Position, string) (buffer.Position, bool)) Command {
	return func(a *app.Application) {
		withBuffer(a, func(buf *buffer.Buffer) {
			if pos, ok := find(buf.Data(), buf.Cursor().Position(), a.SearchQuery); ok {
				buf.Cursor().MoveTo(pos)
			}
		})
		ScrollToCursor(a)
	}
}
