package commands

import (
	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/motion"
)

// cursorMotion wraps a cursor move so it keeps the cursor on screen.
func cursorMotion(move func(*buffer.Cursor)) Command {
	return func(a *app.Application) {
		withBuffer(a, func(buf *buffer.Buffer) {
			move(buf.Cursor())
		})
		ScrollToCursor(a)
	}
}

var (
	MoveUp            = cursorMotion((*buffer.Cursor).MoveUp)
	MoveDown          = cursorMotion((*buffer.Cursor).MoveDown)
	MoveLeft          = cursorMotion((*buffer.Cursor).MoveLeft)
	MoveRight         = cursorMotion((*buffer.Cursor).MoveRight)
	MoveToStartOfLine = cursorMotion((*buffer.Cursor).MoveToStartOfLine)
	MoveToEndOfLine   = cursorMotion((*buffer.Cursor).MoveToEndOfLine)
	MoveToFirstLine   = cursorMotion((*buffer.Cursor).MoveToFirstLine)
	MoveToLastLine    = cursorMotion((*buffer.Cursor).MoveToLastLine)
)

// MoveToFirstWordOfLine moves to the first non-blank character of the
// cursor line. Blank lines leave the cursor alone.
func MoveToFirstWordOfLine(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		cursor := buf.Cursor()
		line, _ := buf.Line(cursor.Line())
		if offset, ok := motion.FirstWordOfLine(line); ok {
			cursor.MoveTo(buffer.Position{Line: cursor.Line(), Offset: offset})
		}
	})
	ScrollToCursor(a)
}

// tokenMotion moves to the adjacent token boundary found by the movement
// engine, if any.
func tokenMotion(dir motion.Direction, toEnd bool) Command {
	return func(a *app.Application) {
		withBuffer(a, func(buf *buffer.Buffer) {
			if pos, ok := motion.AdjacentToken(buf.Data(), buf.Cursor().Position(), dir, toEnd); ok {
				buf.Cursor().MoveTo(pos)
			}
		})
		ScrollToCursor(a)
	}
}

var (
	MoveToStartOfPreviousToken = tokenMotion(motion.Backward, false)
	MoveToStartOfNextToken     = tokenMotion(motion.Forward, false)
	MoveToEndOfCurrentToken    = tokenMotion(motion.Forward, true)
)

// AppendToCurrentToken moves to the end of the current token and starts
// inserting there.
func AppendToCurrentToken(a *app.Application) {
	MoveToEndOfCurrentToken(a)
	SwitchToInsertMode(a)
	ScrollToCursor(a)
}

// InsertAtEndOfLine starts inserting at the end of the cursor line.
func InsertAtEndOfLine(a *app.Application) {
	MoveToEndOfLine(a)
	SwitchToInsertMode(a)
	ScrollToCursor(a)
}

// InsertAtFirstWordOfLine starts inserting before the first word of the
// cursor line.
func InsertAtFirstWordOfLine(a *app.Application) {
	MoveToFirstWordOfLine(a)
	SwitchToInsertMode(a)
	ScrollToCursor(a)
}

// InsertWithNewline opens a line below the cursor line and starts
// inserting on it. The new line and what is typed undo together.
func InsertWithNewline(a *app.Application) {
	MoveToEndOfLine(a)
	StartCommandGroup(a)
	InsertNewline(a)
	SwitchToInsertMode(a)
	ScrollToCursor(a)
}

// InsertWithNewlineAbove opens a line above the cursor line and starts
// inserting on it.
func InsertWithNewlineAbove(a *app.Application) {
	MoveToStartOfLine(a)
	StartCommandGroup(a)
	InsertNewline(a)
	MoveUp(a)
	SwitchToInsertMode(a)
	ScrollToCursor(a)
}
