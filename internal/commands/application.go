package commands

import (
	"unicode/utf8"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/motion"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/project/index"
	"github.com/dshills/quill/internal/renderer/highlight"
)

// minJumpTokenLength is the shortest token that gets a jump tag; shorter
// tokens are cheaper to reach with regular motions.
const minJumpTokenLength = 2

// SwitchToNormalMode closes any open edit group and returns to normal mode.
func SwitchToNormalMode(a *app.Application) {
	EndCommandGroup(a)
	a.SwitchMode(&mode.Normal{})
}

// SwitchToInsertMode starts an edit group and enters insert mode. Without
// a buffer there is nothing to insert into and the mode is unchanged.
func SwitchToInsertMode(a *app.Application) {
	if a.CurrentBuffer() == nil {
		return
	}
	StartCommandGroup(a)
	a.SwitchMode(&mode.Insert{})
}

// SwitchToJumpMode tags the visible tokens of the current buffer. Tags
// are allocated in reading order; tokens past the tag limit stay untagged.
func SwitchToJumpMode(a *app.Application) {
	buf := a.CurrentBuffer()
	if buf == nil {
		return
	}

	jump := mode.NewJump()
	switch a.Mode.(type) {
	case *mode.Select, *mode.SelectLine:
		jump.Resume = a.Mode
	}

	visible := a.Region.VisibleRange(buf.ID)
	var tags mode.TagGenerator
	for _, seg := range motion.Segments(buf.Data()) {
		if seg.Start.Line > visible.End() {
			break
		}
		if !visible.Includes(seg.Start.Line) || seg.IsSpace() || utf8.RuneCountInString(seg.Lexeme) < minJumpTokenLength {
			continue
		}
		tag, ok := tags.Next()
		if !ok {
			break
		}
		jump.Add(tag, seg.Start)
	}

	a.SwitchMode(jump)
}

// SwitchToLineJumpMode prompts for a line number.
func SwitchToLineJumpMode(a *app.Application) {
	if a.CurrentBuffer() == nil {
		return
	}
	a.SwitchMode(&mode.LineJump{})
}

// SwitchToSymbolJumpMode lists the current buffer's symbols.
func SwitchToSymbolJumpMode(a *app.Application) {
	buf := a.CurrentBuffer()
	if buf == nil {
		return
	}
	m := mode.NewSymbolJump(highlight.Symbols(a.Tokenizer.Tokens(buf)))
	a.SwitchMode(m)
	SymbolJumpSearch(a)
}

// SwitchToOpenMode lists project files for opening. The index is rebuilt
// each time so files created since the last listing show up.
func SwitchToOpenMode(a *app.Application) {
	a.RefreshIndex()
	a.SwitchMode(&mode.Open{})
	OpenModeSearch(a)
}

// SwitchToSelectMode anchors a character selection at the cursor.
func SwitchToSelectMode(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		a.SwitchMode(&mode.Select{Anchor: buf.Cursor().Position()})
	})
}

// SwitchToSelectLineMode anchors a line selection at the cursor line.
func SwitchToSelectLineMode(a *app.Application) {
	withBuffer(a, func(buf *buffer.Buffer) {
		a.SwitchMode(&mode.SelectLine{Anchor: buf.Cursor().Line()})
	})
}

// SwitchToSearchInsertMode prompts for a search query.
func SwitchToSearchInsertMode(a *app.Application) {
	if a.CurrentBuffer() == nil {
		return
	}
	a.SwitchMode(&mode.SearchInsert{})
}

// Exit stops the editor after the current command.
func Exit(a *app.Application) {
	a.SwitchMode(&mode.Exit{})
}

// symbolNames returns the names to rank for symbol jump.
func symbolNames(symbols []highlight.Symbol) []string {
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.Name
	}
	return names
}

// rankSymbols filters symbols against query, best first.
func rankSymbols(symbols []highlight.Symbol, query string) []highlight.Symbol {
	matches := index.Rank(symbolNames(symbols), query, mode.MaxResults)
	results := make([]highlight.Symbol, len(matches))
	for i, m := range matches {
		results[i] = symbols[m.Index]
	}
	return results
}
