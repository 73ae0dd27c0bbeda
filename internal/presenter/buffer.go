package presenter

import (
	"strings"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/highlight"
)

// bufferData returns the visible part of the current buffer, or nil
// without one. selection is an absolute range drawn highlighted.
func bufferData(a *app.Application, selection *buffer.Range) *renderer.BufferData {
	buf := a.CurrentBuffer()
	if buf == nil {
		return nil
	}

	offset := a.Region.LineOffset(buf.ID)
	height := a.Region.Height()
	data := &renderer.BufferData{
		Tokens:       visibleTokens(a.Tokenizer.Tokens(buf), offset, offset+height-1),
		LineCount:    buf.LineCount(),
		ScrollOffset: offset,
		GutterWidth:  gutter.Width(offset, height, buf.LineCount()),
	}

	if pos, ok := a.Region.RelativeCursor(buf.ID, buf.Cursor().Position()); ok {
		data.Cursor = &pos
	}
	if selection != nil {
		if rng, ok := a.Region.RelativeRange(buf.ID, *selection); ok {
			data.Highlight = &rng
		}
	}
	return data
}

// visibleTokens returns the parts of tokens on lines first through last.
// Tokens spanning lines are split after each newline.
func visibleTokens(tokens []highlight.Token, first, last int) []highlight.Token {
	var visible []highlight.Token
	line := 0

	for _, tok := range tokens {
		if line > last {
			break
		}
		rest := tok.Lexeme
		for rest != "" && line <= last {
			piece := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				piece = rest[:i+1]
			}
			rest = rest[len(piece):]

			if line >= first {
				visible = append(visible, highlight.Token{Lexeme: piece, Type: tok.Type})
			}
			if strings.HasSuffix(piece, "\n") {
				line++
			}
		}
	}

	return visible
}
