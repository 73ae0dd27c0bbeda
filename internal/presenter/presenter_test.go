package presenter

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer/backend"
	"github.com/dshills/quill/internal/renderer/highlight"
)

func newApp(t *testing.T, content string) (*app.Application, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(40, 10)
	a, err := app.New(app.Options{WorkingDir: t.TempDir(), Backend: b})
	if err != nil {
		t.Fatal(err)
	}
	a.Workspace.Add(buffer.New(buffer.WithContent(content), buffer.WithPath("notes.txt")))
	return a, b
}

func TestVisibleTokens(t *testing.T) {
	tokens := []highlight.Token{
		{Lexeme: "a\nb\nc", Type: chroma.Text},
		{Lexeme: "d\n", Type: chroma.Keyword},
		{Lexeme: "e", Type: chroma.Text},
	}

	got := visibleTokens(tokens, 1, 2)
	want := []string{"b\n", "c", "d\n"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i, tok := range got {
		if tok.Lexeme != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tok.Lexeme)
		}
	}
	if got[2].Type != chroma.Keyword {
		t.Errorf("expected split token to keep its type, got %v", got[2].Type)
	}
}

func TestPresentNormal(t *testing.T) {
	a, b := newApp(t, "ink\neditor")
	f := Present(a)

	if f.Buffer == nil {
		t.Fatal("expected buffer data")
	}
	if f.Buffer.GutterWidth != 4 {
		t.Errorf("expected gutter width 4, got %d", f.Buffer.GutterWidth)
	}
	if f.Buffer.Cursor == nil || *f.Buffer.Cursor != (buffer.Position{}) {
		t.Errorf("expected cursor at origin, got %v", f.Buffer.Cursor)
	}
	if f.Status[0].Content != " NORMAL " {
		t.Errorf("unexpected mode segment %q", f.Status[0].Content)
	}
	if f.CursorStyle != backend.CursorBlock {
		t.Errorf("expected block cursor, got %v", f.CursorStyle)
	}

	a.View.Draw(f)
	if got := b.Row(0); !strings.HasPrefix(got, " 1  ink") {
		t.Errorf("unexpected row 0 %q", got)
	}
	if got := b.Row(9); !strings.HasPrefix(got, " NORMAL  notes.txt") {
		t.Errorf("unexpected status row %q", got)
	}
}

func TestPresentScrolled(t *testing.T) {
	a, _ := newApp(t, strings.Repeat("line\n", 30))
	buf := a.CurrentBuffer()
	buf.Cursor().MoveTo(buffer.Position{Line: 20})
	a.ScrollToCursor()

	f := Present(a)
	offset := a.Region.LineOffset(buf.ID)
	if offset == 0 {
		t.Fatal("expected scrolled region")
	}
	if f.Buffer.ScrollOffset != offset {
		t.Errorf("expected scroll offset %d, got %d", offset, f.Buffer.ScrollOffset)
	}
	if f.Buffer.Cursor == nil || f.Buffer.Cursor.Line != 20-offset {
		t.Errorf("expected relative cursor row %d, got %v", 20-offset, f.Buffer.Cursor)
	}
	if n := len(f.Buffer.Tokens); n == 0 || !strings.HasPrefix(f.Buffer.Tokens[0].Lexeme, "line") {
		t.Errorf("unexpected tokens %v", f.Buffer.Tokens)
	}
}

func TestPresentInsertModified(t *testing.T) {
	a, _ := newApp(t, "ink")
	a.CurrentBuffer().Insert("x")
	a.Mode = &mode.Insert{}

	f := Present(a)
	if f.CursorStyle != backend.CursorBar {
		t.Errorf("expected bar cursor, got %v", f.CursorStyle)
	}
	if got := f.Status[1].Content; got != " notes.txt *" {
		t.Errorf("expected modified marker, got %q", got)
	}
}

func TestPresentSelectLine(t *testing.T) {
	a, _ := newApp(t, "a\nb\nc")
	a.Mode = &mode.SelectLine{Anchor: 0}
	a.CurrentBuffer().Cursor().MoveTo(buffer.Position{Line: 1})

	f := Present(a)
	if f.Buffer.Highlight == nil {
		t.Fatal("expected highlight")
	}
	want := buffer.NewRange(buffer.Position{}, buffer.Position{Line: 2})
	if *f.Buffer.Highlight != want {
		t.Errorf("expected %s, got %s", want, *f.Buffer.Highlight)
	}
	if f.Status[0].Content != " SELECT LINE " {
		t.Errorf("unexpected mode segment %q", f.Status[0].Content)
	}
}

func TestPresentJump(t *testing.T) {
	a, b := newApp(t, "ink editor")
	j := mode.NewJump()
	j.Add("aa", buffer.Position{Offset: 0})
	j.Add("ba", buffer.Position{Offset: 4})
	a.Mode = j

	f := Present(a)
	if len(f.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", f.Tags)
	}
	if f.CursorStyle != backend.CursorHidden {
		t.Errorf("expected hidden cursor, got %v", f.CursorStyle)
	}

	a.View.Draw(f)
	if got := b.Row(0); !strings.HasPrefix(got, " 1  aap baitor") {
		t.Errorf("unexpected row 0 %q", got)
	}

	j.Input = "b"
	f = Present(a)
	if len(f.Tags) != 1 || f.Tags[0].Label != "ba" {
		t.Errorf("expected only ba, got %v", f.Tags)
	}
}

func TestPresentOpen(t *testing.T) {
	a, b := newApp(t, "ink")
	m := &mode.Open{Input: "ma"}
	m.Results.Set([]string{"main.go", "Makefile"})
	m.Results.SelectNext()
	a.Mode = m

	f := Present(a)
	if len(f.Overlays) != mode.MaxResults+1 {
		t.Fatalf("expected %d overlay rows, got %d", mode.MaxResults+1, len(f.Overlays))
	}
	if f.Overlays[1].Style.Background != a.View.Theme().LineHighlight {
		t.Error("expected selected row highlighted")
	}
	if f.Cursor == nil || f.Cursor.Row != mode.MaxResults || f.Cursor.Col != 2 {
		t.Errorf("expected cursor at end of input, got %v", f.Cursor)
	}

	a.View.Draw(f)
	if got := b.Row(0); !strings.HasPrefix(got, "main.go") {
		t.Errorf("unexpected row 0 %q", got)
	}
	if got := b.Row(mode.MaxResults); !strings.HasPrefix(got, "ma") {
		t.Errorf("unexpected input row %q", got)
	}
	if x, y, visible := b.CursorPosition(); !visible || x != 2 || y != mode.MaxResults {
		t.Errorf("expected cursor at (2, %d), got (%d, %d) visible=%v", mode.MaxResults, x, y, visible)
	}
}

func TestPresentSearchPrompt(t *testing.T) {
	a, _ := newApp(t, "ink")
	a.Mode = &mode.SearchInsert{Input: "am"}

	f := Present(a)
	if f.Cursor == nil || f.Cursor.Row != 9 {
		t.Fatalf("expected cursor on status row, got %v", f.Cursor)
	}
	if want := len(" SEARCH ") + len(" am"); f.Cursor.Col != want {
		t.Errorf("expected cursor column %d, got %d", want, f.Cursor.Col)
	}
}

func TestPresentWithoutBuffer(t *testing.T) {
	a, err := app.New(app.Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	f := Present(a)
	if f.Buffer != nil {
		t.Error("expected no buffer data")
	}
	if len(f.Status) != 1 {
		t.Errorf("expected mode segment only, got %v", f.Status)
	}
}

func TestPresentExit(t *testing.T) {
	a, _ := newApp(t, "ink")
	a.Mode = &mode.Exit{}
	if f := Present(a); f.Buffer != nil || f.CursorStyle != backend.CursorHidden {
		t.Errorf("expected empty hidden frame, got %+v", f)
	}
}
