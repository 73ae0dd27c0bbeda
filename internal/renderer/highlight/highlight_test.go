package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/core"
)

const goSource = "package main\n\nfunc run() int {\n\treturn 1\n}\n\ntype Config struct{}\n"

func joined(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Lexeme)
	}
	return sb.String()
}

func TestTokenizeCoversContent(t *testing.T) {
	for _, content := range []string{goSource, "package main", "", "no newline"} {
		tokens := Tokenize("main.go", content)
		if got := joined(tokens); got != content {
			t.Errorf("expected tokens to cover %q, got %q", content, got)
		}
	}
}

func TestTokenizeUnknownFile(t *testing.T) {
	tokens := Tokenize("notes.unknownext", "plain text")
	if joined(tokens) != "plain text" {
		t.Errorf("unexpected tokens %v", tokens)
	}
}

func TestTokenizeKeywords(t *testing.T) {
	tokens := Tokenize("main.go", goSource)

	found := false
	for _, tok := range tokens {
		if tok.Lexeme == "func" && tok.Category() == CategoryKeyword {
			found = true
		}
	}
	if !found {
		t.Error("expected func to be a keyword")
	}
}

func TestSymbols(t *testing.T) {
	symbols := Symbols(Tokenize("main.go", goSource))

	byName := make(map[string]buffer.Position)
	for _, s := range symbols {
		byName[s.Name] = s.Position
	}

	pos, ok := byName["run"]
	if !ok {
		t.Fatalf("expected run in symbols, got %v", symbols)
	}
	if pos != (buffer.Position{Line: 2, Offset: 5}) {
		t.Errorf("expected run at (2:5), got %s", pos)
	}
	if _, ok := byName["int"]; ok {
		t.Error("builtin types should not be symbols")
	}
}

func TestTokenizerCachesByRevision(t *testing.T) {
	tk := NewTokenizer()
	buf := buffer.New(buffer.WithContent("package main"), buffer.WithPath("main.go"))

	first := tk.Tokens(buf)
	second := tk.Tokens(buf)
	if &first[0] != &second[0] {
		t.Error("expected cached tokens for the same revision")
	}

	buf.InsertAt(buffer.Position{Line: 0, Offset: 12}, "\n")
	if joined(tk.Tokens(buf)) != "package main\n" {
		t.Error("expected tokens to follow the new revision")
	}
	if len(tk.cache) != 1 {
		t.Errorf("expected one cache entry, got %d", len(tk.cache))
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		tt   chroma.TokenType
		want Category
	}{
		{chroma.Keyword, CategoryKeyword},
		{chroma.KeywordType, CategoryType},
		{chroma.LiteralStringDouble, CategoryString},
		{chroma.LiteralNumberInteger, CategoryNumber},
		{chroma.CommentSingle, CategoryComment},
		{chroma.NameFunction, CategoryFunction},
		{chroma.Name, CategoryText},
	}

	for _, tt := range tests {
		if got := categoryOf(tt.tt); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.tt, tt.want, got)
		}
	}
}

func TestNewThemeFallsBack(t *testing.T) {
	theme := NewTheme("does-not-exist")
	if theme.Name != DefaultThemeName {
		t.Errorf("expected fallback to %s, got %s", DefaultThemeName, theme.Name)
	}
	if !HasTheme("monokai") {
		t.Error("monokai should be a known theme")
	}
}

func TestThemeStyleFor(t *testing.T) {
	theme := NewTheme("monokai")
	s := theme.StyleFor(chroma.Keyword)

	if s.Foreground.IsDefault() {
		t.Error("expected keyword foreground from theme")
	}
	if s.Background != core.ColorDefault {
		t.Error("token styles should leave the background to the terminal")
	}
}
