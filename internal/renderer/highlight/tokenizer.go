package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Tokenizer lexes buffers, caching by buffer and revision.
type Tokenizer struct {
	cache map[cacheKey][]Token
}

type cacheKey struct {
	buffer   string
	revision buffer.RevisionID
}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{cache: make(map[cacheKey][]Token)}
}

// Tokens returns the tokens covering buf's content.
func (t *Tokenizer) Tokens(buf *buffer.Buffer) []Token {
	key := cacheKey{buffer: buf.ID.String(), revision: buf.Revision()}
	if tokens, ok := t.cache[key]; ok {
		return tokens
	}

	tokens := Tokenize(buf.Path(), buf.Data())

	// Only the latest revision of each buffer is worth keeping.
	for k := range t.cache {
		if k.buffer == key.buffer {
			delete(t.cache, k)
		}
	}
	t.cache[key] = tokens
	return tokens
}

// Tokenize lexes content with the lexer matching filename.
// The concatenated lexemes always equal content.
func Tokenize(filename, content string) []Token {
	lexer := lexerFor(filename)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return []Token{{Lexeme: content, Type: chroma.Text}}
	}

	var tokens []Token
	remaining := len(content)
	for _, tok := range iterator.Tokens() {
		if remaining == 0 {
			break
		}
		value := tok.Value
		// Some lexers append a trailing newline to the input.
		if len(value) > remaining {
			value = value[:remaining]
		}
		remaining -= len(value)
		if value != "" {
			tokens = append(tokens, Token{Lexeme: value, Type: tok.Type})
		}
	}
	return tokens
}

func lexerFor(filename string) chroma.Lexer {
	var lexer chroma.Lexer
	if filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
