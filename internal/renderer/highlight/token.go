// Package highlight turns buffer content into styled tokens.
//
// Tokens come from chroma lexers chosen by file name. A Tokenizer caches the
// tokens for the buffer revision it last saw, so repeated frames over an
// unchanged buffer do not re-lex.
package highlight

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Category is a coarse syntax class.
type Category uint8

const (
	CategoryText Category = iota
	CategoryKeyword
	CategoryString
	CategoryComment
	CategoryNumber
	CategoryFunction
	CategoryType
	CategoryOperator
	CategoryPunctuation
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategoryString:
		return "string"
	case CategoryComment:
		return "comment"
	case CategoryNumber:
		return "number"
	case CategoryFunction:
		return "function"
	case CategoryType:
		return "type"
	case CategoryOperator:
		return "operator"
	case CategoryPunctuation:
		return "punctuation"
	default:
		return "text"
	}
}

// Token is a lexeme and its syntax type.
type Token struct {
	Lexeme string
	Type   chroma.TokenType
}

// Category classifies the token.
func (t Token) Category() Category {
	return categoryOf(t.Type)
}

func categoryOf(tt chroma.TokenType) Category {
	switch {
	case tt == chroma.KeywordType, tt == chroma.NameClass, tt == chroma.NameBuiltin:
		return CategoryType
	case tt.InCategory(chroma.Keyword):
		return CategoryKeyword
	case tt.InSubCategory(chroma.LiteralString):
		return CategoryString
	case tt.InSubCategory(chroma.LiteralNumber):
		return CategoryNumber
	case tt.InCategory(chroma.Comment):
		return CategoryComment
	case tt == chroma.NameFunction, tt == chroma.NameFunctionMagic:
		return CategoryFunction
	case tt.InCategory(chroma.Operator):
		return CategoryOperator
	case tt.InCategory(chroma.Punctuation):
		return CategoryPunctuation
	default:
		return CategoryText
	}
}

// Symbol is a named definition found in the tokens.
type Symbol struct {
	Name     string
	Position buffer.Position
}

// Symbols returns function and type names in order of first appearance.
func Symbols(tokens []Token) []Symbol {
	var symbols []Symbol
	seen := make(map[string]bool)
	pos := buffer.Position{}

	for _, tok := range tokens {
		switch tok.Category() {
		case CategoryFunction, CategoryType:
			if tok.Type != chroma.KeywordType && tok.Type != chroma.NameBuiltin && !seen[tok.Lexeme] {
				seen[tok.Lexeme] = true
				symbols = append(symbols, Symbol{Name: tok.Lexeme, Position: pos})
			}
		}

		for _, r := range tok.Lexeme {
			if r == '\n' {
				pos.Line++
				pos.Offset = 0
			} else {
				pos.Offset++
			}
		}
	}

	return symbols
}
