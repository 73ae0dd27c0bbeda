package mode

import (
	"strconv"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/highlight"
)

// MaxResults caps the result lists of open and symbol jump modes.
const MaxResults = 5

// Normal is the default mode: motions and commands.
type Normal struct{}

func (*Normal) Name() string             { return ModeNormal }
func (*Normal) DisplayName() string      { return "NORMAL" }
func (*Normal) CursorStyle() CursorStyle { return CursorBlock }
func (*Normal) mode()                    {}

// Insert inserts typed characters at the cursor.
type Insert struct{}

func (*Insert) Name() string             { return ModeInsert }
func (*Insert) DisplayName() string      { return "INSERT" }
func (*Insert) CursorStyle() CursorStyle { return CursorBar }
func (*Insert) mode()                    {}

// Jump labels visible tokens with tags; typing a tag moves the cursor there.
type Jump struct {
	// Input holds the first character of a partially typed tag.
	Input string

	// Tags maps each allocated tag to its target, in allocation order.
	Tags  map[string]buffer.Position
	Order []string

	// Resume is the mode restored after a jump; nil means Normal.
	// Selection modes keep their anchor across the jump.
	Resume Mode
}

// NewJump creates an empty jump session.
func NewJump() *Jump {
	return &Jump{Tags: make(map[string]buffer.Position)}
}

// Add labels pos with tag.
func (j *Jump) Add(tag string, pos buffer.Position) {
	if _, ok := j.Tags[tag]; ok {
		return
	}
	j.Tags[tag] = pos
	j.Order = append(j.Order, tag)
}

// Target returns the position for tag.
func (j *Jump) Target(tag string) (buffer.Position, bool) {
	pos, ok := j.Tags[tag]
	return pos, ok
}

func (*Jump) Name() string             { return ModeJump }
func (*Jump) DisplayName() string      { return "JUMP" }
func (*Jump) CursorStyle() CursorStyle { return CursorHidden }
func (*Jump) mode()                    {}

// LineJump moves the cursor to a typed line number.
type LineJump struct {
	Input string
}

// Line returns the 0-based line the input names.
func (l *LineJump) Line() (int, bool) {
	n, err := strconv.Atoi(l.Input)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func (*LineJump) Name() string             { return ModeLineJump }
func (*LineJump) DisplayName() string      { return "LINE JUMP" }
func (*LineJump) CursorStyle() CursorStyle { return CursorBar }
func (*LineJump) mode()                    {}

// SymbolJump fuzzy-filters the buffer's symbols.
type SymbolJump struct {
	Input   string
	Symbols []highlight.Symbol
	Results SelectableList[highlight.Symbol]
}

// NewSymbolJump creates a session over symbols.
func NewSymbolJump(symbols []highlight.Symbol) *SymbolJump {
	return &SymbolJump{Symbols: symbols}
}

func (*SymbolJump) Name() string             { return ModeSymbolJump }
func (*SymbolJump) DisplayName() string      { return "SYMBOL" }
func (*SymbolJump) CursorStyle() CursorStyle { return CursorBar }
func (*SymbolJump) mode()                    {}

// Open searches the path index for a file to open.
type Open struct {
	Input   string
	Results SelectableList[string]
}

func (*Open) Name() string             { return ModeOpen }
func (*Open) DisplayName() string      { return "OPEN" }
func (*Open) CursorStyle() CursorStyle { return CursorBar }
func (*Open) mode()                    {}

// Select is a character selection from Anchor to the cursor.
type Select struct {
	Anchor buffer.Position
}

// Range returns the selection for the given cursor.
func (s *Select) Range(cursor buffer.Position) buffer.Range {
	return buffer.NewRange(s.Anchor, cursor)
}

func (*Select) Name() string             { return ModeSelect }
func (*Select) DisplayName() string      { return "SELECT" }
func (*Select) CursorStyle() CursorStyle { return CursorBlock }
func (*Select) mode()                    {}

// SelectLine is a whole-line selection from Anchor to the cursor line.
type SelectLine struct {
	Anchor int
}

// ToRange returns the selected lines for the given cursor.
func (s *SelectLine) ToRange(cursor buffer.Position) buffer.LineRange {
	return buffer.NewLineRange(s.Anchor, cursor.Line)
}

func (*SelectLine) Name() string             { return ModeSelectLine }
func (*SelectLine) DisplayName() string      { return "SELECT LINE" }
func (*SelectLine) CursorStyle() CursorStyle { return CursorBlock }
func (*SelectLine) mode()                    {}

// SearchInsert collects a search query.
type SearchInsert struct {
	Input string
}

func (*SearchInsert) Name() string             { return ModeSearchInsert }
func (*SearchInsert) DisplayName() string      { return "SEARCH" }
func (*SearchInsert) CursorStyle() CursorStyle { return CursorBar }
func (*SearchInsert) mode()                    {}

// Exit stops the main loop.
type Exit struct{}

func (*Exit) Name() string             { return ModeExit }
func (*Exit) DisplayName() string      { return "EXIT" }
func (*Exit) CursorStyle() CursorStyle { return CursorHidden }
func (*Exit) mode()                    {}
