package buffer

import (
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/engine/history"
)

// Errors returned by buffer operations.
var (
	ErrNoPath = errors.New("buffer has no path")
)

// Buffer is an editable document.
type Buffer struct {
	// ID identifies the buffer for its whole lifetime. Views key their
	// per-buffer state on it.
	ID uuid.UUID

	path         string
	lines        []string
	cursor       *Cursor
	history      *history.History
	historyLimit int

	revision RevisionID
	saved    RevisionID
}

// New creates a buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		ID:    uuid.New(),
		lines: []string{""},
	}

	for _, opt := range opts {
		opt(b)
	}

	b.history = history.New(b.historyLimit)
	b.cursor = &Cursor{buf: b}
	b.revision = NewRevisionID()
	b.saved = b.revision
	return b
}

// Open reads the file at path into a new buffer.
func Open(path string, opts ...Option) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts = append([]Option{WithContent(string(data)), WithPath(path)}, opts...)
	return New(opts...), nil
}

// normalizeNewlines turns CRLF and lone CR into LF. Lines never hold a CR.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(s string) []string {
	return strings.Split(normalizeNewlines(s), "\n")
}

// Path returns the file path backing the buffer, or "" if it has none.
func (b *Buffer) Path() string {
	return b.path
}

// Cursor returns the buffer's cursor.
func (b *Buffer) Cursor() *Cursor {
	return b.cursor
}

// Data returns the full content of the buffer.
func (b *Buffer) Data() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of line n without its newline.
func (b *Buffer) Line(n int) (string, bool) {
	if n < 0 || n >= len(b.lines) {
		return "", false
	}
	return b.lines[n], true
}

// LineLength returns the rune length of line n, or 0 if it does not exist.
func (b *Buffer) LineLength(n int) int {
	line, ok := b.Line(n)
	if !ok {
		return 0
	}
	return len([]rune(line))
}

// Revision identifies the current content.
func (b *Buffer) Revision() RevisionID {
	return b.revision
}

// Modified returns true if the content changed since it was loaded or saved.
func (b *Buffer) Modified() bool {
	return b.revision != b.saved
}

// Insert inserts text at the cursor. The cursor does not move.
func (b *Buffer) Insert(text string) {
	b.InsertAt(b.cursor.Position(), text)
}

// InsertAt inserts text at pos. Line endings in text are normalized to LF.
func (b *Buffer) InsertAt(pos Position, text string) {
	text = normalizeNewlines(text)
	if text == "" {
		return
	}
	pos = b.clamp(pos)
	before := b.revision
	b.insertText(pos, text)
	b.changed()
	b.history.Record(&insertChange{buf: b, pos: pos, text: text, before: before, after: b.revision})
}

// Delete removes the character at the cursor. At the end of a line the
// following newline is removed instead.
func (b *Buffer) Delete() {
	pos := b.cursor.Position()
	end := Position{Line: pos.Line, Offset: pos.Offset + 1}
	if pos.Offset >= b.LineLength(pos.Line) {
		if pos.Line >= len(b.lines)-1 {
			return
		}
		end = Position{Line: pos.Line + 1, Offset: 0}
	}
	b.DeleteRange(NewRange(pos, end))
}

// DeleteRange removes the text covered by r and returns it.
func (b *Buffer) DeleteRange(r Range) string {
	r = NewRange(b.clamp(r.Start()), b.clamp(r.End()))
	if r.IsEmpty() {
		return ""
	}
	before := b.revision
	text := b.deleteText(r)
	b.changed()
	b.history.Record(&deleteChange{buf: b, rng: r, text: text, before: before, after: b.revision})
	return text
}

// Read returns the text covered by r.
func (b *Buffer) Read(r Range) string {
	start, end := b.clamp(r.Start()), b.clamp(r.End())
	if start.Line == end.Line {
		line := []rune(b.lines[start.Line])
		return string(line[start.Offset:end.Offset])
	}

	var sb strings.Builder
	first := []rune(b.lines[start.Line])
	sb.WriteString(string(first[start.Offset:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i])
	}
	last := []rune(b.lines[end.Line])
	sb.WriteByte('\n')
	sb.WriteString(string(last[:end.Offset]))
	return sb.String()
}

// StartOperationGroup begins a group of edits undone as one unit.
func (b *Buffer) StartOperationGroup() {
	b.history.BeginGroup()
}

// EndOperationGroup closes the open edit group.
func (b *Buffer) EndOperationGroup() {
	b.history.EndGroup()
}

// Undo reverts the last edit group.
func (b *Buffer) Undo() error {
	return b.history.Undo()
}

// Redo reapplies the last undone edit group.
func (b *Buffer) Redo() error {
	return b.history.Redo()
}

// Save writes the buffer to its path.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(b.path, []byte(b.Data()), 0o644); err != nil {
		return err
	}
	b.saved = b.revision
	return nil
}

// Reload replaces the content with what is on disk and clears the history.
func (b *Buffer) Reload() error {
	if b.path == "" {
		return ErrNoPath
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		return err
	}
	b.lines = splitLines(string(data))
	b.history.Clear()
	b.cursor.clamp()
	b.changed()
	b.saved = b.revision
	return nil
}

func (b *Buffer) changed() {
	b.restore(NewRevisionID())
}

// restore sets the revision after undo or redo. Content equal to an earlier
// state gets that state's revision back, so Modified clears when an undo
// returns to the saved text.
func (b *Buffer) restore(rev RevisionID) {
	b.revision = rev
	b.cursor.clamp()
}

// clamp returns the nearest valid position to pos.
func (b *Buffer) clamp(pos Position) Position {
	if pos.Line < 0 {
		return Position{}
	}
	if pos.Line >= len(b.lines) {
		last := len(b.lines) - 1
		return Position{Line: last, Offset: b.LineLength(last)}
	}
	if pos.Offset < 0 {
		pos.Offset = 0
	}
	if n := b.LineLength(pos.Line); pos.Offset > n {
		pos.Offset = n
	}
	return pos
}

// insertText splices text into the lines at pos.
func (b *Buffer) insertText(pos Position, text string) {
	line := []rune(b.lines[pos.Line])
	head := string(line[:pos.Offset])
	tail := string(line[pos.Offset:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.lines[pos.Line] = head + text + tail
		return
	}

	last := parts[len(parts)-1]
	lines := make([]string, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:pos.Line]...)
	lines = append(lines, head+parts[0])
	lines = append(lines, parts[1:len(parts)-1]...)
	lines = append(lines, last+tail)
	lines = append(lines, b.lines[pos.Line+1:]...)
	b.lines = lines
}

// deleteText removes r from the lines and returns the removed text.
func (b *Buffer) deleteText(r Range) string {
	text := b.Read(r)
	start, end := r.Start(), r.End()

	head := string([]rune(b.lines[start.Line])[:start.Offset])
	tail := string([]rune(b.lines[end.Line])[end.Offset:])

	lines := make([]string, 0, len(b.lines)-(end.Line-start.Line))
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, head+tail)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines
	return text
}
