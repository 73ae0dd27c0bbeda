package buffer

// Cursor is the insertion point of a buffer.
//
// Vertical moves remember the offset the cursor had before it was pulled
// left by a shorter line, and return to it on longer lines. Any move that
// would leave the buffer is a no-op.
type Cursor struct {
	buf    *Buffer
	pos    Position
	sticky int
}

// Position returns the cursor's position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Line returns the cursor's line.
func (c *Cursor) Line() int {
	return c.pos.Line
}

// Offset returns the cursor's rune offset within its line.
func (c *Cursor) Offset() int {
	return c.pos.Offset
}

// MoveTo moves the cursor to pos if it is inside the buffer.
func (c *Cursor) MoveTo(pos Position) bool {
	if pos.Line < 0 || pos.Line >= c.buf.LineCount() {
		return false
	}
	if pos.Offset < 0 || pos.Offset > c.buf.LineLength(pos.Line) {
		return false
	}
	c.pos = pos
	c.sticky = pos.Offset
	return true
}

// MoveUp moves the cursor to the previous line.
func (c *Cursor) MoveUp() {
	if c.pos.Line == 0 {
		return
	}
	c.moveToLine(c.pos.Line - 1)
}

// MoveDown moves the cursor to the next line.
func (c *Cursor) MoveDown() {
	if c.pos.Line >= c.buf.LineCount()-1 {
		return
	}
	c.moveToLine(c.pos.Line + 1)
}

// MoveLeft moves the cursor one character left within its line.
func (c *Cursor) MoveLeft() {
	if c.pos.Offset == 0 {
		return
	}
	c.MoveTo(Position{Line: c.pos.Line, Offset: c.pos.Offset - 1})
}

// MoveRight moves the cursor one character right within its line.
func (c *Cursor) MoveRight() {
	if c.pos.Offset >= c.buf.LineLength(c.pos.Line) {
		return
	}
	c.MoveTo(Position{Line: c.pos.Line, Offset: c.pos.Offset + 1})
}

// MoveToStartOfLine moves the cursor to offset 0.
func (c *Cursor) MoveToStartOfLine() {
	c.MoveTo(Position{Line: c.pos.Line})
}

// MoveToEndOfLine moves the cursor past the last character of its line.
func (c *Cursor) MoveToEndOfLine() {
	c.MoveTo(Position{Line: c.pos.Line, Offset: c.buf.LineLength(c.pos.Line)})
}

// MoveToFirstLine moves the cursor to the first line.
func (c *Cursor) MoveToFirstLine() {
	c.moveToLine(0)
}

// MoveToLastLine moves the cursor to the last line.
func (c *Cursor) MoveToLastLine() {
	c.moveToLine(c.buf.LineCount() - 1)
}

// moveToLine changes lines, honouring the sticky offset.
func (c *Cursor) moveToLine(line int) {
	offset := c.sticky
	if n := c.buf.LineLength(line); offset > n {
		offset = n
	}
	c.pos = Position{Line: line, Offset: offset}
}

// clamp pulls the cursor back inside the buffer after an edit.
func (c *Cursor) clamp() {
	pos := c.buf.clamp(c.pos)
	if pos != c.pos {
		c.pos = pos
		c.sticky = pos.Offset
	}
}
