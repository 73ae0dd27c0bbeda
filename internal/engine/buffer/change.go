package buffer

// insertChange records text inserted at pos. before and after are the buffer
// revisions on either side of the edit.
type insertChange struct {
	buf           *Buffer
	pos           Position
	text          string
	before, after RevisionID
}

func (c *insertChange) Apply() {
	c.buf.insertText(c.pos, c.text)
	c.buf.restore(c.after)
	c.buf.cursor.MoveTo(c.pos)
}

func (c *insertChange) Revert() {
	end := c.buf.insertEnd(c.pos, c.text)
	c.buf.deleteText(NewRange(c.pos, end))
	c.buf.restore(c.before)
	c.buf.cursor.MoveTo(c.pos)
}

// deleteChange records the text removed from rng.
type deleteChange struct {
	buf           *Buffer
	rng           Range
	text          string
	before, after RevisionID
}

func (c *deleteChange) Apply() {
	c.buf.deleteText(c.rng)
	c.buf.restore(c.after)
	c.buf.cursor.MoveTo(c.rng.Start())
}

func (c *deleteChange) Revert() {
	c.buf.insertText(c.rng.Start(), c.text)
	c.buf.restore(c.before)
	c.buf.cursor.MoveTo(c.rng.Start())
}

// insertEnd returns where text inserted at pos ends.
func (b *Buffer) insertEnd(pos Position, text string) Position {
	end := pos
	for _, r := range text {
		if r == '\n' {
			end.Line++
			end.Offset = 0
			continue
		}
		end.Offset++
	}
	return end
}
