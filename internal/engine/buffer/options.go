package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithContent sets the buffer's initial content.
// Line endings are normalized to LF.
func WithContent(s string) Option {
	return func(b *Buffer) {
		b.lines = splitLines(s)
	}
}

// WithPath associates the buffer with a file path.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithHistoryLimit bounds the number of undo units the buffer keeps.
func WithHistoryLimit(n int) Option {
	return func(b *Buffer) {
		b.historyLimit = n
	}
}
