package app

import (
	"errors"
	"testing"
)

type memoryClipboard struct {
	text string
	err  error
}

func (m *memoryClipboard) ReadAll() (string, error) { return m.text, m.err }

func (m *memoryClipboard) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func TestClipboardRoundTrip(t *testing.T) {
	sys := &memoryClipboard{}
	c := NewClipboard(sys)

	if err := c.Set(ClipboardContent{Kind: ClipboardBlock, Text: "line\n"}); err != nil {
		t.Fatal(err)
	}
	if sys.text != "line\n" {
		t.Errorf("expected system clipboard write, got %q", sys.text)
	}
	if got := c.Get(); got.Kind != ClipboardBlock || got.Text != "line\n" {
		t.Errorf("expected block content kept, got %+v", got)
	}
}

func TestClipboardExternalCopy(t *testing.T) {
	sys := &memoryClipboard{}
	c := NewClipboard(sys)
	_ = c.Set(ClipboardContent{Kind: ClipboardBlock, Text: "ours"})

	sys.text = "theirs"
	if got := c.Get(); got.Kind != ClipboardInline || got.Text != "theirs" {
		t.Errorf("expected external text as inline content, got %+v", got)
	}
}

func TestClipboardSystemFailure(t *testing.T) {
	sys := &memoryClipboard{err: errors.New("no display")}
	c := NewClipboard(sys)

	if err := c.Set(ClipboardContent{Kind: ClipboardInline, Text: "x"}); err == nil {
		t.Error("expected system error to be returned")
	}
	if got := c.Get(); got.Text != "x" {
		t.Errorf("expected register to keep content, got %+v", got)
	}
}
