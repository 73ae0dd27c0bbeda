package app

import (
	"github.com/atotto/clipboard"
)

// ClipboardKind says how pasted text is placed.
type ClipboardKind int

const (
	// ClipboardEmpty holds nothing.
	ClipboardEmpty ClipboardKind = iota
	// ClipboardInline text is inserted at the cursor.
	ClipboardInline
	// ClipboardBlock text is whole lines, inserted below the cursor line.
	ClipboardBlock
)

// ClipboardContent is a copied piece of text.
type ClipboardContent struct {
	Kind ClipboardKind
	Text string
}

// SystemClipboard reads and writes the desktop clipboard.
type SystemClipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard uses atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Clipboard is the editor register, mirrored to the system clipboard when
// one is available.
type Clipboard struct {
	content ClipboardContent
	system  SystemClipboard
}

// NewClipboard creates a register backed by system. A nil system uses the
// desktop clipboard unless the platform has none.
func NewClipboard(system SystemClipboard) *Clipboard {
	if system == nil && !clipboard.Unsupported {
		system = systemClipboard{}
	}
	return &Clipboard{system: system}
}

// Get returns the register. Text copied outside the editor since the last
// Set replaces it as inline content.
func (c *Clipboard) Get() ClipboardContent {
	if c.system == nil {
		return c.content
	}
	text, err := c.system.ReadAll()
	if err != nil || text == "" || text == c.content.Text {
		return c.content
	}
	c.content = ClipboardContent{Kind: ClipboardInline, Text: text}
	return c.content
}

// Set stores content and mirrors it to the system clipboard. The register
// is updated even when the system write fails.
func (c *Clipboard) Set(content ClipboardContent) error {
	c.content = content
	if c.system == nil {
		return nil
	}
	return c.system.WriteAll(content.Text)
}
