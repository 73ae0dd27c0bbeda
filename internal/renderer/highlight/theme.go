package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/quill/internal/renderer/core"
)

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "monokai"

// Theme maps token types to cell styles using a chroma style.
type Theme struct {
	// Name is the chroma style name.
	Name string

	// LineHighlight is the background of the cursor line and the selected
	// entry of result lists.
	LineHighlight core.Color

	// Guide is the background of the line length guide column.
	Guide core.Color

	style *chroma.Style
}

// HasTheme reports whether name is a known chroma style.
func HasTheme(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// NewTheme loads the named chroma style, falling back to the default.
func NewTheme(name string) *Theme {
	if !HasTheme(name) {
		name = DefaultThemeName
	}
	style := styles.Get(strings.ToLower(name))

	t := &Theme{
		Name:          name,
		LineHighlight: core.ColorGray,
		Guide:         core.ColorGray,
		style:         style,
	}
	if entry := style.Get(chroma.LineHighlight); entry.Background.IsSet() {
		t.LineHighlight = colorOf(entry.Background)
		t.Guide = t.LineHighlight
	}
	return t
}

// StyleFor returns the cell style for a token type.
// Backgrounds are left to the terminal.
func (t *Theme) StyleFor(tt chroma.TokenType) core.Style {
	entry := t.style.Get(tt)

	s := core.DefaultStyle()
	if entry.Colour.IsSet() {
		s = s.WithForeground(colorOf(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold()
	}
	return s
}

func colorOf(c chroma.Colour) core.Color {
	return core.ColorFromRGB(c.Red(), c.Green(), c.Blue())
}
