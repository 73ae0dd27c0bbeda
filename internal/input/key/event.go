package key

import (
	"strings"
	"unicode"
)

// Event is one key press as the dispatcher sees it.
type Event struct {
	Key       Key
	Rune      rune // set when Key is KeyRune
	Modifiers Modifier
}

func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

func (e Event) IsRune() bool { return e.Key == KeyRune && e.Rune != 0 }

// IsModified ignores Shift on runes, where it is already folded into the
// character ('A' rather than S-a).
func (e Event) IsModified() bool {
	mods := e.Modifiers
	if e.IsRune() {
		mods &^= ModShift
	}
	return mods != ModNone
}

// IsPrintable is true for keys that text-entry modes insert as typed.
func (e Event) IsPrintable() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// prefixes is the order modifiers are written in a canonical key string.
var prefixes = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "C"},
	{ModAlt, "A"},
	{ModMeta, "M"},
	{ModShift, "S"},
}

// String is the canonical spelling used by key tables, e.g. "j", "C-r",
// "Space" or "S-Tab". Parse accepts everything String produces.
func (e Event) String() string {
	var b strings.Builder
	for _, p := range prefixes {
		if !e.Modifiers.Has(p.mod) || (p.mod == ModShift && e.IsRune()) {
			continue
		}
		b.WriteString(p.name)
		b.WriteByte('-')
	}
	switch {
	case e.Key != KeyRune:
		b.WriteString(e.Key.String())
	case e.Rune == ' ':
		b.WriteString("Space")
	default:
		b.WriteRune(e.Rune)
	}
	return b.String()
}
