package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	// ModMeta is Cmd on macOS and the Windows key elsewhere.
	ModMeta
)

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// modifierNames maps every accepted spelling in a key spec to its modifier.
// The single letters are the canonical forms String prints.
var modifierNames = map[string]Modifier{
	"c": ModCtrl, "ctrl": ModCtrl, "control": ModCtrl,
	"a": ModAlt, "alt": ModAlt, "opt": ModAlt, "option": ModAlt,
	"s": ModShift, "shift": ModShift,
	"m": ModMeta, "d": ModMeta, "meta": ModMeta, "cmd": ModMeta, "super": ModMeta, "win": ModMeta,
}

// ModifierFromName looks name up case-insensitively; unknown names give
// ModNone.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(strings.TrimSpace(name))]
}
