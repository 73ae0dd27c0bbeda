package key

import "strings"

// Key is a named key. Characters use KeyRune with the character in Event.Rune.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRune
)

// keyNames holds, per key, its canonical name first and then the other
// spellings Parse accepts.
var keyNames = map[Key][]string{
	KeyNone:      {"None"},
	KeyEscape:    {"Esc", "escape"},
	KeyEnter:     {"Enter", "return", "cr"},
	KeyTab:       {"Tab"},
	KeyBackspace: {"BS", "backspace"},
	KeyDelete:    {"Del", "delete"},
	KeyHome:      {"Home"},
	KeyEnd:       {"End"},
	KeyPageUp:    {"PgUp", "pageup"},
	KeyPageDown:  {"PgDn", "pagedown"},
	KeyUp:        {"Up"},
	KeyDown:      {"Down"},
	KeyLeft:      {"Left"},
	KeyRight:     {"Right"},
	KeyRune:      {"Rune"},
}

var byName = func() map[string]Key {
	m := make(map[string]Key)
	for k, names := range keyNames {
		if k == KeyNone || k == KeyRune {
			continue
		}
		for _, n := range names {
			m[strings.ToLower(n)] = k
		}
	}
	return m
}()

func (k Key) String() string {
	if names, ok := keyNames[k]; ok {
		return names[0]
	}
	return "Unknown"
}

// KeyFromName resolves any accepted spelling, ignoring case. Unknown names
// give KeyNone.
func KeyFromName(name string) Key {
	return byName[strings.ToLower(strings.TrimSpace(name))]
}
