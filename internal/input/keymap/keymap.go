package keymap

import (
	"fmt"

	"github.com/dshills/quill/internal/input/key"
)

// Binding maps one key to a command name.
type Binding struct {
	// Keys is the key specification, e.g. "j", "C-s", "<Esc>".
	Keys string

	// Action is the command name, e.g. "cursor.move_down".
	Action string

	// Description documents the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// Keymap holds the bindings for one mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the name of the mode the bindings apply to.
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined: "default" or "user".
	Source string
}

// NewKeymap creates an empty keymap for mode.
func NewKeymap(name, mode string) *Keymap {
	return &Keymap{Name: name, Mode: mode}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{Keys: keys, Action: action})
	return k
}

// Parse returns the bindings keyed by canonical key string. Later
// bindings for the same key win.
func (k *Keymap) Parse() (map[string]string, error) {
	table := make(map[string]string, len(k.Bindings))
	for i, b := range k.Bindings {
		if b.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
		table[ev.String()] = b.Action
	}
	return table, nil
}
