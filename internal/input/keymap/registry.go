package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/quill/internal/input/key"
)

// Registry holds the merged key tables of all registered keymaps.
type Registry struct {
	// tables maps mode name to canonical key to action.
	tables map[string]map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]map[string]string)}
}

// Register merges km into its mode's table, replacing existing bindings
// for the same keys.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	table, ok := r.tables[km.Mode]
	if !ok {
		table = make(map[string]string, len(parsed))
		r.tables[km.Mode] = table
	}
	for k, action := range parsed {
		table[k] = action
	}
	return nil
}

// Lookup returns the action bound to ev in mode.
func (r *Registry) Lookup(mode string, ev key.Event) (string, bool) {
	action, ok := r.tables[mode][ev.String()]
	return action, ok
}

// Modes returns the names of modes with bindings, sorted.
func (r *Registry) Modes() []string {
	modes := make([]string, 0, len(r.tables))
	for m := range r.tables {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

// Bindings returns a copy of mode's table.
func (r *Registry) Bindings(mode string) map[string]string {
	table := make(map[string]string, len(r.tables[mode]))
	for k, action := range r.tables[mode] {
		table[k] = action
	}
	return table
}
