package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/quill/internal/commands"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/keymap"
	"github.com/dshills/quill/internal/input/mode"
)

// Errors reported for user key bindings.
var (
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownCommand = errors.New("unknown command")
)

// bindableModes are the modes with key tables.
var bindableModes = map[string]bool{
	mode.ModeNormal:       true,
	mode.ModeInsert:       true,
	mode.ModeJump:         true,
	mode.ModeLineJump:     true,
	mode.ModeSymbolJump:   true,
	mode.ModeOpen:         true,
	mode.ModeSelect:       true,
	mode.ModeSelectLine:   true,
	mode.ModeSearchInsert: true,
}

// Dispatcher maps key events to commands for the current mode.
type Dispatcher struct {
	registry *keymap.Registry
	catalog  map[string]commands.Command
}

// NewDispatcher loads the default key tables and applies user bindings,
// given as mode name to key specification to command name. Every invalid
// user binding is reported.
func NewDispatcher(user map[string]map[string]string) (*Dispatcher, error) {
	d := &Dispatcher{
		registry: keymap.NewRegistry(),
		catalog:  commands.Catalog(),
	}
	if err := keymap.LoadDefaults(d.registry); err != nil {
		return nil, err
	}

	var errs []error
	for _, name := range sortedKeys(user) {
		if !bindableModes[name] {
			errs = append(errs, fmt.Errorf("keys.%s: %w", name, ErrUnknownMode))
			continue
		}

		km := keymap.NewKeymap("user-"+name, name).WithSource("user")
		for _, spec := range sortedKeys(user[name]) {
			action := user[name][spec]
			if _, err := key.Parse(spec); err != nil {
				errs = append(errs, fmt.Errorf("keys.%s.%q: %w", name, spec, err))
				continue
			}
			if _, ok := d.catalog[action]; !ok {
				errs = append(errs, fmt.Errorf("keys.%s.%q: %w %q", name, spec, ErrUnknownCommand, action))
				continue
			}
			km.Add(spec, action)
		}
		if err := d.registry.Register(km); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Defaults only name catalog commands; a miss here is a programming error.
	for _, m := range d.registry.Modes() {
		for k, action := range d.registry.Bindings(m) {
			if _, ok := d.catalog[action]; !ok {
				return nil, fmt.Errorf("%s %s: %w %q", m, k, ErrUnknownCommand, action)
			}
		}
	}

	return d, nil
}

// Dispatch returns the command for ev in mode m, or nil when the key does
// nothing there.
func (d *Dispatcher) Dispatch(m mode.Mode, ev key.Event) commands.Command {
	if mode.IsTextEntry(m) && ev.IsPrintable() {
		return commands.InsertRune(ev.Rune)
	}

	action, ok := d.registry.Lookup(m.Name(), ev)
	if !ok {
		return nil
	}
	return d.catalog[action]
}

// Action returns the command name bound to ev in mode m.
func (d *Dispatcher) Action(m mode.Mode, ev key.Event) (string, bool) {
	return d.registry.Lookup(m.Name(), ev)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
