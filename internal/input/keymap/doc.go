// Package keymap maps keys to command names, one table per mode.
//
// Bindings are written as key specifications ("j", "C-s", "<Esc>",
// "Space") and stored under their canonical form, the string
// key.Event.String produces, so lookup is a single map access:
//
//	r := keymap.NewRegistry()
//	if err := keymap.LoadDefaults(r); err != nil {
//	    // a default binding failed to parse
//	}
//	action, ok := r.Lookup(mode.ModeNormal, key.NewRuneEvent('j', key.ModNone))
//	// action == "cursor.move_down"
//
// User bindings registered later replace defaults for the same key.
package keymap
