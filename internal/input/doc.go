// Package input turns key events into commands.
//
// Each mode has a key table (see package keymap). Modes that take text,
// such as insert mode and the prompts, treat unmodified printable keys as
// input instead of looking them up. Keys with no binding produce no
// command.
//
//	d, err := input.NewDispatcher(cfg.Keys)
//	if cmd := d.Dispatch(a.Mode, ev); cmd != nil {
//	    cmd(a)
//	}
package input
