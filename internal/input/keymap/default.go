package keymap

import "github.com/dshills/quill/internal/input/mode"

// LoadDefaults loads all default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	keymaps := []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
		DefaultSelectKeymap(),
		DefaultSelectLineKeymap(),
		DefaultJumpKeymap(),
		DefaultLineJumpKeymap(),
		DefaultSymbolJumpKeymap(),
		DefaultOpenKeymap(),
		DefaultSearchInsertKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}

	return nil
}

// movementBindings are shared by normal mode and the selection modes.
func movementBindings() []Binding {
	return []Binding{
		{Keys: "h", Action: "cursor.move_left", Description: "Move left", Category: "Movement"},
		{Keys: "j", Action: "cursor.move_down", Description: "Move down", Category: "Movement"},
		{Keys: "k", Action: "cursor.move_up", Description: "Move up", Category: "Movement"},
		{Keys: "l", Action: "cursor.move_right", Description: "Move right", Category: "Movement"},
		{Keys: "Left", Action: "cursor.move_left", Description: "Move left", Category: "Movement"},
		{Keys: "Down", Action: "cursor.move_down", Description: "Move down", Category: "Movement"},
		{Keys: "Up", Action: "cursor.move_up", Description: "Move up", Category: "Movement"},
		{Keys: "Right", Action: "cursor.move_right", Description: "Move right", Category: "Movement"},

		{Keys: "H", Action: "cursor.move_to_start_of_line", Description: "Move to line start", Category: "Movement"},
		{Keys: "L", Action: "cursor.move_to_end_of_line", Description: "Move to line end", Category: "Movement"},
		{Keys: "^", Action: "cursor.move_to_first_word_of_line", Description: "Move to first non-blank", Category: "Movement"},
		{Keys: "K", Action: "cursor.move_to_first_line", Description: "Go to document start", Category: "Movement"},
		{Keys: "J", Action: "cursor.move_to_last_line", Description: "Go to document end", Category: "Movement"},

		{Keys: "b", Action: "cursor.move_to_start_of_previous_token", Description: "Move to previous token", Category: "Movement"},
		{Keys: "w", Action: "cursor.move_to_start_of_next_token", Description: "Move to next token", Category: "Movement"},
		{Keys: "e", Action: "cursor.move_to_end_of_current_token", Description: "Move to end of token", Category: "Movement"},

		{Keys: "f", Action: "application.switch_to_jump_mode", Description: "Jump to tag", Category: "Jump"},
		{Keys: "g", Action: "application.switch_to_line_jump_mode", Description: "Jump to line", Category: "Jump"},
		{Keys: "n", Action: "search.move_to_next_match", Description: "Next match", Category: "Search"},
		{Keys: "N", Action: "search.move_to_previous_match", Description: "Previous match", Category: "Search"},

		{Keys: ",", Action: "view.scroll_up", Description: "Scroll up", Category: "Scrolling"},
		{Keys: "m", Action: "view.scroll_down", Description: "Scroll down", Category: "Scrolling"},
	}
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	km := &Keymap{
		Name:   "default-normal",
		Mode:   mode.ModeNormal,
		Source: "default",
		Bindings: []Binding{
			// Insert variants
			{Keys: "i", Action: "application.switch_to_insert_mode", Description: "Insert before cursor", Category: "Insert"},
			{Keys: "I", Action: "cursor.insert_at_first_word_of_line", Description: "Insert at first word", Category: "Insert"},
			{Keys: "a", Action: "cursor.append_to_current_token", Description: "Append to token", Category: "Insert"},
			{Keys: "A", Action: "cursor.insert_at_end_of_line", Description: "Insert at line end", Category: "Insert"},
			{Keys: "o", Action: "cursor.insert_with_newline", Description: "Open line below", Category: "Insert"},
			{Keys: "O", Action: "cursor.insert_with_newline_above", Description: "Open line above", Category: "Insert"},

			// Modes
			{Keys: "v", Action: "application.switch_to_select_mode", Description: "Select characters", Category: "Selection"},
			{Keys: "V", Action: "application.switch_to_select_line_mode", Description: "Select lines", Category: "Selection"},
			{Keys: "#", Action: "application.switch_to_symbol_jump_mode", Description: "Jump to symbol", Category: "Jump"},
			{Keys: "Space", Action: "application.switch_to_open_mode", Description: "Open file", Category: "Files"},
			{Keys: "/", Action: "application.switch_to_search_insert_mode", Description: "Search", Category: "Search"},

			// Editing
			{Keys: "x", Action: "buffer.delete", Description: "Delete character", Category: "Editing"},
			{Keys: "X", Action: "buffer.delete_line", Description: "Delete line", Category: "Editing"},
			{Keys: "p", Action: "buffer.paste", Description: "Paste", Category: "Editing"},
			{Keys: "u", Action: "buffer.undo", Description: "Undo", Category: "Editing"},
			{Keys: "r", Action: "buffer.redo", Description: "Redo", Category: "Editing"},
			{Keys: ">", Action: "buffer.indent_line", Description: "Indent line", Category: "Editing"},
			{Keys: "<", Action: "buffer.outdent_line", Description: "Outdent line", Category: "Editing"},

			// Buffers
			{Keys: "s", Action: "buffer.save", Description: "Save", Category: "Files"},
			{Keys: "C-r", Action: "buffer.reload", Description: "Reload from disk", Category: "Files"},
			{Keys: "q", Action: "buffer.close", Description: "Close buffer", Category: "Files"},
			{Keys: "Tab", Action: "workspace.next_buffer", Description: "Next buffer", Category: "Files"},
			{Keys: "S-Tab", Action: "workspace.previous_buffer", Description: "Previous buffer", Category: "Files"},
			{Keys: "R", Action: "git.copy_remote_url", Description: "Copy remote URL", Category: "Git"},
			{Keys: "Q", Action: "application.exit", Description: "Quit", Category: "Files"},
		},
	}
	km.Bindings = append(movementBindings(), km.Bindings...)
	return km
}

// selectionBindings act on the selection in both selection modes.
func selectionBindings() []Binding {
	return []Binding{
		{Keys: "y", Action: "selection.copy", Description: "Copy selection", Category: "Selection"},
		{Keys: "d", Action: "selection.copy_and_delete", Description: "Cut selection", Category: "Selection"},
		{Keys: "c", Action: "selection.change", Description: "Change selection", Category: "Selection"},
		{Keys: "Esc", Action: "application.switch_to_normal_mode", Description: "Clear selection", Category: "Selection"},
	}
}

// DefaultSelectKeymap returns default select mode bindings.
func DefaultSelectKeymap() *Keymap {
	km := &Keymap{
		Name:   "default-select",
		Mode:   mode.ModeSelect,
		Source: "default",
		Bindings: []Binding{
			{Keys: "v", Action: "application.switch_to_normal_mode", Description: "Clear selection", Category: "Selection"},
		},
	}
	km.Bindings = append(append(movementBindings(), selectionBindings()...), km.Bindings...)
	return km
}

// DefaultSelectLineKeymap returns default select line mode bindings.
func DefaultSelectLineKeymap() *Keymap {
	km := &Keymap{
		Name:   "default-select-line",
		Mode:   mode.ModeSelectLine,
		Source: "default",
		Bindings: []Binding{
			{Keys: "V", Action: "application.switch_to_normal_mode", Description: "Clear selection", Category: "Selection"},
			{Keys: ">", Action: "buffer.indent_line", Description: "Indent lines", Category: "Editing"},
			{Keys: "<", Action: "buffer.outdent_line", Description: "Outdent lines", Category: "Editing"},
			{Keys: "R", Action: "git.copy_remote_url", Description: "Copy remote URL", Category: "Git"},
		},
	}
	km.Bindings = append(append(movementBindings(), selectionBindings()...), km.Bindings...)
	return km
}

// DefaultInsertKeymap returns default insert mode bindings. Printable
// keys are typed rather than looked up.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   mode.ModeInsert,
		Source: "default",
		Bindings: []Binding{
			{Keys: "Esc", Action: "application.switch_to_normal_mode", Description: "Leave insert mode", Category: "Mode"},
			{Keys: "Enter", Action: "buffer.insert_newline", Description: "Insert newline", Category: "Editing"},
			{Keys: "Tab", Action: "buffer.insert_tab", Description: "Insert tab", Category: "Editing"},
			{Keys: "BS", Action: "buffer.backspace", Description: "Delete backward", Category: "Editing"},
			{Keys: "Del", Action: "buffer.delete", Description: "Delete forward", Category: "Editing"},
			{Keys: "Left", Action: "cursor.move_left", Description: "Move left", Category: "Movement"},
			{Keys: "Down", Action: "cursor.move_down", Description: "Move down", Category: "Movement"},
			{Keys: "Up", Action: "cursor.move_up", Description: "Move up", Category: "Movement"},
			{Keys: "Right", Action: "cursor.move_right", Description: "Move right", Category: "Movement"},
			{Keys: "Home", Action: "cursor.move_to_start_of_line", Description: "Move to line start", Category: "Movement"},
			{Keys: "End", Action: "cursor.move_to_end_of_line", Description: "Move to line end", Category: "Movement"},
		},
	}
}

// DefaultJumpKeymap returns default jump mode bindings. Tag letters are
// typed rather than looked up.
func DefaultJumpKeymap() *Keymap {
	return NewKeymap("default-jump", mode.ModeJump).
		WithSource("default").
		Add("Esc", "jump_mode.cancel")
}

// DefaultLineJumpKeymap returns default line jump bindings.
func DefaultLineJumpKeymap() *Keymap {
	return NewKeymap("default-line-jump", mode.ModeLineJump).
		WithSource("default").
		Add("Enter", "line_jump.accept").
		Add("BS", "prompt.backspace").
		Add("Esc", "application.switch_to_normal_mode")
}

// DefaultSymbolJumpKeymap returns default symbol jump bindings.
func DefaultSymbolJumpKeymap() *Keymap {
	return NewKeymap("default-symbol-jump", mode.ModeSymbolJump).
		WithSource("default").
		Add("Enter", "symbol_jump.accept").
		Add("BS", "prompt.backspace").
		Add("Down", "symbol_jump.select_next_symbol").
		Add("Up", "symbol_jump.select_previous_symbol").
		Add("C-j", "symbol_jump.select_next_symbol").
		Add("C-k", "symbol_jump.select_previous_symbol").
		Add("Esc", "application.switch_to_normal_mode")
}

// DefaultOpenKeymap returns default open mode bindings.
func DefaultOpenKeymap() *Keymap {
	return NewKeymap("default-open", mode.ModeOpen).
		WithSource("default").
		Add("Enter", "open_mode.open").
		Add("BS", "prompt.backspace").
		Add("Down", "open_mode.select_next_path").
		Add("Up", "open_mode.select_previous_path").
		Add("C-j", "open_mode.select_next_path").
		Add("C-k", "open_mode.select_previous_path").
		Add("Esc", "application.switch_to_normal_mode")
}

// DefaultSearchInsertKeymap returns default search prompt bindings.
func DefaultSearchInsertKeymap() *Keymap {
	return NewKeymap("default-search-insert", mode.ModeSearchInsert).
		WithSource("default").
		Add("Enter", "search.accept").
		Add("BS", "prompt.backspace").
		Add("Esc", "application.switch_to_normal_mode")
}
