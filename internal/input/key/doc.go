// Package key provides key event types and parsing for the input system.
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press
//
// Every Event has a canonical string form, returned by Event.String, which
// keymaps use as their lookup key:
//
//	"a", "A", "Space", "C-s", "Esc", "Enter", "BS", "Tab", "Up"
//
// Parse accepts the canonical form and a few friendlier spellings:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+x"
//   - Vim-style: "<C-s>", "<CR>", "<Esc>", "<Space>"
package key
