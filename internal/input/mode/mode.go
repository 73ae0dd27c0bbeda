package mode

// Mode names.
const (
	ModeNormal       = "normal"
	ModeInsert       = "insert"
	ModeJump         = "jump"
	ModeLineJump     = "line_jump"
	ModeSymbolJump   = "symbol_jump"
	ModeOpen         = "open"
	ModeSelect       = "select"
	ModeSelectLine   = "select_line"
	ModeSearchInsert = "search_insert"
	ModeExit         = "exit"
)

// Mode is one of the editor's modes.
// The unexported method keeps the set of implementations closed.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns the label shown in the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	mode()
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota
	// CursorBar is a thin vertical bar cursor.
	CursorBar
	// CursorHidden hides the cursor.
	CursorHidden
)

// AllowsEdits reports whether m may change buffer text: the normal family
// (Normal and the selection modes built on it) and Insert.
func AllowsEdits(m Mode) bool {
	switch m.(type) {
	case *Normal, *Select, *SelectLine, *Insert:
		return true
	default:
		return false
	}
}

// IsTextEntry reports whether printable keys are input for m rather than
// lookups in its key table.
func IsTextEntry(m Mode) bool {
	switch m.(type) {
	case *Insert, *Jump, *LineJump, *SymbolJump, *Open, *SearchInsert:
		return true
	default:
		return false
	}
}
