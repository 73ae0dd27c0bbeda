package history

import "errors"

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the undo depth used when New is given no limit.
const DefaultMaxEntries = 1000

// Change is an edit that has already been applied to a buffer and can be
// reverted and reapplied any number of times.
type Change interface {
	Apply()
	Revert()
}

// unit is what one Undo or Redo step replays, in recording order.
type unit []Change

// History is a bounded undo stack plus its redo stack. It is owned by a
// single buffer and is not safe for concurrent use.
type History struct {
	undo, redo []unit
	limit      int

	// open collects changes between BeginGroup and EndGroup.
	open     unit
	grouping bool
}

func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{limit: maxEntries}
}

// Record stores c, which the caller has just applied. Any new change makes
// the redo stack unreachable, so it is dropped.
func (h *History) Record(c Change) {
	h.redo = nil
	if h.grouping {
		h.open = append(h.open, c)
		return
	}
	h.push(unit{c})
}

func (h *History) push(u unit) {
	h.redo = nil
	h.undo = append(h.undo, u)
	if over := len(h.undo) - h.limit; over > 0 {
		h.undo = h.undo[over:]
	}
}

// Undo reverts the newest unit, last change first. A group still open is
// closed so that it is reverted as a whole.
func (h *History) Undo() error {
	h.EndGroup()
	u, ok := pop(&h.undo)
	if !ok {
		return ErrNothingToUndo
	}
	for i := len(u) - 1; i >= 0; i-- {
		u[i].Revert()
	}
	h.redo = append(h.redo, u)
	return nil
}

func (h *History) Redo() error {
	u, ok := pop(&h.redo)
	if !ok {
		return ErrNothingToRedo
	}
	for _, c := range u {
		c.Apply()
	}
	h.undo = append(h.undo, u)
	return nil
}

func pop(stack *[]unit) (unit, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	*stack = s[:len(s)-1]
	return s[len(s)-1], true
}

func (h *History) CanUndo() bool  { return len(h.undo) > 0 || len(h.open) > 0 }
func (h *History) CanRedo() bool  { return len(h.redo) > 0 }
func (h *History) UndoCount() int { return len(h.undo) }
func (h *History) RedoCount() int { return len(h.redo) }

// Clear forgets everything, including a group in progress.
func (h *History) Clear() {
	*h = History{limit: h.limit}
}
