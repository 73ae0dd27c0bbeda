package history

import (
	"errors"
	"testing"
)

// counterChange adds delta to a shared counter.
type counterChange struct {
	value *int
	delta int
}

func (c counterChange) Apply()  { *c.value += c.delta }
func (c counterChange) Revert() { *c.value -= c.delta }

func record(h *History, value *int, delta int) {
	c := counterChange{value: value, delta: delta}
	c.Apply()
	h.Record(c)
}

func TestUndoRedo(t *testing.T) {
	h := New(0)
	value := 0

	record(h, &value, 1)
	record(h, &value, 2)

	if err := h.Undo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 1 {
		t.Errorf("expected 1 after undo, got %d", value)
	}

	if err := h.Redo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 3 {
		t.Errorf("expected 3 after redo, got %d", value)
	}
}

func TestUndoEmpty(t *testing.T) {
	h := New(0)

	if err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestGroupUndoneAsUnit(t *testing.T) {
	h := New(0)
	value := 0

	h.BeginGroup()
	record(h, &value, 1)
	record(h, &value, 10)
	h.EndGroup()

	if h.UndoCount() != 1 {
		t.Fatalf("expected 1 undo unit, got %d", h.UndoCount())
	}

	h.Undo()
	if value != 0 {
		t.Errorf("expected 0 after undoing group, got %d", value)
	}
}

func TestUndoClosesOpenGroup(t *testing.T) {
	h := New(0)
	value := 0

	h.BeginGroup()
	record(h, &value, 4)
	record(h, &value, 4)

	h.Undo()
	if value != 0 {
		t.Errorf("expected 0, got %d", value)
	}
	if h.IsGrouping() {
		t.Error("group should be closed after undo")
	}
}

func TestEmptyGroupRecordsNothing(t *testing.T) {
	h := New(0)
	h.BeginGroup()
	h.EndGroup()

	if h.CanUndo() {
		t.Error("empty group should not be undoable")
	}
}

func TestRecordClearsRedo(t *testing.T) {
	h := New(0)
	value := 0

	record(h, &value, 1)
	h.Undo()
	record(h, &value, 5)

	if h.CanRedo() {
		t.Error("redo stack should be cleared by a new change")
	}
}

func TestMaxEntries(t *testing.T) {
	h := New(2)
	value := 0

	for i := 0; i < 5; i++ {
		record(h, &value, 1)
	}

	if h.UndoCount() != 2 {
		t.Errorf("expected 2 entries, got %d", h.UndoCount())
	}
}
