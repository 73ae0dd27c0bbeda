package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.Data() != "" {
		t.Errorf("expected empty data, got %q", b.Data())
	}
	if b.Modified() {
		t.Error("new buffer should not be modified")
	}
}

func TestBuffersHaveDistinctIDs(t *testing.T) {
	if New().ID == New().ID {
		t.Error("buffer IDs should be unique")
	}
}

func TestWithContentNormalizesLineEndings(t *testing.T) {
	b := New(WithContent("a\r\nb\rc"))

	if b.Data() != "a\nb\nc" {
		t.Errorf("expected normalized data, got %q", b.Data())
	}
}

func TestInsertDoesNotMoveCursor(t *testing.T) {
	b := New()
	b.Insert("ink\neditor")

	if b.Data() != "ink\neditor" {
		t.Errorf("unexpected data %q", b.Data())
	}
	if b.Cursor().Position() != (Position{0, 0}) {
		t.Errorf("cursor should stay at origin, got %s", b.Cursor().Position())
	}
	if !b.Modified() {
		t.Error("buffer should be modified")
	}
}

func TestInsertMidLine(t *testing.T) {
	b := New(WithContent("ink editor"))
	b.InsertAt(Position{0, 4}, "modal\n")

	if b.Data() != "ink modal\neditor" {
		t.Errorf("unexpected data %q", b.Data())
	}
}

func TestDeleteJoinsLines(t *testing.T) {
	b := New(WithContent("ab\ncd"))
	b.Cursor().MoveTo(Position{0, 2})
	b.Delete()

	if b.Data() != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", b.Data())
	}
}

func TestDeleteAtEndOfBufferIsNoOp(t *testing.T) {
	b := New(WithContent("ab"))
	b.Cursor().MoveTo(Position{0, 2})
	b.Delete()

	if b.Data() != "ab" || b.Modified() {
		t.Error("delete at end of buffer should do nothing")
	}
}

func TestDeleteRangeAndRead(t *testing.T) {
	b := New(WithContent("one\ntwo\nthree"))
	r := NewRange(Position{0, 1}, Position{2, 2})

	if got := b.Read(r); got != "ne\ntwo\nth" {
		t.Errorf("unexpected read %q", got)
	}
	if got := b.DeleteRange(r); got != "ne\ntwo\nth" {
		t.Errorf("unexpected deleted text %q", got)
	}
	if b.Data() != "oree" {
		t.Errorf("unexpected data %q", b.Data())
	}
}

func TestDeleteClampsCursor(t *testing.T) {
	b := New(WithContent("one\ntwo"))
	b.Cursor().MoveTo(Position{1, 3})
	b.DeleteRange(NewRange(Position{0, 3}, Position{1, 3}))

	if got := b.Cursor().Position(); got != (Position{0, 3}) {
		t.Errorf("expected cursor (0:3), got %s", got)
	}
}

func TestUndoRedo(t *testing.T) {
	b := New(WithContent("ink"))
	b.InsertAt(Position{0, 3}, " editor")

	if err := b.Undo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Data() != "ink" {
		t.Errorf("expected %q after undo, got %q", "ink", b.Data())
	}

	if err := b.Redo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Data() != "ink editor" {
		t.Errorf("expected %q after redo, got %q", "ink editor", b.Data())
	}
}

func TestInsertNormalizesLineEndings(t *testing.T) {
	b := New(WithContent("end"))
	b.InsertAt(Position{0, 0}, "one\rtwo\r\nthree ")

	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
	if b.Data() != "one\ntwo\nthree end" {
		t.Errorf("expected CRs to become newlines, got %q", b.Data())
	}
	for i := 0; i < b.LineCount(); i++ {
		if line, _ := b.Line(i); strings.ContainsRune(line, '\r') {
			t.Errorf("line %d still holds a CR: %q", i, line)
		}
	}

	if err := b.Undo(); err != nil || b.Data() != "end" {
		t.Errorf("expected undo to remove the whole insert, got %q (%v)", b.Data(), err)
	}
}

func TestUndoToSavedContentIsUnmodified(t *testing.T) {
	b := New(WithContent("ink"))
	saved := b.Revision()

	b.InsertAt(Position{0, 3}, "!")
	b.Delete()
	if !b.Modified() {
		t.Fatal("expected buffer to be modified after an edit")
	}

	_ = b.Undo()
	if !b.Modified() {
		t.Error("expected buffer to stay modified after a partial undo")
	}
	_ = b.Undo()
	if b.Modified() {
		t.Error("expected undo back to the saved content to clear the modified flag")
	}
	if b.Revision() != saved {
		t.Errorf("expected revision %d to come back, got %d", saved, b.Revision())
	}

	_ = b.Redo()
	if !b.Modified() {
		t.Error("expected redo to mark the buffer modified again")
	}
}

func TestUndoAfterSaveMarksModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("ink"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.InsertAt(Position{0, 3}, "!")
	if err := b.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_ = b.Undo()
	if !b.Modified() {
		t.Error("expected undo past the save point to mark the buffer modified")
	}
}

func TestOperationGroupUndoneTogether(t *testing.T) {
	b := New(WithContent("line"))
	b.StartOperationGroup()
	b.InsertAt(Position{0, 0}, "\n")
	b.InsertAt(Position{0, 0}, "new")
	b.EndOperationGroup()

	b.Undo()
	if b.Data() != "line" {
		t.Errorf("expected group to be undone, got %q", b.Data())
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("ink"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.InsertAt(Position{0, 3}, "!")

	if err := b.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Modified() {
		t.Error("saved buffer should not be modified")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "ink!" {
		t.Errorf("expected file content %q, got %q", "ink!", data)
	}

	os.WriteFile(path, []byte("changed"), 0o644)
	if err := b.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Data() != "changed" {
		t.Errorf("expected reloaded content, got %q", b.Data())
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error opening missing file")
	}
}
