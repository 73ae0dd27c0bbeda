package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
)

func TestEmptyWorkspace(t *testing.T) {
	w := New(t.TempDir())
	if w.Current() != nil {
		t.Error("expected no current buffer")
	}
	w.Next()
	w.Previous()
	w.CloseCurrent()
	if w.Len() != 0 {
		t.Errorf("expected empty workspace, got %d", w.Len())
	}
}

func TestAddAndCycle(t *testing.T) {
	w := New("/project")
	a := w.Add(buffer.New(buffer.WithPath("/project/a")))
	b := w.Add(buffer.New(buffer.WithPath("/project/b")))
	c := w.Add(buffer.New())

	if w.Current() != c {
		t.Error("expected last added buffer to be current")
	}
	w.Next()
	if w.Current() != a {
		t.Error("expected Next to wrap to the first buffer")
	}
	w.Previous()
	w.Previous()
	if w.Current() != b {
		t.Error("expected Previous to step back twice")
	}
}

func TestAddSelectsExisting(t *testing.T) {
	w := New("/project")
	a := w.Add(buffer.New(buffer.WithPath("/project/a")))
	w.Add(buffer.New(buffer.WithPath("/project/b")))

	got := w.Add(buffer.New(buffer.WithPath("a")))
	if got != a || w.Current() != a {
		t.Error("expected existing buffer to be selected")
	}
	if w.Len() != 2 {
		t.Errorf("expected 2 buffers, got %d", w.Len())
	}
}

func TestOpen(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(root)
	buf, err := w.Open("main.go")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if buf.Data() != "package main\n" {
		t.Errorf("unexpected content %q", buf.Data())
	}

	again, err := w.Open(filepath.Join(root, "main.go"))
	if err != nil || again != buf {
		t.Error("expected reopen to return the same buffer")
	}

	if _, err := w.Open("missing.go"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCloseCurrent(t *testing.T) {
	w := New("/project")
	a := w.Add(buffer.New())
	b := w.Add(buffer.New())

	var closed []*buffer.Buffer
	w.OnClose(func(buf *buffer.Buffer) { closed = append(closed, buf) })

	w.CloseCurrent()
	if w.Current() != a {
		t.Error("expected predecessor to become current")
	}
	w.CloseCurrent()
	if w.Current() != nil {
		t.Error("expected empty workspace")
	}
	if len(closed) != 2 || closed[0] != b || closed[1] != a {
		t.Errorf("unexpected close callbacks %v", closed)
	}
}

func TestRelativePath(t *testing.T) {
	root := filepath.FromSlash("/project")
	w := New(root)

	if got := w.RelativePath(filepath.Join(root, "src", "a.go")); got != filepath.Join("src", "a.go") {
		t.Errorf("unexpected relative path %q", got)
	}
	outside := filepath.FromSlash("/other/b.go")
	if got := w.RelativePath(outside); got != outside {
		t.Errorf("expected outside path unchanged, got %q", got)
	}
	if got := w.RelativePath(""); got != "" {
		t.Errorf("expected empty path, got %q", got)
	}
}
