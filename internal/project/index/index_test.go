package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "main.go", "internal/app/app.go", ".git/HEAD", "node_modules/x/index.js")

	ix := New(root)
	if err := ix.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"internal/app/app.go", "main.go"}
	got := ix.Paths()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestBuildLimit(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a", "b", "c")

	ix := New(root, WithMaxFiles(2))
	if err := ix.Build(); !errors.Is(err, ErrTooManyFiles) {
		t.Errorf("expected ErrTooManyFiles, got %v", err)
	}
	if ix.Count() != 2 {
		t.Errorf("expected 2 paths kept, got %d", ix.Count())
	}
}

func TestBuildMissingRoot(t *testing.T) {
	ix := New(filepath.Join(t.TempDir(), "missing"))
	if err := ix.Build(); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestFindBeforeBuild(t *testing.T) {
	ix := New(t.TempDir())
	if _, err := ix.Find("x", 5); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("expected ErrNotBuilt, got %v", err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "README.md", "internal/app/app.go", "internal/app/errors.go", "cmd/quill/main.go")

	ix := New(root)
	if err := ix.Build(); err != nil {
		t.Fatal(err)
	}

	results, err := ix.Find("main", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 || results[0] != "cmd/quill/main.go" {
		t.Errorf("expected main.go first, got %v", results)
	}

	results, _ = ix.Find("zzz", 5)
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestRankEmptyQuery(t *testing.T) {
	candidates := []string{"a", "b", "c", "d"}
	matches := Rank(candidates, "", 2)
	if len(matches) != 2 || matches[0].Text != "a" || matches[1].Text != "b" {
		t.Errorf("expected first two candidates, got %v", matches)
	}
}

func TestRankLimitAndOrder(t *testing.T) {
	candidates := []string{"xaxbxc", "abc", "zzz", "abcd", "a/b/c"}
	matches := Rank(candidates, "abc", 3)

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Text != "abc" {
		t.Errorf("expected exact match first, got %q", matches[0].Text)
	}
	for _, m := range matches {
		if m.Text == "zzz" {
			t.Error("non-matching candidate ranked")
		}
	}
}

func TestRankSmartCase(t *testing.T) {
	candidates := []string{"buffer.go", "Buffer.go"}

	if got := Rank(candidates, "buf", 0); len(got) != 2 {
		t.Errorf("expected case-insensitive match of both, got %v", got)
	}
	got := Rank(candidates, "Buf", 0)
	if len(got) != 1 || got[0].Text != "Buffer.go" {
		t.Errorf("expected case-sensitive match, got %v", got)
	}
}
