package motion

import (
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
)

func TestMatches(t *testing.T) {
	matches := Matches("ink\nrink ink", "ink")

	want := []buffer.Position{{Line: 0, Offset: 0}, {Line: 1, Offset: 1}, {Line: 1, Offset: 5}}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("match %d: expected %s, got %s", i, want[i], matches[i])
		}
	}
}

func TestMatchesEmptyQuery(t *testing.T) {
	if len(Matches("ink", "")) != 0 {
		t.Error("empty query should not match")
	}
}

func TestNextMatchWraps(t *testing.T) {
	content := "ink\nrink ink"

	got, ok := NextMatch(content, buffer.Position{Line: 1, Offset: 1}, "ink")
	if !ok || got != (buffer.Position{Line: 1, Offset: 5}) {
		t.Errorf("expected (1:5), got %s", got)
	}

	got, _ = NextMatch(content, buffer.Position{Line: 1, Offset: 5}, "ink")
	if got != (buffer.Position{Line: 0, Offset: 0}) {
		t.Errorf("expected wrap to (0:0), got %s", got)
	}
}

func TestPreviousMatchWraps(t *testing.T) {
	content := "ink\nrink ink"

	got, ok := PreviousMatch(content, buffer.Position{Line: 1, Offset: 1}, "ink")
	if !ok || got != (buffer.Position{Line: 0, Offset: 0}) {
		t.Errorf("expected (0:0), got %s", got)
	}

	got, _ = PreviousMatch(content, buffer.Position{Line: 0, Offset: 0}, "ink")
	if got != (buffer.Position{Line: 1, Offset: 5}) {
		t.Errorf("expected wrap to (1:5), got %s", got)
	}
}

func TestNextMatchNone(t *testing.T) {
	if _, ok := NextMatch("ink", buffer.Position{}, "vim"); ok {
		t.Error("expected no match")
	}
}
