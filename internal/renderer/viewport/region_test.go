package viewport

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/engine/buffer"
)

func TestLineOffsetDefaultsToZero(t *testing.T) {
	r := NewRegion(10)
	if got := r.LineOffset(uuid.New()); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestScrollOffsetNeverNegative(t *testing.T) {
	r := NewRegion(10)
	id := uuid.New()

	r.ScrollUp(id, 3)
	if got := r.LineOffset(id); got != 0 {
		t.Errorf("expected 0 after scrolling up from top, got %d", got)
	}

	r.ScrollDown(id, 2)
	r.ScrollUp(id, 5)
	if got := r.LineOffset(id); got != 0 {
		t.Errorf("expected saturation at 0, got %d", got)
	}

	steps := []struct {
		up bool
		n  int
	}{{false, 4}, {true, 1}, {true, 7}, {false, 1}, {true, 1}, {true, 1}}
	for _, s := range steps {
		if s.up {
			r.ScrollUp(id, s.n)
		} else {
			r.ScrollDown(id, s.n)
		}
		if r.LineOffset(id) < 0 {
			t.Fatalf("offset went negative: %d", r.LineOffset(id))
		}
	}
}

func TestScrollDownCreatesEntry(t *testing.T) {
	r := NewRegion(10)
	id := uuid.New()

	r.ScrollDown(id, 3)
	if got := r.LineOffset(id); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestScrollDownAllowsSlack(t *testing.T) {
	r := NewRegion(5)
	id := uuid.New()

	r.ScrollDown(id, 1000)
	if got := r.LineOffset(id); got != 1000 {
		t.Errorf("expected offset past content to be kept, got %d", got)
	}
}

func TestScrollToCursor(t *testing.T) {
	r := NewRegion(10)
	id := uuid.New()

	r.ScrollToCursor(id, 15)
	if got := r.LineOffset(id); got != 6 {
		t.Errorf("expected cursor at bottom edge (offset 6), got %d", got)
	}

	r.ScrollToCursor(id, 8)
	if got := r.LineOffset(id); got != 6 {
		t.Errorf("visible cursor should not scroll, got %d", got)
	}

	r.ScrollToCursor(id, 2)
	if got := r.LineOffset(id); got != 2 {
		t.Errorf("expected cursor at top edge (offset 2), got %d", got)
	}
}

func TestScrollToCursorIdempotent(t *testing.T) {
	r := NewRegion(7)
	id := uuid.New()

	for _, line := range []int{0, 3, 20, 6, 100, 13} {
		r.ScrollToCursor(id, line)
		first := r.LineOffset(id)
		r.ScrollToCursor(id, line)
		if second := r.LineOffset(id); second != first {
			t.Errorf("line %d: offset changed from %d to %d", line, first, second)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	r := NewRegion(10)
	id := uuid.New()
	r.ScrollDown(id, 5)

	vr := r.VisibleRange(id)
	if vr.Start() != 5 || vr.End() != 14 {
		t.Errorf("expected 5..14, got %d..%d", vr.Start(), vr.End())
	}
}

func TestForget(t *testing.T) {
	r := NewRegion(10)
	id := uuid.New()
	r.ScrollDown(id, 5)
	r.Forget(id)

	if r.LineOffset(id) != 0 {
		t.Error("forgotten buffer should start at offset 0")
	}
}

func TestSetHeightClamps(t *testing.T) {
	r := NewRegion(0)
	if r.Height() != 1 {
		t.Errorf("expected height 1, got %d", r.Height())
	}
	r.SetHeight(-3)
	if r.Height() != 1 {
		t.Errorf("expected height 1, got %d", r.Height())
	}
}

func TestRelativePosition(t *testing.T) {
	r := NewRegion(10)
	id := uuid.New()
	r.ScrollDown(id, 5)

	tests := []struct {
		line int
		want RelativeLine
	}{
		{4, RelativeLine{Visibility: AboveVisible}},
		{5, RelativeLine{Visibility: Visible, Line: 0}},
		{14, RelativeLine{Visibility: Visible, Line: 9}},
		{15, RelativeLine{Visibility: BelowVisible}},
	}

	for _, tt := range tests {
		if got := r.RelativePosition(id, tt.line); got != tt.want {
			t.Errorf("line %d: expected %+v, got %+v", tt.line, tt.want, got)
		}
	}
}

func TestRelativeCursor(t *testing.T) {
	r := NewRegion(3)
	id := uuid.New()
	r.ScrollDown(id, 2)

	pos, ok := r.RelativeCursor(id, buffer.Position{Line: 3, Offset: 7})
	if !ok || pos != (buffer.Position{Line: 1, Offset: 7}) {
		t.Errorf("expected (1:7), got %s (ok=%v)", pos, ok)
	}

	if _, ok := r.RelativeCursor(id, buffer.Position{Line: 1}); ok {
		t.Error("cursor above the window should not be visible")
	}
}

func TestRelativeRangeClipsPartiallyVisible(t *testing.T) {
	r := NewRegion(5)
	id := uuid.New()
	r.ScrollDown(id, 10)

	rng := buffer.NewRange(buffer.Position{Line: 8, Offset: 3}, buffer.Position{Line: 12, Offset: 2})
	got, ok := r.RelativeRange(id, rng)
	if !ok {
		t.Fatal("expected visible range")
	}
	want := buffer.NewRange(buffer.Position{Line: 0, Offset: 0}, buffer.Position{Line: 2, Offset: 2})
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	rng = buffer.NewRange(buffer.Position{Line: 12, Offset: 1}, buffer.Position{Line: 30, Offset: 0})
	got, _ = r.RelativeRange(id, rng)
	want = buffer.NewRange(buffer.Position{Line: 2, Offset: 1}, buffer.Position{Line: 5, Offset: 0})
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// An end inside the first line below the window stops at the window edge.
	rng = buffer.NewRange(buffer.Position{Line: 10}, buffer.Position{Line: 15, Offset: 3})
	got, _ = r.RelativeRange(id, rng)
	want = buffer.NewRange(buffer.Position{}, buffer.Position{Line: 5, Offset: 0})
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRelativeRangeOutsideWindow(t *testing.T) {
	r := NewRegion(5)
	id := uuid.New()
	r.ScrollDown(id, 10)

	above := buffer.NewRange(buffer.Position{Line: 1}, buffer.Position{Line: 9, Offset: 4})
	if _, ok := r.RelativeRange(id, above); ok {
		t.Error("range above the window should not be visible")
	}

	below := buffer.NewRange(buffer.Position{Line: 15}, buffer.Position{Line: 16})
	if _, ok := r.RelativeRange(id, below); ok {
		t.Error("range below the window should not be visible")
	}
}
