package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Column: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Column: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Column: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, Column: 99},
		End:   Pos{Row: 0, Column: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Column: 0}, End: Pos{Row: 1, Column: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	// Same effective selection, opposite direction.
	b.SetSelection(Range{Start: Pos{Row: 1, Column: 2}, End: Pos{Row: 0, Column: 0}})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
	raw, ok := b.SelectionRaw()
	if !ok || raw.Start != (Pos{Row: 1, Column: 2}) {
		t.Fatalf("raw selection=%v ok=%v, want anchor (1,2)", raw, ok)
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != 2 {
		t.Fatalf("expected version 2, got %d", b.Version())
	}
}

func TestBuffer_TextAndLines(t *testing.T) {
	b := New("a\r\nb\n", Options{})
	if got, want := b.Text(), "a\nb\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	lines := b.Lines()
	lines[0] = "changed"
	if got := b.Line(0); got != "a" {
		t.Fatalf("Lines must return a copy, line 0=%q", got)
	}
}
