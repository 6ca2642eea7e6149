package table

import "testing"

func TestRow_Text(t *testing.T) {
	r := NewRow([]Cell{NewCell(" A "), NewCell(" B ")}, "  ", " ")
	if got, want := r.Text(), "  | A | B | "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	empty := NewRow(nil, "> ", "ignored")
	if got, want := empty.Text(), "> "; got != want {
		t.Fatalf("empty text=%q, want %q", got, want)
	}
}

func TestRow_IsDelimiter(t *testing.T) {
	if !NewRow(nil, "", "").IsDelimiter() {
		t.Fatalf("row without cells must be a delimiter row")
	}
	if !NewRow([]Cell{NewCell(" --- "), NewCell(":-:")}, "", "").IsDelimiter() {
		t.Fatalf("expected delimiter row")
	}
	if NewRow([]Cell{NewCell(" --- "), NewCell(" x ")}, "", "").IsDelimiter() {
		t.Fatalf("expected non-delimiter row")
	}
}

func TestRow_CellsAreCopied(t *testing.T) {
	cells := []Cell{NewCell("a")}
	r := NewRow(cells, "", "")
	cells[0] = NewCell("b")

	got := r.Cells()
	if got[0].RawContent() != "a" {
		t.Fatalf("row aliased caller slice")
	}
	got[0] = NewCell("c")
	if c, _ := r.CellAt(0); c.RawContent() != "a" {
		t.Fatalf("Cells() exposed internal slice")
	}
}
