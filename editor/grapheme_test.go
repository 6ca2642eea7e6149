package editor

import "testing"

func TestTabAdvance(t *testing.T) {
	tests := []struct {
		col, width, want int
	}{
		{0, 4, 4},
		{1, 4, 3},
		{3, 4, 1},
		{4, 4, 4},
		{2, 0, 2},
		{5, 8, 3},
	}
	for _, tt := range tests {
		if got := tabAdvance(tt.col, tt.width); got != tt.want {
			t.Fatalf("tabAdvance(%d,%d)=%d, want %d", tt.col, tt.width, got, tt.want)
		}
	}
}

func TestLayoutLine(t *testing.T) {
	steps := layoutLine("e\u0301\t日", 4)
	if len(steps) != 3 {
		t.Fatalf("steps=%d, want 3", len(steps))
	}
	want := []cellStep{
		{Text: "e\u0301", StartCol: 0, EndCol: 2, StartCell: 0, CellWidth: 1},
		{Text: "\t", StartCol: 2, EndCol: 3, StartCell: 1, CellWidth: 3},
		{Text: "日", StartCol: 3, EndCol: 4, StartCell: 4, CellWidth: 2},
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d=%+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestCursorCellAndColumnAtCell(t *testing.T) {
	line := "a\tb"
	if got, want := cursorCell(line, 2, 4), 4; got != want {
		t.Fatalf("cursorCell=%d, want %d", got, want)
	}
	if got, want := cursorCell(line, 3, 4), 5; got != want {
		t.Fatalf("cursorCell at end=%d, want %d", got, want)
	}
	if got, want := columnAtCell(line, 2, 4), 1; got != want {
		t.Fatalf("columnAtCell=%d, want %d", got, want)
	}
	if got, want := columnAtCell(line, 9, 4), 3; got != want {
		t.Fatalf("columnAtCell past end=%d, want %d", got, want)
	}
}
