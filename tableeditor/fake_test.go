package tableeditor

import "github.com/iw2rmb/pipetable/table"

// fakeEditor is a line slice implementing TextEditor. It records the calls
// made to it so tests can check how lines were written.
type fakeEditor struct {
	lines  []string
	cursor table.Point
	sel    table.Range
	hasSel bool
	fenced map[int]bool

	depth        int
	transactions int
	calls        []string
}

func newFakeEditor(lines ...string) *fakeEditor {
	return &fakeEditor{lines: append([]string(nil), lines...)}
}

func (f *fakeEditor) CursorPosition() table.Point { return f.cursor }

func (f *fakeEditor) SetCursorPosition(pos table.Point) {
	f.cursor = pos
	f.hasSel = false
}

func (f *fakeEditor) SetSelectionRange(r table.Range) {
	f.sel = r
	f.hasSel = true
	f.cursor = r.End
}

func (f *fakeEditor) LastRow() int { return len(f.lines) - 1 }

func (f *fakeEditor) AcceptsTableEdit(row int) bool { return !f.fenced[row] }

func (f *fakeEditor) Line(row int) string { return f.lines[row] }

func (f *fakeEditor) InsertLine(row int, line string) {
	f.calls = append(f.calls, "insert")
	f.lines = append(f.lines, "")
	copy(f.lines[row+1:], f.lines[row:])
	f.lines[row] = line
}

func (f *fakeEditor) DeleteLine(row int) {
	f.calls = append(f.calls, "delete")
	f.lines = append(f.lines[:row], f.lines[row+1:]...)
}

func (f *fakeEditor) ReplaceLines(startRow, endRow int, lines []string) {
	f.calls = append(f.calls, "replace")
	next := append([]string(nil), f.lines[:startRow]...)
	next = append(next, lines...)
	next = append(next, f.lines[endRow:]...)
	f.lines = next
}

func (f *fakeEditor) Transact(fn func()) {
	if f.depth == 0 {
		f.transactions++
	}
	f.depth++
	defer func() { f.depth-- }()
	fn()
}
