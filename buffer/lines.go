package buffer

// The methods in this file implement tableeditor.TextEditor.

func (b *Buffer) CursorPosition() Pos { return b.cursor }

// SetCursorPosition moves the cursor and clears the selection.
func (b *Buffer) SetCursorPosition(p Pos) {
	b.ClearSelection()
	b.SetCursor(p)
}

// SetSelectionRange selects r with the cursor at r.End.
func (b *Buffer) SetSelectionRange(r Range) {
	if r.IsEmpty() {
		b.SetCursorPosition(r.End)
		return
	}
	b.SetSelection(r)
	b.SetCursor(r.End)
}

func (b *Buffer) LastRow() int { return len(b.lines) - 1 }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// InsertLine inserts line before row. A row past the end appends.
func (b *Buffer) InsertLine(row int, line string) {
	row = clampInt(row, 0, len(b.lines))
	out := make([]string, 0, len(b.lines)+1)
	out = append(out, b.lines[:row]...)
	out = append(out, line)
	out = append(out, b.lines[row:]...)
	b.Transact(func() { b.setLines(out) })
}

// DeleteLine removes row. Deleting the only line leaves one empty line.
func (b *Buffer) DeleteLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	out := make([]string, 0, len(b.lines)-1)
	out = append(out, b.lines[:row]...)
	out = append(out, b.lines[row+1:]...)
	b.Transact(func() { b.setLines(out) })
}

// ReplaceLines replaces rows [startRow, endRow) with lines.
func (b *Buffer) ReplaceLines(startRow, endRow int, lines []string) {
	startRow = clampInt(startRow, 0, len(b.lines))
	endRow = clampInt(endRow, startRow, len(b.lines))
	out := make([]string, 0, len(b.lines)-(endRow-startRow)+len(lines))
	out = append(out, b.lines[:startRow]...)
	out = append(out, lines...)
	out = append(out, b.lines[endRow:]...)
	b.Transact(func() { b.setLines(out) })
}
