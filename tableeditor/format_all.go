package tableeditor

import "github.com/iw2rmb/pipetable/table"

// FormatAll formats every table in the buffer in one transaction. A cursor
// inside a table keeps its focus; one below a table follows its line.
func (e *TableEditor) FormatAll(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	m := table.NewRowMatcher(opts.LeftMarginChars)
	pos := e.te.CursorPosition()
	moved := false

	var err error
	e.te.Transact(func() {
		row := 0
		for row <= e.te.LastRow() {
			if !e.isTableRow(m, row) {
				row++
				continue
			}
			start := row
			var lines []string
			for row <= e.te.LastRow() && e.isTableRow(m, row) {
				lines = append(lines, e.te.Line(row))
				row++
			}

			t := table.ReadTable(lines, opts.readOptions())
			var c table.Completed
			if c, err = table.CompleteTable(t, opts.FormatOptions); err != nil {
				return
			}
			var formatted table.Formatted
			if formatted, err = table.FormatTable(c.Table, opts.FormatOptions); err != nil {
				return
			}
			newLines := formatted.Table.Lines()
			e.updateLines(start, row, newLines, lines)

			switch {
			case pos.Row >= row:
				pos.Row += len(newLines) - len(lines)
			case pos.Row >= start:
				if f, ok := t.FocusOfPosition(pos, start); ok {
					if c.DelimiterInserted && f.Row > 0 {
						f = f.WithRow(f.Row + 1)
					}
					f = f.WithOffset(newOffset(f, c.Table, formatted, false))
					if p, ok := formatted.Table.PositionOfFocus(f, start); ok {
						pos = p
					}
				}
			}
			moved = true
			row = start + len(newLines)
		}
		if moved {
			e.te.SetCursorPosition(pos)
		}
	})
	e.ResetSmartCursor()
	return err
}
