package tableeditor

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/pipetable/table"
)

// edit is the state every command starts from: the table block under the
// cursor, completed, and the cursor focus adjusted for a synthesized
// delimiter row.
type edit struct {
	info      TableInfo
	completed table.Table
	focus     table.Focus
}

func (e *TableEditor) begin(opts Options) (edit, bool, error) {
	if err := opts.Validate(); err != nil {
		return edit{}, false, err
	}
	info, ok := e.FindTable(opts)
	if !ok {
		return edit{}, false, nil
	}
	c, err := table.CompleteTable(info.Table, opts.FormatOptions)
	if err != nil {
		return edit{}, false, err
	}
	f := info.Focus
	if c.DelimiterInserted && f.Row > 0 {
		f = f.WithRow(f.Row + 1)
	}
	return edit{info: info, completed: c.Table, focus: f}, true, nil
}

// cursorMode says how the cursor is placed after a write.
type cursorMode int

const (
	cursorMove cursorMode = iota
	cursorSelect
)

func modeFor(moved bool) cursorMode {
	if moved {
		return cursorSelect
	}
	return cursorMove
}

// write formats altered, places f in the formatted table and writes it back
// in one transaction.
func (e *TableEditor) write(ed edit, altered table.Table, f table.Focus, moved bool, mode cursorMode, opts Options) (table.Focus, error) {
	formatted, err := table.FormatTable(altered, opts.FormatOptions)
	if err != nil {
		return f, err
	}
	f = f.WithOffset(newOffset(f, ed.completed, formatted, moved))
	e.writeFormatted(ed, formatted.Table, formatted.Table.Lines(), f, mode)
	return f, nil
}

func (e *TableEditor) writeFormatted(ed edit, t table.Table, lines []string, f table.Focus, mode cursorMode) {
	start := ed.info.StartRow()
	e.te.Transact(func() {
		e.updateLines(start, ed.info.EndRow(), lines, ed.info.Lines)
		if mode == cursorSelect {
			e.selectFocus(start, t, f)
		} else {
			e.moveToFocus(start, t, f)
		}
	})
}

// newOffset computes the offset of f in the formatted table. A focus moved
// to another cell lands at the start of the content; otherwise it keeps its
// position within the content.
func newOffset(f table.Focus, before table.Table, formatted table.Formatted, moved bool) int {
	fc, ok := formatted.Table.FocusedCell(f)
	if moved {
		if ok {
			return fc.RawOffset(0)
		}
		return marginOffset(f, formatted)
	}
	bc, bok := before.FocusedCell(f)
	if !ok || !bok {
		return marginOffset(f, formatted)
	}
	offset := min(bc.ContentOffset(f.Offset), runeCount(fc.Content()))
	return fc.RawOffset(offset)
}

func marginOffset(f table.Focus, formatted table.Formatted) int {
	if f.Column < 0 {
		return runeCount(formatted.MarginLeft)
	}
	return 0
}

func runeCount(s string) int { return utf8.RuneCountInString(s) }

func emptyCells(n int) []table.Cell {
	return make([]table.Cell, max(n, 0))
}

// Format completes and formats the table under the cursor.
func (e *TableEditor) Format(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	_, err = e.write(ed, ed.completed, ed.focus, false, cursorMove, opts)
	e.ResetSmartCursor()
	return err
}

// Escape formats the table and moves the cursor to the line below it,
// inserting an empty line at the end of the buffer if needed.
func (e *TableEditor) Escape(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	formatted, err := table.FormatTable(ed.completed, opts.FormatOptions)
	if err != nil {
		return err
	}
	lines := formatted.Table.Lines()
	next := table.Point{Row: ed.info.StartRow() + len(lines), Column: 0}
	e.te.Transact(func() {
		e.updateLines(ed.info.StartRow(), ed.info.EndRow(), lines, ed.info.Lines)
		if next.Row > e.te.LastRow() {
			e.te.InsertLine(next.Row, "")
		}
		e.te.SetCursorPosition(next)
	})
	e.ResetSmartCursor()
	return nil
}

// AlignColumn sets the alignment of the focused column.
func (e *TableEditor) AlignColumn(a table.Alignment, opts Options) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %v", table.ErrUnknownAlignment, a)
	}
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	altered := ed.completed
	if c := ed.focus.Column; c >= 0 && c < altered.HeaderWidth() {
		altered = table.AlterAlignment(altered, c, a, opts.FormatOptions)
	}
	_, err = e.write(ed, altered, ed.focus, false, cursorMove, opts)
	e.ResetSmartCursor()
	return err
}

// SelectCell formats the table and selects the content of the focused cell.
func (e *TableEditor) SelectCell(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	_, err = e.write(ed, ed.completed, ed.focus, false, cursorSelect, opts)
	e.ResetSmartCursor()
	return err
}

// MoveFocus moves the focus by the given number of rows and columns,
// skipping the delimiter row and staying inside the table.
func (e *TableEditor) MoveFocus(rowSteps, columnSteps int, opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	t := ed.completed
	f := ed.focus
	if rowSteps != 0 {
		skip := 0
		switch {
		case f.Row < 1 && f.Row+rowSteps >= 1:
			skip = 1
		case f.Row > 1 && f.Row+rowSteps <= 1:
			skip = -1
		}
		last := t.Height() - 1
		if t.Height() <= 2 {
			last = 0
		}
		f = f.WithRow(min(max(f.Row+rowSteps+skip, 0), last))
	}
	if columnSteps != 0 {
		w := t.HeaderWidth()
		if !(f.Column < 0 && columnSteps < 0) && !(f.Column > w-1 && columnSteps > 0) {
			f = f.WithColumn(min(max(f.Column+columnSteps, 0), w-1))
		}
	}
	moved := !f.PosEquals(ed.focus)
	_, err = e.write(ed, t, f, moved, modeFor(moved), opts)
	if moved {
		e.ResetSmartCursor()
	}
	return err
}

// NextCell moves to the next cell. From the last header cell it moves past
// the table edge so a new column can be typed; from the last cell of a body
// row it moves to the first cell of the next row, appending a row if needed.
func (e *TableEditor) NextCell(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	if e.sc.active && e.smartCursorMoved(ed) {
		e.ResetSmartCursor()
	}

	start := ed.focus
	f := start
	altered := ed.completed
	if f.Row <= 1 {
		if f.Row == 1 {
			f = f.WithRow(0)
		}
		if f.Column > altered.HeaderWidth()-1 {
			altered = table.InsertColumn(altered, altered.HeaderWidth(), emptyCells(altered.Height()-1), opts.FormatOptions)
		}
		f = f.WithColumn(f.Column + 1)
	} else {
		if f.Column > altered.HeaderWidth()-2 {
			if f.Row == altered.Height()-1 {
				altered = table.InsertRow(altered, altered.Height(), table.NewRow(emptyCells(altered.HeaderWidth()), "", ""))
			}
			f = table.Focus{Row: f.Row + 1, Column: 0, Offset: f.Offset}
		} else {
			f = f.WithColumn(f.Column + 1)
		}
	}

	formatted, err := table.FormatTable(altered, opts.FormatOptions)
	if err != nil {
		return err
	}
	f = f.WithOffset(newOffset(f, altered, formatted, true))
	lines := formatted.Table.Lines()
	if f.Column > formatted.Table.HeaderWidth()-1 {
		lines[f.Row] += " "
		f = f.WithOffset(1)
	}
	e.writeFormatted(ed, formatted.Table, lines, f, cursorSelect)

	if opts.SmartCursor {
		if !e.sc.active {
			e.sc = smartCursor{active: true, tablePos: ed.info.Range.Start, startFocus: start}
		}
		e.sc.lastFocus = f
	}
	return nil
}

// smartCursorMoved reports whether the cursor left the place the last
// smart cursor command put it.
func (e *TableEditor) smartCursorMoved(ed edit) bool {
	return e.sc.tablePos != ed.info.Range.Start || !e.sc.lastFocus.PosEquals(ed.focus)
}

// PreviousCell moves to the previous cell, wrapping to the last cell of the
// previous row.
func (e *TableEditor) PreviousCell(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	t := ed.completed
	f := ed.focus
	switch {
	case f.Row == 0:
		if f.Column > 0 {
			f = f.WithColumn(f.Column - 1)
		}
	case f.Row == 1:
		f = table.Focus{Row: 0, Column: t.HeaderWidth() - 1, Offset: f.Offset}
	default:
		if f.Column > 0 {
			f = f.WithColumn(f.Column - 1)
		} else {
			row := f.Row - 1
			if f.Row == 2 {
				row = 0
			}
			f = table.Focus{Row: row, Column: t.HeaderWidth() - 1, Offset: f.Offset}
		}
	}
	moved := !f.PosEquals(ed.focus)
	_, err = e.write(ed, t, f, moved, modeFor(moved), opts)
	e.ResetSmartCursor()
	return err
}

// NextRow moves to the next body row, appending one at the end of the
// table. With an active smart cursor it returns to the column where the
// run of NextCell commands started.
func (e *TableEditor) NextRow(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	if e.sc.active && e.smartCursorMoved(ed) {
		e.ResetSmartCursor()
	}

	f := ed.focus
	altered := ed.completed
	if f.Row == 0 {
		f = f.WithRow(2)
	} else {
		f = f.WithRow(f.Row + 1)
	}
	if f.Row > altered.Height()-1 {
		altered = table.InsertRow(altered, altered.Height(), table.NewRow(emptyCells(altered.HeaderWidth()), "", ""))
	}
	column := f.Column
	if e.sc.active {
		column = e.sc.startFocus.Column
	}
	f = f.WithColumn(min(max(column, 0), altered.HeaderWidth()-1))

	f, err = e.write(ed, altered, f, true, cursorSelect, opts)
	if err != nil {
		return err
	}
	if e.sc.active {
		e.sc.lastFocus = f
	}
	return nil
}

// InsertRow inserts an empty body row at the focused row.
func (e *TableEditor) InsertRow(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	f := ed.focus
	if f.Row <= 1 {
		f = f.WithRow(2)
	}
	f = f.WithColumn(0)
	altered := table.InsertRow(ed.completed, f.Row, table.NewRow(emptyCells(ed.completed.HeaderWidth()), "", ""))
	_, err = e.write(ed, altered, f, true, cursorMove, opts)
	e.ResetSmartCursor()
	return err
}

// DeleteRow deletes the focused body row. On the header row it clears the
// header cells instead; the delimiter row is left alone.
func (e *TableEditor) DeleteRow(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	f := ed.focus
	altered := ed.completed
	moved := false
	switch {
	case f.Row == 0:
		rows := altered.Rows()
		rows[0] = rows[0].WithCells(emptyCells(rows[0].Width()))
		altered = table.New(rows)
		moved = true
	case f.Row > 1:
		altered = table.DeleteRow(altered, f.Row)
		moved = true
		if f.Row > altered.Height()-1 {
			if f.Row == 2 {
				f = f.WithRow(0)
			} else {
				f = f.WithRow(f.Row - 1)
			}
		}
	}
	_, err = e.write(ed, altered, f, moved, modeFor(moved), opts)
	e.ResetSmartCursor()
	return err
}

// MoveRow moves the focused body row by offset rows.
func (e *TableEditor) MoveRow(offset int, opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	f := ed.focus
	altered := ed.completed
	if f.Row > 1 {
		dest := min(max(f.Row+offset, 2), altered.Height()-1)
		altered = table.MoveRow(altered, f.Row, dest)
		f = f.WithRow(dest)
	}
	moved := !f.PosEquals(ed.focus)
	_, err = e.write(ed, altered, f, moved, modeFor(moved), opts)
	e.ResetSmartCursor()
	return err
}

// InsertColumn inserts an empty column at the focused column.
func (e *TableEditor) InsertColumn(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	f := ed.focus
	if f.Row == 1 {
		f = f.WithRow(0)
	}
	if f.Column < 0 {
		f = f.WithColumn(0)
	}
	altered := table.InsertColumn(ed.completed, f.Column, emptyCells(ed.completed.Height()-1), opts.FormatOptions)
	_, err = e.write(ed, altered, f, true, cursorMove, opts)
	e.ResetSmartCursor()
	return err
}

// DeleteColumn deletes the focused column.
func (e *TableEditor) DeleteColumn(opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	f := ed.focus
	if f.Row == 1 {
		f = f.WithRow(0)
	}
	altered := ed.completed
	moved := false
	if f.Column >= 0 && f.Column < altered.HeaderWidth() {
		altered = table.DeleteColumn(altered, f.Column, opts.FormatOptions)
		moved = true
		if f.Column > altered.HeaderWidth()-1 {
			f = f.WithColumn(altered.HeaderWidth() - 1)
		}
	}
	_, err = e.write(ed, altered, f, moved, modeFor(moved), opts)
	e.ResetSmartCursor()
	return err
}

// MoveColumn moves the focused column by offset columns.
func (e *TableEditor) MoveColumn(offset int, opts Options) error {
	ed, ok, err := e.begin(opts)
	if !ok || err != nil {
		return err
	}
	f := ed.focus
	altered := ed.completed
	if w := altered.HeaderWidth(); f.Column >= 0 && f.Column < w {
		dest := min(max(f.Column+offset, 0), w-1)
		altered = table.MoveColumn(altered, f.Column, dest)
		f = f.WithColumn(dest)
	}
	moved := !f.PosEquals(ed.focus)
	_, err = e.write(ed, altered, f, moved, modeFor(moved), opts)
	e.ResetSmartCursor()
	return err
}
