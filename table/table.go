package table

// Table is an ordered list of rows. Rows may have different widths until the
// table is completed.
type Table struct {
	rows []Row
}

// New copies rows into a new table.
func New(rows []Row) Table {
	return Table{rows: append([]Row(nil), rows...)}
}

// Rows returns a copy of the table's rows.
func (t Table) Rows() []Row { return append([]Row(nil), t.rows...) }

func (t Table) RowAt(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[i], true
}

func (t Table) Height() int { return len(t.rows) }

// Width is the largest number of cells in any row.
func (t Table) Width() int {
	w := 0
	for _, r := range t.rows {
		if n := r.Width(); n > w {
			w = n
		}
	}
	return w
}

// HeaderWidth is the number of cells in the first row.
func (t Table) HeaderWidth() int {
	if len(t.rows) == 0 {
		return 0
	}
	return t.rows[0].Width()
}

// DelimiterRow returns row 1 if it is a delimiter row. Row 0 is never a
// delimiter row.
func (t Table) DelimiterRow() (Row, bool) {
	r, ok := t.RowAt(1)
	if !ok || !r.IsDelimiter() {
		return Row{}, false
	}
	return r, true
}

func (t Table) HasDelimiterRow() bool {
	_, ok := t.DelimiterRow()
	return ok
}

func (t Table) CellAt(row, column int) (Cell, bool) {
	r, ok := t.RowAt(row)
	if !ok {
		return Cell{}, false
	}
	return r.CellAt(column)
}

// FocusedCell returns the cell addressed by f, if any.
func (t Table) FocusedCell(f Focus) (Cell, bool) {
	return t.CellAt(f.Row, f.Column)
}

// Lines renders every row.
func (t Table) Lines() []string {
	lines := make([]string, len(t.rows))
	for i, r := range t.rows {
		lines[i] = r.Text()
	}
	return lines
}

// FocusOfPosition maps a buffer position to a focus. rowOffset is the buffer
// row of the first table row. A column past the last cell yields Column equal
// to the row's cell count.
func (t Table) FocusOfPosition(pos Point, rowOffset int) (Focus, bool) {
	rowIndex := pos.Row - rowOffset
	r, ok := t.RowAt(rowIndex)
	if !ok {
		return Focus{}, false
	}
	marginWidth := runeLen(r.marginLeft)
	if pos.Column < marginWidth+1 {
		return Focus{Row: rowIndex, Column: -1, Offset: pos.Column}, true
	}

	columnPos := marginWidth + 1
	column := 0
	for ; column < len(r.cells); column++ {
		w := r.cells[column].width
		if columnPos+w+1 > pos.Column {
			break
		}
		columnPos += w + 1
	}
	return Focus{Row: rowIndex, Column: column, Offset: pos.Column - columnPos}, true
}

// PositionOfFocus is the inverse of FocusOfPosition.
func (t Table) PositionOfFocus(f Focus, rowOffset int) (Point, bool) {
	r, ok := t.RowAt(f.Row)
	if !ok {
		return Point{}, false
	}
	row := f.Row + rowOffset
	if f.Column < 0 {
		return Point{Row: row, Column: f.Offset}, true
	}
	return Point{Row: row, Column: r.cellStart(min(f.Column, len(r.cells))) + f.Offset}, true
}

// SelectionRangeOfFocus returns the range covering the trimmed content of
// the focused cell. It reports false when the cell does not exist or has no
// content.
func (t Table) SelectionRangeOfFocus(f Focus, rowOffset int) (Range, bool) {
	r, ok := t.RowAt(f.Row)
	if !ok {
		return Range{}, false
	}
	c, ok := r.CellAt(f.Column)
	if !ok || c.content == "" {
		return Range{}, false
	}
	row := f.Row + rowOffset
	start := r.cellStart(f.Column) + c.paddingLeft
	return Range{
		Start: Point{Row: row, Column: start},
		End:   Point{Row: row, Column: start + runeLen(c.content)},
	}, true
}

// cellStart is the rune column where the raw text of cell i begins.
func (r Row) cellStart(i int) int {
	pos := runeLen(r.marginLeft) + 1
	for j := 0; j < i; j++ {
		pos += r.cells[j].width + 1
	}
	return pos
}
