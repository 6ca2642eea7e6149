package table

// AlterAlignment replaces the delimiter cell of column with one declaring a.
// The table is returned unchanged when it has no delimiter row or the column
// does not exist.
func AlterAlignment(t Table, column int, a Alignment, opts FormatOptions) Table {
	delim, ok := t.DelimiterRow()
	if !ok || column < 0 || column >= delim.Width() {
		return t
	}
	cells := delim.Cells()
	cells[column] = NewCell(DelimiterText(a, opts.MinDelimiterWidth))
	rows := t.Rows()
	rows[1] = delim.WithCells(cells)
	return Table{rows: rows}
}

// InsertRow inserts r before index.
func InsertRow(t Table, index int, r Row) Table {
	index = clampIndex(index, t.Height())
	rows := make([]Row, 0, t.Height()+1)
	rows = append(rows, t.rows[:index]...)
	rows = append(rows, r)
	rows = append(rows, t.rows[index:]...)
	return Table{rows: rows}
}

// DeleteRow removes the row at index. The delimiter row is never removed.
func DeleteRow(t Table, index int) Table {
	if index == 1 || index < 0 || index >= t.Height() {
		return t
	}
	rows := make([]Row, 0, t.Height()-1)
	rows = append(rows, t.rows[:index]...)
	rows = append(rows, t.rows[index+1:]...)
	return Table{rows: rows}
}

// MoveRow moves the row at index to dest. Moves involving the delimiter row
// are ignored.
func MoveRow(t Table, index, dest int) Table {
	h := t.Height()
	if index == 1 || dest == 1 || index < 0 || index >= h || dest < 0 || dest >= h {
		return t
	}
	return Table{rows: moveElem(t.Rows(), index, dest)}
}

// InsertColumn inserts a column before index. column holds the new cells of
// every non-delimiter row, in order; the delimiter row gets a default
// delimiter cell. Missing entries become empty cells.
func InsertColumn(t Table, index int, column []Cell, opts FormatOptions) Table {
	rows := t.Rows()
	for i, r := range rows {
		var c Cell
		switch {
		case i == 1:
			c = NewCell(DelimiterText(AlignNone, opts.MinDelimiterWidth))
		default:
			k := i
			if i > 1 {
				k = i - 1
			}
			if k < len(column) {
				c = column[k]
			}
		}
		cells := r.cells
		at := clampIndex(index, len(cells))
		next := make([]Cell, 0, len(cells)+1)
		next = append(next, cells[:at]...)
		next = append(next, c)
		next = append(next, cells[at:]...)
		rows[i] = r.WithCells(next)
	}
	return Table{rows: rows}
}

// DeleteColumn removes the column at index. A row is never left without
// cells: its last cell is replaced by an empty one instead.
func DeleteColumn(t Table, index int, opts FormatOptions) Table {
	rows := t.Rows()
	for i, r := range rows {
		cells := r.cells
		var next []Cell
		switch {
		case len(cells) <= 1:
			raw := ""
			if i == 1 {
				raw = DelimiterText(AlignNone, opts.MinDelimiterWidth)
			}
			next = []Cell{NewCell(raw)}
		case index < 0 || index >= len(cells):
			next = cells
		default:
			next = make([]Cell, 0, len(cells)-1)
			next = append(next, cells[:index]...)
			next = append(next, cells[index+1:]...)
		}
		rows[i] = r.WithCells(next)
	}
	return Table{rows: rows}
}

// MoveColumn moves the column at index to dest in every row that has both.
func MoveColumn(t Table, index, dest int) Table {
	rows := t.Rows()
	for i, r := range rows {
		n := len(r.cells)
		if index < 0 || index >= n || dest < 0 || dest >= n {
			continue
		}
		rows[i] = r.WithCells(moveElem(r.Cells(), index, dest))
	}
	return Table{rows: rows}
}

func moveElem[T any](s []T, from, to int) []T {
	v := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s[:to], append([]T{v}, s[to:]...)...)
	return s
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n)
}
