package table

// Focus addresses a cursor by table cell.
//
// Row and Column are table-local indices. Column -1 is the left margin,
// before the first pipe. Offset counts runes from the start of the raw text
// of whichever region is addressed.
type Focus struct {
	Row    int
	Column int
	Offset int
}

// PosEquals reports whether f and g address the same cell, ignoring offsets.
func (f Focus) PosEquals(g Focus) bool {
	return f.Row == g.Row && f.Column == g.Column
}

func (f Focus) Equals(g Focus) bool { return f == g }

func (f Focus) WithRow(row int) Focus {
	f.Row = row
	return f
}

func (f Focus) WithColumn(column int) Focus {
	f.Column = column
	return f
}

func (f Focus) WithOffset(offset int) Focus {
	f.Offset = offset
	return f
}
