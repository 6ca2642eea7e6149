package table

import "strings"

// Row is an ordered list of cells plus the text outside the outermost pipes.
type Row struct {
	cells       []Cell
	marginLeft  string
	marginRight string
}

// NewRow copies cells into a new row.
func NewRow(cells []Cell, marginLeft, marginRight string) Row {
	return Row{
		cells:       append([]Cell(nil), cells...),
		marginLeft:  marginLeft,
		marginRight: marginRight,
	}
}

// Cells returns a copy of the row's cells.
func (r Row) Cells() []Cell { return append([]Cell(nil), r.cells...) }

func (r Row) CellAt(i int) (Cell, bool) {
	if i < 0 || i >= len(r.cells) {
		return Cell{}, false
	}
	return r.cells[i], true
}

func (r Row) Width() int { return len(r.cells) }

func (r Row) MarginLeft() string { return r.marginLeft }

func (r Row) MarginRight() string { return r.marginRight }

// WithCells returns a copy of r holding cells instead.
func (r Row) WithCells(cells []Cell) Row {
	return NewRow(cells, r.marginLeft, r.marginRight)
}

// IsDelimiter reports whether every cell is a delimiter cell. A row without
// cells is a delimiter row.
func (r Row) IsDelimiter() bool {
	for _, c := range r.cells {
		if !c.IsDelimiter() {
			return false
		}
	}
	return true
}

// Text renders the row back into a line.
func (r Row) Text() string {
	if len(r.cells) == 0 {
		return r.marginLeft
	}
	var sb strings.Builder
	sb.WriteString(r.marginLeft)
	sb.WriteByte('|')
	for _, c := range r.cells {
		sb.WriteString(c.raw)
		sb.WriteByte('|')
	}
	sb.WriteString(r.marginRight)
	return sb.String()
}
