package editor

import "github.com/iw2rmb/pipetable/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the editor's viewport: (0,0)
// is the top-left of the visible content region. Gutter clicks map to column
// 0; x/y are clamped into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	visualX := x - m.gutterWidth()
	if visualX < 0 {
		return buffer.Pos{Row: row}
	}
	col := columnAtCell(m.buf.Line(row), visualX+m.xOffset, m.cfg.TabWidth)
	return buffer.Pos{Row: row, Column: col}
}

// docToScreenPos maps a document position to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreenPos(pos buffer.Pos) (x int, y int, ok bool) {
	row := clampInt(pos.Row, 0, m.buf.LineCount()-1)
	y = row - m.viewport.YOffset
	x = cursorCell(m.buf.Line(row), pos.Column, m.cfg.TabWidth) - m.xOffset + m.gutterWidth()

	visibleRows := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if y < 0 || y >= visibleRows || x < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}

// CursorScreenPos returns the viewport-local cell of the cursor.
func (m Model) CursorScreenPos() (x, y int, ok bool) {
	return m.docToScreenPos(m.buf.Cursor())
}
