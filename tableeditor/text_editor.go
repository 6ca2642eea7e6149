package tableeditor

import "github.com/iw2rmb/pipetable/table"

// TextEditor is the host buffer a TableEditor works on. Lines never contain
// line terminators.
type TextEditor interface {
	CursorPosition() table.Point
	SetCursorPosition(pos table.Point)
	// SetSelectionRange selects r and moves the cursor to r.End.
	SetSelectionRange(r table.Range)

	LastRow() int
	// AcceptsTableEdit reports whether row may be treated as part of a
	// table (false, for example, inside a fenced code block).
	AcceptsTableEdit(row int) bool
	Line(row int) string

	InsertLine(row int, line string)
	DeleteLine(row int)
	// ReplaceLines replaces rows [startRow, endRow) with lines.
	ReplaceLines(startRow, endRow int, lines []string)

	// Transact runs fn as a single undoable step.
	Transact(fn func())
}
