package tableeditor

import (
	"log/slog"

	"github.com/iw2rmb/pipetable/editscript"
	"github.com/iw2rmb/pipetable/table"
)

// editScriptLimit bounds the patch search. One table command changes at
// most a handful of lines; anything larger is written as a full replace.
const editScriptLimit = 3

// TableEditor runs table commands against a TextEditor.
type TableEditor struct {
	te     TextEditor
	logger *slog.Logger

	sc smartCursor
}

// smartCursor remembers where a run of NextCell commands started.
type smartCursor struct {
	active     bool
	tablePos   table.Point
	startFocus table.Focus
	lastFocus  table.Focus
}

type Option func(*TableEditor)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *TableEditor) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(te TextEditor, opts ...Option) *TableEditor {
	e := &TableEditor{
		te:     te,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TableInfo describes the table block around the cursor.
type TableInfo struct {
	// Range spans the block from the start of its first line to the end of
	// its last line.
	Range table.Range
	Lines []string
	Table table.Table
	// Focus is the cursor position relative to Table.
	Focus table.Focus
}

// StartRow is the buffer row of the first table line.
func (i TableInfo) StartRow() int { return i.Range.Start.Row }

// EndRow is the buffer row just after the last table line.
func (i TableInfo) EndRow() int { return i.Range.End.Row + 1 }

func (e *TableEditor) ResetSmartCursor() { e.sc = smartCursor{} }

func (e *TableEditor) SmartCursorActive() bool { return e.sc.active }

func (e *TableEditor) isTableRow(m table.RowMatcher, row int) bool {
	return e.te.AcceptsTableEdit(row) && m.Match(e.te.Line(row))
}

// CursorIsInTable reports whether the cursor line is a table row.
func (e *TableEditor) CursorIsInTable(opts Options) bool {
	m := table.NewRowMatcher(opts.LeftMarginChars)
	return e.isTableRow(m, e.te.CursorPosition().Row)
}

// FindTable reads the table block around the cursor. It reports false when
// the cursor line is not a table row.
func (e *TableEditor) FindTable(opts Options) (TableInfo, bool) {
	m := table.NewRowMatcher(opts.LeftMarginChars)
	pos := e.te.CursorPosition()
	if !e.isTableRow(m, pos.Row) {
		return TableInfo{}, false
	}

	startRow, endRow := pos.Row, pos.Row
	for startRow > 0 && e.isTableRow(m, startRow-1) {
		startRow--
	}
	lastRow := e.te.LastRow()
	for endRow < lastRow && e.isTableRow(m, endRow+1) {
		endRow++
	}

	lines := make([]string, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		lines = append(lines, e.te.Line(row))
	}
	t := table.ReadTable(lines, opts.readOptions())
	focus, _ := t.FocusOfPosition(pos, startRow)

	return TableInfo{
		Range: table.Range{
			Start: table.Point{Row: startRow, Column: 0},
			End:   table.Point{Row: endRow, Column: runeCount(lines[len(lines)-1])},
		},
		Lines: lines,
		Table: t,
		Focus: focus,
	}, true
}

// updateLines writes newLines over rows [startRow, endRow). With oldLines it
// first tries a minimal edit script and only replaces the whole range when
// the script would be longer than editScriptLimit.
func (e *TableEditor) updateLines(startRow, endRow int, newLines, oldLines []string) {
	if oldLines != nil {
		if script, ok := editscript.ShortestEditScript(oldLines, newLines, editScriptLimit); ok {
			editscript.Apply(e.te, script, startRow)
			return
		}
		e.logger.Debug("edit script over limit, replacing lines",
			"start_row", startRow, "end_row", endRow, "limit", editScriptLimit)
	}
	e.te.ReplaceLines(startRow, endRow, newLines)
}

func (e *TableEditor) moveToFocus(startRow int, t table.Table, f table.Focus) {
	if pos, ok := t.PositionOfFocus(f, startRow); ok {
		e.te.SetCursorPosition(pos)
	}
}

// selectFocus selects the content of the focused cell, or moves the cursor
// there when the cell has nothing to select.
func (e *TableEditor) selectFocus(startRow int, t table.Table, f table.Focus) {
	if r, ok := t.SelectionRangeOfFocus(f, startRow); ok {
		e.te.SetSelectionRange(r)
		return
	}
	e.moveToFocus(startRow, t, f)
}
