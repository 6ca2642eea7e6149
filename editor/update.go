package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pipetable/buffer"
	"github.com/iw2rmb/pipetable/table"
	"github.com/iw2rmb/pipetable/tableeditor"
)

type tableCommand func(tableeditor.Options) error

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	if !m.cfg.ReadOnly {
		if cmd, ok := m.tableCommandFor(msg); ok {
			m.runTableCommand(cmd)
			return m, nil
		}
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}
	case key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly {
			m.buf.InsertText("\t")
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt && !m.cfg.ReadOnly {
			m.buf.InsertText(string(msg.Runes))
		}
	}
	return m, nil
}

// tableCommandFor resolves msg to a table command. FormatAll works anywhere;
// every other command needs the cursor on a table row.
func (m Model) tableCommandFor(msg tea.KeyMsg) (tableCommand, bool) {
	tk := m.cfg.KeyMap.Table
	if key.Matches(msg, tk.FormatAll) {
		return m.tbl.FormatAll, true
	}
	if !m.tbl.CursorIsInTable(m.cfg.Table) {
		return nil, false
	}

	align := func(a table.Alignment) tableCommand {
		return func(o tableeditor.Options) error { return m.tbl.AlignColumn(a, o) }
	}
	moveFocus := func(rows, cols int) tableCommand {
		return func(o tableeditor.Options) error { return m.tbl.MoveFocus(rows, cols, o) }
	}
	moveRow := func(offset int) tableCommand {
		return func(o tableeditor.Options) error { return m.tbl.MoveRow(offset, o) }
	}
	moveColumn := func(offset int) tableCommand {
		return func(o tableeditor.Options) error { return m.tbl.MoveColumn(offset, o) }
	}

	switch {
	case key.Matches(msg, tk.NextCell):
		return m.tbl.NextCell, true
	case key.Matches(msg, tk.PreviousCell):
		return m.tbl.PreviousCell, true
	case key.Matches(msg, tk.NextRow):
		return m.tbl.NextRow, true
	case key.Matches(msg, tk.Escape):
		return m.tbl.Escape, true
	case key.Matches(msg, tk.SelectCell):
		return m.tbl.SelectCell, true
	case key.Matches(msg, tk.Format):
		return m.tbl.Format, true

	case key.Matches(msg, tk.FocusLeft):
		return moveFocus(0, -1), true
	case key.Matches(msg, tk.FocusRight):
		return moveFocus(0, 1), true
	case key.Matches(msg, tk.FocusUp):
		return moveFocus(-1, 0), true
	case key.Matches(msg, tk.FocusDown):
		return moveFocus(1, 0), true

	case key.Matches(msg, tk.MoveRowUp):
		return moveRow(-1), true
	case key.Matches(msg, tk.MoveRowDown):
		return moveRow(1), true
	case key.Matches(msg, tk.MoveColumnLeft):
		return moveColumn(-1), true
	case key.Matches(msg, tk.MoveColumnRight):
		return moveColumn(1), true

	case key.Matches(msg, tk.AlignLeft):
		return align(table.AlignLeft), true
	case key.Matches(msg, tk.AlignRight):
		return align(table.AlignRight), true
	case key.Matches(msg, tk.AlignCenter):
		return align(table.AlignCenter), true

	case key.Matches(msg, tk.InsertRow):
		return m.tbl.InsertRow, true
	case key.Matches(msg, tk.DeleteRow):
		return m.tbl.DeleteRow, true
	case key.Matches(msg, tk.InsertColumn):
		return m.tbl.InsertColumn, true
	case key.Matches(msg, tk.DeleteColumn):
		return m.tbl.DeleteColumn, true
	}
	return nil, false
}

func (m *Model) runTableCommand(cmd tableCommand) {
	m.lastErr = cmd(m.cfg.Table)
	if m.lastErr != nil {
		m.cfg.Logger.Error("table command failed", "error", m.lastErr)
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if s := textInRange(m.buf.Lines(), r); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	m.copySelection()
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func textInRange(lines []string, r buffer.Range) string {
	r = buffer.NormalizeRange(r)
	if r.IsEmpty() || r.Start.Row < 0 || r.End.Row >= len(lines) {
		return ""
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		rr := []rune(lines[row])
		startCol, endCol := 0, len(rr)
		if row == r.Start.Row {
			startCol = r.Start.Column
		}
		if row == r.End.Row {
			endCol = r.End.Column
		}
		startCol = clampInt(startCol, 0, len(rr))
		endCol = clampInt(endCol, startCol, len(rr))
		sb.WriteString(string(rr[startCol:endCol]))
	}
	return sb.String()
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
