package editor

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/pipetable/buffer"
	"github.com/iw2rmb/pipetable/table"
)

func (m *Model) renderContent() string {
	lines := m.buf.Lines()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	matcher := table.NewRowMatcher(m.cfg.Table.LeftMarginChars)

	left, right := m.xOffset, math.MaxInt
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row))
		}
		text := m.cfg.Style.Text
		if row != cursor.Row && m.buf.AcceptsTableEdit(row) && matcher.Match(line) {
			text = m.cfg.Style.TableRow.Inherit(m.cfg.Style.Text)
		}
		sb.WriteString(renderLine(
			m.cfg.Style,
			text,
			layoutLine(line, m.cfg.TabWidth),
			row,
			cursor,
			m.focused,
			sel,
			selOK,
			left,
			right,
		))
		out[row] = sb.String()
	}
	return strings.Join(out, "\n")
}

// renderLine draws the clusters of one line that fall inside cells
// [left, right). Clusters cut by the edges and tabs render as blanks.
func renderLine(
	st Style,
	text lipgloss.Style,
	steps []cellStep,
	row int,
	cursor buffer.Pos,
	focused bool,
	sel buffer.Range,
	selOK bool,
	left, right int,
) string {
	hasCursor := focused && row == cursor.Row
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row)

	var sb strings.Builder
	endCell, endCol := 0, 0
	for _, s := range steps {
		endCell, endCol = s.StartCell+s.CellWidth, s.EndCol

		l := max(s.StartCell, left)
		r := min(s.StartCell+s.CellWidth, right)
		if l >= r {
			continue
		}
		chunk := s.Text
		if l != s.StartCell || r != s.StartCell+s.CellWidth || s.Text == "\t" {
			chunk = strings.Repeat(" ", r-l)
		}

		style := text
		switch {
		case hasCursor && cursor.Column >= s.StartCol && cursor.Column < s.EndCol:
			style = st.Cursor
		case hasSel && s.StartCol < selEnd && s.EndCol > selStart:
			style = st.Selection
		}
		sb.WriteString(style.Render(chunk))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursor.Column >= endCol && endCell >= left && endCell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, math.MaxInt
	if row == sel.Start.Row {
		start = sel.Start.Column
	}
	if row == sel.End.Row {
		end = sel.End.Column
	}
	return start, end, start < end
}
