package editor

import (
	"fmt"
	"strconv"
)

// LineNumberWidth returns the line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(m.buf.LineCount())
}

func (m Model) renderGutter(row int) string {
	digits := gutterDigits(m.buf.LineCount())
	style := m.cfg.Style.LineNum
	if m.focused && row == m.buf.Cursor().Row {
		style = m.cfg.Style.LineNumActive
	}
	return style.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return max(w, 0)
}
