package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/pipetable/internal/grapheme"
)

// cellStep is one grapheme cluster of a line laid out in terminal cells.
type cellStep struct {
	Text      string
	StartCol  int // rune column
	EndCol    int
	StartCell int
	CellWidth int
}

// layoutLine splits line into clusters with their terminal cell positions.
func layoutLine(line string, tabWidth int) []cellStep {
	clusters := grapheme.Split(line)
	out := make([]cellStep, 0, len(clusters))
	col, cell := 0, 0
	for _, c := range clusters {
		w := graphemeCellWidth(c, cell, tabWidth)
		n := len([]rune(c))
		out = append(out, cellStep{Text: c, StartCol: col, EndCol: col + n, StartCell: cell, CellWidth: w})
		col += n
		cell += w
	}
	return out
}

// cursorCell returns the terminal cell of rune column col in line.
func cursorCell(line string, col, tabWidth int) int {
	cell := 0
	for _, s := range layoutLine(line, tabWidth) {
		if s.StartCol >= col {
			return s.StartCell
		}
		cell = s.StartCell + s.CellWidth
	}
	return cell
}

// columnAtCell returns the rune column of the cluster drawn at cell x.
// Cells past the end of the line map to the line end.
func columnAtCell(line string, x, tabWidth int) int {
	end := 0
	for _, s := range layoutLine(line, tabWidth) {
		if x < s.StartCell+s.CellWidth {
			return s.StartCol
		}
		end = s.EndCol
	}
	return end
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}
	w := max(runewidth.StringWidth(text), 0)
	if w == 0 {
		w = max(w, uniseg.StringWidth(text))
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return max(tabWidth-visualCol%tabWidth, 1)
}
