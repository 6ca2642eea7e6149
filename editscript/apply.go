package editscript

// LineEditor is the part of a text buffer an edit script needs.
type LineEditor interface {
	InsertLine(row int, line string)
	DeleteLine(row int)
}

// Apply runs script against ed in order. rowOffset is added to every row.
func Apply(ed LineEditor, script []Command, rowOffset int) {
	for _, c := range script {
		switch c.Op {
		case OpInsert:
			ed.InsertLine(rowOffset+c.Row, c.Line)
		case OpDelete:
			ed.DeleteLine(rowOffset + c.Row)
		}
	}
}

// ApplyLines applies script to a copy of lines and returns the result.
func ApplyLines(lines []string, script []Command) []string {
	s := &sliceEditor{lines: append([]string(nil), lines...)}
	Apply(s, script, 0)
	return s.lines
}

type sliceEditor struct {
	lines []string
}

func (s *sliceEditor) InsertLine(row int, line string) {
	s.lines = append(s.lines, "")
	copy(s.lines[row+1:], s.lines[row:])
	s.lines[row] = line
}

func (s *sliceEditor) DeleteLine(row int) {
	s.lines = append(s.lines[:row], s.lines[row+1:]...)
}
