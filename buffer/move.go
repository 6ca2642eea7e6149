package buffer

import "github.com/iw2rmb/pipetable/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Column
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Column: grapheme.Prev(b.lines[row], col)}
		}
		return Pos{Row: row - 1, Column: b.lineLen(row - 1)}
	case DirRight:
		if row == lastRow && col == b.lineLen(lastRow) {
			return p
		}
		if col < b.lineLen(row) {
			return Pos{Row: row, Column: grapheme.Next(b.lines[row], col)}
		}
		return Pos{Row: row + 1, Column: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, Column: prevWordBoundary(line, p.Column)}
	case DirRight:
		return Pos{Row: p.Row, Column: nextWordBoundary(line, p.Column)}
	default:
		return b.moveLine(p, dir)
	}
}

// moveLine keeps the column when changing rows, snapped to a cluster start.
func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Column
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row, Column: 0}
	case DirEnd:
		return Pos{Row: row, Column: b.lineLen(row)}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Column: grapheme.Snap(b.lines[row-1], col)}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Column: grapheme.Snap(b.lines[row+1], col)}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{Row: 0, Column: 0}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Column: b.lineLen(lastRow)}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line string, col int) int {
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	i := clusterIndex(bounds, col)
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return bounds[i]
}

func nextWordBoundary(line string, col int) int {
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	i := clusterIndex(bounds, col)
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return bounds[i]
}

// clusterIndex returns the index of the last boundary at or before col.
func clusterIndex(bounds []int, col int) int {
	i := 0
	for i+1 < len(bounds) && bounds[i+1] <= col {
		i++
	}
	return i
}
