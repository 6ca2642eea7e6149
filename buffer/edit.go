package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/pipetable/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	b.Transact(func() {
		r, ok := b.Selection()
		if !ok {
			r = Range{Start: b.cursor, End: b.cursor}
		}
		b.replace(r, s)
	})
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. It removes a whole grapheme
// cluster, or joins the line with the previous one.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Column
	if row == 0 && col == 0 {
		return
	}
	start := Pos{Row: row, Column: grapheme.Prev(b.lines[row], col)}
	if col == 0 {
		start = Pos{Row: row - 1, Column: b.lineLen(row - 1)}
	}
	b.Transact(func() {
		b.replace(Range{Start: start, End: b.cursor}, "")
	})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Column
	lastRow := len(b.lines) - 1
	if row == lastRow && col == b.lineLen(lastRow) {
		return
	}
	end := Pos{Row: row, Column: grapheme.Next(b.lines[row], col)}
	if col == b.lineLen(row) {
		end = Pos{Row: row + 1, Column: 0}
	}
	b.Transact(func() {
		b.replace(Range{Start: b.cursor, End: end}, "")
	})
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.Transact(func() {
		b.replace(r, "")
	})
}

// replace swaps r for text and leaves the cursor after the inserted text.
func (b *Buffer) replace(r Range, text string) {
	next, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}

	first := b.lines[r.Start.Row]
	last := b.lines[r.End.Row]
	prefix := first[:runeIndex(first, r.Start.Column)]
	suffix := last[runeIndex(last, r.End.Column):]

	repl := splitLines(text)
	tail := repl[len(repl)-1]
	nextCursor = Pos{
		Row:    r.Start.Row + len(repl) - 1,
		Column: utf8.RuneCountInString(tail),
	}
	if len(repl) == 1 {
		nextCursor.Column += r.Start.Column
	}
	repl[0] = prefix + repl[0]
	repl[len(repl)-1] += suffix

	out := make([]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(repl)-1)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.setLines(out)
	return nextCursor, true
}
