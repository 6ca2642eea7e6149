package buffer

import (
	"strings"
	"unicode/utf8"
)

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines       []string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt    Options
	hist   historyState
	tx     txState
	fences fenceCache

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string { return strings.Join(b.lines, "\n") }

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string { return append([]string(nil), b.lines...) }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Version changes on every effective text, cursor or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r without moving the cursor. An empty range clears
// the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	b.sel = next
	nextRange, nextOK := b.Selection()
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return utf8.RuneCountInString(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// setLines replaces the document lines and keeps cursor and selection in
// bounds. Inside a transaction the document may be left without lines; the
// outermost commit restores the single empty line.
func (b *Buffer) setLines(lines []string) {
	if len(lines) == 0 && b.tx.depth == 0 {
		lines = []string{""}
	}
	b.lines = lines
	b.version++
	b.textVersion++
	b.clampState()
}

func (b *Buffer) clampState() {
	b.cursor = b.clampPos(b.cursor)
	if b.sel.active {
		b.sel.anchor = b.clampPos(b.sel.anchor)
		b.sel.end = b.clampPos(b.sel.end)
	}
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// runeIndex converts a rune column into a byte index of s.
func runeIndex(s string, col int) int {
	if col <= 0 {
		return 0
	}
	i := 0
	for n := range s {
		if i == col {
			return n
		}
		i++
	}
	return len(s)
}
