package buffer

import "strings"

// fenceCache holds, per row, whether the row belongs to a fenced code
// block. It is rebuilt when the text version changes.
type fenceCache struct {
	valid       bool
	textVersion uint64
	fenced      []bool
}

// AcceptsTableEdit reports whether row may hold a table row, which is false
// for lines of a fenced code block, fences included.
func (b *Buffer) AcceptsTableEdit(row int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	if !b.fences.valid || b.fences.textVersion != b.textVersion {
		b.fences = fenceCache{valid: true, textVersion: b.textVersion, fenced: fencedRows(b.lines)}
	}
	return !b.fences.fenced[row]
}

func fencedRows(lines []string) []bool {
	out := make([]bool, len(lines))
	var open fence
	inside := false
	for i, line := range lines {
		f, ok := parseFence(line)
		switch {
		case !inside && ok:
			open, inside = f, true
			out[i] = true
		case inside:
			out[i] = true
			if ok && f.char == open.char && f.n >= open.n && f.rest == "" {
				inside = false
			}
		}
	}
	return out
}

type fence struct {
	char byte
	n    int
	rest string
}

// parseFence recognizes a line opening or closing a fenced code block: up
// to three spaces of indent and at least three backticks or tildes.
func parseFence(line string) (fence, bool) {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 3 {
		return fence{}, false
	}
	s := line[indent:]
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return fence{}, false
	}
	c := s[0]
	n := len(s) - len(strings.TrimLeft(s, string(c)))
	if n < 3 {
		return fence{}, false
	}
	rest := strings.TrimSpace(s[n:])
	if c == '`' && strings.ContainsRune(rest, '`') {
		return fence{}, false
	}
	return fence{char: c, n: n, rest: rest}, true
}
