package table

import (
	"regexp"
	"strings"
	"unicode"
)

// ReadOptions configures ReadTable.
type ReadOptions struct {
	// LeftMarginChars are characters, besides whitespace, accepted in the
	// left margin of a row (e.g. ">" for tables inside block quotes).
	LeftMarginChars string
}

// SplitCells splits a line on pipes that are neither escaped by a backslash
// nor inside a code span. The text before the first pipe and after the last
// pipe are returned as the first and last elements.
func SplitCells(text string) []string {
	var (
		cells []string
		buf   strings.Builder
	)
	rs := []rune(text)
	for i := 0; i < len(rs); {
		switch rs[i] {
		case '`':
			start := backtickRun(rs, i)
			end, ok := closingBacktickRun(rs, i+start, start)
			if !ok {
				buf.WriteRune('`')
				i++
				continue
			}
			buf.WriteString(string(rs[i:end]))
			i = end
		case '\\':
			if i+1 < len(rs) {
				buf.WriteString(string(rs[i : i+2]))
				i += 2
				continue
			}
			buf.WriteRune('\\')
			i++
		case '|':
			cells = append(cells, buf.String())
			buf.Reset()
			i++
		default:
			buf.WriteRune(rs[i])
			i++
		}
	}
	return append(cells, buf.String())
}

func backtickRun(rs []rune, i int) int {
	n := 0
	for i+n < len(rs) && rs[i+n] == '`' {
		n++
	}
	return n
}

// closingBacktickRun finds the next run of exactly n backticks at or after i
// and returns the index just past it.
func closingBacktickRun(rs []rune, i, n int) (int, bool) {
	for i < len(rs) {
		if rs[i] != '`' {
			i++
			continue
		}
		m := backtickRun(rs, i)
		i += m
		if m == n {
			return i, true
		}
	}
	return 0, false
}

// marginPattern builds a character class of whitespace plus chars. ASCII
// punctuation is escaped by hand because regexp.QuoteMeta leaves "-" bare,
// which would form a range inside the class.
func marginPattern(chars string) string {
	var sb strings.Builder
	sb.WriteString(`[\s`)
	for _, r := range chars {
		if r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteString(`]*`)
	return sb.String()
}

func leftMarginRE(chars string) *regexp.Regexp {
	return regexp.MustCompile(`^` + marginPattern(chars) + `$`)
}

// tableRowRE matches lines that start, after the left margin, with a pipe.
func tableRowRE(chars string) *regexp.Regexp {
	return regexp.MustCompile(`^` + marginPattern(chars) + `\|`)
}

// IsTableRow reports whether line looks like a table row.
func IsTableRow(line, leftMarginChars string) bool {
	return tableRowRE(leftMarginChars).MatchString(line)
}

// RowMatcher caches the pattern used by IsTableRow.
type RowMatcher struct{ re *regexp.Regexp }

func NewRowMatcher(leftMarginChars string) RowMatcher {
	return RowMatcher{re: tableRowRE(leftMarginChars)}
}

func (m RowMatcher) Match(line string) bool { return m.re.MatchString(line) }

// ReadRow parses one line into a row.
func ReadRow(text, leftMarginChars string) Row {
	return readRow(text, leftMarginRE(leftMarginChars))
}

func readRow(text string, marginRE *regexp.Regexp) Row {
	parts := SplitCells(text)

	marginLeft := ""
	if len(parts) > 1 && marginRE.MatchString(parts[0]) {
		marginLeft = parts[0]
		parts = parts[1:]
	}
	marginRight := ""
	if last := len(parts) - 1; len(parts) > 1 && isBlank(parts[last]) {
		marginRight = parts[last]
		parts = parts[:last]
	}

	cells := make([]Cell, len(parts))
	for i, p := range parts {
		cells[i] = NewCell(p)
	}
	return Row{cells: cells, marginLeft: marginLeft, marginRight: marginRight}
}

// ReadTable parses every line independently into a row.
func ReadTable(lines []string, opts ReadOptions) Table {
	re := leftMarginRE(opts.LeftMarginChars)
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = readRow(line, re)
	}
	return Table{rows: rows}
}

func isBlank(s string) bool {
	return strings.TrimLeftFunc(s, unicode.IsSpace) == ""
}
