package table

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var delimiterCellRE = regexp.MustCompile(`^\s*(:)?-+(:)?\s*$`)

// Cell is one table cell: the exact text between two pipes and its trimmed
// content.
type Cell struct {
	raw     string
	content string

	paddingLeft int
	width       int
}

func NewCell(raw string) Cell {
	content := strings.TrimSpace(raw)
	width := utf8.RuneCountInString(raw)
	return Cell{
		raw:         raw,
		content:     content,
		paddingLeft: width - utf8.RuneCountInString(strings.TrimLeftFunc(raw, unicode.IsSpace)),
		width:       width,
	}
}

func (c Cell) RawContent() string { return c.raw }

func (c Cell) Content() string { return c.content }

// Width is the raw width of the cell in runes.
func (c Cell) Width() int { return c.width }

// PaddingLeft is the number of leading whitespace runes.
func (c Cell) PaddingLeft() int { return c.paddingLeft }

// PaddingRight is the number of whitespace runes after the content.
func (c Cell) PaddingRight() int {
	return c.width - c.paddingLeft - utf8.RuneCountInString(c.content)
}

func (c Cell) IsDelimiter() bool {
	return delimiterCellRE.MatchString(c.raw)
}

// Alignment returns the alignment declared by a delimiter cell, or
// AlignNone for cells that are not delimiters.
func (c Cell) Alignment() Alignment {
	m := delimiterCellRE.FindStringSubmatch(c.raw)
	if m == nil {
		return AlignNone
	}
	left, right := m[1] != "", m[2] != ""
	switch {
	case left && right:
		return AlignCenter
	case left:
		return AlignLeft
	case right:
		return AlignRight
	}
	return AlignNone
}

// ContentOffset converts a raw offset into an offset within the content,
// clamped to the content bounds.
func (c Cell) ContentOffset(rawOffset int) int {
	if c.content == "" {
		return 0
	}
	n := utf8.RuneCountInString(c.content)
	switch {
	case rawOffset < c.paddingLeft:
		return 0
	case rawOffset < c.paddingLeft+n:
		return rawOffset - c.paddingLeft
	}
	return n
}

// RawOffset converts an offset within the content into a raw offset.
// For a blank cell it points just after the first space, if any.
func (c Cell) RawOffset(contentOffset int) int {
	if c.content == "" {
		if c.raw == "" {
			return 0
		}
		return 1
	}
	return contentOffset + c.paddingLeft
}
