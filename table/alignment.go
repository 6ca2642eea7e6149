package table

import (
	"fmt"
	"strings"
)

// Alignment is a column alignment declared by a delimiter cell.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Valid reports whether a is one of the declared alignments, AlignNone included.
func (a Alignment) Valid() bool {
	return a >= AlignNone && a <= AlignCenter
}

// ParseAlignment parses "left", "right", "center" or "none".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center":
		return AlignCenter, nil
	}
	return AlignNone, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// HeaderAlignment controls how header cells are aligned by the formatter.
type HeaderAlignment int

const (
	// HeaderFollow aligns header cells like the rest of their column.
	HeaderFollow HeaderAlignment = iota
	HeaderLeft
	HeaderRight
	HeaderCenter
)

func (h HeaderAlignment) String() string {
	switch h {
	case HeaderFollow:
		return "follow"
	case HeaderLeft:
		return "left"
	case HeaderRight:
		return "right"
	case HeaderCenter:
		return "center"
	default:
		return fmt.Sprintf("HeaderAlignment(%d)", int(h))
	}
}

// ParseHeaderAlignment parses "follow", "left", "right" or "center".
func ParseHeaderAlignment(s string) (HeaderAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "follow":
		return HeaderFollow, nil
	case "left":
		return HeaderLeft, nil
	case "right":
		return HeaderRight, nil
	case "center":
		return HeaderCenter, nil
	}
	return HeaderFollow, fmt.Errorf("%w: header alignment %q", ErrUnknownAlignment, s)
}

func (h HeaderAlignment) alignment() (Alignment, bool) {
	switch h {
	case HeaderLeft:
		return AlignLeft, true
	case HeaderRight:
		return AlignRight, true
	case HeaderCenter:
		return AlignCenter, true
	}
	return AlignNone, false
}

// FormatType selects how much the formatter rewrites a table.
type FormatType int

const (
	// FormatNormal pads every column to a common width.
	FormatNormal FormatType = iota
	// FormatWeak only normalizes the single space around cell content.
	FormatWeak
)

func (t FormatType) String() string {
	switch t {
	case FormatNormal:
		return "normal"
	case FormatWeak:
		return "weak"
	default:
		return fmt.Sprintf("FormatType(%d)", int(t))
	}
}

// ParseFormatType parses "normal" or "weak".
func ParseFormatType(s string) (FormatType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return FormatNormal, nil
	case "weak":
		return FormatWeak, nil
	}
	return FormatNormal, fmt.Errorf("%w: %q", ErrUnknownFormatType, s)
}
