package table

import (
	"errors"
	"fmt"
	"strings"
)

// FormatOptions configures completion and formatting.
type FormatOptions struct {
	FormatType FormatType
	// MinDelimiterWidth is the minimum number of hyphens in a delimiter cell.
	MinDelimiterWidth int
	// DefaultAlignment applies to columns without an explicit alignment.
	// It must be AlignLeft, AlignRight or AlignCenter.
	DefaultAlignment Alignment
	HeaderAlignment  HeaderAlignment
	TextWidth        TextWidthOptions
}

func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		FormatType:        FormatNormal,
		MinDelimiterWidth: 3,
		DefaultAlignment:  AlignLeft,
		HeaderAlignment:   HeaderFollow,
		TextWidth:         DefaultTextWidthOptions(),
	}
}

// Validate reports option values outside their enumerations.
func (o FormatOptions) Validate() error {
	var errs []error
	if o.FormatType != FormatNormal && o.FormatType != FormatWeak {
		errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownFormatType, o.FormatType))
	}
	if o.DefaultAlignment == AlignNone || !o.DefaultAlignment.Valid() {
		errs = append(errs, fmt.Errorf("%w: default alignment %v", ErrUnknownAlignment, o.DefaultAlignment))
	}
	if o.HeaderAlignment < HeaderFollow || o.HeaderAlignment > HeaderCenter {
		errs = append(errs, fmt.Errorf("%w: header alignment %v", ErrUnknownAlignment, o.HeaderAlignment))
	}
	if o.MinDelimiterWidth < 1 {
		errs = append(errs, fmt.Errorf("min delimiter width must be >= 1, got %d", o.MinDelimiterWidth))
	}
	return errors.Join(errs...)
}

// Completed is the result of CompleteTable.
type Completed struct {
	Table             Table
	DelimiterInserted bool
}

// CompleteTable makes every row as wide as the widest row and inserts a
// delimiter row after the header when there is none.
//
// The first cell appended to a short row takes over the row's right margin,
// so trailing text typed after the last pipe becomes cell content.
func CompleteTable(t Table, opts FormatOptions) (Completed, error) {
	if t.Height() == 0 {
		return Completed{}, ErrEmptyTable
	}
	w := t.Width()
	rows := make([]Row, 0, t.Height()+1)

	rows = append(rows, extendRow(t.rows[0], w, func(seed string) Cell { return NewCell(seed) }))

	delim, hasDelim := t.DelimiterRow()
	if hasDelim {
		rows = append(rows, extendRow(delim, w, func(seed string) Cell {
			return NewCell(DelimiterText(AlignNone, max(opts.MinDelimiterWidth, runeLen(seed)-2)))
		}))
	} else {
		cells := make([]Cell, w)
		for i := range cells {
			cells[i] = NewCell(DelimiterText(AlignNone, opts.MinDelimiterWidth))
		}
		rows = append(rows, Row{cells: cells})
	}

	body := 1
	if hasDelim {
		body = 2
	}
	for _, r := range t.rows[body:] {
		rows = append(rows, extendRow(r, w, func(seed string) Cell { return NewCell(seed) }))
	}
	return Completed{Table: Table{rows: rows}, DelimiterInserted: !hasDelim}, nil
}

// extendRow appends cells until the row has w cells. The first appended
// cell is built from the row's right margin, the rest from "".
func extendRow(r Row, w int, cell func(seed string) Cell) Row {
	if len(r.cells) >= w {
		return NewRow(r.cells, r.marginLeft, r.marginRight)
	}
	cells := make([]Cell, len(r.cells), w)
	copy(cells, r.cells)
	for j := len(r.cells); j < w; j++ {
		seed := ""
		if j == len(r.cells) {
			seed = r.marginRight
		}
		cells = append(cells, cell(seed))
	}
	return Row{cells: cells, marginLeft: r.marginLeft}
}

// Formatted is the result of FormatTable.
type Formatted struct {
	Table Table
	// MarginLeft is the left margin shared by every formatted row.
	MarginLeft string
}

// FormatTable rewrites every row with the header's left margin, no right
// margin, and cells padded according to opts.FormatType.
func FormatTable(t Table, opts FormatOptions) (Formatted, error) {
	if err := opts.Validate(); err != nil {
		return Formatted{}, err
	}
	switch opts.FormatType {
	case FormatWeak:
		return weakFormat(t, opts), nil
	default:
		return normalFormat(t, opts), nil
	}
}

func normalFormat(t Table, opts FormatOptions) Formatted {
	height := t.Height()
	if height == 0 {
		return Formatted{Table: t}
	}
	marginLeft := t.rows[0].marginLeft
	w := t.Width()
	if w == 0 {
		rows := make([]Row, height)
		for i := range rows {
			rows[i] = Row{marginLeft: marginLeft}
		}
		return Formatted{Table: Table{rows: rows}, MarginLeft: marginLeft}
	}

	delim, hasDelim := t.DelimiterRow()
	widths := make([]int, w)
	if hasDelim {
		for j := 0; j < delim.Width(); j++ {
			widths[j] = opts.MinDelimiterWidth
		}
	}
	for i, r := range t.rows {
		if hasDelim && i == 1 {
			continue
		}
		for j, c := range r.cells {
			widths[j] = max(widths[j], TextWidth(c.content, opts.TextWidth))
		}
	}

	aligns := make([]Alignment, w)
	for j := range aligns {
		aligns[j] = AlignNone
		if hasDelim {
			if c, ok := delim.CellAt(j); ok {
				aligns[j] = c.Alignment()
			}
		}
	}
	columnAlign := func(j int) Alignment {
		if aligns[j] == AlignNone {
			return opts.DefaultAlignment
		}
		return aligns[j]
	}

	rows := make([]Row, 0, height)
	header := t.rows[0]
	cells := make([]Cell, len(header.cells))
	for j, c := range header.cells {
		a, fixed := opts.HeaderAlignment.alignment()
		if !fixed {
			a = columnAlign(j)
		}
		cells[j] = NewCell(PadText(AlignText(c.content, widths[j], a, opts.TextWidth)))
	}
	rows = append(rows, Row{cells: cells, marginLeft: marginLeft})

	body := 1
	if hasDelim {
		cells := make([]Cell, len(delim.cells))
		for j := range delim.cells {
			cells[j] = NewCell(DelimiterText(aligns[j], widths[j]))
		}
		rows = append(rows, Row{cells: cells, marginLeft: marginLeft})
		body = 2
	}

	for _, r := range t.rows[body:] {
		cells := make([]Cell, len(r.cells))
		for j, c := range r.cells {
			cells[j] = NewCell(PadText(AlignText(c.content, widths[j], columnAlign(j), opts.TextWidth)))
		}
		rows = append(rows, Row{cells: cells, marginLeft: marginLeft})
	}
	return Formatted{Table: Table{rows: rows}, MarginLeft: marginLeft}
}

func weakFormat(t Table, opts FormatOptions) Formatted {
	if t.Height() == 0 {
		return Formatted{Table: t}
	}
	marginLeft := t.rows[0].marginLeft
	rows := make([]Row, t.Height())
	for i, r := range t.rows {
		cells := make([]Cell, len(r.cells))
		for j, c := range r.cells {
			cells[j] = NewCell(PadText(c.content))
		}
		rows[i] = Row{cells: cells, marginLeft: marginLeft}
	}
	if delim, ok := t.DelimiterRow(); ok {
		cells := make([]Cell, len(delim.cells))
		for j, c := range delim.cells {
			cells[j] = NewCell(DelimiterText(c.Alignment(), opts.MinDelimiterWidth))
		}
		rows[1] = Row{cells: cells, marginLeft: marginLeft}
	}
	return Formatted{Table: Table{rows: rows}, MarginLeft: marginLeft}
}

// DelimiterText renders a delimiter cell with w hyphens.
func DelimiterText(a Alignment, w int) string {
	bar := strings.Repeat("-", max(w, 0))
	switch a {
	case AlignLeft:
		return ":" + bar + " "
	case AlignRight:
		return " " + bar + ":"
	case AlignCenter:
		return ":" + bar + ":"
	default:
		return " " + bar + " "
	}
}

// AlignText pads text with spaces to w columns. Text that is already wider
// is returned unchanged. It panics on AlignNone or an unknown alignment;
// callers resolve the column alignment first.
func AlignText(text string, w int, a Alignment, opts TextWidthOptions) string {
	space := w - TextWidth(text, opts)
	if space < 0 {
		return text
	}
	switch a {
	case AlignLeft:
		return text + strings.Repeat(" ", space)
	case AlignRight:
		return strings.Repeat(" ", space) + text
	case AlignCenter:
		return strings.Repeat(" ", space/2) + text + strings.Repeat(" ", space-space/2)
	}
	panic(fmt.Sprintf("table: cannot align text with %v", a))
}

// PadText surrounds text with a single space on both sides.
func PadText(text string) string {
	return " " + text + " "
}
