package tableeditor

import "github.com/iw2rmb/pipetable/table"

// Options configures table commands.
type Options struct {
	table.FormatOptions

	// LeftMarginChars are characters, besides whitespace, accepted before
	// the first pipe of a row.
	LeftMarginChars string
	// SmartCursor makes NextRow return to the column where a run of
	// NextCell commands started.
	SmartCursor bool
}

func DefaultOptions() Options {
	return Options{FormatOptions: table.DefaultFormatOptions()}
}

func (o Options) readOptions() table.ReadOptions {
	return table.ReadOptions{LeftMarginChars: o.LeftMarginChars}
}
