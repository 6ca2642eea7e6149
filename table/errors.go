package table

import "errors"

var (
	// ErrEmptyTable is returned by operations that need at least one row.
	ErrEmptyTable = errors.New("empty table")

	ErrUnknownAlignment  = errors.New("unknown alignment")
	ErrUnknownFormatType = errors.New("unknown format type")
)
