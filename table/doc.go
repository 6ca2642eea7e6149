// Package table implements the pure Markdown table model used by the table
// editor: buffer coordinates, cell-addressed focus, parsing of pipe-delimited
// lines, layout, and structural transformations.
//
// Coordinates are 0-based (Row, Column) with columns counted in runes.
// All values are immutable snapshots; transformations return new tables.
package table
