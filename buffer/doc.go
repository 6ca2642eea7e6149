// Package buffer implements the in-memory document a table editor works on.
//
// Coordinates are 0-based (Row, Column) in runes. Ranges are half-open
// selections in document coordinates: [Start, End). Buffer implements
// tableeditor.TextEditor.
package buffer
