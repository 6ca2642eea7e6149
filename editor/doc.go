// Package editor provides a Bubble Tea Markdown editor component backed by
// the buffer package.
//
// Plain keys edit text. While the cursor is on a table row, table keys run
// tableeditor commands (next cell, align column, move row, ...) against the
// same buffer, each as one undo step.
package editor
