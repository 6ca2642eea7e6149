// Package tableeditor edits the Markdown table under the cursor of a host
// text buffer.
//
// Every command reads the contiguous table block around the cursor, maps the
// cursor to a cell focus, transforms and reformats the table, and writes the
// result back as a minimal line patch inside one host transaction, leaving
// the cursor on the same logical cell.
package tableeditor
