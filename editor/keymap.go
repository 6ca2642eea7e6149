package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	Table TableKeyMap
}

// TableKeyMap holds the bindings active while the cursor is on a table row.
// They take precedence over the plain editing bindings.
type TableKeyMap struct {
	NextCell, PreviousCell, NextRow, Escape key.Binding
	SelectCell                              key.Binding
	Format, FormatAll                       key.Binding

	FocusLeft, FocusRight, FocusUp, FocusDown key.Binding

	MoveRowUp, MoveRowDown          key.Binding
	MoveColumnLeft, MoveColumnRight key.Binding

	AlignLeft, AlignRight, AlignCenter key.Binding

	InsertRow, DeleteRow       key.Binding
	InsertColumn, DeleteColumn key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Table: DefaultTableKeyMap(),
	}
}

func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		NextCell:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		PreviousCell: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),
		NextRow:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next row")),
		Escape:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave table")),
		SelectCell:   key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "select cell")),
		Format:       key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "format table")),
		FormatAll:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "format all tables")),

		FocusLeft:  key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←", "cell left")),
		FocusRight: key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+→", "cell right")),
		FocusUp:    key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "cell up")),
		FocusDown:  key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "cell down")),

		MoveRowUp:       key.NewBinding(key.WithKeys("alt+ctrl+up", "ctrl+shift+up"), key.WithHelp("ctrl+alt+↑", "move row up")),
		MoveRowDown:     key.NewBinding(key.WithKeys("alt+ctrl+down", "ctrl+shift+down"), key.WithHelp("ctrl+alt+↓", "move row down")),
		MoveColumnLeft:  key.NewBinding(key.WithKeys("alt+ctrl+left", "ctrl+shift+left"), key.WithHelp("ctrl+alt+←", "move column left")),
		MoveColumnRight: key.NewBinding(key.WithKeys("alt+ctrl+right", "ctrl+shift+right"), key.WithHelp("ctrl+alt+→", "move column right")),

		AlignLeft:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "align left")),
		AlignRight:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "align right")),
		AlignCenter: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "align center")),

		InsertRow:    key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "insert row")),
		DeleteRow:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete row")),
		InsertColumn: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "insert column")),
		DeleteColumn: key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "delete column")),
	}
}
