package buffer

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// Change summarizes one transaction, undo or redo that had an effect.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	TextChanged     bool
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
}

type changeBuilder struct {
	versionBefore     uint64
	textVersionBefore uint64
	cursorBefore      Pos
	selectionBefore   SelectionState
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	return b.lastChange, b.hasLastChange
}

func (b *Buffer) selectionState() SelectionState {
	r, ok := b.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{
		versionBefore:     b.version,
		textVersionBefore: b.textVersion,
		cursorBefore:      b.cursor,
		selectionBefore:   b.selectionState(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		TextChanged:     b.textVersion != cb.textVersionBefore,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
	}
	b.hasLastChange = true
}
