package buffer

type bufferSnapshot struct {
	lines  []string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

// txState tracks the outermost open transaction.
type txState struct {
	depth       int
	prev        bufferSnapshot
	textVersion uint64
	change      changeBuilder
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		lines:  append([]string(nil), b.lines...),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = append([]string(nil), s.lines...)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

// Transact runs fn as one undoable step. Nested calls join the outermost
// transaction, which records a single undo entry if the text changed.
func (b *Buffer) Transact(fn func()) {
	if b.tx.depth == 0 {
		b.tx.prev = b.snapshot()
		b.tx.textVersion = b.textVersion
		b.tx.change = b.beginChange()
	}
	b.tx.depth++
	defer func() {
		b.tx.depth--
		if b.tx.depth > 0 {
			return
		}
		if len(b.lines) == 0 {
			b.lines = []string{""}
			b.clampState()
		}
		if b.textVersion != b.tx.textVersion {
			b.recordUndo(b.tx.prev)
		}
		b.commitChange(b.tx.change)
		b.tx = txState{}
	}()
	fn()
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 || b.tx.depth > 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange()

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	b.textVersion++
	b.commitChange(change)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 || b.tx.depth > 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange()

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	b.textVersion++
	b.commitChange(change)
	return true
}
