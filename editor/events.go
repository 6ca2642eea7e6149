package editor

import "github.com/iw2rmb/pipetable/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Change is the buffer's last effective change, when there is one.
	Change    buffer.Change
	HasChange bool
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	ev.Change, ev.HasChange = b.LastChange()
	return ev
}
