package editor

import (
	"log/slog"

	"github.com/iw2rmb/pipetable/tableeditor"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth is the tab stop used to render '\t'. Default 4.
	TabWidth int

	KeyMap   KeyMap
	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	Clipboard Clipboard

	// Table configures table commands.
	Table tableeditor.Options
	// Logger receives table command errors and debug output. Nil discards.
	Logger *slog.Logger

	// OnChange is called after an update changed the buffer.
	OnChange func(ChangeEvent)
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Table == (tableeditor.Options{}) {
		c.Table = tableeditor.DefaultOptions()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
