package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/pipetable/buffer"
	"github.com/iw2rmb/pipetable/tableeditor"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	tbl *tableeditor.TableEditor

	focused bool

	viewport viewport.Model
	xOffset  int

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastErr        error
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	buf := buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit})
	m := Model{
		cfg:      cfg,
		buf:      buf,
		tbl:      tableeditor.New(buf, tableeditor.WithLogger(cfg.Logger)),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) TableEditor() *tableeditor.TableEditor { return m.tbl }

// Err returns the error of the last table command, if it failed.
func (m Model) Err() error { return m.lastErr }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	// Also picks up edits the host made to the buffer directly.
	if m.syncFromBuffer() {
		m.followCursor()
		m.rebuildContent()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer reports whether the buffer changed since the last call and
// emits a change event when it did.
func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor cell is visible.
func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	cell := cursorCell(m.buf.Line(cur.Row), cur.Column, m.cfg.TabWidth)
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
}
