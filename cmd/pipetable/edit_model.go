package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/pipetable/editor"
)

var (
	saveKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))
	quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))

	statusStyle    = lipgloss.NewStyle().Reverse(true)
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// editModel hosts an editor over one file with a status line below it.
type editModel struct {
	path   string
	editor editor.Model

	width        int
	savedVersion uint64
	status       string
	saveErr      error
}

func newEditModel(path string, cfg editor.Config) editModel {
	ed := editor.New(cfg)
	return editModel{
		path:         path,
		editor:       ed,
		savedVersion: ed.Buffer().TextVersion(),
	}
}

func (m editModel) Init() tea.Cmd { return nil }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, saveKey):
			m.save()
			return m, nil
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *editModel) save() {
	buf := m.editor.Buffer()
	if err := os.WriteFile(m.path, []byte(buf.Text()), 0o644); err != nil {
		m.saveErr = err
		m.status = ""
		return
	}
	m.saveErr = nil
	m.savedVersion = buf.TextVersion()
	m.status = "saved"
}

func (m editModel) modified() bool {
	return m.editor.Buffer().TextVersion() != m.savedVersion
}

func (m editModel) View() string {
	return m.editor.View() + "\n" + m.statusLine()
}

func (m editModel) statusLine() string {
	cur := m.editor.Buffer().Cursor()
	name := m.path
	if m.modified() {
		name += " [+]"
	}
	line := fmt.Sprintf(" %s  %d:%d", name, cur.Row+1, cur.Column+1)
	if m.status != "" {
		line += "  " + m.status
	}
	if m.width > 0 {
		line = lipgloss.NewStyle().Width(m.width).Render(line)
	}
	line = statusStyle.Render(line)

	switch {
	case m.saveErr != nil:
		line += " " + statusErrStyle.Render(m.saveErr.Error())
	case m.editor.Err() != nil:
		line += " " + statusErrStyle.Render(m.editor.Err().Error())
	}
	return line
}
