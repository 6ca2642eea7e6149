package editor

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/pipetable/buffer"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := strings.Split(m.View(), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	for i := range got {
		got[i] = strings.TrimRight(stripANSI(got[i]), " ")
	}

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FollowCursorScrolls(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5"})
	m = m.SetSize(10, 2)

	m.Buffer().SetCursor(buffer.Pos{Row: 5, Column: 0})
	m, _ = m.Update(nil)
	if got, want := m.viewport.YOffset, 4; got != want {
		t.Fatalf("y offset=%d, want %d", got, want)
	}

	m.Buffer().SetCursor(buffer.Pos{Row: 1, Column: 0})
	m, _ = m.Update(nil)
	if got, want := m.viewport.YOffset, 1; got != want {
		t.Fatalf("y offset=%d, want %d", got, want)
	}
}

func TestModel_FollowCursorScrollsHorizontally(t *testing.T) {
	m := New(Config{Text: "abcdefghijklmnop"})
	m = m.SetSize(5, 1)

	m.Buffer().SetCursor(buffer.Pos{Row: 0, Column: 12})
	m, _ = m.Update(nil)
	if got, want := m.xOffset, 8; got != want {
		t.Fatalf("x offset=%d, want %d", got, want)
	}
	if got, want := strings.TrimRight(stripANSI(m.View()), " "), "ijklm"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestModel_OnChange(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "ab",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m, _ = m.Update(keyRunes("x"))
	if len(events) != 1 {
		t.Fatalf("events=%d, want 1", len(events))
	}
	ev := events[0]
	if !ev.HasChange || !ev.Change.TextChanged {
		t.Fatalf("expected a text change, got %+v", ev)
	}
	if got, want := ev.Cursor, (buffer.Pos{Row: 0, Column: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	m, _ = m.Update(nil)
	if len(events) != 1 {
		t.Fatalf("no-op update must not emit, got %d events", len(events))
	}
}
