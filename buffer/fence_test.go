package buffer

import "testing"

func TestBuffer_AcceptsTableEdit_FencedCode(t *testing.T) {
	b := New(
		"| a |\n"+
			"```go\n"+
			"| b |\n"+
			"~~~\n"+
			"````\n"+
			"| c |\n"+
			"```\n"+
			"| d |",
		Options{},
	)

	want := []bool{true, false, false, false, false, true, false, false}
	for row, w := range want {
		if got := b.AcceptsTableEdit(row); got != w {
			t.Fatalf("AcceptsTableEdit(%d)=%v, want %v", row, got, w)
		}
	}
	if b.AcceptsTableEdit(99) {
		t.Fatalf("out of range row must be rejected")
	}
}

func TestBuffer_AcceptsTableEdit_TracksEdits(t *testing.T) {
	b := New("| a |\n| b |", Options{})
	if !b.AcceptsTableEdit(1) {
		t.Fatalf("expected row 1 accepted")
	}
	b.InsertLine(1, "~~~")
	if b.AcceptsTableEdit(2) {
		t.Fatalf("row after an unclosed fence must be rejected")
	}
}

func TestParseFence(t *testing.T) {
	cases := []struct {
		line string
		ok   bool
	}{
		{line: "```", ok: true},
		{line: "   ~~~~ sh", ok: true},
		{line: "    ```", ok: false},
		{line: "``", ok: false},
		{line: "``` a`b", ok: false},
		{line: "| ``` |", ok: false},
	}
	for _, tc := range cases {
		if _, ok := parseFence(tc.line); ok != tc.ok {
			t.Fatalf("parseFence(%q)=%v, want %v", tc.line, ok, tc.ok)
		}
	}
}
