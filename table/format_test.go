package table

import (
	"errors"
	"fmt"
	"testing"
)

func linesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestCompleteTable_ExtendsShortRowsWithRightMargin(t *testing.T) {
	tbl := ReadTable([]string{
		"| A | B |",
		"| --- | --- |",
		"| C |  ",
	}, ReadOptions{})

	got, err := CompleteTable(tbl, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("CompleteTable: %v", err)
	}
	if got.DelimiterInserted {
		t.Fatalf("unexpected delimiter insertion")
	}
	linesEqual(t, got.Table.Lines(), []string{
		"| A | B |",
		"| --- | --- |",
		"| C |  |",
	})
	r, _ := got.Table.RowAt(2)
	if r.MarginRight() != "" {
		t.Fatalf("margin right=%q, want empty", r.MarginRight())
	}
}

func TestCompleteTable_InsertsDelimiterRow(t *testing.T) {
	tbl := ReadTable([]string{
		"| A | B |",
		"| C | D |",
	}, ReadOptions{})

	got, err := CompleteTable(tbl, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("CompleteTable: %v", err)
	}
	if !got.DelimiterInserted {
		t.Fatalf("expected delimiter insertion")
	}
	linesEqual(t, got.Table.Lines(), []string{
		"| A | B |",
		"| --- | --- |",
		"| C | D |",
	})
}

func TestCompleteTable_WidensHeaderAndDelimiter(t *testing.T) {
	tbl := ReadTable([]string{
		"| A |",
		"| - |",
		"| C | D | E |",
	}, ReadOptions{})

	got, err := CompleteTable(tbl, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("CompleteTable: %v", err)
	}
	linesEqual(t, got.Table.Lines(), []string{
		"| A |||",
		"| - | --- | --- |",
		"| C | D | E |",
	})
}

func TestCompleteTable_DelimiterSeedWidth(t *testing.T) {
	tbl := ReadTable([]string{
		"| A | B |",
		"| --- |       ",
	}, ReadOptions{})

	got, err := CompleteTable(tbl, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("CompleteTable: %v", err)
	}
	linesEqual(t, got.Table.Lines(), []string{
		"| A | B |",
		"| --- | ----- |",
	})
}

func TestCompleteTable_EmptyTable(t *testing.T) {
	_, err := CompleteTable(New(nil), DefaultFormatOptions())
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("err=%v, want ErrEmptyTable", err)
	}
}

func TestFormatTable_Normal(t *testing.T) {
	tbl := ReadTable([]string{
		"  | A | Bcd |",
		"|:--|--:|",
		"| 日本 | x |   ",
	}, ReadOptions{})

	got, err := FormatTable(tbl, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("FormatTable: %v", err)
	}
	if got.MarginLeft != "  " {
		t.Fatalf("margin=%q, want %q", got.MarginLeft, "  ")
	}
	linesEqual(t, got.Table.Lines(), []string{
		"  | A    | Bcd |",
		"  |:---- | ---:|",
		"  | 日本 |   x |",
	})
}

func TestFormatTable_DefaultAndHeaderAlignment(t *testing.T) {
	tbl := ReadTable([]string{
		"| A | B |",
		"|-----|-----|",
		"| c | d |",
	}, ReadOptions{})

	opts := DefaultFormatOptions()
	opts.DefaultAlignment = AlignCenter
	got, err := FormatTable(tbl, opts)
	if err != nil {
		t.Fatalf("FormatTable: %v", err)
	}
	linesEqual(t, got.Table.Lines(), []string{
		"|  A  |  B  |",
		"| --- | --- |",
		"|  c  |  d  |",
	})

	opts.HeaderAlignment = HeaderRight
	got, err = FormatTable(tbl, opts)
	if err != nil {
		t.Fatalf("FormatTable: %v", err)
	}
	linesEqual(t, got.Table.Lines(), []string{
		"|   A |   B |",
		"| --- | --- |",
		"|  c  |  d  |",
	})
}

func TestFormatTable_Weak(t *testing.T) {
	tbl := ReadTable([]string{
		"|  A|B  |",
		"|:-:|-------:|",
		"|c|   d |",
	}, ReadOptions{})

	opts := DefaultFormatOptions()
	opts.FormatType = FormatWeak
	got, err := FormatTable(tbl, opts)
	if err != nil {
		t.Fatalf("FormatTable: %v", err)
	}
	linesEqual(t, got.Table.Lines(), []string{
		"| A | B |",
		"|:---:| ---:|",
		"| c | d |",
	})
}

func TestFormatTable_NoColumns(t *testing.T) {
	tbl := New([]Row{NewRow(nil, " ", ""), NewRow(nil, "", "")})
	got, err := FormatTable(tbl, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("FormatTable: %v", err)
	}
	linesEqual(t, got.Table.Lines(), []string{" ", " "})
}

func TestFormatTable_RejectsUnknownOptions(t *testing.T) {
	tbl := ReadTable([]string{"| A |"}, ReadOptions{})

	opts := DefaultFormatOptions()
	opts.DefaultAlignment = AlignNone
	if _, err := FormatTable(tbl, opts); !errors.Is(err, ErrUnknownAlignment) {
		t.Fatalf("err=%v, want ErrUnknownAlignment", err)
	}

	opts = DefaultFormatOptions()
	opts.HeaderAlignment = HeaderAlignment(42)
	if _, err := FormatTable(tbl, opts); !errors.Is(err, ErrUnknownAlignment) {
		t.Fatalf("err=%v, want ErrUnknownAlignment", err)
	}

	opts = DefaultFormatOptions()
	opts.FormatType = FormatType(7)
	if _, err := FormatTable(tbl, opts); !errors.Is(err, ErrUnknownFormatType) {
		t.Fatalf("err=%v, want ErrUnknownFormatType", err)
	}
}

func TestAlignText(t *testing.T) {
	opts := TextWidthOptions{}
	cases := []struct {
		text  string
		w     int
		align Alignment
		want  string
	}{
		{text: "ab", w: 5, align: AlignLeft, want: "ab   "},
		{text: "ab", w: 5, align: AlignRight, want: "   ab"},
		{text: "ab", w: 5, align: AlignCenter, want: " ab  "},
		{text: "abcdef", w: 3, align: AlignLeft, want: "abcdef"},
		{text: "日", w: 3, align: AlignLeft, want: "日 "},
	}
	for _, tc := range cases {
		if got := AlignText(tc.text, tc.w, tc.align, opts); got != tc.want {
			t.Fatalf("AlignText(%q,%d,%v)=%q, want %q", tc.text, tc.w, tc.align, got, tc.want)
		}
	}
}

func TestAlignText_PanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	AlignText("a", 3, AlignNone, TextWidthOptions{})
}

func TestDelimiterText(t *testing.T) {
	cases := map[Alignment]string{
		AlignNone:   " --- ",
		AlignLeft:   ":--- ",
		AlignRight:  " ---:",
		AlignCenter: ":---:",
	}
	for a, want := range cases {
		if got := DelimiterText(a, 3); got != want {
			t.Fatalf("DelimiterText(%v)=%q, want %q", a, got, want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	if a, err := ParseAlignment(" Center "); err != nil || a != AlignCenter {
		t.Fatalf("ParseAlignment: %v %v", a, err)
	}
	if _, err := ParseAlignment("middle"); !errors.Is(err, ErrUnknownAlignment) {
		t.Fatalf("err=%v, want ErrUnknownAlignment", err)
	}
	if h, err := ParseHeaderAlignment("follow"); err != nil || h != HeaderFollow {
		t.Fatalf("ParseHeaderAlignment: %v %v", h, err)
	}
	if _, err := ParseHeaderAlignment("none"); !errors.Is(err, ErrUnknownAlignment) {
		t.Fatalf("err=%v, want ErrUnknownAlignment", err)
	}
	if ft, err := ParseFormatType("weak"); err != nil || ft != FormatWeak {
		t.Fatalf("ParseFormatType: %v %v", ft, err)
	}
	if _, err := ParseFormatType("strong"); !errors.Is(err, ErrUnknownFormatType) {
		t.Fatalf("err=%v, want ErrUnknownFormatType", err)
	}
}
