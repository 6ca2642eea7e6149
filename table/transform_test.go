package table

import "testing"

func transformFixture() Table {
	return ReadTable([]string{
		"| A | B |",
		"| --- | --- |",
		"| C | D |",
		"| E | F |",
	}, ReadOptions{})
}

func TestAlterAlignment(t *testing.T) {
	got := AlterAlignment(transformFixture(), 1, AlignRight, DefaultFormatOptions())
	linesEqual(t, got.Lines(), []string{
		"| A | B |",
		"| --- | ---:|",
		"| C | D |",
		"| E | F |",
	})

	noDelim := ReadTable([]string{"| A |", "| B |"}, ReadOptions{})
	linesEqual(t, AlterAlignment(noDelim, 0, AlignLeft, DefaultFormatOptions()).Lines(), noDelim.Lines())
}

func TestInsertRow(t *testing.T) {
	row := NewRow([]Cell{NewCell(" X "), NewCell(" Y ")}, "", "")
	got := InsertRow(transformFixture(), 3, row)
	linesEqual(t, got.Lines(), []string{
		"| A | B |",
		"| --- | --- |",
		"| C | D |",
		"| X | Y |",
		"| E | F |",
	})

	appended := InsertRow(transformFixture(), 99, row)
	if r, _ := appended.RowAt(4); r.Text() != "| X | Y |" {
		t.Fatalf("append: got %q", r.Text())
	}
}

func TestDeleteRow(t *testing.T) {
	got := DeleteRow(transformFixture(), 2)
	linesEqual(t, got.Lines(), []string{
		"| A | B |",
		"| --- | --- |",
		"| E | F |",
	})

	if got := DeleteRow(transformFixture(), 1); got.Height() != 4 {
		t.Fatalf("delimiter row must not be deleted")
	}
}

func TestMoveRow(t *testing.T) {
	got := MoveRow(transformFixture(), 3, 2)
	linesEqual(t, got.Lines(), []string{
		"| A | B |",
		"| --- | --- |",
		"| E | F |",
		"| C | D |",
	})

	if got := MoveRow(transformFixture(), 2, 1); got.Lines()[1] != "| --- | --- |" {
		t.Fatalf("move onto delimiter row must be ignored")
	}
}

func TestInsertColumn(t *testing.T) {
	column := []Cell{NewCell(" h "), NewCell(" 1 "), NewCell(" 2 ")}
	got := InsertColumn(transformFixture(), 1, column, DefaultFormatOptions())
	linesEqual(t, got.Lines(), []string{
		"| A | h | B |",
		"| --- | --- | --- |",
		"| C | 1 | D |",
		"| E | 2 | F |",
	})

	got = InsertColumn(transformFixture(), 2, nil, DefaultFormatOptions())
	linesEqual(t, got.Lines(), []string{
		"| A | B ||",
		"| --- | --- | --- |",
		"| C | D ||",
		"| E | F ||",
	})
}

func TestDeleteColumn(t *testing.T) {
	got := DeleteColumn(transformFixture(), 0, DefaultFormatOptions())
	linesEqual(t, got.Lines(), []string{
		"| B |",
		"| --- |",
		"| D |",
		"| F |",
	})

	got = DeleteColumn(got, 0, DefaultFormatOptions())
	linesEqual(t, got.Lines(), []string{
		"||",
		"| --- |",
		"||",
		"||",
	})
}

func TestMoveColumn(t *testing.T) {
	got := MoveColumn(transformFixture(), 0, 1)
	linesEqual(t, got.Lines(), []string{
		"| B | A |",
		"| --- | --- |",
		"| D | C |",
		"| F | E |",
	})
}

func TestTransforms_DoNotMutateInput(t *testing.T) {
	tbl := transformFixture()
	before := tbl.Lines()

	_ = MoveColumn(tbl, 0, 1)
	_ = MoveRow(tbl, 2, 3)
	_ = DeleteColumn(tbl, 0, DefaultFormatOptions())
	_ = InsertColumn(tbl, 0, nil, DefaultFormatOptions())

	linesEqual(t, tbl.Lines(), before)
}
