package buffer

import "testing"

func TestNormalizeRange(t *testing.T) {
	r := Range{Start: Pos{Row: 2, Column: 1}, End: Pos{Row: 0, Column: 3}}
	got := NormalizeRange(r)
	want := Range{Start: Pos{Row: 0, Column: 3}, End: Pos{Row: 2, Column: 1}}
	if got != want {
		t.Fatalf("normalized=%v, want %v", got, want)
	}
	if again := NormalizeRange(got); again != want {
		t.Fatalf("normalizing twice=%v, want %v", again, want)
	}
}

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0, 5}[row] }

	cases := []struct {
		in, want Pos
	}{
		{in: Pos{Row: -1, Column: -1}, want: Pos{Row: 0, Column: 0}},
		{in: Pos{Row: 0, Column: 9}, want: Pos{Row: 0, Column: 3}},
		{in: Pos{Row: 1, Column: 2}, want: Pos{Row: 1, Column: 0}},
		{in: Pos{Row: 7, Column: 4}, want: Pos{Row: 2, Column: 4}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}

	if got, want := ClampPos(Pos{Row: 4, Column: 4}, 0, nil), (Pos{}); got != want {
		t.Fatalf("ClampPos on empty doc=%v, want %v", got, want)
	}
}
