package table

import "testing"

func TestTextWidth(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts TextWidthOptions
		want int
	}{
		{name: "ascii", text: "abc", want: 3},
		{name: "wide", text: "日本", want: 4},
		{name: "fullwidth", text: "Ａ", want: 2},
		{name: "halfwidth", text: "ｱ", want: 1},
		{name: "ambiguous narrow", text: "α", want: 1},
		{name: "ambiguous wide", text: "α", opts: TextWidthOptions{AmbiguousAsWide: true}, want: 2},
		{name: "wide override", text: "ab", opts: TextWidthOptions{WideChars: "a"}, want: 3},
		{name: "narrow override", text: "日本", opts: TextWidthOptions{NarrowChars: "日"}, want: 3},
		{name: "wide beats narrow", text: "x", opts: TextWidthOptions{WideChars: "x", NarrowChars: "x"}, want: 2},
		{name: "unnormalized", text: "e\u0301", want: 2},
		{name: "normalized", text: "e\u0301", opts: TextWidthOptions{Normalize: true}, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TextWidth(tc.text, tc.opts); got != tc.want {
				t.Fatalf("TextWidth(%q)=%d, want %d", tc.text, got, tc.want)
			}
		})
	}
}
