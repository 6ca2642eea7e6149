package table

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// TextWidthOptions controls how the formatter measures text.
type TextWidthOptions struct {
	// Normalize applies NFC normalization before measuring.
	Normalize bool
	// WideChars are always measured as 2 columns.
	WideChars string
	// NarrowChars are always measured as 1 column.
	NarrowChars string
	// AmbiguousAsWide measures East Asian ambiguous characters as 2 columns.
	AmbiguousAsWide bool
}

func DefaultTextWidthOptions() TextWidthOptions {
	return TextWidthOptions{Normalize: true}
}

// TextWidth returns the display width of text in columns.
func TextWidth(text string, opts TextWidthOptions) int {
	if opts.Normalize {
		text = norm.NFC.String(text)
	}
	w := 0
	for _, r := range text {
		w += runeWidth(r, opts)
	}
	return w
}

func runeWidth(r rune, opts TextWidthOptions) int {
	if opts.WideChars != "" && strings.ContainsRune(opts.WideChars, r) {
		return 2
	}
	if opts.NarrowChars != "" && strings.ContainsRune(opts.NarrowChars, r) {
		return 1
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		if opts.AmbiguousAsWide {
			return 2
		}
	}
	return 1
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
