// Package grapheme steps over user-perceived characters. Offsets are rune
// offsets into a single line.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offset of every cluster start, followed by
// the rune length of text. It is never empty.
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the start of the cluster that ends at or contains col-1.
func Prev(text string, col int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the end of the cluster starting at or containing col.
func Next(text string, col int) int {
	bs := Boundaries(text)
	for _, b := range bs {
		if b > col {
			return b
		}
	}
	return bs[len(bs)-1]
}

// Snap returns the start of the cluster containing col, clamped to text.
func Snap(text string, col int) int {
	snapped := 0
	for _, b := range Boundaries(text) {
		if b > col {
			break
		}
		snapped = b
	}
	return snapped
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
