package grapheme

import "github.com/rivo/uniseg"

// IsBoundary reports whether byte offset off falls on a grapheme cluster
// boundary of text. Offsets 0 and len(text) always qualify; offsets outside
// [0, len(text)] never do.
//
// Every grapheme boundary is also a UTF-8 code point boundary, but not the
// other way around: a combining mark starts a new code point inside the same
// cluster.
func IsBoundary(text string, off int) bool {
	if off == 0 || off == len(text) {
		return true
	}
	if off < 0 || off > len(text) {
		return false
	}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		if from == off {
			return true
		}
		if from > off {
			return false
		}
	}
	return false
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}
