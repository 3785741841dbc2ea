package strspan

import (
	"github.com/iw2rmb/rangesplit/internal/grapheme"
	"github.com/iw2rmb/rangesplit/span"
)

// IsValidGraphemes reports whether sp is safe for splitting s without cutting
// through a grapheme cluster: both bounds fit within [0, len(s)] and land on
// cluster boundaries.
//
// This is strictly tighter than IsValid. An offset between a base letter and
// its combining mark passes the code point check but fails this one.
func IsValidGraphemes(s string, sp span.Span) bool {
	return validateStart(s, sp.StartBound(), graphemeBoundary) == boundValid &&
		validateEnd(s, sp.EndBound(), graphemeBoundary) == boundValid
}

// AssertGraphemes panics when sp is not safe for splitting s on grapheme
// cluster boundaries, with the same contract as Assert.
func AssertGraphemes(s string, sp span.Span) {
	if !IsValidGraphemes(s, sp) {
		fail(s, sp, graphemeBoundary, "a grapheme cluster boundary")
	}
}

func graphemeBoundary(s string, i int) bool {
	return grapheme.IsBoundary(s, i)
}
