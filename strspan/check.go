package strspan

import (
	"unicode/utf8"

	"github.com/iw2rmb/rangesplit/span"
)

type boundValidity uint8

const (
	boundValid boundValidity = iota
	boundOutOfBuffer
	boundNotOnBoundary
)

// boundaryFunc reports whether a byte offset already known to lie inside
// (0, len(s)) starts a new unit of text.
type boundaryFunc func(s string, i int) bool

// IsValid reports whether sp is safe for splitting the UTF-8 text s: both
// bounds fit within [0, len(s)] and land on code point boundaries.
func IsValid(s string, sp span.Span) bool {
	return validateStart(s, sp.StartBound(), codePointBoundary) == boundValid &&
		validateEnd(s, sp.EndBound(), codePointBoundary) == boundValid
}

// Assert panics when sp is not safe for splitting s. The panic message names
// the span and tells an out-of-bounds index apart from one that would split
// a multi-byte code point. Use IsValid instead when a bad span is an expected
// runtime condition rather than a caller bug.
func Assert(s string, sp span.Span) {
	if !IsValid(s, sp) {
		fail(s, sp, codePointBoundary, "a UTF-8 code point boundary")
	}
}

func validateStart(s string, b span.Bound, onBoundary boundaryFunc) boundValidity {
	switch b.Kind {
	case span.BoundUnbounded:
		return boundValid
	case span.BoundIncluded:
		return validateIndex(s, b.Index, onBoundary)
	default:
		// An exclusive start at i begins the region just past i.
		return validateNextIndex(s, b.Index, onBoundary)
	}
}

func validateEnd(s string, b span.Bound, onBoundary boundaryFunc) boundValidity {
	switch b.Kind {
	case span.BoundUnbounded:
		return boundValid
	case span.BoundExcluded:
		return validateIndex(s, b.Index, onBoundary)
	default:
		// An inclusive end at i actually splits just past i.
		return validateNextIndex(s, b.Index, onBoundary)
	}
}

func validateIndex(s string, i int, onBoundary boundaryFunc) boundValidity {
	// The boundary check fails on out-of-bounds indices too; it runs first as
	// the fast path, and the cause is discerned after.
	if isBoundary(s, i, onBoundary) {
		return boundValid
	}
	if i < 0 || i > len(s) {
		return boundOutOfBuffer
	}
	return boundNotOnBoundary
}

func validateNextIndex(s string, i int, onBoundary boundaryFunc) boundValidity {
	// The out-of-bounds check also rules out integer overflow in i+1.
	if i < 0 || i >= len(s) {
		return boundOutOfBuffer
	}
	if isBoundary(s, i+1, onBoundary) {
		return boundValid
	}
	return boundNotOnBoundary
}

func isBoundary(s string, i int, onBoundary boundaryFunc) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return onBoundary(s, i)
}

func codePointBoundary(s string, i int) bool {
	return utf8.RuneStart(s[i])
}

// fail re-derives which bound broke and panics with a diagnostic. It is only
// reached after a validity check failed; arriving here with a valid span is
// an internal inconsistency and panics as such.
func fail(s string, sp span.Span, onBoundary boundaryFunc, boundaryName string) {
	start := validateStart(s, sp.StartBound(), onBoundary)
	end := validateEnd(s, sp.EndBound(), onBoundary)
	switch {
	case start == boundOutOfBuffer || end == boundOutOfBuffer:
		panic("strspan: span " + sp.String() + " is out of bounds of the string buffer")
	case start == boundNotOnBoundary || end == boundNotOnBoundary:
		panic("strspan: span " + sp.String() + " does not split on " + boundaryName)
	default:
		panic("strspan: span " + sp.String() + " reported invalid, but both bounds are valid")
	}
}
