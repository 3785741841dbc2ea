package span

import (
	"math"
	"strconv"
)

// BoundKind tells how one edge of a span constrains the target region.
type BoundKind uint8

const (
	BoundUnbounded BoundKind = iota
	BoundIncluded
	BoundExcluded
)

// Bound is one edge of a span. Index is meaningless for BoundUnbounded.
type Bound struct {
	Kind  BoundKind
	Index int
}

// Unbounded returns the absent bound.
func Unbounded() Bound { return Bound{Kind: BoundUnbounded} }

// Included returns an inclusive bound at index i.
func Included(i int) Bound { return Bound{Kind: BoundIncluded, Index: i} }

// Excluded returns an exclusive bound at index i.
func Excluded(i int) Bound { return Bound{Kind: BoundExcluded, Index: i} }

// Span is the abstract description of a buffer sub-range.
//
// The concrete shapes are Full, From, To, and ToInclusive. Buffer splitting
// (package bytebuf) accepts only these four; validators accept any Span via
// its bounds.
type Span interface {
	StartBound() Bound
	EndBound() Bound
	String() string
}

// Full targets the entire buffer.
type Full struct{}

func (Full) StartBound() Bound { return Unbounded() }
func (Full) EndBound() Bound   { return Unbounded() }
func (Full) String() string    { return ".." }

// From targets [Start, length).
type From struct {
	Start int
}

func (s From) StartBound() Bound { return Included(s.Start) }
func (From) EndBound() Bound     { return Unbounded() }
func (s From) String() string    { return strconv.Itoa(s.Start) + ".." }

// To targets [0, End).
type To struct {
	End int
}

func (To) StartBound() Bound { return Unbounded() }
func (s To) EndBound() Bound { return Excluded(s.End) }
func (s To) String() string  { return ".." + strconv.Itoa(s.End) }

// ToInclusive targets [0, End].
type ToInclusive struct {
	End int
}

func (ToInclusive) StartBound() Bound { return Unbounded() }
func (s ToInclusive) EndBound() Bound { return Included(s.End) }
func (s ToInclusive) String() string  { return "..=" + strconv.Itoa(s.End) }

// ToExclusive converts the inclusive end bound into the equivalent exclusive
// one. The exclusive form corresponds directly to buffer lengths and 0-based
// offsets, so the splitting layer only ever works with it.
//
// Panics if End is the maximum representable int, since End+1 would wrap.
// Any valid in-memory buffer length fits in an int, so the panic can only
// fire on a span that no buffer could satisfy anyway.
func (s ToInclusive) ToExclusive() To {
	if s.End == math.MaxInt {
		panic("span: inclusive end bound " + s.String() + " overflows")
	}
	return To{End: s.End + 1}
}
