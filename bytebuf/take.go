package bytebuf

import "github.com/iw2rmb/rangesplit/span"

// Taker is the capability to split a sub-range out of a buffer.
//
// TakeRange extracts the region the span designates and leaves the remainder
// in the receiver, reindexed from zero. RemoveRange discards the region; its
// contract is equivalent to calling TakeRange and dropping the result, but
// implementations are expected to use a cheaper in-place operation where one
// exists. Both panic when a bound exceeds the buffer's length, and on spans
// outside the four shapes of package span.
type Taker[T any] interface {
	TakeRange(s span.Span) T
	RemoveRange(s span.Span)
}

var (
	_ Taker[Bytes]    = (*Bytes)(nil)
	_ Taker[BytesMut] = (*BytesMut)(nil)
)

// Remove discards the spanned region of t by taking it and dropping the
// result. It is the fallback for Taker implementations that have no cheaper
// in-place removal; Bytes and BytesMut override RemoveRange instead.
func Remove[T any](t Taker[T], s span.Span) {
	t.TakeRange(s)
}

// TakeRange extracts the spanned region as a view of its own and leaves the
// remainder, reindexed from zero.
func (b *Bytes) TakeRange(s span.Span) Bytes {
	switch s := s.(type) {
	case span.Full:
		return b.SplitOff(0)
	case span.From:
		return b.SplitOff(s.Start)
	case span.To:
		return b.SplitTo(s.End)
	case span.ToInclusive:
		return b.SplitTo(s.ToExclusive().End)
	default:
		panic("bytebuf: unsupported span shape " + s.String())
	}
}

// RemoveRange discards the spanned region without materializing it. No new
// view is created.
func (b *Bytes) RemoveRange(s span.Span) {
	switch s := s.(type) {
	case span.Full:
		b.Clear()
	case span.From:
		b.Truncate(s.Start)
	case span.To:
		b.Advance(s.End)
	case span.ToInclusive:
		b.Advance(s.ToExclusive().End)
	default:
		panic("bytebuf: unsupported span shape " + s.String())
	}
}

// TakeRange extracts the spanned region into a buffer of its own and leaves
// the remainder, reindexed from zero. Taking the full span swaps the whole
// backing array out instead of splitting.
func (b *BytesMut) TakeRange(s span.Span) BytesMut {
	switch s := s.(type) {
	case span.Full:
		return b.Take()
	case span.From:
		return b.SplitOff(s.Start)
	case span.To:
		return b.SplitTo(s.End)
	case span.ToInclusive:
		return b.SplitTo(s.ToExclusive().End)
	default:
		panic("bytebuf: unsupported span shape " + s.String())
	}
}

// RemoveRange discards the spanned region in place, with no allocation or
// copy of the removed bytes.
func (b *BytesMut) RemoveRange(s span.Span) {
	switch s := s.(type) {
	case span.Full:
		b.Clear()
	case span.From:
		b.Truncate(s.Start)
	case span.To:
		b.Advance(s.End)
	case span.ToInclusive:
		b.Advance(s.ToExclusive().End)
	default:
		panic("bytebuf: unsupported span shape " + s.String())
	}
}
