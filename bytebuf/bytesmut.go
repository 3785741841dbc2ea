package bytebuf

import "fmt"

// BytesMut is an exclusively owned, growable byte buffer.
//
// Unlike Bytes, every BytesMut owns its backing array alone: splitting copies
// the taken piece into its own array, so both halves remain free to grow and
// mutate independently.
type BytesMut struct {
	data []byte
}

// NewMut returns a BytesMut holding a copy of b.
func NewMut(b []byte) BytesMut {
	data := make([]byte, len(b))
	copy(data, b)
	return BytesMut{data: data}
}

// NewMutString returns a BytesMut holding a copy of s.
func NewMutString(s string) BytesMut {
	return BytesMut{data: []byte(s)}
}

// Len returns the buffer's length in bytes.
func (b *BytesMut) Len() int { return len(b.data) }

// Bytes returns the buffer's contents. The slice is owned by the buffer and
// is only valid until the next mutating call.
func (b *BytesMut) Bytes() []byte { return b.data }

// String returns the buffer's contents as a string.
func (b *BytesMut) String() string { return string(b.data) }

// AppendBytes appends p to the buffer, growing it as needed.
func (b *BytesMut) AppendBytes(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString appends s to the buffer, growing it as needed.
func (b *BytesMut) AppendString(s string) {
	b.data = append(b.data, s...)
}

// SplitOff splits the buffer at offset at and returns the tail [at, Len())
// in a buffer of its own. The receiver keeps [0, at). Panics if at is out
// of range.
func (b *BytesMut) SplitOff(at int) BytesMut {
	checkOffset(at, len(b.data))
	tail := make([]byte, len(b.data)-at)
	copy(tail, b.data[at:])
	b.data = b.data[:at]
	return BytesMut{data: tail}
}

// SplitTo splits the buffer at offset at and returns the head [0, at) in a
// buffer of its own. The receiver keeps [at, Len()), reindexed from zero and
// retaining its capacity. Panics if at is out of range.
func (b *BytesMut) SplitTo(at int) BytesMut {
	checkOffset(at, len(b.data))
	head := make([]byte, at)
	copy(head, b.data[:at])
	n := copy(b.data, b.data[at:])
	b.data = b.data[:n]
	return BytesMut{data: head}
}

// Advance drops the first n bytes, sliding the rest down to offset zero.
// Panics if n is out of range.
func (b *BytesMut) Advance(n int) {
	checkOffset(n, len(b.data))
	kept := copy(b.data, b.data[n:])
	b.data = b.data[:kept]
}

// Take empties the buffer and returns its entire former contents, backing
// array included. No bytes are copied.
func (b *BytesMut) Take() BytesMut {
	out := BytesMut{data: b.data}
	b.data = nil
	return out
}

// Truncate shortens the buffer to its first n bytes, keeping capacity.
// A no-op when n is not below the current length; negative n panics.
func (b *BytesMut) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bytebuf: negative length %d", n))
	}
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// Clear empties the buffer, keeping capacity for reuse.
func (b *BytesMut) Clear() {
	b.data = b.data[:0]
}
