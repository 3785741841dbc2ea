package bytebuf

import "fmt"

// Bytes is a shared, immutable view of a contiguous byte sequence.
//
// Splitting a Bytes never copies: the pieces alias the original backing
// array, and the garbage collector keeps the array alive for as long as any
// piece references it. Separate pieces may be read concurrently; mutating
// methods on a single Bytes value still need external synchronization.
//
// Callers must not write through slices handed to Of or returned by Bytes.
type Bytes struct {
	data []byte
}

// Of wraps b without copying. The caller gives up write access to b.
func Of(b []byte) Bytes {
	return Bytes{data: b}
}

// OfString copies s into a new Bytes.
func OfString(s string) Bytes {
	return Bytes{data: []byte(s)}
}

// Len returns the view's length in bytes.
func (b *Bytes) Len() int { return len(b.data) }

// Bytes returns the viewed bytes. The slice is shared, not a copy.
func (b *Bytes) Bytes() []byte { return b.data }

// String returns the viewed bytes as a string.
func (b *Bytes) String() string { return string(b.data) }

// SplitOff splits the view at offset at and returns the tail [at, Len()).
// The receiver keeps [0, at). Panics if at is out of range.
//
// Both pieces keep aliasing the original backing array.
func (b *Bytes) SplitOff(at int) Bytes {
	checkOffset(at, len(b.data))
	tail := Bytes{data: b.data[at:]}
	b.data = b.data[:at]
	return tail
}

// SplitTo splits the view at offset at and returns the head [0, at).
// The receiver keeps [at, Len()), reindexed from zero. Panics if at is out
// of range.
func (b *Bytes) SplitTo(at int) Bytes {
	checkOffset(at, len(b.data))
	head := Bytes{data: b.data[:at]}
	b.data = b.data[at:]
	return head
}

// Advance drops the first n bytes of the view. Panics if n is out of range.
func (b *Bytes) Advance(n int) {
	checkOffset(n, len(b.data))
	b.data = b.data[n:]
}

// Truncate shortens the view to its first n bytes. A no-op when n is not
// below the current length; negative n panics.
func (b *Bytes) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bytebuf: negative length %d", n))
	}
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// Clear empties the view.
func (b *Bytes) Clear() {
	b.data = nil
}

func checkOffset(at, length int) {
	if at < 0 || at > length {
		panic(fmt.Sprintf("bytebuf: offset %d out of range for length %d", at, length))
	}
}
