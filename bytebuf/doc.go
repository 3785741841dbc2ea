// Package bytebuf implements splitting byte buffers by span.
//
// Two ownership models are provided. Bytes is a shared, immutable view:
// splitting is zero-copy and both pieces alias the same backing array.
// BytesMut is exclusively owned and growable: splitting hands the taken piece
// off with its own backing array, so either piece may keep mutating.
//
// TakeRange extracts a span and leaves the remainder in place, reindexed from
// zero. RemoveRange discards the span without materializing it.
package bytebuf
