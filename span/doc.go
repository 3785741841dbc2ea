// Package span describes which part of an indexed buffer an operation targets.
//
// Indices are 0-based byte offsets. A span is one of four shapes: the whole
// buffer, everything from a start offset, everything before an end offset, or
// everything up to and including an end offset.
package span
