// Package strspan validates spans against UTF-8 text before splitting.
//
// A span is safe to split on when both of its bounds fit inside the text and
// land on code point boundaries. IsValid answers that as a boolean; Assert
// panics with a diagnostic naming the span and the failure kind, treating an
// invalid span as a bug in the caller. The grapheme tier (IsValidGraphemes,
// AssertGraphemes) tightens the boundary requirement from code points to
// grapheme clusters.
package strspan
