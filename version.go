// Package rangesplit splits indexed byte buffers by span and validates spans
// against UTF-8 text. See the span, bytebuf, and strspan packages; this root
// package only exposes the library version.
package rangesplit

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version returns the library version in SemVer format, without a leading v.
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// VersionTag returns the git tag form of Version, with a leading v.
func VersionTag() string {
	return "v" + Version()
}
