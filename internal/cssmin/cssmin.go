// Package cssmin strips comments and non-essential whitespace from CSS text.
// The output stays semantically equivalent for rendering purposes; no CSS
// syntax validation is performed, malformed input passes through compressed.
package cssmin

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	spaceRun     = regexp.MustCompile(`\s+`)
	aroundPunct  = regexp.MustCompile(`\s*([{}:;,])\s*`)
)

// Compress removes block comments, collapses whitespace runs to single
// spaces, drops spaces around { } : ; , and trims the ends. The step order
// matters: comments may span lines, so they are removed before whitespace
// collapsing. Compress is pure and idempotent.
func Compress(css string) string {
	if css == "" {
		return ""
	}
	out := blockComment.ReplaceAllString(css, "")
	out = spaceRun.ReplaceAllString(out, " ")
	out = aroundPunct.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}
