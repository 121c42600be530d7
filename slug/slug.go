// Package slug derives URL-safe lowercase tokens from human-authored titles
// and category names. The result is a secondary lookup key, distinct from the
// storage-assigned id.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Make converts a title into its slug. It is a pure function: the same input
// always produces the same output. Ampersands surrounded by spaces become
// "-and-", anything that is not a word character, whitespace or a dash is
// stripped, and runs of whitespace/underscores/dashes collapse to one dash.
//
// Make gives no collision guarantee: distinct titles can produce the same
// slug and no disambiguating suffix is appended.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " & ", "-and-")
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
