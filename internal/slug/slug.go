// Package slug derives url-safe identifiers from display titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
	edgeDashes = regexp.MustCompile(`^-+|-+$`)
)

// Make converts a title to its slug: lowercased, stripped of characters
// outside word/space/dash, with separator runs collapsed to single
// dashes and edge dashes removed.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")

	return edgeDashes.ReplaceAllString(s, "")
}
