package helpers

import (
	"html"
	"regexp"
)

var (
	markupCommentRegex = regexp.MustCompile(`<!--[\s\S]*?-->`)
	markupTagRegex     = regexp.MustCompile(`<[^>]*>`)
)

// StripTags flattens mixed-content markup to plain text: comments and
// tags are dropped, character entities decoded, and whitespace
// normalized. Catalogue title elements interleave text with editorial
// markup, and only the running text matters for display and matching.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	s = markupCommentRegex.ReplaceAllString(s, "")
	s = markupTagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return NormalizeSpace(s)
}
