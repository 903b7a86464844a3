// Package helpers provides text normalization utilities shared by the
// catalogue loaders and emitters.
package helpers

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	unsafeIDRegex   = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// NormalizeSpace collapses every internal whitespace run to a single
// space and trims leading and trailing whitespace.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(multiSpaceRegex.ReplaceAllString(s, " "))
}

// SafeID sanitizes a catalogue identifier for use as the local part of
// an IRI. Runs of characters outside [A-Za-z0-9._-] collapse to a single
// underscore. Empty input yields the placeholder "unknown".
func SafeID(s string) string {
	if s == "" {
		return "unknown"
	}
	return unsafeIDRegex.ReplaceAllString(s, "_")
}
