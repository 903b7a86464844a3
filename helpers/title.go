package helpers

import (
	"regexp"
	"strings"
)

var (
	apostropheRegex = regexp.MustCompile("[’'`]")
	nonKeyCharRegex = regexp.MustCompile(`[^a-z0-9\s]`)
)

// TitleKey reduces a work title to a fuzzy match key. Case, punctuation,
// bracketing, and apostrophe variants all collide on the same key;
// spelling and transliteration differences do not. Apostrophes are
// dropped outright so "Tain Bo Cuailnge" and "Táin Bó Cúailnge" stay
// distinct while "O'Donnell" and "ODonnell" collide.
func TitleKey(s string) string {
	s = strings.ToLower(NormalizeSpace(s))
	s = apostropheRegex.ReplaceAllString(s, "")
	s = nonKeyCharRegex.ReplaceAllString(s, " ")
	return NormalizeSpace(s)
}
