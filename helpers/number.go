package helpers

import "regexp"

var (
	integerRegex = regexp.MustCompile(`\d+`)
	decimalRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Number extracts the first integer run from free text, e.g. a folio
// count like "ii + 210 ff." yields "210".
func Number(s string) (string, bool) {
	m := integerRegex.FindString(s)
	return m, m != ""
}

// Measurement extracts the first decimal measurement from free text,
// e.g. "27.5 x 19 cm" yields "27.5".
func Measurement(s string) (string, bool) {
	m := decimalRegex.FindString(s)
	return m, m != ""
}
