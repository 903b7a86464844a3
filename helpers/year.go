package helpers

import "regexp"

var (
	longYearRegex  = regexp.MustCompile(`\b\d{4,}\b`)
	shortYearRegex = regexp.MustCompile(`\b\d{3}\b`)
)

// Year extracts a four-digit year from free-text dating evidence.
//
// The first run of four or more digits wins and is truncated to its first
// four characters. Failing that, a run of exactly three digits is
// zero-padded to four (early-medieval dates like "950"). Anything shorter
// is not year evidence: no century inference, no range midpoints.
func Year(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if m := longYearRegex.FindString(s); m != "" {
		return m[:4], true
	}
	if m := shortYearRegex.FindString(s); m != "" {
		return "0" + m, true
	}
	return "", false
}

// YearRuns returns every run of four or more digits in s. More than one
// run means the dating evidence is ambiguous; Year resolves to the first.
func YearRuns(s string) []string {
	return longYearRegex.FindAllString(s, -1)
}
