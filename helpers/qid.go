package helpers

import "regexp"

var qidRegex = regexp.MustCompile(`\bQ\d+\b`)

// ExtractQID returns the first Wikidata QID token found in s. Reference
// fields in the catalogue hold anything from a bare "Q12345" to a full
// entity URL or a prose note, so this scans rather than parses.
func ExtractQID(s string) (string, bool) {
	qid := qidRegex.FindString(s)
	return qid, qid != ""
}

// QIDCandidates returns every QID token found in s, in order. More than
// one candidate means the reference is ambiguous; callers resolve to the
// first and should surface the rest.
func QIDCandidates(s string) []string {
	return qidRegex.FindAllString(s, -1)
}
