// Package authority builds the in-memory lookup tables the converter
// resolves catalogue references against. All four record sets load
// before the first manuscript is read; the tables never change after
// loading.
package authority

import "github.com/sudhansu1991/MIrA/helpers"

// Entry is one authority record: a person, place, text, or library.
type Entry struct {
	// ID is the catalogue identifier. May be empty when the source
	// record carried none; such entries sanitize to a placeholder IRI
	// at emission.
	ID string
	// QID is the resolved Wikidata identifier, empty when the record
	// has no usable alignment.
	QID string
	// Labels holds display labels in document order. The first is the
	// primary label; the rest are variants.
	Labels []string
}

// Resolved reports whether the entry aligned to a Wikidata entity.
func (e Entry) Resolved() bool {
	return e.QID != ""
}

// Label returns the primary display label.
func (e Entry) Label() (string, bool) {
	if len(e.Labels) == 0 {
		return "", false
	}
	return e.Labels[0], true
}

// Set is an ordered authority table with identifier lookup. Re-adding
// an identifier replaces the earlier entry in place, keeping its
// original position.
type Set struct {
	entries []Entry
	index   map[string]int
}

func newSet() *Set {
	return &Set{index: make(map[string]int)}
}

func (s *Set) add(e Entry) {
	if i, ok := s.index[e.ID]; ok {
		s.entries[i] = e
		return
	}
	s.index[e.ID] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Lookup returns the entry registered under id.
func (s *Set) Lookup(id string) (Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries returns the table in document order.
func (s *Set) Entries() []Entry {
	return s.entries
}

// Len reports the number of registered entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// WorkIndex maps fuzzy title keys to work QIDs. Only texts carrying
// both a resolvable QID and a non-empty title are indexed.
type WorkIndex map[string]string

// QID resolves a content title against the index.
func (w WorkIndex) QID(title string) (string, bool) {
	qid, ok := w[helpers.TitleKey(title)]
	return qid, ok
}
