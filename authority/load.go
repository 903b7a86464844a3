package authority

import (
	"log/slog"

	"github.com/sudhansu1991/MIrA/helpers"
	"github.com/sudhansu1991/MIrA/tei"
)

// Tables bundles the four loaded authority tables.
type Tables struct {
	People    *Set
	Places    *Set
	Texts     *Set
	Libraries *Set
	// Works resolves manuscript content titles to work QIDs.
	Works WorkIndex
}

// Load builds every table from the decoded record sets.
func Load(people *tei.People, places *tei.Places, texts *tei.Texts, libraries *tei.Libraries) *Tables {
	textSet, works := LoadTexts(texts)
	return &Tables{
		People:    LoadPeople(people),
		Places:    LoadPlaces(places),
		Texts:     textSet,
		Libraries: LoadLibraries(libraries),
		Works:     works,
	}
}

// resolveQID extracts a QID from raw reference text, warning when the
// text holds more than one distinct candidate. The first wins.
func resolveQID(kind, id, raw string) string {
	candidates := helpers.QIDCandidates(raw)
	if len(candidates) == 0 {
		return ""
	}
	for _, c := range candidates[1:] {
		if c != candidates[0] {
			slog.Warn("ambiguous wikidata reference, using first candidate",
				"kind", kind, "id", id, "candidates", candidates)
			break
		}
	}
	return candidates[0]
}

// LoadPeople registers every person record, including those without a
// catalogue id.
func LoadPeople(doc *tei.People) *Set {
	s := newSet()
	for i := range doc.Persons {
		p := &doc.Persons[i]
		e := Entry{ID: p.ID}
		if raw, ok := p.WikidataRef(); ok {
			e.QID = resolveQID("person", p.ID, raw)
		}
		if l := p.Label(); l != "" {
			e.Labels = []string{l}
		}
		s.add(e)
	}
	return s
}

// LoadPlaces flattens the place tree in pre-order. A place without an
// id is not registered, but its children still are. Parent/child
// relationships are not retained.
func LoadPlaces(doc *tei.Places) *Set {
	s := newSet()

	stack := make([]*tei.Place, 0, len(doc.Roots))
	for i := len(doc.Roots) - 1; i >= 0; i-- {
		stack = append(stack, &doc.Roots[i])
	}
	for len(stack) > 0 {
		pl := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pl.ID != "" {
			e := Entry{ID: pl.ID, Labels: pl.CleanNames()}
			if raw, ok := pl.WikidataRef(); ok {
				e.QID = resolveQID("place", pl.ID, raw)
			}
			s.add(e)
		}
		for i := len(pl.Children) - 1; i >= 0; i-- {
			stack = append(stack, &pl.Children[i])
		}
	}
	return s
}

// LoadTexts registers every text record and builds the fuzzy title
// index. Only texts with both a QID and a title are indexed; a later
// text whose title collides on the same key overwrites the earlier one.
func LoadTexts(doc *tei.Texts) (*Set, WorkIndex) {
	s := newSet()
	works := make(WorkIndex)
	for i := range doc.Items {
		t := &doc.Items[i]
		e := Entry{ID: t.ID}
		if raw, ok := t.WikidataRef(); ok {
			e.QID = resolveQID("text", t.ID, raw)
		}
		title := helpers.NormalizeSpace(t.Title)
		if title != "" {
			e.Labels = []string{title}
		}
		if e.QID != "" && title != "" {
			works[helpers.TitleKey(title)] = e.QID
		}
		s.add(e)
	}
	return s, works
}

// LoadLibraries registers every library that carries a catalogue id.
// The display label falls back to the id itself, so it is never blank.
func LoadLibraries(doc *tei.Libraries) *Set {
	s := newSet()
	for i := range doc.Items {
		l := &doc.Items[i]
		if l.ID == "" {
			continue
		}
		name := helpers.NormalizeSpace(l.Name)
		if name == "" {
			name = l.ID
		}
		e := Entry{ID: l.ID, Labels: []string{name}}
		if raw, ok := l.WikidataRef(); ok {
			e.QID = resolveQID("library", l.ID, raw)
		}
		s.add(e)
	}
	return s
}
