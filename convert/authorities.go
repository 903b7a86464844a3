package convert

import (
	"github.com/sudhansu1991/MIrA/rdf"
	"github.com/sudhansu1991/MIrA/tei"
	"github.com/sudhansu1991/MIrA/wikidata"
)

// EmitAuthorities emits every authority entity: people, the place tree,
// works, then libraries.
func (c *Converter) EmitAuthorities(places *tei.Places) {
	c.emitPeople()
	c.emitPlaces(places)
	c.emitTexts()
	c.emitLibraries()
}

// addLabelPair asserts rdfs:label and skos:prefLabel with the same text.
func (c *Converter) addLabelPair(subj rdf.IRI, label string) {
	c.graph.Add(subj, rdf.Label, rdf.String(label))
	c.graph.Add(subj, rdf.PrefLabel, rdf.String(label))
}

func (c *Converter) emitPeople() {
	for _, e := range c.tables.People.Entries() {
		subj := subjectFor("person", e.ID, e.QID)
		c.graph.Add(subj, rdf.Type, wikidata.Human)
		if label, ok := e.Label(); ok {
			c.addLabelPair(subj, label)
		}
	}
}

// emitPlaces walks the place tree rather than the flat table so that
// places without a catalogue id are still described. The subject key
// falls back from the id to the first name to a synthetic token, and
// the QID comes from the lookup table, so an id-less place never
// resolves externally.
func (c *Converter) emitPlaces(doc *tei.Places) {
	stack := make([]*tei.Place, 0, len(doc.Roots))
	for i := len(doc.Roots) - 1; i >= 0; i-- {
		stack = append(stack, &doc.Roots[i])
	}
	for len(stack) > 0 {
		pl := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		names := pl.CleanNames()
		var qid string
		if e, ok := c.tables.Places.Lookup(pl.ID); ok {
			qid = e.QID
		}
		key := pl.ID
		if key == "" {
			if len(names) > 0 {
				key = names[0]
			} else {
				key = syntheticID("place")
			}
		}
		subj := subjectFor("place", key, qid)

		c.graph.Add(subj, rdf.Type, wikidata.Place)
		if len(names) > 0 {
			c.addLabelPair(subj, names[0])
			for _, alt := range names[1:] {
				c.graph.Add(subj, rdf.AltLabel, rdf.String(alt))
			}
		}

		for i := len(pl.Children) - 1; i >= 0; i-- {
			stack = append(stack, &pl.Children[i])
		}
	}
}

func (c *Converter) emitTexts() {
	for _, e := range c.tables.Texts.Entries() {
		subj := subjectFor("work", e.ID, e.QID)
		c.graph.Add(subj, rdf.Type, wikidata.WrittenWork)
		if label, ok := e.Label(); ok {
			c.addLabelPair(subj, label)
		}
	}
}

func (c *Converter) emitLibraries() {
	for _, e := range c.tables.Libraries.Entries() {
		subj := subjectFor("library", e.ID, e.QID)
		c.graph.Add(subj, rdf.Type, wikidata.Library)
		c.graph.Add(subj, rdf.Type, wikidata.Organization)
		if label, ok := e.Label(); ok {
			c.addLabelPair(subj, label)
		}
	}
}
