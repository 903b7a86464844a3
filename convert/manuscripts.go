package convert

import (
	"log/slog"
	"strconv"

	"github.com/sudhansu1991/MIrA/helpers"
	"github.com/sudhansu1991/MIrA/rdf"
	"github.com/sudhansu1991/MIrA/tei"
	"github.com/sudhansu1991/MIrA/wikidata"
)

// EmitManuscripts emits one subject per manuscript record.
func (c *Converter) EmitManuscripts(doc *tei.Manuscripts) {
	for i := range doc.Items {
		c.EmitManuscript(&doc.Items[i])
	}
}

// EmitManuscript emits the triples for a single manuscript. Manuscript
// subjects always live in the local namespace; catalogue manuscripts are
// never asserted to BE the Wikidata entity even when aligned elsewhere.
// Conditional fields that yield no extractable value are omitted.
func (c *Converter) EmitManuscript(ms *tei.Manuscript) {
	mid := ms.ID
	if mid == "" {
		mid = syntheticID("ms")
		slog.Debug("manuscript without id, synthesized one", "id", mid)
	}
	subj := localIRI("manuscript", mid)

	c.graph.Add(subj, wikidata.InstanceOf, wikidata.Manuscript)

	shelf, hasShelf := ms.Shelfmark()
	if hasShelf {
		c.graph.Add(subj, wikidata.Shelfmark, rdf.String(shelf))
	}

	var libName string
	if libID, ok := ms.LibraryID(); ok {
		entry, registered := c.tables.Libraries.Lookup(libID)
		if !registered {
			slog.Debug("manuscript references unregistered library", "manuscript", mid, "library", libID)
		}
		if name, ok := entry.Label(); ok {
			libName = name
		}
		c.graph.Add(subj, wikidata.Collection, subjectFor("library", libID, entry.QID))
	}

	label := shelf
	if label == "" {
		label = "MIRA manuscript " + mid
	}
	if hasShelf && libName != "" {
		label = libName + " — " + shelf
	}
	c.addLabelPair(subj, label)

	if evidence, ok := ms.DatingEvidence(); ok {
		if runs := helpers.YearRuns(evidence); len(runs) > 1 {
			slog.Warn("ambiguous dating evidence, first run wins",
				"manuscript", mid, "runs", runs)
		}
		if year, ok := helpers.Year(evidence); ok {
			c.graph.Add(subj, wikidata.Inception, rdf.GYear(year))
		}
	}

	if pid, ok := ms.OriginPlaceID(); ok {
		entry, registered := c.tables.Places.Lookup(pid)
		if !registered {
			slog.Debug("manuscript references unregistered place", "manuscript", mid, "place", pid)
		}
		c.graph.Add(subj, wikidata.PlaceOfCreation, subjectFor("place", pid, entry.QID))
	}

	if ms.Description != nil {
		if raw, ok := helpers.Number(ms.Description.Folios); ok {
			if n, err := strconv.Atoi(raw); err == nil {
				c.graph.Add(subj, wikidata.Folios, rdf.Integer(strconv.Itoa(n)))
			}
		}
		if raw, ok := helpers.Measurement(ms.Description.PageH); ok {
			c.graph.Add(subj, wikidata.Height, rdf.Decimal(raw))
		}
		if raw, ok := helpers.Measurement(ms.Description.PageW); ok {
			c.graph.Add(subj, wikidata.Width, rdf.Decimal(raw))
		}
	}

	if href, ok := ms.LinkHref(); ok {
		c.graph.Add(subj, wikidata.FullWorkURL, rdf.AnyURI(href))
	}

	for _, title := range ms.ContentTitles() {
		if qid, ok := c.tables.Works.QID(title); ok {
			c.graph.Add(subj, wikidata.ExemplarOf, wikidata.Entity(qid))
		}
	}
}
