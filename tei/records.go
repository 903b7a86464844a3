// Package tei models the MIrA catalogue XML record sets: people, places,
// texts, libraries, and the compiled manuscript descriptions.
//
// The structs mirror the element shapes the catalogue exports and stay
// agnostic about the root element name. Optional fields decode to zero
// values; accessors expose the (value, ok) distinction where absence is
// meaningful downstream.
package tei

import "github.com/sudhansu1991/MIrA/helpers"

// Xref is an external authority reference, e.g.
// <xref type="wikidata">https://www.wikidata.org/wiki/Q1234</xref>.
// The text is free-form: a bare QID, an entity URL, or a prose note.
type Xref struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

// wikidataRef returns the text of the first wikidata xref.
func wikidataRef(xrefs []Xref) (string, bool) {
	for _, x := range xrefs {
		if x.Type == "wikidata" && x.Text != "" {
			return x.Text, true
		}
	}
	return "", false
}

// People is the person authority record set.
type People struct {
	Persons []Person `xml:"person"`
}

// Person is one person record. Either name part may be absent.
type Person struct {
	ID         string `xml:"id,attr"`
	FirstNames string `xml:"firstNames"`
	Surname    string `xml:"surname"`
	Xrefs      []Xref `xml:"xref"`
}

// WikidataRef returns the raw text of the person's first wikidata xref.
func (p *Person) WikidataRef() (string, bool) {
	return wikidataRef(p.Xrefs)
}

// Label builds the person's display label from the name parts,
// whitespace-normalized. Empty when both parts are absent.
func (p *Person) Label() string {
	return helpers.NormalizeSpace(p.FirstNames + " " + p.Surname)
}

// Places is the place authority record set. Places nest to arbitrary
// depth; each level holds the same shape.
type Places struct {
	Roots []Place `xml:"place"`
}

// Place is one place record. Names are display label candidates in
// document order. A place may lack an id yet still carry children.
type Place struct {
	ID       string   `xml:"id,attr"`
	Names    []string `xml:"name"`
	Xrefs    []Xref   `xml:"xref"`
	Children []Place  `xml:"place"`
}

// WikidataRef returns the raw text of the place's first wikidata xref.
func (p *Place) WikidataRef() (string, bool) {
	return wikidataRef(p.Xrefs)
}

// CleanNames returns the place's non-empty names, whitespace-normalized,
// in document order.
func (p *Place) CleanNames() []string {
	var names []string
	for _, n := range p.Names {
		if n = helpers.NormalizeSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Texts is the text (work) authority record set.
type Texts struct {
	Items []Text `xml:"text"`
}

// Text is one work record.
type Text struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title"`
	Xrefs []Xref `xml:"xref"`
}

// WikidataRef returns the raw text of the work's first wikidata xref.
func (t *Text) WikidataRef() (string, bool) {
	return wikidataRef(t.Xrefs)
}

// Libraries is the holding-institution record set.
type Libraries struct {
	Items []Library `xml:"library"`
}

// Library is one holding institution.
type Library struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name"`
	Xrefs []Xref `xml:"xref"`
}

// WikidataRef returns the raw text of the library's first wikidata xref.
func (l *Library) WikidataRef() (string, bool) {
	return wikidataRef(l.Xrefs)
}

// Manuscripts is the compiled manuscript description set.
type Manuscripts struct {
	Items []Manuscript `xml:"manuscript"`
}

// Manuscript is one compiled manuscript description. Every block is
// optional; compiled records vary widely in completeness.
type Manuscript struct {
	ID          string       `xml:"id,attr"`
	Identifier  *Identifier  `xml:"identifier"`
	History     *History     `xml:"history"`
	Description *Description `xml:"description"`
	Refs        *Refs        `xml:"refs"`
}

// Identifier carries the holding library reference and the shelfmark.
type Identifier struct {
	LibraryID string `xml:"libraryID,attr"`
	Shelfmark string `xml:"shelfmark"`
}

// History carries dating evidence and origin place references.
type History struct {
	TermPost string   `xml:"term_post"`
	TermAnte string   `xml:"term_ante"`
	Origins  []Origin `xml:"origin"`
}

// Origin groups place references for one origin assertion.
type Origin struct {
	Places []OriginPlace `xml:"place"`
}

// OriginPlace references a place record by catalogue id.
type OriginPlace struct {
	ID string `xml:"id,attr"`
}

// Description carries physical extent and the contents listing.
type Description struct {
	Folios   string    `xml:"folios"`
	PageH    string    `xml:"page_h"`
	PageW    string    `xml:"page_w"`
	Contents *Contents `xml:"contents"`
}

// Contents lists the works a manuscript carries.
type Contents struct {
	Items []MsItem `xml:"msItem"`
}

// MsItem is one content entry. Titles are mixed content, so the raw
// inner markup is kept and flattened on demand.
type MsItem struct {
	Title MixedText `xml:"title"`
}

// MixedText holds an element's raw inner XML.
type MixedText struct {
	Inner string `xml:",innerxml"`
}

// Text flattens the mixed content to running text: tags stripped,
// entities decoded, whitespace normalized.
func (m MixedText) Text() string {
	return helpers.StripTags(m.Inner)
}

// Shelfmark returns the manuscript's shelfmark, whitespace-normalized.
func (m *Manuscript) Shelfmark() (string, bool) {
	if m.Identifier == nil {
		return "", false
	}
	s := helpers.NormalizeSpace(m.Identifier.Shelfmark)
	return s, s != ""
}

// LibraryID returns the holding library reference.
func (m *Manuscript) LibraryID() (string, bool) {
	if m.Identifier == nil || m.Identifier.LibraryID == "" {
		return "", false
	}
	return m.Identifier.LibraryID, true
}

// DatingEvidence returns the first available dating field, preferring
// term_post over term_ante.
func (m *Manuscript) DatingEvidence() (string, bool) {
	if m.History == nil {
		return "", false
	}
	if m.History.TermPost != "" {
		return m.History.TermPost, true
	}
	if m.History.TermAnte != "" {
		return m.History.TermAnte, true
	}
	return "", false
}

// OriginPlaceID returns the manuscript's origin place reference: the id
// of the first origin place element in document order. A first element
// without an id yields no reference, even when a later element carries
// one.
func (m *Manuscript) OriginPlaceID() (string, bool) {
	if m.History == nil {
		return "", false
	}
	for _, o := range m.History.Origins {
		if len(o.Places) == 0 {
			continue
		}
		id := o.Places[0].ID
		return id, id != ""
	}
	return "", false
}

// LinkHref returns the target of the manuscript's first link element.
// A first link without an href yields nothing.
func (m *Manuscript) LinkHref() (string, bool) {
	if m.Refs == nil || len(m.Refs.Links) == 0 {
		return "", false
	}
	href := m.Refs.Links[0].Href
	return href, href != ""
}

// ContentTitles returns the flattened title of every content entry,
// skipping entries that flatten to nothing.
func (m *Manuscript) ContentTitles() []string {
	if m.Description == nil || m.Description.Contents == nil {
		return nil
	}
	var titles []string
	for _, item := range m.Description.Contents.Items {
		if t := item.Title.Text(); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// Refs groups a manuscript's external links.
type Refs struct {
	Links []Link `xml:"link"`
}

// Link points at an external resource for the manuscript.
type Link struct {
	Href string `xml:"href,attr"`
}
