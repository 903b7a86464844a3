package authority

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sudhansu1991/MIrA/tei"
)

func decodePlaces(t *testing.T, src string) *tei.Places {
	t.Helper()
	var doc tei.Places
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &doc
}

func TestLoadPeople(t *testing.T) {
	src := `<people>
  <person id="p001">
    <firstNames>Muirchú</firstNames>
    <surname>moccu Machtheni</surname>
    <xref type="wikidata">https://www.wikidata.org/wiki/Q6717172</xref>
  </person>
  <person id="p002"><surname>anonymous scribe</surname></person>
  <person><xref type="wikidata">Q999</xref></person>
</people>`

	var doc tei.People
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	s := LoadPeople(&doc)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (persons without ids still register)", s.Len())
	}

	e, ok := s.Lookup("p001")
	if !ok || e.QID != "Q6717172" {
		t.Errorf("p001 = %+v, %v", e, ok)
	}
	if label, _ := e.Label(); label != "Muirchú moccu Machtheni" {
		t.Errorf("p001 label = %q", label)
	}

	e, ok = s.Lookup("p002")
	if !ok || e.Resolved() {
		t.Errorf("p002 should be unresolved, got %+v", e)
	}

	e, ok = s.Lookup("")
	if !ok || e.QID != "Q999" {
		t.Errorf("empty-id person = %+v, %v", e, ok)
	}
}

func TestLoadPlacesFlattensTree(t *testing.T) {
	doc := decodePlaces(t, `<places>
  <place id="pl001">
    <name>Ireland</name>
    <name>Éire</name>
    <xref type="wikidata">Q22890</xref>
    <place id="pl002"><name>Clonmacnoise</name></place>
  </place>
  <place>
    <name>lost region</name>
    <place id="pl003"><name>Armagh</name></place>
  </place>
</places>`)

	s := LoadPlaces(doc)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (anonymous parent skipped, child kept)", s.Len())
	}

	var ids []string
	for _, e := range s.Entries() {
		ids = append(ids, e.ID)
	}
	if want := []string{"pl001", "pl002", "pl003"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("pre-order ids = %v, want %v", ids, want)
	}

	e, _ := s.Lookup("pl001")
	if !reflect.DeepEqual(e.Labels, []string{"Ireland", "Éire"}) {
		t.Errorf("pl001 labels = %v", e.Labels)
	}
	if e.QID != "Q22890" {
		t.Errorf("pl001 QID = %q", e.QID)
	}
	if _, ok := s.Lookup("lost region"); ok {
		t.Error("anonymous place must not register under its name")
	}
}

func TestLoadPlacesDeepNesting(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<places>`)
	for i := 0; i <= 60; i++ {
		fmt.Fprintf(&b, `<place id="d%d"><name>level %d</name>`, i, i)
	}
	for i := 0; i <= 60; i++ {
		b.WriteString(`</place>`)
	}
	b.WriteString(`</places>`)

	s := LoadPlaces(decodePlaces(t, b.String()))
	if s.Len() != 61 {
		t.Fatalf("Len = %d, want 61", s.Len())
	}
	if _, ok := s.Lookup("d60"); !ok {
		t.Error("deepest place missing")
	}
}

func TestLoadTextsBuildsWorkIndex(t *testing.T) {
	src := `<texts>
  <text id="t001"><title>Táin Bó Cúailnge</title><xref type="wikidata">Q1816490</xref></text>
  <text id="t002"><title>untraced fragment</title></text>
  <text id="t003"><xref type="wikidata">Q55</xref></text>
  <text id="t004"><title>Tain  Bo   Cuailnge!</title><xref type="wikidata">Q77</xref></text>
</texts>`

	var doc tei.Texts
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	s, works := LoadTexts(&doc)
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}

	if qid, ok := works.QID("Táin Bó Cúailnge"); !ok || qid != "Q1816490" {
		t.Errorf("indexed title = %q, %v", qid, ok)
	}
	if qid, ok := works.QID("TAIN bo cuailnge"); !ok || qid != "Q77" {
		t.Errorf("fuzzy key = %q, %v (punctuation variant should hit t004)", qid, ok)
	}
	if _, ok := works.QID("untraced fragment"); ok {
		t.Error("text without QID must not be indexed")
	}

	e, _ := s.Lookup("t003")
	if _, ok := e.Label(); ok {
		t.Error("text without title must not carry a label")
	}
	if e.QID != "Q55" {
		t.Errorf("t003 QID = %q", e.QID)
	}
}

func TestLoadLibraries(t *testing.T) {
	src := `<libraries>
  <library id="lib01">
    <name>Royal Irish Academy</name>
    <xref type="wikidata">Q1420038</xref>
  </library>
  <library id="lib02"><name>  </name></library>
  <library><name>orphan collection</name></library>
</libraries>`

	var doc tei.Libraries
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	s := LoadLibraries(&doc)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (library without id skipped)", s.Len())
	}

	e, _ := s.Lookup("lib01")
	if label, _ := e.Label(); label != "Royal Irish Academy" || e.QID != "Q1420038" {
		t.Errorf("lib01 = %+v", e)
	}

	e, _ = s.Lookup("lib02")
	if label, _ := e.Label(); label != "lib02" {
		t.Errorf("lib02 label = %q, want id fallback", label)
	}
}

func TestResolveQIDAmbiguity(t *testing.T) {
	if got := resolveQID("person", "p1", "Q10 or Q20"); got != "Q10" {
		t.Errorf("resolveQID = %q, want first candidate", got)
	}
	if got := resolveQID("person", "p1", "Q10, also written Q10"); got != "Q10" {
		t.Errorf("resolveQID = %q", got)
	}
	if got := resolveQID("person", "p1", "no alignment"); got != "" {
		t.Errorf("resolveQID = %q, want empty", got)
	}
}
