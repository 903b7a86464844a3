package tei

import (
	"encoding/xml"
	"reflect"
	"testing"
)

func TestPersonDecode(t *testing.T) {
	src := `<people>
  <person id="p001">
    <firstNames>Máel Muire</firstNames>
    <surname>mac Céilechair</surname>
    <xref type="viaf">12345</xref>
    <xref type="wikidata">https://www.wikidata.org/wiki/Q6713676</xref>
  </person>
  <person id="p002">
    <surname>Ó Cléirigh</surname>
  </person>
</people>`

	var doc People
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Persons) != 2 {
		t.Fatalf("got %d persons, want 2", len(doc.Persons))
	}

	p := doc.Persons[0]
	if p.ID != "p001" {
		t.Errorf("ID = %q, want p001", p.ID)
	}
	if got := p.Label(); got != "Máel Muire mac Céilechair" {
		t.Errorf("Label = %q", got)
	}
	ref, ok := p.WikidataRef()
	if !ok || ref != "https://www.wikidata.org/wiki/Q6713676" {
		t.Errorf("WikidataRef = %q, %v", ref, ok)
	}

	q := doc.Persons[1]
	if got := q.Label(); got != "Ó Cléirigh" {
		t.Errorf("Label = %q, want surname only", got)
	}
	if _, ok := q.WikidataRef(); ok {
		t.Error("WikidataRef ok = true for person without xref")
	}
}

func TestPlaceDecodeNested(t *testing.T) {
	src := `<places>
  <place id="pl001">
    <name>Ireland</name>
    <name>Éire</name>
    <xref type="wikidata">Q22890</xref>
    <place id="pl002">
      <name>Clonmacnoise</name>
      <place id="pl003">
        <name>Scriptorium</name>
      </place>
    </place>
    <place>
      <name>unlocated house</name>
      <place id="pl004">
        <name>Derry</name>
      </place>
    </place>
  </place>
</places>`

	var doc Places
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(doc.Roots))
	}

	root := doc.Roots[0]
	if got := root.CleanNames(); !reflect.DeepEqual(got, []string{"Ireland", "Éire"}) {
		t.Errorf("CleanNames = %v", got)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	if root.Children[0].Children[0].ID != "pl003" {
		t.Errorf("grandchild ID = %q, want pl003", root.Children[0].Children[0].ID)
	}
	anon := root.Children[1]
	if anon.ID != "" {
		t.Errorf("anonymous place ID = %q, want empty", anon.ID)
	}
	if len(anon.Children) != 1 || anon.Children[0].ID != "pl004" {
		t.Errorf("anonymous place children = %+v", anon.Children)
	}
}

func TestManuscriptDecode(t *testing.T) {
	src := `<manuscripts>
  <manuscript id="ms001">
    <identifier libraryID="lib01">
      <shelfmark>  23 E 25 </shelfmark>
    </identifier>
    <history>
      <term_post>c.1100</term_post>
      <term_ante>1130</term_ante>
      <origin><place id="pl002"/></origin>
      <origin><place id="pl003"/><place id="pl004"/></origin>
    </history>
    <description>
      <folios>ii + 67 ff.</folios>
      <page_h>27.5 cm</page_h>
      <page_w>19 cm</page_w>
      <contents>
        <msItem><title>Lebor na <expan>hU</expan>idre</title></msItem>
        <msItem><title>   </title></msItem>
      </contents>
    </description>
    <refs>
      <link href="https://www.isos.dias.ie/RIA/RIA_MS_23_E_25.html"/>
      <link href=""/>
    </refs>
  </manuscript>
  <manuscript>
    <history><term_ante>before 950</term_ante></history>
  </manuscript>
</manuscripts>`

	var doc Manuscripts
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Items) != 2 {
		t.Fatalf("got %d manuscripts, want 2", len(doc.Items))
	}

	ms := doc.Items[0]
	if shelf, ok := ms.Shelfmark(); !ok || shelf != "23 E 25" {
		t.Errorf("Shelfmark = %q, %v", shelf, ok)
	}
	if lib, ok := ms.LibraryID(); !ok || lib != "lib01" {
		t.Errorf("LibraryID = %q, %v", lib, ok)
	}
	if ev, ok := ms.DatingEvidence(); !ok || ev != "c.1100" {
		t.Errorf("DatingEvidence = %q, %v (want term_post preferred)", ev, ok)
	}
	if pid, ok := ms.OriginPlaceID(); !ok || pid != "pl002" {
		t.Errorf("OriginPlaceID = %q, %v (want first origin place only)", pid, ok)
	}
	if got := ms.ContentTitles(); !reflect.DeepEqual(got, []string{"Lebor na hUidre"}) {
		t.Errorf("ContentTitles = %v", got)
	}
	if href, ok := ms.LinkHref(); !ok || href != "https://www.isos.dias.ie/RIA/RIA_MS_23_E_25.html" {
		t.Errorf("LinkHref = %q, %v", href, ok)
	}

	bare := doc.Items[1]
	if bare.ID != "" {
		t.Errorf("bare manuscript ID = %q, want empty", bare.ID)
	}
	if ev, ok := bare.DatingEvidence(); !ok || ev != "before 950" {
		t.Errorf("DatingEvidence = %q, %v (want term_ante fallback)", ev, ok)
	}
	if _, ok := bare.Shelfmark(); ok {
		t.Error("Shelfmark ok = true without identifier block")
	}
	if _, ok := bare.OriginPlaceID(); ok {
		t.Error("OriginPlaceID ok = true without origin elements")
	}
}

func TestOriginPlaceIDFirstElementWins(t *testing.T) {
	src := `<manuscripts><manuscript id="m1">
  <history>
    <origin><place/></origin>
    <origin><place id="pl009"/></origin>
  </history>
</manuscript></manuscripts>`

	var doc Manuscripts
	if err := xml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if pid, ok := doc.Items[0].OriginPlaceID(); ok {
		t.Errorf("OriginPlaceID = %q, ok = true; first place element has no id, later ids must not win", pid)
	}
}

func TestDecodeFileErrors(t *testing.T) {
	if _, err := DecodePeople("testdata/does-not-exist.xml"); err == nil {
		t.Error("expected error for missing file")
	}
}
