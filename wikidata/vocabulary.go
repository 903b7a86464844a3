// Package wikidata pins the slice of the Wikidata vocabulary the
// catalogue graph is expressed in: the namespaces, the entity classes,
// and the direct properties. Nothing here does I/O; the constants exist
// so every emitter and test names terms the same way.
package wikidata

import "github.com/sudhansu1991/MIrA/rdf"

// Namespaces. Authority and manuscript subjects that lack an external
// alignment live under the project namespace MiraNS.
const (
	EntityNS    = "http://www.wikidata.org/entity/"
	DirectNS    = "http://www.wikidata.org/prop/direct/"
	PropertyNS  = "http://www.wikidata.org/prop/"
	StatementNS = "http://www.wikidata.org/prop/statement/"
	QualifierNS = "http://www.wikidata.org/prop/qualifier/"
	OntologyNS  = "http://wikiba.se/ontology#"

	MiraNS = "https://mira.ie/entity/"
)

// Entity classes.
const (
	Manuscript   rdf.IRI = EntityNS + "Q87167"
	Human        rdf.IRI = EntityNS + "Q5"
	Library      rdf.IRI = EntityNS + "Q7075"
	Organization rdf.IRI = EntityNS + "Q43229"
	WrittenWork  rdf.IRI = EntityNS + "Q7725634"
	Place        rdf.IRI = EntityNS + "Q618123"
)

// Direct (truthy) properties.
const (
	InstanceOf      rdf.IRI = DirectNS + "P31"
	Shelfmark       rdf.IRI = DirectNS + "P217"
	Collection      rdf.IRI = DirectNS + "P195"
	Inception       rdf.IRI = DirectNS + "P571"
	PlaceOfCreation rdf.IRI = DirectNS + "P1071"
	Folios          rdf.IRI = DirectNS + "P1104"
	Height          rdf.IRI = DirectNS + "P2048"
	Width           rdf.IRI = DirectNS + "P2049"
	FullWorkURL     rdf.IRI = DirectNS + "P953"
	ExemplarOf      rdf.IRI = DirectNS + "P1574"
)

// Entity builds the wd: IRI for a QID token.
func Entity(qid string) rdf.IRI {
	return rdf.IRI(EntityNS + qid)
}

// BindPrefixes registers the namespace bindings every catalogue graph
// serializes with.
func BindPrefixes(g *rdf.Graph) {
	g.Bind("rdf", rdf.RDFNS)
	g.Bind("rdfs", rdf.RDFSNS)
	g.Bind("skos", rdf.SKOSNS)
	g.Bind("xsd", rdf.XSDNS)
	g.Bind("wd", EntityNS)
	g.Bind("wdt", DirectNS)
	g.Bind("p", PropertyNS)
	g.Bind("ps", StatementNS)
	g.Bind("pq", QualifierNS)
	g.Bind("wikibase", OntologyNS)
	g.Bind("mira", MiraNS)
}
