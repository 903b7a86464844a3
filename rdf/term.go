// Package rdf provides the triple graph and Turtle serialization used by
// the catalogue converter.
//
// The model is deliberately small: IRI subjects and predicates, IRI or
// literal objects, and an append-only graph with set semantics. Blank
// nodes and language-tagged literals are not modeled; the catalogue
// vocabulary never produces them.
package rdf

// Well-known IRIs bound by every catalogue graph.
const (
	RDFNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS = "http://www.w3.org/2000/01/rdf-schema#"
	SKOSNS = "http://www.w3.org/2004/02/skos/core#"
	XSDNS  = "http://www.w3.org/2001/XMLSchema#"

	Type      IRI = RDFNS + "type"
	Label     IRI = RDFSNS + "label"
	AltLabel  IRI = SKOSNS + "altLabel"
	PrefLabel IRI = SKOSNS + "prefLabel"

	XSDGYear   IRI = XSDNS + "gYear"
	XSDInteger IRI = XSDNS + "integer"
	XSDDecimal IRI = XSDNS + "decimal"
	XSDAnyURI  IRI = XSDNS + "anyURI"
)

// Term is an RDF term usable in object position.
type Term interface {
	isTerm()
}

// IRI is an absolute IRI reference.
type IRI string

func (IRI) isTerm() {}

// Literal is an RDF literal. A zero Datatype means a plain string
// literal.
type Literal struct {
	Value    string
	Datatype IRI
}

func (Literal) isTerm() {}

// String builds a plain string literal.
func String(v string) Literal {
	return Literal{Value: v}
}

// Typed builds a literal with an explicit datatype.
func Typed(v string, dt IRI) Literal {
	return Literal{Value: v, Datatype: dt}
}

// GYear builds an xsd:gYear literal from a four-digit year.
func GYear(v string) Literal {
	return Typed(v, XSDGYear)
}

// Integer builds an xsd:integer literal from a digit string.
func Integer(v string) Literal {
	return Typed(v, XSDInteger)
}

// Decimal builds an xsd:decimal literal from a decimal string.
func Decimal(v string) Literal {
	return Typed(v, XSDDecimal)
}

// AnyURI builds an xsd:anyURI literal.
func AnyURI(v string) Literal {
	return Typed(v, XSDAnyURI)
}

// Triple is one statement. Subjects and predicates are always IRIs in
// the catalogue graph.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}
